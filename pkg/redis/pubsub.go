package redis

import (
	"context"
)

// Publish 發送訊息到指定頻道
//
// 參數:
//
//	ctx: context.Context - 上下文
//	channel: string - 目標頻道名稱
//	message: any - 要發送的訊息內容，可以是字串或 []byte
//
// 回傳值:
//
//	error: 若發送失敗則回傳錯誤
func (c *Client) Publish(ctx context.Context, channel string, message any) error {
	return c.rdb.Publish(ctx, channel, message).Err()
}
