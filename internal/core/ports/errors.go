package ports

import "errors"

// 定義 Ports 層級通用的錯誤
var (
	// ErrRecordNotFound 儲存層找不到資料
	ErrRecordNotFound = errors.New("record not found")
	// ErrConcurrencyConflict 條件更新失敗 (版本已被其他寫入推進)
	ErrConcurrencyConflict = errors.New("concurrency conflict")
	// ErrConnectionGone 推播目標連線已不存在
	ErrConnectionGone = errors.New("connection gone")
)
