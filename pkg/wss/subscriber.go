package wss

// Subscriber 定義業務層監聽連線事件的介面。
// 同一條連線的 OnConnect 一定先於 OnDisconnect 觸發。
type Subscriber interface {
	// OnConnect 新連線註冊完成
	OnConnect(conn Client)
	// OnDisconnect 連線已移除 (對端關閉、逾時或被踢)
	OnDisconnect(conn Client)
	// OnMessage 收到客戶端訊息
	OnMessage(conn Client, msg []byte)
}
