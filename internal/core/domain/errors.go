package domain

import "errors"

// 房間與對戰相關的領域錯誤
var (
	// ErrRoomNotFound 房間不存在
	ErrRoomNotFound = errors.New("room not found")
	// ErrRoomIsFull 房間已有跟隨者 (包含併發加入時落敗的一方)
	ErrRoomIsFull = errors.New("room is full")
	// ErrJoinOwnRoom 房主嘗試加入自己的房間
	ErrJoinOwnRoom = errors.New("joining own room is prohibited")
	// ErrInvalidState 違反狀態不變式 (對戰結束後仍推進、房間重複結算)
	ErrInvalidState = errors.New("invalid state")
	// ErrInvalidArgument 參數不屬於該房間
	ErrInvalidArgument = errors.New("invalid argument")
)
