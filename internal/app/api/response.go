package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/JoeShih716/go-duel-rooms/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// statusFor 將領域錯誤對應到 HTTP 狀態與訊息
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrRoomNotFound):
		return http.StatusNotFound, "Room not found."
	case errors.Is(err, domain.ErrRoomIsFull):
		return http.StatusConflict, "Room is full."
	case errors.Is(err, domain.ErrJoinOwnRoom):
		return http.StatusConflict, "Joining own room is prohibited."
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}
