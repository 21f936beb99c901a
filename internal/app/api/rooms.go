package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/google/uuid"

	"github.com/JoeShih716/go-duel-rooms/internal/core/ports"
)

type createRoomResponse struct {
	RoomID int64 `json:"room_id"`
}

type roomResponse struct {
	ID         int64      `json:"id"`
	HostID     uuid.UUID  `json:"host_id"`
	FollowerID *uuid.UUID `json:"follower_id"`
	Outcome    string     `json:"outcome"`
}

// RoomHandler 房間相關的 HTTP 入口
type RoomHandler struct {
	rooms    ports.RoomRepository
	sessions ports.SessionRequester
	progress ports.ProgressReader
	logger   *slog.Logger
}

func NewRoomHandler(
	rooms ports.RoomRepository,
	sessions ports.SessionRequester,
	progress ports.ProgressReader,
	logger *slog.Logger,
) *RoomHandler {
	return &RoomHandler{
		rooms:    rooms,
		sessions: sessions,
		progress: progress,
		logger:   logger.With("component", "rooms_api"),
	}
}

// CreateRoom POST /rooms
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	playerID, _ := PlayerFromContext(r.Context())

	roomID, err := h.rooms.CreateRoom(r.Context(), playerID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, createRoomResponse{RoomID: roomID})
}

// JoinRoom POST /rooms/{roomID}/join
// 加入成功後立即排入開局佇列
func (h *RoomHandler) JoinRoom(w http.ResponseWriter, r *http.Request) {
	roomID, ok := roomIDParam(w, r)
	if !ok {
		return
	}
	playerID, _ := PlayerFromContext(r.Context())

	if err := h.rooms.JoinRoom(r.Context(), roomID, playerID); err != nil {
		h.fail(w, r, err)
		return
	}

	h.sessions.RequestSession(roomID)
	w.WriteHeader(http.StatusOK)
}

// GetRoom GET /rooms/{roomID}
func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	roomID, ok := roomIDParam(w, r)
	if !ok {
		return
	}

	room, err := h.rooms.GetRoom(r.Context(), roomID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, roomResponse{
		ID:         room.ID,
		HostID:     room.HostID,
		FollowerID: room.FollowerID,
		Outcome:    room.Outcome.String(),
	})
}

// GetProgress GET /rooms/{roomID}/progress
func (h *RoomHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	roomID, ok := roomIDParam(w, r)
	if !ok {
		return
	}

	progress, err := h.progress.Latest(r.Context(), roomID)
	if err != nil {
		if errors.Is(err, ports.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "No progress for this room.")
			return
		}
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

func (h *RoomHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	writeError(w, status, msg)
}

func roomIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	roomID, err := strconv.ParseInt(chi.URLParam(r, "roomID"), 10, 64)
	if err != nil || roomID <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid room id.")
		return 0, false
	}
	return roomID, true
}

