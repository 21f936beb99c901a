package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// 互動式 demo client
//
//	client <baseURL> <playerUUID>
//
// 指令: o 開房, j <id> 加入, c 連接推播, s <id> 查看房間
func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: client <baseURL> <playerUUID>")
		os.Exit(2)
	}
	playerID, err := uuid.Parse(os.Args[2])
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid player id:", err)
		os.Exit(2)
	}

	c := &client{
		baseURL:  strings.TrimRight(os.Args[1], "/"),
		playerID: playerID,
		http:     &http.Client{Timeout: 10 * time.Second},
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch {
		case fields[0] == "o":
			c.openRoom()
		case fields[0] == "j" && len(fields) > 1:
			if id, ok := parseRoomID(fields[1]); ok {
				c.joinRoom(id)
			}
		case fields[0] == "s" && len(fields) > 1:
			if id, ok := parseRoomID(fields[1]); ok {
				c.showRoom(id)
			}
		case fields[0] == "c":
			go c.streamPush()
		default:
			fmt.Println("Unknown command or invalid args count.")
		}
	}
}

type client struct {
	baseURL  string
	playerID uuid.UUID
	http     *http.Client
}

func parseRoomID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		fmt.Println("Invalid room id:", s)
		return 0, false
	}
	return id, true
}

func (c *client) do(method, path string) (int, []byte, error) {
	req, err := http.NewRequest(method, c.baseURL+path, nil)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.playerID.String())

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	return resp.StatusCode, body, err
}

func (c *client) openRoom() {
	status, body, err := c.do(http.MethodPost, "/rooms")
	if err != nil || status != http.StatusOK {
		fmt.Printf("Failed to open room: %s, code: %d, err: %v\n", body, status, err)
		return
	}

	var resp struct {
		RoomID int64 `json:"room_id"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		fmt.Println("Unexpected response:", string(body))
		return
	}
	fmt.Printf("Opened room %d\n", resp.RoomID)
}

func (c *client) joinRoom(roomID int64) {
	status, body, err := c.do(http.MethodPost, fmt.Sprintf("/rooms/%d/join", roomID))
	if err != nil || status != http.StatusOK {
		fmt.Printf("Failed to join room: %s, code: %d, err: %v\n", body, status, err)
		return
	}
	fmt.Printf("Joined room %d\n", roomID)
}

func (c *client) showRoom(roomID int64) {
	status, body, err := c.do(http.MethodGet, fmt.Sprintf("/rooms/%d", roomID))
	if err != nil || status != http.StatusOK {
		fmt.Printf("Failed to get room: %s, code: %d, err: %v\n", body, status, err)
		return
	}
	fmt.Println(strings.TrimSpace(string(body)))
}

func (c *client) streamPush() {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		fmt.Println("Invalid base url:", err)
		return
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/ws"
	u.RawQuery = url.Values{"token": {c.playerID.String()}}.Encode()

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		fmt.Println("Failed to connect push channel:", err)
		return
	}
	defer conn.Close()

	fmt.Println("Streaming events")
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			break
		}
		fmt.Printf("PUSH: %s\n", msg)
	}
	fmt.Println("Stream ended")
}
