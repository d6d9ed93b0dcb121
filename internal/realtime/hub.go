// Package realtime quản lý kênh realtime qua WebSocket: client join room theo
// loại tài khoản (user_<id>, franchise_<id>, admin) và nhận event notification,
// booking_updated khi booking thay đổi trạng thái.
package realtime

import (
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Rohitsengar02/fixxev-api/internal/logger"
)

// RoomAdmin là room chung cho tất cả admin client
const RoomAdmin = "admin"

// UserRoom trả về tên room của một user
func UserRoom(userID string) string {
	return "user_" + userID
}

// FranchiseRoom trả về tên room của một franchise
func FranchiseRoom(franchiseID string) string {
	return "franchise_" + franchiseID
}

// Event là message đẩy xuống client qua WebSocket
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub quản lý các client đang kết nối và room membership.
// Toàn bộ thao tác trên rooms được bảo vệ bằng mutex, Publish không block
// theo client chậm (ghi qua buffered channel của từng client, đầy thì drop).
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]bool
}

// NewHub tạo mới một Hub
func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*Client]bool),
	}
}

// join thêm client vào room
func (h *Hub) join(room string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*Client]bool)
	}
	h.rooms[room][c] = true

	logger.GetAppLogger().WithFields(logrus.Fields{
		"room": room,
	}).Debug("Realtime: client joined room")
}

// leave gỡ client khỏi tất cả room nó đã join
func (h *Hub) leave(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for room, clients := range h.rooms {
		if clients[c] {
			delete(clients, c)
			if len(clients) == 0 {
				delete(h.rooms, room)
			}
		}
	}
}

// Publish gửi một event tới tất cả client trong room.
// Không bao giờ block: client có buffer đầy sẽ bị drop message (và log warn).
func (h *Hub) Publish(room string, event string, data interface{}) {
	payload, err := json.Marshal(Event{Event: event, Data: data})
	if err != nil {
		logger.GetErrorLogger().WithFields(logrus.Fields{
			"room":  room,
			"event": event,
			"error": err.Error(),
		}).Error("Realtime: lỗi marshal event")
		return
	}

	h.mu.RLock()
	clients := make([]*Client, 0, len(h.rooms[room]))
	for c := range h.rooms[room] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		select {
		case c.send <- payload:
		default:
			logger.GetAppLogger().WithFields(logrus.Fields{
				"room":  room,
				"event": event,
			}).Warn("Realtime: buffer client đầy, drop message")
		}
	}
}

// RoomSize trả về số client đang trong room (phục vụ test và debug)
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}
