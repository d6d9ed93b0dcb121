package realtime

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/Rohitsengar02/fixxev-api/internal/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
	sendBufferSize = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Client là mobile app, không kiểm tra origin
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Client là một kết nối WebSocket đang hoạt động
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// joinMessage là message đầu tiên client gửi lên để join room
type joinMessage struct {
	Type string `json:"type"` // user | franchise | admin
	ID   string `json:"id"`
}

// ServeWS upgrade HTTP request lên WebSocket và chạy vòng đời client.
// Client phải gửi join message đầu tiên dạng {"type":"user","id":"<uid>"}.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.GetErrorLogger().WithError(err).Error("Realtime: lỗi upgrade WebSocket")
		return
	}

	client := &Client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}

	go client.writePump()
	go client.readPump()
}

// readPump đọc message từ client. Message đầu tiên phải là join message,
// các message sau bị bỏ qua (kênh chỉ đẩy một chiều server → client).
func (c *Client) readPump() {
	defer func() {
		c.hub.leave(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	joined := false
	for {
		var join joinMessage
		if err := c.conn.ReadJSON(&join); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.GetAppLogger().WithError(err).Debug("Realtime: client ngắt kết nối bất thường")
			}
			return
		}

		if joined {
			continue
		}

		switch join.Type {
		case "user":
			if join.ID != "" {
				c.hub.join(UserRoom(join.ID), c)
				joined = true
			}
		case "franchise":
			if join.ID != "" {
				c.hub.join(FranchiseRoom(join.ID), c)
				joined = true
			}
		case "admin":
			c.hub.join(RoomAdmin, c)
			joined = true
		default:
			logger.GetAppLogger().WithFields(logrus.Fields{
				"type": join.Type,
			}).Warn("Realtime: join message với type không hợp lệ")
		}
	}
}

// writePump ghi message từ channel send xuống kết nối, kèm ping định kỳ
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
