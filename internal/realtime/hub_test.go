package realtime

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient() *Client {
	return &Client{send: make(chan []byte, sendBufferSize)}
}

func TestRoomNames(t *testing.T) {
	assert.Equal(t, "user_abc123", UserRoom("abc123"))
	assert.Equal(t, "franchise_f01", FranchiseRoom("f01"))
	assert.Equal(t, "admin", RoomAdmin)
}

func TestHub_JoinLeave(t *testing.T) {
	h := NewHub()
	c := newTestClient()

	h.join(UserRoom("u1"), c)
	assert.Equal(t, 1, h.RoomSize(UserRoom("u1")))

	h.leave(c)
	assert.Equal(t, 0, h.RoomSize(UserRoom("u1")), "room phải rỗng sau khi client leave")
}

func TestHub_PublishReachesAllClientsInRoom(t *testing.T) {
	h := NewHub()
	c1 := newTestClient()
	c2 := newTestClient()
	other := newTestClient()

	h.join(RoomAdmin, c1)
	h.join(RoomAdmin, c2)
	h.join(UserRoom("u1"), other)

	h.Publish(RoomAdmin, "notification", map[string]string{"title": "New Booking Received"})

	for _, c := range []*Client{c1, c2} {
		select {
		case payload := <-c.send:
			var ev Event
			require.NoError(t, json.Unmarshal(payload, &ev))
			assert.Equal(t, "notification", ev.Event)
		default:
			t.Fatal("client trong room không nhận được event")
		}
	}

	assert.Empty(t, other.send, "client ở room khác không được nhận event")
}

func TestHub_PublishEmptyRoomIsSafe(t *testing.T) {
	h := NewHub()
	assert.NotPanics(t, func() {
		h.Publish(UserRoom("nobody"), "booking_updated", map[string]string{"status": "confirmed"})
	})
}

func TestHub_PublishFullBufferDoesNotBlock(t *testing.T) {
	h := NewHub()
	c := &Client{send: make(chan []byte, 1)}
	h.join(UserRoom("u1"), c)

	// Message thứ hai trở đi bị drop, Publish vẫn trả về ngay
	for i := 0; i < 10; i++ {
		h.Publish(UserRoom("u1"), "notification", i)
	}
	assert.Len(t, c.send, 1)
}

func TestHub_LeaveRemovesFromEveryRoom(t *testing.T) {
	h := NewHub()
	c := newTestClient()

	h.join(RoomAdmin, c)
	h.join(FranchiseRoom("f01"), c)
	h.leave(c)

	assert.Equal(t, 0, h.RoomSize(RoomAdmin))
	assert.Equal(t, 0, h.RoomSize(FranchiseRoom("f01")))
}
