package push

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeSender đếm số lần Send được gọi, trả về lỗi cấu hình sẵn
type fakeSender struct {
	calls int64
	err   error
}

func (s *fakeSender) Send(ctx context.Context, msg Message) error {
	atomic.AddInt64(&s.calls, 1)
	return s.err
}

func waitForCalls(t *testing.T, sender *fakeSender, want int64) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if atomic.LoadInt64(&sender.calls) >= want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("sender chỉ nhận %d/%d message", atomic.LoadInt64(&sender.calls), want)
}

func TestDispatcher_DeliversAllMessages(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(sender, 16, 2)
	d.Start()

	for i := 0; i < 5; i++ {
		d.Enqueue(Message{Token: "token", Title: "Booking Confirmed"})
	}

	waitForCalls(t, sender, 5)
	d.Stop()
}

func TestDispatcher_SenderFailureIsSwallowed(t *testing.T) {
	sender := &fakeSender{err: errors.New("fcm unavailable")}
	d := NewDispatcher(sender, 16, 2)
	d.Start()

	// Lỗi gửi không được lan ra ngoài, các message sau vẫn được xử lý
	for i := 0; i < 3; i++ {
		d.Enqueue(Message{Token: "token", Title: "New Booking Received"})
	}

	waitForCalls(t, sender, 3)
	d.Stop()
}

func TestDispatcher_EmptyTokenSkipped(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(sender, 16, 1)
	d.Start()

	d.Enqueue(Message{Token: "", Title: "no token"})
	d.Enqueue(Message{Token: "token", Title: "has token"})

	waitForCalls(t, sender, 1)
	d.Stop()
	assert.Equal(t, int64(1), atomic.LoadInt64(&sender.calls))
}

func TestDispatcher_FullQueueDropsInsteadOfBlocking(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(sender, 1, 1)
	// Không Start worker: queue sẽ đầy sau message đầu tiên

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			d.Enqueue(Message{Token: "token", Title: "burst"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Enqueue bị block khi queue đầy")
	}
}

func TestDispatcher_StopIdempotent(t *testing.T) {
	d := NewDispatcher(&fakeSender{}, 4, 1)
	d.Start()
	d.Stop()
	assert.NotPanics(t, func() { d.Stop() })
}
