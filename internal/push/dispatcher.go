package push

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Rohitsengar02/fixxev-api/internal/logger"
)

const sendTimeout = 10 * time.Second

// Dispatcher là hàng đợi push bất đồng bộ: Enqueue không bao giờ block,
// worker gửi ở background, lỗi chỉ log. Queue đầy thì message bị drop (kèm log warn).
type Dispatcher struct {
	sender  Sender
	queue   chan Message
	workers int

	wg       sync.WaitGroup
	stopOnce sync.Once
	stop     chan struct{}
}

// NewDispatcher tạo dispatcher với queue buffer và số worker cho trước
func NewDispatcher(sender Sender, queueSize int, workers int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 1024
	}
	if workers <= 0 {
		workers = 4
	}
	return &Dispatcher{
		sender:  sender,
		queue:   make(chan Message, queueSize),
		workers: workers,
		stop:    make(chan struct{}),
	}
}

// Start chạy các worker gửi push ở background
func (d *Dispatcher) Start() {
	log := logger.GetAppLogger()
	log.WithFields(logrus.Fields{
		"workers":   d.workers,
		"queueSize": cap(d.queue),
	}).Info("Push dispatcher: starting workers")

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
}

// Enqueue đưa message vào hàng đợi, không block.
// Message không có token bị bỏ qua luôn. Queue đầy thì drop và log warn.
func (d *Dispatcher) Enqueue(msg Message) {
	if msg.Token == "" {
		return
	}

	select {
	case d.queue <- msg:
	default:
		logger.GetAppLogger().WithFields(logrus.Fields{
			"title": msg.Title,
		}).Warn("Push dispatcher: queue đầy, drop message")
	}
}

// Stop dừng các worker, đợi tối đa cho tới khi worker thoát
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.stop)
	})
	d.wg.Wait()
}

// worker đọc message từ queue và gửi, recover mọi panic để không chết worker
func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for {
		select {
		case <-d.stop:
			return
		case msg := <-d.queue:
			d.deliver(msg)
		}
	}
}

// deliver gửi một message với timeout, lỗi chỉ log và bỏ qua
func (d *Dispatcher) deliver(msg Message) {
	defer func() {
		if r := recover(); r != nil {
			logger.GetErrorLogger().WithFields(logrus.Fields{
				"panic": r,
			}).Error("Push dispatcher: panic khi gửi push")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	if err := d.sender.Send(ctx, msg); err != nil {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"title": msg.Title,
			"error": err.Error(),
		}).Warn("Push dispatcher: gửi push thất bại, bỏ qua")
		return
	}

	logger.GetAppLogger().WithFields(logrus.Fields{
		"title": msg.Title,
	}).Debug("Push dispatcher: đã gửi push")
}
