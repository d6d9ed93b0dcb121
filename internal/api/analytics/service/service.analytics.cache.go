// Package analyticssvc - cache snapshot số liệu quản trị trong memory.
// Snapshot được tính lại khi hết TTL hoặc khi có event thay đổi dữ liệu
// trên các collection nguồn (đăng ký qua events.OnDataChanged).
package analyticssvc

import (
	"context"
	"sync"
	"time"

	"github.com/Rohitsengar02/fixxev-api/internal/api/events"
	"github.com/Rohitsengar02/fixxev-api/internal/global"
)

// statsCacheTTL giới hạn tuổi snapshot kể cả khi không có event nào tới
const statsCacheTTL = 60 * time.Second

var statsCache = struct {
	sync.Mutex
	snapshot   *AdminStats
	computedAt time.Time
	dirty      bool
}{dirty: true}

func init() {
	events.OnDataChanged(handleAnalyticsDataChange)
}

// handleAnalyticsDataChange đánh dấu snapshot cần tính lại khi dữ liệu nguồn thay đổi
func handleAnalyticsDataChange(ctx context.Context, e events.DataChangeEvent) {
	switch e.CollectionName {
	case global.MongoDB_ColNames.Bookings,
		global.MongoDB_ColNames.Users,
		global.MongoDB_ColNames.Franchises,
		global.MongoDB_ColNames.Services:
		statsCache.Lock()
		statsCache.dirty = true
		statsCache.Unlock()
	}
}

// GetAdminStatsCached trả về snapshot từ cache, tính lại khi dirty hoặc hết TTL.
// Giữ lock trong lúc tính để các request tới cùng lúc không tính trùng.
func (s *AnalyticsService) GetAdminStatsCached(ctx context.Context) (*AdminStats, error) {
	statsCache.Lock()
	defer statsCache.Unlock()

	if statsCache.snapshot != nil && !statsCache.dirty &&
		time.Since(statsCache.computedAt) < statsCacheTTL {
		return statsCache.snapshot, nil
	}

	snapshot, err := s.GetAdminStats(ctx)
	if err != nil {
		return nil, err
	}
	statsCache.snapshot = snapshot
	statsCache.computedAt = time.Now()
	statsCache.dirty = false
	return snapshot, nil
}

// InvalidateStatsCache ép tính lại snapshot ở lần đọc kế tiếp
func InvalidateStatsCache() {
	statsCache.Lock()
	statsCache.dirty = true
	statsCache.Unlock()
}
