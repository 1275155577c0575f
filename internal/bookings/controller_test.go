package bookings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"glambook/internal/shared/constants"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryCache mirrors the cache-aside semantics of pkg/cache without Redis:
// hit unmarshals the stored blob, miss runs the fetcher and stores the result.
type memoryCache struct {
	entries map[string][]byte
	ttls    map[string]time.Duration
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		entries: make(map[string][]byte),
		ttls:    make(map[string]time.Duration),
	}
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, ok := m.entries[key]
	if !ok {
		return fmt.Errorf("cache miss")
	}
	return json.Unmarshal(data, dest)
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = data
	m.ttls[key] = ttl
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, key string) error {
	delete(m.entries, key)
	return nil
}

func (m *memoryCache) DeletePattern(ctx context.Context, pattern string) error {
	return nil
}

func (m *memoryCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
	if data, ok := m.entries[key]; ok {
		return json.Unmarshal(data, dest)
	}
	value, err := fetcher()
	if err != nil {
		return fmt.Errorf("fetcher error: %w", err)
	}
	if err := m.Set(ctx, key, value, ttl); err != nil {
		return err
	}
	return json.Unmarshal(m.entries[key], dest)
}

// stubService counts read calls so cache hits are observable.
type stubService struct {
	booking *Booking
	stats   *DashboardStats

	getCalls   int
	statsCalls int
}

func (s *stubService) SubmitQuote(ctx context.Context, req *SubmitQuoteRequest) (*Booking, error) {
	return nil, nil
}

func (s *stubService) GetBooking(ctx context.Context, id string) (*Booking, error) {
	s.getCalls++
	if s.booking == nil || s.booking.ID != id {
		return nil, ErrBookingNotFound
	}
	return s.booking, nil
}

func (s *stubService) ListBookings(ctx context.Context, query BookingListQuery) (*BookingListResponse, error) {
	return &BookingListResponse{}, nil
}

func (s *stubService) UpdateStatus(ctx context.Context, id string, target Status) (*Booking, error) {
	return nil, nil
}

func (s *stubService) DeleteBooking(ctx context.Context, id string) error { return nil }

func (s *stubService) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	s.statsCalls++
	return s.stats, nil
}

func getRequest(t *testing.T, controller *Controller, handler func(*gin.Context), bookingID string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if bookingID != "" {
		c.Params = gin.Params{{Key: "id", Value: bookingID}}
	}
	handler(c)
	return w
}

func TestGetQuoteCachesUnderDetailKey(t *testing.T) {
	mc := newMemoryCache()
	svc := &stubService{booking: &Booking{ID: "123456", ClientName: "Priya Sharma", Status: StatusQuoted.String()}}
	controller := NewController(svc, mc)

	w := getRequest(t, controller, controller.GetQuote, "123456")
	require.Equal(t, http.StatusOK, w.Code)

	key := constants.BuildBookingDetailKey("123456")
	assert.Contains(t, mc.entries, key)
	assert.Equal(t, constants.TTL_BOOKING_DETAIL, mc.ttls[key])

	// Second read is served from cache.
	w = getRequest(t, controller, controller.GetQuote, "123456")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.getCalls)
}

func TestGetQuoteNotFoundThroughCache(t *testing.T) {
	controller := NewController(&stubService{}, newMemoryCache())

	w := getRequest(t, controller, controller.GetQuote, "000000")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDashboardCachesWithDashboardTTL(t *testing.T) {
	mc := newMemoryCache()
	svc := &stubService{stats: &DashboardStats{TotalBookings: 12, Confirmed: 4}}
	controller := NewController(svc, mc)

	w := getRequest(t, controller, controller.Dashboard, "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Contains(t, mc.entries, constants.CACHE_KEY_DASHBOARD_STATS)
	assert.Equal(t, constants.TTL_DASHBOARD_STATS, mc.ttls[constants.CACHE_KEY_DASHBOARD_STATS])

	w = getRequest(t, controller, controller.Dashboard, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.statsCalls)
}

func TestGetQuoteWithoutCacheFallsThrough(t *testing.T) {
	svc := &stubService{booking: &Booking{ID: "123456", Status: StatusQuoted.String()}}
	controller := NewController(svc, nil)

	w := getRequest(t, controller, controller.GetQuote, "123456")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.getCalls)
}
