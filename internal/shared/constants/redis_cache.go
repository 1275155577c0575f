package constants

import (
	"fmt"
	"time"
)

// Redis Cache Configuration
// This file centralizes all Redis cache keys and TTL values for the GlamBook application
// Pattern: glambook:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

// Static Data (Long TTL: rarely changes)
const (
	TTL_STATIC_LONG   = 24 * time.Hour // 24 hours - for very stable data
	TTL_STATIC_MEDIUM = 12 * time.Hour // 12 hours - for the service catalog
)

// Dynamic Data (Short TTL: changes frequently)
const (
	TTL_DYNAMIC_MEDIUM = 10 * time.Minute // 10 minutes - for booking listings
	TTL_DYNAMIC_SHORT  = 5 * time.Minute  // 5 minutes - for dashboard stats
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "glambook"
)

// ================== CATALOG MODULE ==================

const (
	CACHE_KEY_CATALOG = CACHE_PREFIX + ":catalog:v1" // full service/price reference data
)

const (
	TTL_CATALOG = TTL_STATIC_MEDIUM // 12 hours
)

// ================== BOOKINGS MODULE ==================

const (
	CACHE_KEY_BOOKINGS_LIST   = CACHE_PREFIX + ":bookings:list"        // + :page:X:limit:Y:status:Z
	CACHE_KEY_BOOKING_DETAIL  = CACHE_PREFIX + ":bookings:detail:ref:" // + booking-ref
	CACHE_KEY_DASHBOARD_STATS = CACHE_PREFIX + ":bookings:dashboard:stats"
)

const (
	TTL_BOOKINGS_LIST   = TTL_DYNAMIC_MEDIUM // 10 minutes
	TTL_BOOKING_DETAIL  = TTL_DYNAMIC_MEDIUM // 10 minutes
	TTL_DASHBOARD_STATS = TTL_DYNAMIC_SHORT  // 5 minutes
)

// ================== KEY BUILDERS ==================

// BuildBookingsListKey builds the cache key for a paginated bookings listing
func BuildBookingsListKey(page, limit int, status string) string {
	if status == "" {
		status = "all"
	}
	return fmt.Sprintf("%s:page:%d:limit:%d:status:%s", CACHE_KEY_BOOKINGS_LIST, page, limit, status)
}

// BuildBookingDetailKey builds the cache key for one booking
func BuildBookingDetailKey(ref string) string {
	return CACHE_KEY_BOOKING_DETAIL + ref
}

// BookingsPattern matches every bookings cache entry, used for invalidation on writes
func BookingsPattern() string {
	return CACHE_PREFIX + ":bookings:*"
}
