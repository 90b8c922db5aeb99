package utils

import "time"

// RevenueStatsCacheKey is the Redis key holding the cached revenue aggregate.
const RevenueStatsCacheKey = "stats:revenue"

// RevenueStatsCacheTTL is the time-to-live for the cached revenue aggregate.
const RevenueStatsCacheTTL = 30 * time.Second
