package booking

import (
	"context"
	"encoding/json"
	"fmt"

	"hotelms/models"
	"hotelms/utils"

	"go.uber.org/zap"
)

// GetRevenueStats aggregates confirmed bookings. The aggregate is cached
// in Redis for a short TTL since it scans the whole collection.
func (e *DefaultBookingEngine) GetRevenueStats(ctx context.Context) (*models.RevenueStats, error) {
	logger := utils.GetLogger()

	if e.Cache != nil {
		cached, err := e.Cache.Get(ctx, utils.RevenueStatsCacheKey).Result()
		if err == nil {
			var stats models.RevenueStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
			logger.Warn("Discarding malformed cached revenue stats", zap.Error(err))
		}
	}

	stats, err := e.BookingRepo.RevenueStats()
	if err != nil {
		return nil, NewInternal(fmt.Sprintf("failed to aggregate revenue: %v", err))
	}

	if e.Cache != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := e.Cache.Set(ctx, utils.RevenueStatsCacheKey, data, utils.RevenueStatsCacheTTL).Err(); err != nil {
				logger.Warn("Failed to cache revenue stats", zap.Error(err))
			}
		}
	}

	return stats, nil
}
