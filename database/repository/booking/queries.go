package bookingRepo

import (
	"fmt"
	"time"

	"hotelms/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// FindOverlapping returns active (confirmed/pending) bookings for the
// service whose half-open [checkIn, checkOut) interval overlaps the
// requested one: existing.checkIn < requested.checkOut AND
// existing.checkOut > requested.checkIn.
func (r *MongoBookingRepo) FindOverlapping(serviceID string, checkIn, checkOut time.Time, excludeID string) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"serviceId":    serviceID,
		"status":       bson.M{"$in": []string{models.BookingStatusConfirmed, models.BookingStatusPending}},
		"checkInDate":  bson.M{"$lt": checkOut},
		"checkOutDate": bson.M{"$gt": checkIn},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode overlapping bookings: %w", err)
	}
	return bookings, nil
}

// ListAllDetailed returns all bookings joined with user and service
// summaries, newest first.
func (r *MongoBookingRepo) ListAllDetailed() ([]models.BookingDetail, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "userId",
			"foreignField": "id",
			"as":           "user",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "services",
			"localField":   "serviceId",
			"foreignField": "id",
			"as":           "service",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$user", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$unwind", Value: bson.M{"path": "$service", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$project", Value: bson.M{
			"user.passwordHash":  0,
			"user.notifications": 0,
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate detailed bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var details []models.BookingDetail
	if err := cursor.All(ctx, &details); err != nil {
		return nil, fmt.Errorf("failed to decode detailed bookings: %w", err)
	}
	return details, nil
}

// RevenueStats aggregates confirmed bookings: total revenue, count and
// average price. Returns zeros when no confirmed bookings exist.
func (r *MongoBookingRepo) RevenueStats() (*models.RevenueStats, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": models.BookingStatusConfirmed}}},
		{{Key: "$group", Value: bson.M{
			"_id":           nil,
			"totalRevenue":  bson.M{"$sum": "$totalPrice"},
			"totalBookings": bson.M{"$sum": 1},
			"avgPrice":      bson.M{"$avg": "$totalPrice"},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("revenue aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.RevenueStats
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error decoding revenue aggregation result: %w", err)
	}
	if len(results) == 0 {
		return &models.RevenueStats{}, nil
	}
	return &results[0], nil
}
