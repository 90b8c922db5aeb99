package models

import "time"

// Review is a user's rating of a service. One review per (user, service).
type Review struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	ServiceID string    `bson:"serviceId" json:"serviceId"`
	Rating    int       `bson:"rating" json:"rating"` // 1..5
	Comment   string    `bson:"comment" json:"comment"`
	UserName  string    `bson:"userName,omitempty" json:"userName,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
