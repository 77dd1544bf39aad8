package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LikeEntry is one like inside a target's likes sub-collection. A
// (user, target) pair appears at most once; membership is a boolean,
// not a counter.
type LikeEntry struct {
	UserID  primitive.ObjectID `json:"user" bson:"user"`
	LikedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// CommentEntry is one comment inside a target's comments sub-collection.
// The sequence is append-only: entries are never removed or mutated once
// written, and storage order is insertion order.
type CommentEntry struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	UserID    primitive.ObjectID `json:"user" bson:"user"`
	Content   string             `json:"content" bson:"content"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
