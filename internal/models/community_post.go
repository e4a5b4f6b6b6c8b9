package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommunityPost is the companion discussion post a broadcast alert can be
// cross-posted as, stored in MongoDB and linked back via AlertID.
type CommunityPost struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	AlertID   uint               `json:"alert_id" bson:"alert_id"`
	AuthorID  uint               `json:"author_id" bson:"author_id"`
	AlertType string             `json:"alert_type" bson:"alert_type"`
	Body      string             `json:"body" bson:"body"`
	PhotoURL  string             `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}
