package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WaitlistEntry stores one collected email
// Collection: waitlist
type WaitlistEntry struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Source   string             `bson:"source" json:"source"`
	ClientIP string             `bson:"client_ip,omitempty" json:"client_ip,omitempty"`
	JoinedAt time.Time          `bson:"joined_at" json:"joined_at"`
}
