package entity

import (
	"time"
)

// ContactMessage is a guest-submitted inquiry. Created unauthenticated,
// managed only from the admin dashboard.
type ContactMessage struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	Message     string    `bson:"message" json:"message"`
	IsResponded bool      `bson:"is_responded" json:"isResponded"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}
