package entity

import (
	"time"
)

// Project is a portfolio showcase entry. Write access is admin-only.
type Project struct {
	ID           string       `bson:"_id,omitempty" json:"id"`
	Title        string       `bson:"title" json:"title"`
	Description  string       `bson:"description" json:"description"`
	TechStack    []string     `bson:"tech_stack" json:"techStack"`
	PrototypeURL string       `bson:"prototype_url,omitempty" json:"prototypeUrl,omitempty"`
	Image        string       `bson:"image,omitempty" json:"image,omitempty"`
	Featured     bool         `bson:"featured" json:"featured"`
	CreatorID    string       `bson:"creator_id" json:"creatorId"`
	Creator      *UserSummary `bson:"creator,omitempty" json:"creator,omitempty"`
	CreatedAt    time.Time    `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time    `bson:"updated_at" json:"updatedAt"`
}
