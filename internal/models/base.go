package models

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the fields shared by every stored document.
// ID is a UUID string used as the Mongo _id.
type Base struct {
	ID        string    `json:"id"      bson:"_id"`
	CreatedAt time.Time `json:"created" bson:"createdAt"`
	UpdatedAt time.Time `json:"updated" bson:"updatedAt"`
}

// NewBase returns a Base with a fresh ID and both timestamps set to now.
func NewBase() Base {
	now := time.Now()
	return Base{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now}
}

// AuthorRef is the denormalized author snapshot embedded in content documents.
type AuthorRef struct {
	UID    string `json:"uid"              bson:"uid"`
	Name   string `json:"name"             bson:"name"`
	Avatar string `json:"avatar,omitempty" bson:"avatar,omitempty"`
}

// Link is an external reference attached to a project.
type Link struct {
	Title string `json:"title" bson:"title"`
	URL   string `json:"url"   bson:"url"`
}
