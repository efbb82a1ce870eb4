package models

import "time"

// MarkerModel records a single like or dislike cast by one user on one
// resource. The _id is "{resourceID}-{userID}" so the unique key doubles as
// the double-cast guard.
type MarkerModel struct {
	ID         string    `json:"id"          bson:"_id"`
	ResourceID string    `json:"resource_id" bson:"resourceId"`
	UserID     string    `json:"user_id"     bson:"userId"`
	CreatedAt  time.Time `json:"created"     bson:"createdAt"`
}

// MarkerID builds the composite marker key.
func MarkerID(resourceID, userID string) string {
	return resourceID + "-" + userID
}

// Marker collections, one per (resource kind, vote kind) pair.
const (
	CollProjectLikes    = "likes"
	CollProjectDislikes = "dislikes"
	CollCommentLikes    = "commentLikes"
	CollCommentDislikes = "commentDislikes"
)
