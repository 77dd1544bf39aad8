package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Content length bounds enforced before persistence. Violating input is
// rejected, never truncated.
const (
	MaxPostContentLength    = 1000
	MaxCommentContentLength = 500
)

// Post represents a social media post stored in MongoDB. Likes and
// Comments are embedded sub-collections keyed by user id; the like count
// is always derived as len(Likes), no counter field is maintained.
type Post struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	AuthorID  primitive.ObjectID `json:"author" bson:"author"`
	Content   string             `json:"content" bson:"content"`
	Image     string             `json:"image,omitempty" bson:"image,omitempty"`
	Likes     []LikeEntry        `json:"likes" bson:"likes"`
	Comments  []CommentEntry     `json:"comments" bson:"comments"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
	Image   string `json:"image,omitempty" validate:"omitempty,max=2048"`
}

// CreateCommentRequest defines the request body for commenting on a post
// or a user profile
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,max=500"`
}
