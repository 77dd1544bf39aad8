package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a member profile stored in MongoDB. The Likes and
// Comments sub-collections hold reactions left on this profile by other
// users; they are mutated only through the interaction service, never
// written directly by handlers.
type User struct {
	ID             primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name           string               `json:"name" bson:"name"`
	Email          string               `json:"email" bson:"email"`
	Bio            string               `json:"bio,omitempty" bson:"bio,omitempty"`
	Location       string               `json:"location,omitempty" bson:"location,omitempty"`
	Website        string               `json:"website,omitempty" bson:"website,omitempty"`
	ProfilePicture string               `json:"profilePicture,omitempty" bson:"profilePicture,omitempty"`
	Posts          []primitive.ObjectID `json:"posts" bson:"posts"`
	Likes          []LikeEntry          `json:"likes" bson:"likes"`
	Comments       []CommentEntry       `json:"comments" bson:"comments"`
	CreatedAt      time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// UserSummary is the display-safe subset of User fields embedded in
// expanded responses. Persisted records store only ids.
type UserSummary struct {
	ID             primitive.ObjectID `json:"id"`
	Name           string             `json:"name"`
	Email          string             `json:"email,omitempty"`
	ProfilePicture string             `json:"profilePicture,omitempty"`
}

// Summary converts a User to its display-safe summary.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
	}
}

// RegisterRequest defines the request body for account registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest defines the request body for local authentication
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// FirebaseLoginRequest defines the request body for Firebase token exchange
type FirebaseLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// UpdateProfileRequest defines the request body for updating the caller's profile
type UpdateProfileRequest struct {
	Name           string `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
	Bio            string `json:"bio,omitempty" validate:"omitempty,max=500"`
	Location       string `json:"location,omitempty" validate:"omitempty,max=100"`
	Website        string `json:"website,omitempty" validate:"omitempty,url"`
	ProfilePicture string `json:"profilePicture,omitempty" validate:"omitempty,url"`
}
