package models

import (
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// Account holds the credentials side of an identity in PostgreSQL. The
// displayable profile lives in MongoDB as a User document; ProfileID
// links the two.
type Account struct {
	gorm.Model  `json:"-"`
	ID          uint   `json:"id" gorm:"primaryKey"`
	Email       string `json:"email" gorm:"uniqueIndex"` // Ensure email is unique across all accounts
	Password    string `json:"-"`                        // Store hashed password, ignore for JSON serialization
	FirebaseUID string `json:"firebase_uid,omitempty" gorm:"index"`
	ProfileID   string `json:"profile_id" gorm:"uniqueIndex"` // Hex of the MongoDB user document id
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID string `json:"user_id"` // Hex of the caller's MongoDB user document id
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
