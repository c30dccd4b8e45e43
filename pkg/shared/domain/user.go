package domain

import "errors"

// ErrUserNotFound returned by user directory when no account matches
var ErrUserNotFound = errors.New("user not found")

// User model, email is unique case-insensitive
type User struct {
	ID    string `json:"id" bson:"_id"`
	Email string `json:"email" bson:"email"`
	Name  string `json:"name" bson:"name"`
}
