package service

import "github.com/google/uuid"

// GenerateSessionID returns an opaque id for a new cart session.
func GenerateSessionID() string {
	return uuid.New().String()
}
