package domain

import "time"

// User represents a publicly visible account, as much of it as search needs.
type User struct {
	ID          string
	Handle      string
	DisplayName string
	AvatarURL   string
	Bio         string
	Followers   int
	Tastes      []string
	CreatedAt   time.Time
}
