package models

import (
	"time"
)

// User is the identity handed out by the identity provider.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Session struct {
	User       User      `json:"user"`
	SignedInAt time.Time `json:"signed_in_at"`
}
