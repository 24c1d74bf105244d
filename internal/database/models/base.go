package models

import (
	"time"
)

// Timestamps provides the created/updated bookkeeping columns shared by all models
type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
