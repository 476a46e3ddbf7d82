package model

import (
	"time"
)

// Goal is a discipline a user has committed to. UserID is immutable after
// creation. CompletedAt is non-nil exactly when IsCompleted is true; both are
// a read-optimized projection of the completion ledger's latest fact.
//
// The JSON field for Pillar is "category" to match the wire format the
// dashboard client already speaks.
type Goal struct {
	ID          string     `json:"id" db:"id"`
	UserID      string     `json:"-" db:"user_id"`
	TemplateID  *string    `json:"templateId,omitempty" db:"template_id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Pillar      Pillar     `json:"category" db:"pillar"`
	Horizon     Horizon    `json:"horizon" db:"horizon"`
	IsCompleted bool       `json:"isCompleted" db:"is_completed"`
	CompletedAt *time.Time `json:"completedAt" db:"completed_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}
