package database

import (
	"time"
)

const (
	SubStatusActive   = "active"
	SubStatusInactive = "inactive"
)

type Category struct {
	ID        string // Database UUID
	Name      string
	UserID    string // Identity-provider user ID, unique together with Name
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Link struct {
	ID         string // Database UUID
	URL        string
	Title      string
	SiteName   string // Hostname of the submitted URL, display attribute
	UserID     string
	CategoryID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SubscriptionRecord mirrors a Stripe customer row synced by the billing
// worker. Read-only from this service.
type SubscriptionRecord struct {
	ID               string
	UserID           string
	Email            string
	StripeID         string
	CurrentSubStatus string // active, inactive
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
