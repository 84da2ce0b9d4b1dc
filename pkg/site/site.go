package site

import (
	"time"
)

type SiteStatus string

const (
	SiteStatusActive    SiteStatus = "active"
	SiteStatusOnHold    SiteStatus = "on-hold"
	SiteStatusCompleted SiteStatus = "completed"
)

// Site is a construction project site. Every expense record references
// exactly one site.
type Site struct {
	ID          string
	Name        string
	Location    string
	Status      SiteStatus
	StartDate   time.Time
	EndDate     time.Time
	Description string
}
