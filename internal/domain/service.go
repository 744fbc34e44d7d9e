package domain

import "time"

// ServiceType distinguishes first-time treatments from touch-ups
type ServiceType string

const (
	ServiceTypeFirstTime ServiceType = "首次"
	ServiceTypeTouchup   ServiceType = "補色"
)

// Service represents an entry of the studio's service catalog.
// Category and TimeRange are free text maintained by the studio through the
// back office; the touch-up engine matches them by containment, not by key.
type Service struct {
	ID              int64
	Name            string
	Price           int64
	Category        string // treatment category, e.g. "霧眉", "霧唇"
	Type            ServiceType
	Session         *string // touch-up session label, e.g. "第一次回補"
	TimeRange       *string // elapsed-time bracket label, e.g. "3個月內"; touch-ups only
	IsDarkLip       bool
	SortOrder       int
	Active          bool
	DurationMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTouchup returns true for touch-up catalog entries
func (s *Service) IsTouchup() bool {
	return s.Type == ServiceTypeTouchup
}

// Discount represents a flat-amount discount configured by the studio
type Discount struct {
	ID     int64
	Name   string
	Amount int64
	Active bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Template represents a reusable message template for customer communication.
// Templates are stored and served verbatim; rendering happens on the client.
type Template struct {
	ID      int64
	Title   string
	Content string

	CreatedAt time.Time
	UpdatedAt time.Time
}
