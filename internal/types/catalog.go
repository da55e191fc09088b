package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category groups programs in the catalog
type Category struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
}

// Instructor teaches one or more programs
type Instructor struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
}

// Program is a short course offered by the university
type Program struct {
	ID            uuid.UUID       `json:"id"`
	Slug          string          `json:"slug"`
	Title         string          `json:"title"`
	Summary       string          `json:"summary,omitempty"`
	Description   string          `json:"description,omitempty"`
	CategoryID    uuid.UUID       `json:"category_id"`
	Price         decimal.Decimal `json:"price"`
	Currency      string          `json:"currency"`
	DurationHours int32           `json:"duration_hours,omitempty"`
	Instructor    *Instructor     `json:"instructor,omitempty"`
}

// Cohort is a scheduled run of a program with a fixed seat count.
// EnrolledCount is maintained by the platform backend and is read here
// as a snapshot only.
type Cohort struct {
	ID                    uuid.UUID  `json:"id"`
	ProgramID             uuid.UUID  `json:"program_id"`
	Name                  string     `json:"name"`
	Capacity              int32      `json:"capacity"`
	EnrolledCount         int32      `json:"enrolled_count"`
	RegistrationStartDate *time.Time `json:"registration_start_date,omitempty"`
	RegistrationEndDate   *time.Time `json:"registration_end_date,omitempty"`
	StartDate             time.Time  `json:"start_date"`
	EndDate               time.Time  `json:"end_date"`
	Status                string     `json:"status"`
}

// ClassSession is a single scheduled meeting within a cohort
type ClassSession struct {
	ID       uuid.UUID `json:"id"`
	CohortID uuid.UUID `json:"cohort_id"`
	Title    string    `json:"title"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
	Location string    `json:"location,omitempty"`
}
