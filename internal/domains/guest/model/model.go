package model

import (
	"time"

	"tiara/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldEmail      = "email"
	FieldName       = "name"
	FieldPhone      = "phone"
	FieldVisits     = "visits"
	FieldNotes      = "notes"
	FieldFirstVisit = "first_visit"
	FieldLastBooked = "last_booked"
	FieldLastVisit  = "last_visit"
)

// VIPVisitThreshold is the number of completed visits a guest must exceed
// before they are surfaced as a VIP.
const VIPVisitThreshold = 3

type Guest struct {
	Email      string     `db:"email"`
	Name       string     `db:"name"`
	Phone      string     `db:"phone"`
	Visits     int        `db:"visits"`
	Notes      string     `db:"notes"`
	FirstVisit time.Time  `db:"first_visit"`
	LastBooked *time.Time `db:"last_booked"`
	LastVisit  *time.Time `db:"last_visit"`
	model.Metadata
}

func (g Guest) VIP() bool {
	return g.Visits > VIPVisitThreshold
}
