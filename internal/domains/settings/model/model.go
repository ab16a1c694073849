package model

import (
	"time"

	"tiara/shared/model"
)

const (
	BlockedDateTableName  = "blocked_dates"
	BlockedDateEntityName = "blocked_date"

	FieldDate = "date"
)

const (
	SiteAlertTableName  = "site_alert"
	SiteAlertEntityName = "site_alert"

	FieldAlertID = "id"
	FieldVisible = "visible"
	FieldMessage = "message"

	// SiteAlertSingletonID pins the alert table to a single row.
	SiteAlertSingletonID = int16(1)
)

type BlockedDate struct {
	Date time.Time `db:"date"`
	model.Metadata
}

type SiteAlert struct {
	ID      int16  `db:"id"`
	Visible bool   `db:"visible"`
	Message string `db:"message"`
	model.Metadata
}
