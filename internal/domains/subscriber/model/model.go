package model

import (
	"tiara/shared/model"
)

const (
	TableName  = "subscribers"
	EntityName = "subscriber"

	FieldID    = "id"
	FieldEmail = "email"
)

type Subscriber struct {
	ID    string `db:"id"`
	Email string `db:"email"`
	model.Metadata
}
