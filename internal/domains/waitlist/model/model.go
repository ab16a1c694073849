package model

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"tiara/shared/model"
)

const (
	TableName  = "waitlist"
	EntityName = "waitlist_entry"

	FieldID    = "id"
	FieldName  = "name"
	FieldEmail = "email"
	FieldPhone = "phone"
	FieldDate  = "date"
)

type Entry struct {
	ID    string    `db:"id"`
	Name  string    `db:"name"`
	Email string    `db:"email"`
	Phone string    `db:"phone"`
	Date  time.Time `db:"date"`
	model.Metadata
}

// NormalizePhone strips everything but digits and rewrites local 11-digit
// numbers (leading 0) to the international 234 form wa.me expects.
func NormalizePhone(phone string) string {
	var digits strings.Builder

	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	normalized := digits.String()
	if len(normalized) == 11 && strings.HasPrefix(normalized, "0") {
		return "234" + normalized[1:]
	}

	return normalized
}

// WhatsAppLink builds the wa.me deep-link used to notify a waitlisted guest
// that a table has opened up.
func WhatsAppLink(name, phone, date string) string {
	greeting := fmt.Sprintf("Hello %s, good news from Epicurean Escape! A table has opened up for %s. Are you still interested?", name, date)

	return fmt.Sprintf("https://wa.me/%s?text=%s", NormalizePhone(phone), url.QueryEscape(greeting))
}
