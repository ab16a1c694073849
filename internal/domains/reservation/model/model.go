package model

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"tiara/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID               = "id"
	FieldName             = "name"
	FieldEmail            = "email"
	FieldPhone            = "phone"
	FieldDate             = "date"
	FieldTimeSlot         = "time_slot"
	FieldGuests           = "guests"
	FieldRequests         = "requests"
	FieldStatus           = "status"
	FieldTotalAmount      = "total_amount"
	FieldPaymentReference = "payment_reference"
	FieldPaymentID        = "payment_id"
	FieldPaidAt           = "paid_at"
	FieldThankYouSent     = "thank_you_sent"
)

type Status string

const (
	StatusPendingPayment Status = "pending_payment"
	StatusConfirmed      Status = "confirmed"
	StatusSeated         Status = "seated"
	StatusCompleted      Status = "completed"
	StatusCancelled      Status = "cancelled"
)

// transitions is the closed lifecycle graph. Completed and cancelled are
// terminal.
var transitions = map[Status][]Status{
	StatusPendingPayment: {StatusConfirmed, StatusCancelled},
	StatusConfirmed:      {StatusSeated, StatusCancelled},
	StatusSeated:         {StatusCompleted, StatusCancelled},
	StatusCompleted:      {},
	StatusCancelled:      {},
}

func ParseStatus(value string) (Status, bool) {
	status := Status(value)

	_, known := transitions[status]

	return status, known
}

func (s Status) Valid() bool {
	_, known := transitions[s]

	return known
}

func (s Status) Terminal() bool {
	return len(transitions[s]) == 0 && s.Valid()
}

func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}

// TimeSlots is the fixed set of bookable dinner seatings.
var TimeSlots = []string{"17:00", "18:00", "19:00", "20:00", "21:00", "22:00"}

func ValidTimeSlot(slot string) bool {
	return slices.Contains(TimeSlots, slot)
}

// NewPaymentReference builds a unique checkout reference in the
// EET-<unix-ms>-<suffix> shape the payment gateway dashboard groups by.
func NewPaymentReference() string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]

	return fmt.Sprintf("EET-%d-%s", time.Now().UnixMilli(), suffix)
}

type Reservation struct {
	ID               string     `db:"id"`
	Name             string     `db:"name"`
	Email            string     `db:"email"`
	Phone            string     `db:"phone"`
	Date             time.Time  `db:"date"`
	TimeSlot         string     `db:"time_slot"`
	Guests           int        `db:"guests"`
	Requests         string     `db:"requests"`
	Status           Status     `db:"status"`
	TotalAmount      int64      `db:"total_amount"`
	PaymentReference string     `db:"payment_reference"`
	PaymentID        *string    `db:"payment_id"`
	PaidAt           *time.Time `db:"paid_at"`
	ThankYouSent     bool       `db:"thank_you_sent"`
	model.Metadata
}
