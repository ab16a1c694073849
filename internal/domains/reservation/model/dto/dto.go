package dto

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"tiara/internal/domains/reservation/model"
	"tiara/shared"
	"tiara/shared/constant"
	gDto "tiara/shared/dto"
	gModel "tiara/shared/model"
	"tiara/shared/timezone"
)

// GuestCount tolerates both `"guests": 4` and `"guests": "4"`, which the
// public booking form has historically sent interchangeably.
type GuestCount int

func (g *GuestCount) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid party size: %w", err)
	}

	*g = GuestCount(value)

	return nil
}

type CreateReservationRequest struct {
	Name     string     `json:"name"     validate:"required,min=2,max=100"`
	Email    string     `json:"email"    validate:"required,email,max=100"`
	Phone    string     `json:"phone"    validate:"required,max=20"`
	Date     string     `json:"date"     validate:"required,datetime=2006-01-02"`
	Time     string     `json:"time"     validate:"required"`
	Guests   GuestCount `json:"guests"   validate:"required"`
	Requests string     `json:"requests" validate:"omitempty,max=1000"`
}

func (c *CreateReservationRequest) ToModel(totalAmount int64, user string) (model.Reservation, error) {
	date, err := time.Parse(constant.DateOnlyFormat, c.Date)
	if err != nil {
		return model.Reservation{}, err //nolint:wrapcheck
	}

	return model.Reservation{
		ID:               uuid.NewString(),
		Name:             c.Name,
		Email:            c.Email,
		Phone:            c.Phone,
		Date:             date,
		TimeSlot:         c.Time,
		Guests:           int(c.Guests),
		Requests:         c.Requests,
		Status:           model.StatusPendingPayment,
		TotalAmount:      totalAmount,
		PaymentReference: model.NewPaymentReference(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type CreateReservationResponse struct {
	ReservationID    string `json:"reservation_id"`
	AuthorizationURL string `json:"authorization_url,omitempty"`
	TotalAmount      int64  `json:"total_amount"`
}

type VerifyPaymentResponse struct {
	ReservationID    string `json:"reservation_id"`
	Status           string `json:"status"`
	AlreadyConfirmed bool   `json:"already_confirmed"`
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending_payment confirmed seated completed cancelled"`
}

type ReservationResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	Date             string  `json:"date"`
	Time             string  `json:"time"`
	Guests           int     `json:"guests"`
	Requests         string  `json:"requests"`
	Status           string  `json:"status"`
	TotalAmount      int64   `json:"total_amount"`
	PaymentReference string  `json:"payment_reference"`
	PaymentID        *string `json:"payment_id"`
	PaidAt           *string `json:"paid_at"`
	ThankYouSent     bool    `json:"thank_you_sent"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Date = model.Date.Format(constant.DateOnlyFormat)
	r.Time = model.TimeSlot
	r.Guests = model.Guests
	r.Requests = model.Requests
	r.Status = string(model.Status)
	r.TotalAmount = model.TotalAmount
	r.PaymentReference = model.PaymentReference
	r.PaymentID = model.PaymentID
	r.ThankYouSent = model.ThankYouSent

	if model.PaidAt != nil {
		paidAt := model.PaidAt.Format(constant.DateFormat)
		r.PaidAt = &paidAt
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

// LifecycleEvent is the payload published to the reservation lifecycle topic.
type LifecycleEvent struct {
	Type          string `json:"type"`
	ReservationID string `json:"reservation_id"`
	Reference     string `json:"reference"`
	Status        string `json:"status"`
	At            string `json:"at"`
}
