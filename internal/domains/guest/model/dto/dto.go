package dto

import (
	"time"

	"tiara/internal/domains/guest/model"
	"tiara/shared"
	"tiara/shared/constant"
	gDto "tiara/shared/dto"
)

type UpdateGuestRequest struct {
	Phone string `db:"phone" json:"phone" validate:"omitempty,max=20"`
	Notes string `db:"notes" json:"notes" validate:"omitempty,max=1000"`
}

type GuestResponse struct {
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Visits     int     `json:"visits"`
	VIP        bool    `json:"vip"`
	Notes      string  `json:"notes"`
	FirstVisit string  `json:"first_visit"`
	LastBooked *string `json:"last_booked"`
	LastVisit  *string `json:"last_visit"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.Email = model.Email
	r.Name = model.Name
	r.Phone = model.Phone
	r.Visits = model.Visits
	r.VIP = model.VIP()
	r.Notes = model.Notes
	r.FirstVisit = model.FirstVisit.Format(constant.DateFormat)
	r.LastBooked = formatTime(model.LastBooked)
	r.LastVisit = formatTime(model.LastVisit)
	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}

func formatTime(value *time.Time) *string {
	if value == nil {
		return nil
	}

	formatted := value.Format(constant.DateFormat)

	return &formatted
}
