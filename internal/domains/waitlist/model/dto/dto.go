package dto

import (
	"time"

	"github.com/google/uuid"

	"tiara/internal/domains/waitlist/model"
	"tiara/shared"
	"tiara/shared/constant"
	gDto "tiara/shared/dto"
	gModel "tiara/shared/model"
	"tiara/shared/timezone"
)

type CreateEntryRequest struct {
	Name  string `json:"name"  validate:"required,min=2,max=100"`
	Email string `json:"email" validate:"required,email,max=100"`
	Phone string `json:"phone" validate:"required,max=20"`
	Date  string `json:"date"  validate:"required,datetime=2006-01-02"`
}

func (c *CreateEntryRequest) ToModel(user string) (model.Entry, error) {
	date, err := time.Parse(constant.DateOnlyFormat, c.Date)
	if err != nil {
		return model.Entry{}, err //nolint:wrapcheck
	}

	return model.Entry{
		ID:    uuid.NewString(),
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
		Date:  date,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type EntryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Date         string `json:"date"`
	WhatsAppLink string `json:"whatsapp_link"`
	gDto.Metadata
}

func (r *EntryResponse) FromModel(entry model.Entry) {
	r.ID = entry.ID
	r.Name = entry.Name
	r.Email = entry.Email
	r.Phone = entry.Phone
	r.Date = entry.Date.Format(constant.DateOnlyFormat)
	r.WhatsAppLink = model.WhatsAppLink(entry.Name, entry.Phone, r.Date)
	r.Metadata.FromModel(entry.Metadata)
}

type GetEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetEntriesResponse) FromModels(models []model.Entry, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Entries = make([]EntryResponse, len(models))
	for i, mod := range models {
		r.Entries[i].FromModel(mod)
	}
}
