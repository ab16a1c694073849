package dto

import (
	"github.com/google/uuid"

	"tiara/internal/domains/subscriber/model"
	"tiara/shared"
	gDto "tiara/shared/dto"
	gModel "tiara/shared/model"
	"tiara/shared/timezone"
)

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email,max=100"`
}

func (c *SubscribeRequest) ToModel(user string) model.Subscriber {
	return model.Subscriber{
		ID:    uuid.NewString(),
		Email: c.Email,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type SubscriberResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	gDto.Metadata
}

func (r *SubscriberResponse) FromModel(model model.Subscriber) {
	r.ID = model.ID
	r.Email = model.Email
	r.Metadata.FromModel(model.Metadata)
}

type GetSubscribersResponse struct {
	Subscribers []SubscriberResponse `json:"subscribers"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetSubscribersResponse) FromModels(models []model.Subscriber, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Subscribers = make([]SubscriberResponse, len(models))
	for i, mod := range models {
		r.Subscribers[i].FromModel(mod)
	}
}
