package dto

import (
	"time"

	"tiara/internal/domains/settings/model"
	"tiara/shared/constant"
	gModel "tiara/shared/model"
	"tiara/shared/timezone"
)

const (
	ChangeKindAlert        = "alert"
	ChangeKindBlockedDates = "blocked_dates"
)

type BlockDateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

func (c *BlockDateRequest) ToModel(user string) (model.BlockedDate, error) {
	date, err := time.Parse(constant.DateOnlyFormat, c.Date)
	if err != nil {
		return model.BlockedDate{}, err //nolint:wrapcheck
	}

	return model.BlockedDate{
		Date: date,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type SetAlertRequest struct {
	Visible bool   `json:"visible"`
	Message string `json:"message" validate:"omitempty,max=500"`
}

func (c *SetAlertRequest) ToModel(user string) model.SiteAlert {
	return model.SiteAlert{
		ID:      model.SiteAlertSingletonID,
		Visible: c.Visible,
		Message: c.Message,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type SiteAlertResponse struct {
	Visible bool   `json:"visible"`
	Message string `json:"message"`
}

func (r *SiteAlertResponse) FromModel(model model.SiteAlert) {
	r.Visible = model.Visible
	r.Message = model.Message
}

type GetBlockedDatesResponse struct {
	Dates []string `json:"dates"`
}

func (r *GetBlockedDatesResponse) FromModels(models []model.BlockedDate) {
	r.Dates = make([]string, len(models))
	for i, mod := range models {
		r.Dates[i] = mod.Date.Format(constant.DateOnlyFormat)
	}
}

// SettingsChange is published whenever the alert or the blocked-date set
// changes, so watchers can refresh without polling.
type SettingsChange struct {
	Kind string `json:"kind"`
	At   string `json:"at"`
}
