package dto

import (
	"github.com/google/uuid"

	"tiara/internal/domains/menu/model"
	"tiara/shared"
	gDto "tiara/shared/dto"
	gModel "tiara/shared/model"
	"tiara/shared/timezone"
)

type CreateMenuItemRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	PriceMinor  int64  `json:"price_minor" validate:"required,gt=0"`
	Category    string `json:"category"    validate:"required,oneof=Appetizer Main Dessert"`
}

func (c *CreateMenuItemRequest) ToModel(user string) model.MenuItem {
	return model.MenuItem{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		PriceMinor:  c.PriceMinor,
		Category:    c.Category,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateMenuItemRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string `db:"description" json:"description" validate:"omitempty,max=1000"`
	PriceMinor  int64  `db:"price_minor" json:"price_minor" validate:"omitempty,gt=0"`
	Category    string `db:"category"    json:"category"    validate:"omitempty,oneof=Appetizer Main Dessert"`
}

type MenuItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceMinor  int64  `json:"price_minor"`
	Category    string `json:"category"`
	gDto.Metadata
}

func (r *MenuItemResponse) FromModel(model model.MenuItem) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.PriceMinor = model.PriceMinor
	r.Category = model.Category
	r.Metadata.FromModel(model.Metadata)
}

type GetMenuItemsResponse struct {
	Items     []MenuItemResponse `json:"items"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetMenuItemsResponse) FromModels(models []model.MenuItem, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Items = make([]MenuItemResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}
