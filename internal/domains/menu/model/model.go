package model

import (
	"tiara/shared/model"
)

const (
	TableName  = "menu_items"
	EntityName = "menu_item"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldPriceMinor  = "price_minor"
	FieldCategory    = "category"
)

const (
	CategoryAppetizer = "Appetizer"
	CategoryMain      = "Main"
	CategoryDessert   = "Dessert"
)

type MenuItem struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	PriceMinor  int64  `db:"price_minor"`
	Category    string `db:"category"`
	model.Metadata
}
