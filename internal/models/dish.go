package models

import (
	"github.com/google/uuid"
)

// DishCategory represents the menu section a dish belongs to
type DishCategory string

const (
	CategoryAppetizer  DishCategory = "Appetizer"
	CategoryMainCourse DishCategory = "Main Course"
	CategoryDessert    DishCategory = "Dessert"
	CategoryDrink      DishCategory = "Drink"
)

// Valid reports whether the category is one of the enumerated menu sections
func (c DishCategory) Valid() bool {
	switch c {
	case CategoryAppetizer, CategoryMainCourse, CategoryDessert, CategoryDrink:
		return true
	}
	return false
}

// Dish represents a menu item
type Dish struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Category    DishCategory `json:"category"`
	ImageURL    string       `json:"imageUrl"`
}

// DishRequest is used for dish creation
type DishRequest struct {
	Name        string       `json:"name" validate:"required,min=1,max=100"`
	Description string       `json:"description"`
	Price       float64      `json:"price" validate:"gte=0"`
	Category    DishCategory `json:"category" validate:"required,oneof=Appetizer 'Main Course' Dessert Drink"`
	ImageURL    string       `json:"imageUrl"`
}

// DishUpdateRequest is used for partial dish updates. Only the fields
// that are present are merged into the stored record.
type DishUpdateRequest struct {
	Name        *string       `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string       `json:"description"`
	Price       *float64      `json:"price" validate:"omitempty,gte=0"`
	Category    *DishCategory `json:"category" validate:"omitempty,oneof=Appetizer 'Main Course' Dessert Drink"`
	ImageURL    *string       `json:"imageUrl"`
}
