package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "Pending"
	OrderStatusConfirmed      OrderStatus = "Confirmed"
	OrderStatusPreparing      OrderStatus = "Preparing"
	OrderStatusOutForDelivery OrderStatus = "Out for Delivery"
	OrderStatusCompleted      OrderStatus = "Completed"
	OrderStatusCancelled      OrderStatus = "Cancelled"
)

// Valid reports whether the status is one of the six enumerated values
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusOutForDelivery, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// orderRank orders the delivery lifecycle for strict-transition mode
var orderRank = map[OrderStatus]int{
	OrderStatusPending:        0,
	OrderStatusConfirmed:      1,
	OrderStatusPreparing:      2,
	OrderStatusOutForDelivery: 3,
	OrderStatusCompleted:      4,
}

// CanTransitionTo reports whether moving from s to next is a legal
// lifecycle step. Only consulted when strict transitions are enabled;
// the default mode allows any status to replace any other.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == OrderStatusCompleted || s == OrderStatusCancelled {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	return orderRank[next] == orderRank[s]+1
}

// CartItem represents a dish snapshot with a quantity. Orders store
// value copies of the dish, so later catalog edits or deletes do not
// rewrite order history.
type CartItem struct {
	Dish     Dish `json:"dish"`
	Quantity int  `json:"quantity" validate:"required,min=1"`
}

// GuestDetails identifies a guest checkout
type GuestDetails struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
}

// Order represents a customer order. Exactly one of UserID and
// GuestDetails is set. Items and Total are fixed at submission time;
// Status is the only field that changes afterwards.
type Order struct {
	ID           uuid.UUID     `json:"id"`
	UserID       *uuid.UUID    `json:"userId,omitempty"`
	GuestDetails *GuestDetails `json:"guestDetails,omitempty"`
	Items        []CartItem    `json:"items"`
	Total        float64       `json:"total"`
	Status       OrderStatus   `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// OrderRequest is used for order submission
type OrderRequest struct {
	Items        []CartItem    `json:"items" validate:"required,min=1,dive"`
	GuestDetails *GuestDetails `json:"guestDetails" validate:"omitempty"`
}

// OrderStatusRequest is used for administrative status changes
type OrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=Pending Confirmed Preparing 'Out for Delivery' Completed Cancelled"`
}
