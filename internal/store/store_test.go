package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gourmet-grove/ordering-service/internal/models"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestDishCRUD(t *testing.T) {
	s := New()

	pizza := s.CreateDish(models.Dish{Name: "Margherita Pizza", Price: 12.99, Category: models.CategoryMainCourse})
	salad := s.CreateDish(models.Dish{Name: "Caesar Salad", Price: 8.99, Category: models.CategoryAppetizer})

	assert.NotEqual(t, uuid.Nil, pizza.ID)
	assert.NotEqual(t, pizza.ID, salad.ID)

	dishes := s.ListDishes()
	require.Len(t, dishes, 2)
	assert.Equal(t, "Margherita Pizza", dishes[0].Name)
	assert.Equal(t, "Caesar Salad", dishes[1].Name)

	got, err := s.GetDish(pizza.ID)
	require.NoError(t, err)
	assert.Equal(t, pizza, got)

	_, err = s.GetDish(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateDishMergesOnlyProvidedFields(t *testing.T) {
	s := New()
	pizza := s.CreateDish(models.Dish{
		Name:        "Margherita Pizza",
		Description: "Classic pizza with tomato, mozzarella, and basil.",
		Price:       12.99,
		Category:    models.CategoryMainCourse,
	})

	updated, err := s.UpdateDish(pizza.ID, models.DishUpdateRequest{Price: floatPtr(13.49)})
	require.NoError(t, err)

	assert.Equal(t, 13.49, updated.Price)
	assert.Equal(t, "Margherita Pizza", updated.Name)
	assert.Equal(t, "Classic pizza with tomato, mozzarella, and basil.", updated.Description)
	assert.Equal(t, models.CategoryMainCourse, updated.Category)

	updated, err = s.UpdateDish(pizza.ID, models.DishUpdateRequest{Name: strPtr("Margherita")})
	require.NoError(t, err)
	assert.Equal(t, "Margherita", updated.Name)
	assert.Equal(t, 13.49, updated.Price)

	_, err = s.UpdateDish(uuid.New(), models.DishUpdateRequest{Name: strPtr("ghost")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteDishIsIdempotent(t *testing.T) {
	s := New()
	pizza := s.CreateDish(models.Dish{Name: "Margherita Pizza", Price: 12.99, Category: models.CategoryMainCourse})

	s.DeleteDish(pizza.ID)
	assert.Empty(t, s.ListDishes())

	// Deleting again, or deleting an unknown ID, is not an error
	s.DeleteDish(pizza.ID)
	s.DeleteDish(uuid.New())
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	s := New()

	first, err := s.CreateUser(models.User{Name: "A", Email: "a@x.com", Role: models.RoleUser})
	require.NoError(t, err)

	_, err = s.CreateUser(models.User{Name: "B", Email: "a@x.com", Role: models.RoleUser})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// The first registration is unaffected
	got, err := s.GetUser(first.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
	require.Len(t, s.ListUsers(), 1)
}

func TestEmailMatchIsCaseSensitive(t *testing.T) {
	s := New()

	_, err := s.CreateUser(models.User{Name: "A", Email: "a@x.com", Role: models.RoleUser})
	require.NoError(t, err)

	// Matching the reference behaviour exactly
	_, err = s.CreateUser(models.User{Name: "B", Email: "A@x.com", Role: models.RoleUser})
	assert.NoError(t, err)

	_, err = s.GetUserByEmail("A@X.COM")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReturnedUserIsACopy(t *testing.T) {
	s := New()
	created, err := s.CreateUser(models.User{
		Name:      "John Doe",
		Email:     "user@example.com",
		Role:      models.RoleUser,
		Addresses: []string{"123 Main St"},
	})
	require.NoError(t, err)

	got, err := s.GetUser(created.ID)
	require.NoError(t, err)
	got.Addresses[0] = "mutated"

	again, err := s.GetUser(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "123 Main St", again.Addresses[0])
}

func TestReturnedOrderIsACopy(t *testing.T) {
	s := New()
	pizza := s.CreateDish(models.Dish{Name: "Margherita Pizza", Price: 12.99, Category: models.CategoryMainCourse})

	order := s.CreateOrder(models.Order{
		GuestDetails: &models.GuestDetails{Name: "G", Email: "g@x.com", Phone: "1", Address: "2"},
		Items:        []models.CartItem{{Dish: pizza, Quantity: 2}},
		Total:        28.06,
		Status:       models.OrderStatusPending,
	})

	got, err := s.GetOrder(order.ID)
	require.NoError(t, err)
	got.Items[0].Quantity = 99
	got.GuestDetails.Name = "mutated"

	again, err := s.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, again.Items[0].Quantity)
	assert.Equal(t, "G", again.GuestDetails.Name)
}

func TestSetOrderStatusIsUnrestrictedByDefault(t *testing.T) {
	s := New()
	order := s.CreateOrder(models.Order{
		GuestDetails: &models.GuestDetails{Name: "G", Email: "g@x.com", Phone: "1", Address: "2"},
		Items:        []models.CartItem{{Quantity: 1}},
		Status:       models.OrderStatusPending,
	})

	_, err := s.SetOrderStatus(order.ID, models.OrderStatusCancelled, false)
	require.NoError(t, err)

	// Even a nominally terminal state can be overwritten
	updated, err := s.SetOrderStatus(order.ID, models.OrderStatusCompleted, false)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, updated.Status)

	got, err := s.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, got.Status)

	_, err = s.SetOrderStatus(uuid.New(), models.OrderStatusPending, false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetOrderStatusStrictMode(t *testing.T) {
	s := New()
	order := s.CreateOrder(models.Order{
		GuestDetails: &models.GuestDetails{Name: "G", Email: "g@x.com", Phone: "1", Address: "2"},
		Items:        []models.CartItem{{Quantity: 1}},
		Status:       models.OrderStatusPending,
	})

	_, err := s.SetOrderStatus(order.ID, models.OrderStatusConfirmed, true)
	require.NoError(t, err)

	// Skipping a step is rejected
	_, err = s.SetOrderStatus(order.ID, models.OrderStatusCompleted, true)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Cancelling is allowed from any non-terminal state
	_, err = s.SetOrderStatus(order.ID, models.OrderStatusCancelled, true)
	require.NoError(t, err)

	// Terminal states stay terminal
	_, err = s.SetOrderStatus(order.ID, models.OrderStatusPreparing, true)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestListReservationsNewestDateFirst(t *testing.T) {
	s := New()
	s.CreateReservation(models.Reservation{Name: "A", Date: "2023-10-28", Time: "19:00", Guests: 2})
	s.CreateReservation(models.Reservation{Name: "B", Date: "2024-01-05", Time: "18:00", Guests: 4})
	s.CreateReservation(models.Reservation{Name: "C", Date: "2023-12-24", Time: "20:00", Guests: 6})

	reservations := s.ListReservations()
	require.Len(t, reservations, 3)
	assert.Equal(t, "B", reservations[0].Name)
	assert.Equal(t, "C", reservations[1].Name)
	assert.Equal(t, "A", reservations[2].Name)
}

func TestSetReservationStatus(t *testing.T) {
	s := New()
	res := s.CreateReservation(models.Reservation{Name: "Jane", Date: "2023-10-28", Time: "19:00", Guests: 2})
	assert.Equal(t, models.ReservationStatusPending, res.Status)

	updated, err := s.SetReservationStatus(res.ID, models.ReservationStatusConfirmed, false)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusConfirmed, updated.Status)

	// Permissive mode allows re-deciding
	_, err = s.SetReservationStatus(res.ID, models.ReservationStatusDeclined, false)
	require.NoError(t, err)

	// Strict mode does not
	_, err = s.SetReservationStatus(res.ID, models.ReservationStatusConfirmed, true)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = s.SetReservationStatus(uuid.New(), models.ReservationStatusConfirmed, false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSeed(t *testing.T) {
	s := New()
	require.NoError(t, s.Seed())

	assert.Len(t, s.ListDishes(), 6)
	assert.Len(t, s.ListUsers(), 2)
	assert.Len(t, s.ListOrders(), 1)
	assert.Len(t, s.ListReservations(), 1)

	admin, err := s.GetUserByEmail("admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	order := s.ListOrders()[0]
	assert.Equal(t, models.OrderStatusCompleted, order.Status)
	assert.Equal(t, 25.98, order.Total)
}
