package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gourmet-grove/ordering-service/internal/models"
	"github.com/gourmet-grove/ordering-service/internal/store"
)

var testGuest = &models.GuestDetails{
	Name:    "Jane Smith",
	Email:   "jane@example.com",
	Phone:   "555-0101",
	Address: "456 Oak Ave",
}

func margherita() models.Dish {
	return models.Dish{
		ID:       uuid.New(),
		Name:     "Margherita Pizza",
		Price:    12.99,
		Category: models.CategoryMainCourse,
	}
}

func TestSubmitAsGuestAppliesTaxOnce(t *testing.T) {
	orders := NewOrderService(store.New(), false)

	// 12.99 x 2 = 25.98; x 1.08 = 28.0584, stored as 28.06
	order, err := orders.Submit([]models.CartItem{{Dish: margherita(), Quantity: 2}}, nil, testGuest)
	require.NoError(t, err)

	assert.Equal(t, 28.06, order.Total)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Nil(t, order.UserID)
	require.NotNil(t, order.GuestDetails)
	assert.Equal(t, "Jane Smith", order.GuestDetails.Name)
	assert.False(t, order.CreatedAt.IsZero())

	// The stored total is fixed; reading back never reprices
	got, err := orders.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 28.06, got.Total)
}

func TestSubmitAsUser(t *testing.T) {
	st := store.New()
	orders := NewOrderService(st, false)

	user, err := st.CreateUser(models.User{Name: "John", Email: "user@example.com", Role: models.RoleUser})
	require.NoError(t, err)

	order, err := orders.Submit([]models.CartItem{{Dish: margherita(), Quantity: 1}}, &user.ID, nil)
	require.NoError(t, err)

	require.NotNil(t, order.UserID)
	assert.Equal(t, user.ID, *order.UserID)
	assert.Nil(t, order.GuestDetails)
	assert.Equal(t, 14.03, order.Total) // 12.99 x 1.08 = 14.0292
}

func TestSubmitRequiresExactlyOneIdentity(t *testing.T) {
	st := store.New()
	orders := NewOrderService(st, false)
	items := []models.CartItem{{Dish: margherita(), Quantity: 1}}

	_, err := orders.Submit(items, nil, nil)
	assert.ErrorIs(t, err, ErrNoIdentity)

	user, err := st.CreateUser(models.User{Name: "John", Email: "user@example.com", Role: models.RoleUser})
	require.NoError(t, err)

	_, err = orders.Submit(items, &user.ID, testGuest)
	assert.ErrorIs(t, err, ErrBothIdentities)
}

func TestSubmitRejectsUnknownUser(t *testing.T) {
	orders := NewOrderService(store.New(), false)

	ghost := uuid.New()
	_, err := orders.Submit([]models.CartItem{{Dish: margherita(), Quantity: 1}}, &ghost, nil)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestHistoryIsMostRecentFirstAndScoped(t *testing.T) {
	st := store.New()
	orders := NewOrderService(st, false)

	user, err := st.CreateUser(models.User{Name: "John", Email: "user@example.com", Role: models.RoleUser})
	require.NoError(t, err)

	first, err := orders.Submit([]models.CartItem{{Dish: margherita(), Quantity: 1}}, &user.ID, nil)
	require.NoError(t, err)
	second, err := orders.Submit([]models.CartItem{{Dish: margherita(), Quantity: 2}}, &user.ID, nil)
	require.NoError(t, err)

	// A guest order does not show up in anyone's history
	_, err = orders.Submit([]models.CartItem{{Dish: margherita(), Quantity: 3}}, nil, testGuest)
	require.NoError(t, err)

	history := orders.History(user.ID)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)

	all := orders.ListAll()
	require.Len(t, all, 3)
	assert.Nil(t, all[0].UserID)
}

func TestSetStatusVisibleOnGet(t *testing.T) {
	orders := NewOrderService(store.New(), false)

	order, err := orders.Submit([]models.CartItem{{Dish: margherita(), Quantity: 1}}, nil, testGuest)
	require.NoError(t, err)

	for _, status := range []models.OrderStatus{
		models.OrderStatusConfirmed,
		models.OrderStatusPreparing,
		models.OrderStatusOutForDelivery,
		models.OrderStatusCancelled,
		models.OrderStatusCompleted,
	} {
		updated, err := orders.SetStatus(order.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)

		got, err := orders.Get(order.ID)
		require.NoError(t, err)
		assert.Equal(t, status, got.Status)
	}
}

func TestStrictServiceRejectsIllegalSteps(t *testing.T) {
	orders := NewOrderService(store.New(), true)

	order, err := orders.Submit([]models.CartItem{{Dish: margherita(), Quantity: 1}}, nil, testGuest)
	require.NoError(t, err)

	_, err = orders.SetStatus(order.ID, models.OrderStatusCompleted)
	assert.ErrorIs(t, err, store.ErrInvalidTransition)

	_, err = orders.SetStatus(order.ID, models.OrderStatusConfirmed)
	assert.NoError(t, err)
}

func TestOrderSnapshotSurvivesDishDelete(t *testing.T) {
	st := store.New()
	orders := NewOrderService(st, false)
	catalog := NewCatalogService(st)

	dish := catalog.CreateDish(models.DishRequest{Name: "Margherita Pizza", Price: 12.99, Category: models.CategoryMainCourse})

	order, err := orders.Submit([]models.CartItem{{Dish: dish, Quantity: 2}}, nil, testGuest)
	require.NoError(t, err)

	catalog.DeleteDish(dish.ID)

	got, err := orders.Get(order.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Margherita Pizza", got.Items[0].Dish.Name)
	assert.Equal(t, 12.99, got.Items[0].Dish.Price)
	assert.Equal(t, 28.06, got.Total)
}

func TestSubtotal(t *testing.T) {
	pizza := margherita()
	wine := models.Dish{ID: uuid.New(), Name: "House Red Wine", Price: 8.00, Category: models.CategoryDrink}

	assert.Equal(t, 0.0, Subtotal(nil))
	assert.InDelta(t, 12.99*2+8.00*3, Subtotal([]models.CartItem{
		{Dish: pizza, Quantity: 2},
		{Dish: wine, Quantity: 3},
	}), 1e-9)
}
