package store

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/gourmet-grove/ordering-service/internal/models"
)

// SeedPassword is the password every seeded account accepts.
// Development data only.
const SeedPassword = "password"

// Seed loads the development fixtures: the starter menu, a customer
// and an admin account, one completed order and one confirmed
// reservation.
func (s *Store) Seed() error {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	dishes := []models.Dish{
		{Name: "Margherita Pizza", Description: "Classic pizza with tomato, mozzarella, and basil.", Price: 12.99, Category: models.CategoryMainCourse, ImageURL: "https://picsum.photos/seed/pizza/400"},
		{Name: "Caesar Salad", Description: "Crisp romaine lettuce with Caesar dressing, croutons, and Parmesan cheese.", Price: 8.99, Category: models.CategoryAppetizer, ImageURL: "https://picsum.photos/seed/salad/400"},
		{Name: "Spaghetti Carbonara", Description: "Pasta with eggs, cheese, pancetta, and black pepper.", Price: 15.50, Category: models.CategoryMainCourse, ImageURL: "https://picsum.photos/seed/pasta/400"},
		{Name: "Tiramisu", Description: "Coffee-flavoured Italian dessert.", Price: 7.00, Category: models.CategoryDessert, ImageURL: "https://picsum.photos/seed/tiramisu/400"},
		{Name: "Bruschetta", Description: "Toasted bread with garlic, tomatoes, and olive oil.", Price: 6.50, Category: models.CategoryAppetizer, ImageURL: "https://picsum.photos/seed/bruschetta/400"},
		{Name: "House Red Wine", Description: "A glass of our finest red wine.", Price: 8.00, Category: models.CategoryDrink, ImageURL: "https://picsum.photos/seed/wine/400"},
	}

	var margherita models.Dish
	for i, d := range dishes {
		created := s.CreateDish(d)
		if i == 0 {
			margherita = created
		}
	}

	customer, err := s.CreateUser(models.User{
		Name:         "John Doe",
		Email:        "user@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		Addresses:    []string{"123 Main St, Anytown, USA"},
	})
	if err != nil {
		return err
	}

	if _, err := s.CreateUser(models.User{
		Name:         "Admin",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}); err != nil {
		return err
	}

	s.CreateOrder(models.Order{
		UserID: &customer.ID,
		Items:  []models.CartItem{{Dish: margherita, Quantity: 2}},
		Total:  25.98,
		Status: models.OrderStatusCompleted,
	})

	res := s.CreateReservation(models.Reservation{
		Name:   "Jane Smith",
		Phone:  "555-0101",
		Date:   "2023-10-28",
		Time:   "19:00",
		Guests: 2,
	})
	if _, err := s.SetReservationStatus(res.ID, models.ReservationStatusConfirmed, false); err != nil {
		return err
	}

	return nil
}
