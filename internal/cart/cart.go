// Package cart implements the client-held shopping cart. The cart is
// not a server entity: it aggregates dish/quantity pairs locally and
// only its snapshot crosses into the order lifecycle at checkout.
package cart

import (
	"log"

	"github.com/google/uuid"

	"github.com/gourmet-grove/ordering-service/internal/models"
)

// Cart is an ordered collection of cart items keyed by dish ID, with
// at most one item per dish. When backed by a FileStore it is loaded
// once at construction and saved on every change.
type Cart struct {
	items []models.CartItem
	file  *FileStore
}

// New creates an empty, unpersisted cart
func New() *Cart {
	return &Cart{}
}

// NewPersistent creates a cart backed by a client-owned file store.
// An absent or corrupt saved cart loads as empty.
func NewPersistent(file *FileStore) *Cart {
	return &Cart{
		items: file.LoadCart(),
		file:  file,
	}
}

func (c *Cart) save() {
	if c.file == nil {
		return
	}
	if err := c.file.SaveCart(c.items); err != nil {
		log.Printf("failed to save cart: %v", err)
	}
}

// Add appends a cart item, or increments the quantity if the dish is
// already in the cart. The caller supplies a quantity of at least 1.
func (c *Cart) Add(dish models.Dish, quantity int) {
	for i := range c.items {
		if c.items[i].Dish.ID == dish.ID {
			c.items[i].Quantity += quantity
			c.save()
			return
		}
	}
	c.items = append(c.items, models.CartItem{Dish: dish, Quantity: quantity})
	c.save()
}

// Remove deletes the item for a dish ID, if present
func (c *Cart) Remove(dishID uuid.UUID) {
	items := c.items[:0]
	for _, item := range c.items {
		if item.Dish.ID != dishID {
			items = append(items, item)
		}
	}
	c.items = items
	c.save()
}

// SetQuantity replaces an item's quantity. A quantity of zero or less
// removes the item.
func (c *Cart) SetQuantity(dishID uuid.UUID, quantity int) {
	if quantity <= 0 {
		c.Remove(dishID)
		return
	}
	for i := range c.items {
		if c.items[i].Dish.ID == dishID {
			c.items[i].Quantity = quantity
			c.save()
			return
		}
	}
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.items = nil
	c.save()
}

// Items returns a snapshot copy of the cart contents
func (c *Cart) Items() []models.CartItem {
	items := make([]models.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// Count is the total quantity across all items, recomputed on read
func (c *Cart) Count() int {
	var count int
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Subtotal is the sum of price times quantity, recomputed on read
func (c *Cart) Subtotal() float64 {
	var subtotal float64
	for _, item := range c.items {
		subtotal += item.Dish.Price * float64(item.Quantity)
	}
	return subtotal
}
