package cart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gourmet-grove/ordering-service/internal/models"
)

func dish(name string, price float64) models.Dish {
	return models.Dish{
		ID:       uuid.New(),
		Name:     name,
		Price:    price,
		Category: models.CategoryMainCourse,
	}
}

func TestAddMergesQuantities(t *testing.T) {
	pizza := dish("Margherita Pizza", 12.99)

	c := New()
	c.Add(pizza, 2)
	c.Add(pizza, 3)

	merged := New()
	merged.Add(pizza, 5)

	assert.Equal(t, merged.Items(), c.Items())
	require.Len(t, c.Items(), 1)
	assert.Equal(t, 5, c.Items()[0].Quantity)
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	pizza := dish("Margherita Pizza", 12.99)
	salad := dish("Caesar Salad", 8.99)

	c := New()
	c.Add(pizza, 1)
	c.Add(salad, 1)
	c.Add(pizza, 1)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, pizza.ID, items[0].Dish.ID)
	assert.Equal(t, salad.ID, items[1].Dish.ID)
}

func TestSetQuantityZeroRemoves(t *testing.T) {
	pizza := dish("Margherita Pizza", 12.99)
	salad := dish("Caesar Salad", 8.99)

	viaSet := New()
	viaSet.Add(pizza, 2)
	viaSet.Add(salad, 1)
	viaSet.SetQuantity(pizza.ID, 0)

	viaRemove := New()
	viaRemove.Add(pizza, 2)
	viaRemove.Add(salad, 1)
	viaRemove.Remove(pizza.ID)

	assert.Equal(t, viaRemove.Items(), viaSet.Items())
}

func TestSetQuantityReplaces(t *testing.T) {
	pizza := dish("Margherita Pizza", 12.99)

	c := New()
	c.Add(pizza, 2)
	c.SetQuantity(pizza.ID, 7)

	require.Len(t, c.Items(), 1)
	assert.Equal(t, 7, c.Items()[0].Quantity)
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	pizza := dish("Margherita Pizza", 12.99)

	c := New()
	c.Add(pizza, 1)
	c.Remove(uuid.New())

	assert.Len(t, c.Items(), 1)
}

func TestDerivedValues(t *testing.T) {
	pizza := dish("Margherita Pizza", 12.99)
	wine := dish("House Red Wine", 8.00)

	c := New()
	assert.Equal(t, 0, c.Count())
	assert.Equal(t, 0.0, c.Subtotal())

	c.Add(pizza, 2)
	c.Add(wine, 3)

	assert.Equal(t, 5, c.Count())
	assert.InDelta(t, 12.99*2+8.00*3, c.Subtotal(), 1e-9)

	c.Clear()
	assert.Equal(t, 0, c.Count())
	assert.Empty(t, c.Items())
}

func TestFileStoreRoundTrip(t *testing.T) {
	file, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	pizza := dish("Margherita Pizza", 12.99)

	c := NewPersistent(file)
	c.Add(pizza, 2)

	// A fresh cart over the same store sees the saved state
	reloaded := NewPersistent(file)
	require.Len(t, reloaded.Items(), 1)
	assert.Equal(t, pizza.ID, reloaded.Items()[0].Dish.ID)
	assert.Equal(t, 2, reloaded.Items()[0].Quantity)

	c.Clear()
	assert.Empty(t, NewPersistent(file).Items())
}

func TestFileStoreCorruptCartLoadsEmpty(t *testing.T) {
	dir := t.TempDir()
	file, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "cart.json"), []byte("{not json"), 0o644))

	assert.Empty(t, NewPersistent(file).Items())
}

func TestFileStoreToken(t *testing.T) {
	file, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "", file.LoadToken())

	require.NoError(t, file.SaveToken("opaque-session-token"))
	assert.Equal(t, "opaque-session-token", file.LoadToken())

	require.NoError(t, file.ClearToken())
	assert.Equal(t, "", file.LoadToken())

	// Clearing twice is fine
	require.NoError(t, file.ClearToken())
}
