package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MRAMACHANDRAMOORTHI/everbowl/models"
)

func menuItem(id, name string, price float64) models.MenuItem {
	available := true
	return models.MenuItem{
		Menu_item_id: id,
		Name:         &name,
		Price:        &price,
		Is_available: &available,
	}
}

func TestAddCreatesLine(t *testing.T) {
	c := &Cart{}
	require.NoError(t, c.Add(menuItem("a", "Berry Bowl", 100), 2))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 200.0, c.TotalAmount())
}

func TestAddSameItemIncrementsInsteadOfDuplicating(t *testing.T) {
	c := &Cart{}
	item := menuItem("a", "Berry Bowl", 100)
	require.NoError(t, c.Add(item, 1))
	require.NoError(t, c.Add(item, 3))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 4, lines[0].Quantity)
	assert.Equal(t, 400.0, c.TotalAmount())
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	c := &Cart{}
	item := menuItem("a", "Berry Bowl", 100)

	assert.ErrorIs(t, c.Add(item, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, c.Add(item, -2), ErrInvalidQuantity)
	assert.Empty(t, c.Lines())
	assert.Equal(t, 0.0, c.TotalAmount())
}

func TestAddRejectsMalformedItem(t *testing.T) {
	c := &Cart{}

	assert.ErrorIs(t, c.Add(models.MenuItem{}, 1), ErrInvalidItem)

	name := "Nameless"
	assert.ErrorIs(t, c.Add(models.MenuItem{Menu_item_id: "x", Name: &name}, 1), ErrInvalidItem)
	assert.Empty(t, c.Lines())
}

func TestUpdateQuantitySetsNewValue(t *testing.T) {
	c := &Cart{}
	require.NoError(t, c.Add(menuItem("a", "Berry Bowl", 100), 2))

	c.UpdateQuantity("a", 5)
	assert.Equal(t, 5, c.Lines()[0].Quantity)
	assert.Equal(t, 500.0, c.TotalAmount())
}

func TestUpdateQuantityZeroOrNegativeRemovesLine(t *testing.T) {
	for _, quantity := range []int{0, -1} {
		c := &Cart{}
		require.NoError(t, c.Add(menuItem("a", "Berry Bowl", 100), 2))

		c.UpdateQuantity("a", quantity)
		assert.Empty(t, c.Lines())
		assert.Equal(t, 0.0, c.TotalAmount())
	}
}

func TestUpdateQuantityUnknownIdIsNoOp(t *testing.T) {
	c := &Cart{}
	require.NoError(t, c.Add(menuItem("a", "Berry Bowl", 100), 2))

	c.UpdateQuantity("missing", 7)
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestRemoveDeletesLineAndIgnoresUnknownIds(t *testing.T) {
	c := &Cart{}
	require.NoError(t, c.Add(menuItem("a", "Berry Bowl", 100), 1))
	require.NoError(t, c.Add(menuItem("b", "Green Juice", 50), 1))

	c.Remove("a")
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "b", lines[0].MenuItem.Menu_item_id)

	c.Remove("missing")
	assert.Len(t, c.Lines(), 1)
}

func TestClearEmptiesCart(t *testing.T) {
	c := &Cart{}
	require.NoError(t, c.Add(menuItem("a", "Berry Bowl", 100), 3))

	c.Clear()
	assert.True(t, c.Empty())
	assert.Empty(t, c.Lines())
	assert.Equal(t, 0.0, c.TotalAmount())
}

// Spec scenario: {A: 100 x2, B: 50 x1} totals 250; dropping A leaves 50.
func TestTotalTracksMutationSequence(t *testing.T) {
	c := &Cart{}
	require.NoError(t, c.Add(menuItem("a", "Item A", 100), 2))
	require.NoError(t, c.Add(menuItem("b", "Item B", 50), 1))
	assert.Equal(t, 250.0, c.TotalAmount())

	c.UpdateQuantity("a", 0)
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "b", lines[0].MenuItem.Menu_item_id)
	assert.Equal(t, 50.0, c.TotalAmount())
}

func TestTotalIsNeverStale(t *testing.T) {
	c := &Cart{}
	require.NoError(t, c.Add(menuItem("a", "Item A", 30), 1))
	assert.Equal(t, 30.0, c.TotalAmount())

	require.NoError(t, c.Add(menuItem("b", "Item B", 20), 2))
	assert.Equal(t, 70.0, c.TotalAmount())

	c.UpdateQuantity("b", 1)
	assert.Equal(t, 50.0, c.TotalAmount())

	c.Remove("a")
	assert.Equal(t, 20.0, c.TotalAmount())

	c.Clear()
	assert.Equal(t, 0.0, c.TotalAmount())
}

func TestLinesReturnsCopy(t *testing.T) {
	c := &Cart{}
	require.NoError(t, c.Add(menuItem("a", "Item A", 10), 1))

	lines := c.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, c.Lines()[0].Quantity)
}

func TestStoreKeepsOneCartPerSession(t *testing.T) {
	s := NewStore()

	first := s.Cart("user-1")
	require.NoError(t, first.Add(menuItem("a", "Item A", 10), 1))

	assert.Same(t, first, s.Cart("user-1"))
	assert.True(t, s.Cart("user-2").Empty())
}

func TestStoreDropDiscardsCart(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Cart("user-1").Add(menuItem("a", "Item A", 10), 1))

	s.Drop("user-1")
	assert.True(t, s.Cart("user-1").Empty())
}

func TestStoreDropUnknownSessionIsNoOp(t *testing.T) {
	s := NewStore()
	require.NotPanics(t, func() { s.Drop("never-seen") })

	require.NoError(t, s.Cart("user-1").Add(menuItem("a", "Item A", 10), 1))
	s.Drop("never-seen")
	assert.Len(t, s.Cart("user-1").Lines(), 1)
}
