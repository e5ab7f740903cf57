package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartLine(id, name string, price float64, quantity int) CartLine {
	return CartLine{
		MenuItem: MenuItem{Menu_item_id: id, Name: &name, Price: &price},
		Quantity: quantity,
	}
}

func TestNewOrderFromCartRefusesEmptyCart(t *testing.T) {
	_, err := NewOrderFromCart("u1", "Asha", "123 Lane", nil)
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = NewOrderFromCart("u1", "Asha", "123 Lane", []CartLine{})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestNewOrderFromCartFreezesLinesAndTotal(t *testing.T) {
	lines := []CartLine{
		cartLine("a", "Item A", 100, 2),
		cartLine("b", "Item B", 50, 1),
	}

	order, err := NewOrderFromCart("u1", "Asha", "123 Lane", lines)
	require.NoError(t, err)

	assert.Equal(t, "u1", order.User_id)
	assert.Equal(t, "Asha", order.User_name)
	assert.Equal(t, "123 Lane", order.User_address)
	assert.Equal(t, StatusPending, order.Status)
	assert.Equal(t, 250.0, order.Total_amount)
	assert.NotEmpty(t, order.Order_id)
	assert.False(t, order.Created_at.IsZero())

	require.Len(t, order.Items, 2)
	assert.Equal(t, OrderItem{Menu_item_id: "a", Name: "Item A", Price: 100, Quantity: 2}, order.Items[0])
	assert.Equal(t, OrderItem{Menu_item_id: "b", Name: "Item B", Price: 50, Quantity: 1}, order.Items[1])
}

// Catalog price edits after submission must not reach past orders.
func TestOrderSnapshotDecoupledFromMenuItem(t *testing.T) {
	line := cartLine("b", "Item B", 50, 1)

	order, err := NewOrderFromCart("u1", "Asha", "123 Lane", []CartLine{line})
	require.NoError(t, err)

	*line.MenuItem.Price = 500
	*line.MenuItem.Name = "Renamed"

	assert.Equal(t, 50.0, order.Items[0].Price)
	assert.Equal(t, "Item B", order.Items[0].Name)
	assert.Equal(t, 50.0, order.Total_amount)
}

func TestOrderTotalEqualsSumOfItems(t *testing.T) {
	lines := []CartLine{
		cartLine("a", "Item A", 80, 3),
		cartLine("b", "Item B", 45.5, 2),
		cartLine("c", "Item C", 120, 1),
	}

	order, err := NewOrderFromCart("u1", "Asha", "123 Lane", lines)
	require.NoError(t, err)

	var sum float64
	for _, item := range order.Items {
		sum += item.Price * float64(item.Quantity)
	}
	assert.Equal(t, sum, order.Total_amount)
}

func TestValidOrderStatus(t *testing.T) {
	for _, status := range []string{StatusPending, StatusPreparing, StatusReady, StatusCompleted} {
		assert.True(t, ValidOrderStatus(status), status)
	}
	for _, status := range []string{"", "delivered", "cancelled", "Pending", "done"} {
		assert.False(t, ValidOrderStatus(status), status)
	}
}
