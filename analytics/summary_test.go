package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MRAMACHANDRAMOORTHI/everbowl/models"
)

func order(createdAt time.Time, total float64, items ...models.OrderItem) models.Order {
	return models.Order{
		Total_amount: total,
		Items:        items,
		Created_at:   createdAt,
	}
}

func item(name string, quantity int) models.OrderItem {
	return models.OrderItem{Name: name, Quantity: quantity}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func TestSummarizeWholeYear(t *testing.T) {
	orders := []models.Order{
		order(date(2025, time.January, 5), 100, item("Berry Bowl", 2)),
		order(date(2025, time.March, 10), 250, item("Green Juice", 1), item("Berry Bowl", 1)),
		order(date(2024, time.December, 31), 900, item("Old Item", 5)),
	}

	summary := Summarize(orders, 42, 2025, 0)

	assert.Equal(t, int64(42), summary.Total_users)
	assert.Equal(t, 2, summary.Total_orders)
	assert.Equal(t, 350.0, summary.Total_revenue)

	require.NotEmpty(t, summary.Top_items)
	assert.Equal(t, ItemCount{Name: "Berry Bowl", Quantity: 3}, summary.Top_items[0])
}

func TestSummarizeMonthFilterNarrowsTotalsButNotMonthlySeries(t *testing.T) {
	orders := []models.Order{
		order(date(2025, time.January, 5), 100, item("Berry Bowl", 2)),
		order(date(2025, time.March, 10), 250, item("Green Juice", 1)),
	}

	summary := Summarize(orders, 0, 2025, time.March)

	assert.Equal(t, 1, summary.Total_orders)
	assert.Equal(t, 250.0, summary.Total_revenue)
	require.Len(t, summary.Top_items, 1)
	assert.Equal(t, "Green Juice", summary.Top_items[0].Name)

	// The monthly series still covers the whole year
	require.Len(t, summary.Monthly, 12)
	assert.Equal(t, "Jan", summary.Monthly[0].Month)
	assert.Equal(t, 100.0, summary.Monthly[0].Revenue)
	assert.Equal(t, 1, summary.Monthly[0].Orders)
	assert.Equal(t, 250.0, summary.Monthly[2].Revenue)
	assert.Equal(t, 0.0, summary.Monthly[1].Revenue)
}

func TestSummarizeIgnoresOrdersWithoutTimestamps(t *testing.T) {
	orders := []models.Order{
		order(time.Time{}, 999, item("Ghost", 9)),
		order(date(2025, time.June, 1), 60, item("Sorbet", 1)),
	}

	summary := Summarize(orders, 0, 2025, 0)

	assert.Equal(t, 1, summary.Total_orders)
	assert.Equal(t, 60.0, summary.Total_revenue)
	require.Len(t, summary.Top_items, 1)
	assert.Equal(t, "Sorbet", summary.Top_items[0].Name)
}

func TestSummarizeCapsTopItems(t *testing.T) {
	var items []models.OrderItem
	for i := 0; i < 12; i++ {
		items = append(items, item(fmt.Sprintf("Item %02d", i), i+1))
	}
	orders := []models.Order{order(date(2025, time.May, 1), 100, items...)}

	summary := Summarize(orders, 0, 2025, 0)

	require.Len(t, summary.Top_items, 8)
	assert.Equal(t, "Item 11", summary.Top_items[0].Name)
	assert.Equal(t, 12, summary.Top_items[0].Quantity)
	// Descending by quantity throughout
	for i := 1; i < len(summary.Top_items); i++ {
		assert.GreaterOrEqual(t, summary.Top_items[i-1].Quantity, summary.Top_items[i].Quantity)
	}
}

func TestSummarizeCountsUnnamedItemsAsMinimumOne(t *testing.T) {
	orders := []models.Order{
		order(date(2025, time.July, 1), 40, models.OrderItem{Name: "Shake", Quantity: 0}),
		order(date(2025, time.July, 2), 40, models.OrderItem{Name: "", Quantity: 3}),
	}

	summary := Summarize(orders, 0, 2025, 0)

	require.Len(t, summary.Top_items, 1)
	assert.Equal(t, ItemCount{Name: "Shake", Quantity: 1}, summary.Top_items[0])
}

func TestSummarizeEmptyInput(t *testing.T) {
	summary := Summarize(nil, 0, 2025, 0)

	assert.Equal(t, 0, summary.Total_orders)
	assert.Equal(t, 0.0, summary.Total_revenue)
	assert.Empty(t, summary.Top_items)
	require.Len(t, summary.Monthly, 12)
	assert.Equal(t, "Dec", summary.Monthly[11].Month)
}
