package analytics

import (
	"sort"
	"time"

	"github.com/MRAMACHANDRAMOORTHI/everbowl/models"
)

const topItemLimit = 8

type ItemCount struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type MonthBucket struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

type Summary struct {
	Total_users   int64         `json:"total_users"`
	Total_orders  int           `json:"total_orders"`
	Total_revenue float64       `json:"total_revenue"`
	Top_items     []ItemCount   `json:"top_items"`
	Monthly       []MonthBucket `json:"monthly"`
}

// Summarize aggregates the admin dashboard figures from a year's worth
// of orders. month narrows the revenue/order-count/top-item figures to a
// single month; zero means the whole year. The monthly series always
// covers all twelve months of the year, regardless of the month filter.
func Summarize(orders []models.Order, totalUsers int64, year int, month time.Month) Summary {
	summary := Summary{Total_users: totalUsers}

	counts := make(map[string]int)
	for _, order := range orders {
		if !inWindow(order, year, month) {
			continue
		}
		summary.Total_orders++
		summary.Total_revenue += order.Total_amount
		for _, item := range order.Items {
			if item.Name == "" {
				continue
			}
			qty := item.Quantity
			if qty < 1 {
				qty = 1
			}
			counts[item.Name] += qty
		}
	}
	summary.Top_items = topItems(counts)

	summary.Monthly = make([]MonthBucket, 12)
	for i := range summary.Monthly {
		summary.Monthly[i].Month = time.Month(i + 1).String()[:3]
	}
	for _, order := range orders {
		if order.Created_at.IsZero() || order.Created_at.Year() != year {
			continue
		}
		bucket := &summary.Monthly[int(order.Created_at.Month())-1]
		bucket.Revenue += order.Total_amount
		bucket.Orders++
	}

	return summary
}

func inWindow(order models.Order, year int, month time.Month) bool {
	if order.Created_at.IsZero() {
		return false
	}
	if order.Created_at.Year() != year {
		return false
	}
	return month == 0 || order.Created_at.Month() == month
}

func topItems(counts map[string]int) []ItemCount {
	items := make([]ItemCount, 0, len(counts))
	for name, qty := range counts {
		items = append(items, ItemCount{Name: name, Quantity: qty})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Quantity != items[j].Quantity {
			return items[i].Quantity > items[j].Quantity
		}
		return items[i].Name < items[j].Name
	})
	if len(items) > topItemLimit {
		items = items[:topItemLimit]
	}
	return items
}
