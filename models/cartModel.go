package models

// CartLine pairs a menu item snapshot with the requested quantity.
// Quantity is always >= 1; a line driven to zero is removed from the cart.
type CartLine struct {
	MenuItem MenuItem `json:"menu_item"`
	Quantity int      `json:"quantity"`
}

// LineTotal is the price contribution of this line to the cart total.
func (l CartLine) LineTotal() float64 {
	if l.MenuItem.Price == nil {
		return 0
	}
	return *l.MenuItem.Price * float64(l.Quantity)
}
