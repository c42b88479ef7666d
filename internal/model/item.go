package model

// Item is the domain model for a stock entry.
// Name is the key in Inventory and is not repeated in the snapshot.
type Item struct {
	Name     string  `json:"-"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Value is the stock value of the item at its unit price.
func (it Item) Value() float64 {
	return it.Price * float64(it.Quantity)
}

// Inventory maps item names to their records. Names are case-sensitive.
type Inventory map[string]Item

// Clone returns a copy that shares nothing with inv.
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	for k, v := range inv {
		out[k] = v
	}
	return out
}
