package model

import "testing"

func TestItemValue(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want float64
	}{
		{"zero quantity", Item{Price: 9.99}, 0},
		{"zero price", Item{Quantity: 4}, 0},
		{"simple", Item{Price: 2.5, Quantity: 10}, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.Value(); got != tt.want {
				t.Errorf("Value() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInventoryClone(t *testing.T) {
	inv := Inventory{"Widget": {Name: "Widget", Price: 1, Quantity: 2}}
	c := inv.Clone()
	c["Widget"] = Item{Name: "Widget", Price: 3, Quantity: 4}
	c["Gadget"] = Item{Name: "Gadget"}

	if inv["Widget"].Quantity != 2 {
		t.Errorf("original mutated through clone: %+v", inv["Widget"])
	}
	if _, ok := inv["Gadget"]; ok {
		t.Error("original gained a key through clone")
	}
}
