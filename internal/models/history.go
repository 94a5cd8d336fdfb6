package models

import "time"

// Inventory history actions recorded by the back end
const (
	ActionAdd    = "ADD"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
	ActionOrder  = "ORDER"
)

// InventoryHistory is one audit record of an inventory change
type InventoryHistory struct {
	ID               int64     `json:"id"`
	Product          *Product  `json:"product,omitempty"`
	Action           string    `json:"action"`
	PreviousQuantity int       `json:"previousQuantity"`
	NewQuantity      int       `json:"newQuantity"`
	Description      string    `json:"description,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}
