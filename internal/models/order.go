package models

import "time"

// Order represents a confirmed order returned by the back end
type Order struct {
	ID          int64       `json:"id"`
	OrderNumber string      `json:"orderNumber"`
	OrderDate   time.Time   `json:"orderDate"`
	Status      string      `json:"status"`
	TotalAmount float64     `json:"totalAmount"`
	OrderItems  []OrderItem `json:"orderItems"`
}

// OrderItem is a single line of a confirmed order
type OrderItem struct {
	ID        int64    `json:"id,omitempty"`
	Product   *Product `json:"product,omitempty"`
	Quantity  int      `json:"quantity"`
	UnitPrice float64  `json:"unitPrice"`
}

// CreateOrderRequest is the submission payload for POST /api/orders.
// Built once per submit attempt and never mutated after construction.
type CreateOrderRequest struct {
	OrderItems []CreateOrderItem `json:"orderItems"`
}

// CreateOrderItem carries one validated line of a submission
type CreateOrderItem struct {
	Product   ProductRef `json:"product"`
	Quantity  int        `json:"quantity"`
	UnitPrice float64    `json:"unitPrice"`
}

// ProductRef identifies a product by id only, as the order endpoint expects
type ProductRef struct {
	ID int64 `json:"id"`
}
