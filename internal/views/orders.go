package views

import (
	"context"
	"sync"

	"invctl/internal/models"
)

// OrderFetcher loads confirmed orders from the back end
type OrderFetcher interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
}

// OrderList is the confirmed-orders view. It refetches on demand; the
// submission controller's success hook is expected to call Refresh so
// the list reflects a just-created order.
type OrderList struct {
	fetcher OrderFetcher

	mu     sync.RWMutex
	orders []models.Order
}

// NewOrderList creates an empty order list view
func NewOrderList(fetcher OrderFetcher) *OrderList {
	return &OrderList{fetcher: fetcher}
}

// Refresh refetches the order list. On error the previous contents are
// kept.
func (l *OrderList) Refresh(ctx context.Context) error {
	orders, err := l.fetcher.ListOrders(ctx)
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.orders = orders
	l.mu.Unlock()
	return nil
}

// Orders returns the most recently fetched orders
func (l *OrderList) Orders() []models.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.orders
}
