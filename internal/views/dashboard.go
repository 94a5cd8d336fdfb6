package views

import (
	"context"

	"golang.org/x/sync/errgroup"

	"invctl/internal/models"
)

// Products with fewer units on hand than this are counted as low stock
const lowStockThreshold = 10

// How many recent orders the dashboard shows
const recentOrderLimit = 5

// Stats is the dashboard aggregation over products and orders
type Stats struct {
	TotalProducts    int
	TotalOrders      int
	LowStockProducts int
	RecentOrders     []models.Order
}

// DashboardClient provides the two fetches the dashboard aggregates
type DashboardClient interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
}

// LoadStats fetches products and orders in parallel and aggregates them.
// Either fetch failing fails the whole load.
func LoadStats(ctx context.Context, client DashboardClient) (*Stats, error) {
	var (
		products []models.Product
		orders   []models.Order
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = client.ListProducts(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = client.ListOrders(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalProducts: len(products),
		TotalOrders:   len(orders),
	}

	for _, p := range products {
		if p.Quantity < lowStockThreshold {
			stats.LowStockProducts++
		}
	}

	recent := orders
	if len(recent) > recentOrderLimit {
		recent = recent[:recentOrderLimit]
	}
	stats.RecentOrders = recent

	return stats, nil
}
