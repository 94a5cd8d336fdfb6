package views

import (
	"context"

	"invctl/internal/models"
)

// HistoryFetcher provides the three history endpoints
type HistoryFetcher interface {
	History(ctx context.Context) ([]models.InventoryHistory, error)
	HistoryByProduct(ctx context.Context, productID int64) ([]models.InventoryHistory, error)
	HistoryByAction(ctx context.Context, action string) ([]models.InventoryHistory, error)
}

// FetchHistory loads the inventory audit trail with an optional filter.
// The filters are mutually exclusive; a product filter takes precedence
// over an action filter, and with neither set the full trail is
// returned.
func FetchHistory(ctx context.Context, fetcher HistoryFetcher, productID int64, action string) ([]models.InventoryHistory, error) {
	switch {
	case productID > 0:
		return fetcher.HistoryByProduct(ctx, productID)
	case action != "":
		return fetcher.HistoryByAction(ctx, action)
	default:
		return fetcher.History(ctx)
	}
}
