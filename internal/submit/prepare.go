package submit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"invctl/internal/catalog"
	"invctl/internal/draft"
	"invctl/internal/models"
)

var (
	// ErrEmptyOrder is returned when no line item passes the selection
	// filter
	ErrEmptyOrder = errors.New("order must contain at least one valid item")
)

// UnknownProductError is returned when a candidate line references a
// product that is not in the catalog snapshot. It aborts the whole
// submission; no partial request is sent.
type UnknownProductError struct {
	Ref string
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("product %q not found in catalog", e.Ref)
}

// Prepare validates a draft against the catalog and builds the
// submission payload. Lines with an unset product or a quantity that is
// not a positive integer are dropped silently; that is the selection
// filter, not an error. If nothing survives the filter, Prepare fails
// with ErrEmptyOrder and the draft is left untouched.
//
// Each surviving line captures the resolved product's current unit
// price. Stock sufficiency is not checked here; that is the server's
// concern.
func Prepare(d *draft.Order, cat *catalog.Catalog) (*models.CreateOrderRequest, error) {
	type candidate struct {
		ref      string
		quantity int
	}

	var candidates []candidate
	for _, item := range d.Items() {
		if item.ProductRef == "" {
			continue
		}
		qty, ok := parseQuantity(item.RequestedQuantity)
		if !ok || qty <= 0 {
			continue
		}
		candidates = append(candidates, candidate{ref: item.ProductRef, quantity: qty})
	}

	if len(candidates) == 0 {
		return nil, ErrEmptyOrder
	}

	orderItems := make([]models.CreateOrderItem, 0, len(candidates))
	for _, c := range candidates {
		product, ok := cat.Lookup(c.ref)
		if !ok {
			return nil, &UnknownProductError{Ref: c.ref}
		}

		orderItems = append(orderItems, models.CreateOrderItem{
			Product:   models.ProductRef{ID: product.ID},
			Quantity:  c.quantity,
			UnitPrice: product.Price,
		})
	}

	return &models.CreateOrderRequest{OrderItems: orderItems}, nil
}

// parseQuantity parses a raw quantity field as an integer
func parseQuantity(raw string) (int, bool) {
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return qty, true
}
