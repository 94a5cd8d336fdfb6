package catalog

import (
	"context"
	"strconv"

	"invctl/internal/models"
)

// Fetcher loads the current product list from the back end
type Fetcher interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
}

// Catalog is a read-only snapshot of the product list, taken once per
// view activation. It is never mutated after Load; staleness is bounded
// by the next activation's refetch.
type Catalog struct {
	products []models.Product
	byRef    map[string]models.Product
}

// Load fetches the product list and builds a fresh catalog
func Load(ctx context.Context, fetcher Fetcher) (*Catalog, error) {
	products, err := fetcher.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return FromProducts(products), nil
}

// FromProducts builds a catalog from an already-fetched product list
func FromProducts(products []models.Product) *Catalog {
	byRef := make(map[string]models.Product, len(products))
	for _, p := range products {
		byRef[strconv.FormatInt(p.ID, 10)] = p
	}

	return &Catalog{
		products: products,
		byRef:    byRef,
	}
}

// Products returns all products in fetch order
func (c *Catalog) Products() []models.Product {
	return c.products
}

// Lookup resolves a product reference (the string form of a product id)
// against the snapshot
func (c *Catalog) Lookup(ref string) (models.Product, bool) {
	p, ok := c.byRef[ref]
	return p, ok
}

// Len returns the number of products in the snapshot
func (c *Catalog) Len() int {
	return len(c.products)
}
