package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"invctl/internal/api"
	"invctl/internal/catalog"
	"invctl/internal/draft"
	"invctl/internal/models"
	"invctl/internal/submit"
	"invctl/internal/views"
)

func ordersCommand(client *api.Client, log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "orders",
		Usage: "browse and create orders",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list confirmed orders",
				Action: func(c *cli.Context) error {
					list := views.NewOrderList(client)
					if err := list.Refresh(c.Context); err != nil {
						return err
					}
					printOrders(list.Orders())
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "compose and submit a new order",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:    "item",
						Aliases: []string{"i"},
						Usage:   "line item as productId:quantity (repeatable); omit for interactive mode",
					},
				},
				Action: func(c *cli.Context) error {
					return createOrder(c, client, log)
				},
			},
		},
	}
}

func createOrder(c *cli.Context, client *api.Client, log *slog.Logger) error {
	// View activation: the catalog is fetched fresh each time
	cat, err := catalog.Load(c.Context, client)
	if err != nil {
		return fmt.Errorf("failed to load product catalog: %w", err)
	}

	d := draft.New()
	list := views.NewOrderList(client)
	controller := submit.NewController(client, d, func() {
		if err := list.Refresh(c.Context); err != nil {
			log.Warn("failed to refresh order list", "error", err)
		}
	}, log)

	items := c.StringSlice("item")
	if len(items) == 0 {
		composer := newComposer(os.Stdin, os.Stdout, d, controller, cat)
		return composer.run(c.Context)
	}

	// Non-interactive: fill the draft from flags, then submit once
	for i, spec := range items {
		ref, qty, err := parseItemSpec(spec)
		if err != nil {
			return err
		}
		if i > 0 {
			d.AddItem()
		}
		d.UpdateItem(i, draft.FieldProduct, ref)
		d.UpdateItem(i, draft.FieldQuantity, qty)
	}

	order, err := controller.Submit(c.Context, cat)
	if err != nil {
		return err
	}

	fmt.Printf("Order %s created, total %.2f\n", order.OrderNumber, order.TotalAmount)
	printOrders(list.Orders())
	return nil
}

// parseItemSpec splits a productId:quantity flag value. The parts are
// passed on as raw draft input; validation happens at submission.
func parseItemSpec(spec string) (ref, qty string, err error) {
	ref, qty, ok := strings.Cut(spec, ":")
	if !ok {
		return "", "", fmt.Errorf("invalid item %q: expected productId:quantity", spec)
	}
	return strings.TrimSpace(ref), strings.TrimSpace(qty), nil
}

func printOrders(orders []models.Order) {
	if len(orders) == 0 {
		fmt.Println("No orders found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tDATE\tSTATUS\tTOTAL\tITEMS")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%d\n",
			o.OrderNumber, o.OrderDate.Format("2006-01-02"), o.Status, o.TotalAmount, len(o.OrderItems))
	}
	w.Flush()
}
