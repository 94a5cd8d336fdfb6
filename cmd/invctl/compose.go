package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"invctl/internal/catalog"
	"invctl/internal/draft"
	"invctl/internal/submit"
)

// composer is the interactive order composition surface. It edits a
// draft line by line and drives the submission controller, mirroring
// the create-order form: rows can be added, removed and edited freely,
// and nothing is validated until submit.
type composer struct {
	in         *bufio.Scanner
	out        io.Writer
	draft      *draft.Order
	controller *submit.Controller
	catalog    *catalog.Catalog
}

func newComposer(in io.Reader, out io.Writer, d *draft.Order, ctrl *submit.Controller, cat *catalog.Catalog) *composer {
	return &composer{
		in:         bufio.NewScanner(in),
		out:        out,
		draft:      d,
		controller: ctrl,
		catalog:    cat,
	}
}

func (cp *composer) run(ctx context.Context) error {
	fmt.Fprintln(cp.out, "Composing a new order. Commands: add, remove <row>, product <row> <id>, qty <row> <n>, show, catalog, submit, cancel")
	cp.printDraft()

	for {
		fmt.Fprint(cp.out, "> ")
		if !cp.in.Scan() {
			return cp.in.Err()
		}

		fields := strings.Fields(cp.in.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "add":
			cp.draft.AddItem()
			cp.printDraft()

		case "remove":
			cp.remove(fields[1:])

		case "product":
			cp.update(draft.FieldProduct, fields[1:])

		case "qty":
			cp.update(draft.FieldQuantity, fields[1:])

		case "show":
			cp.printDraft()

		case "catalog":
			cp.printCatalog()

		case "submit":
			done, err := cp.submit(ctx)
			if err != nil {
				return err
			}
			if done {
				return nil
			}

		case "cancel", "quit":
			cp.controller.Cancel()
			fmt.Fprintln(cp.out, "Order cancelled.")
			return nil

		default:
			fmt.Fprintf(cp.out, "Unknown command %q\n", fields[0])
		}
	}
}

func (cp *composer) remove(args []string) {
	row, ok := cp.parseRow(args)
	if !ok {
		return
	}
	if cp.draft.Len() == 1 {
		fmt.Fprintln(cp.out, "The last row cannot be removed.")
		return
	}
	if err := cp.draft.RemoveItem(row); err != nil {
		fmt.Fprintf(cp.out, "No such row: %d\n", row+1)
		return
	}
	cp.printDraft()
}

func (cp *composer) update(field draft.Field, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(cp.out, "Usage: <command> <row> <value>")
		return
	}
	row, ok := cp.parseRow(args[:1])
	if !ok {
		return
	}
	// Raw input goes into the draft untouched; submission validates it
	cp.draft.UpdateItem(row, field, args[1])
	cp.printDraft()
}

// submit runs one submission attempt. Returns done=true when the order
// went through; a validation or server failure keeps the composer open
// with the draft intact.
func (cp *composer) submit(ctx context.Context) (bool, error) {
	order, err := cp.controller.Submit(ctx, cp.catalog)
	if err != nil {
		var unknown *submit.UnknownProductError
		switch {
		case errors.Is(err, submit.ErrEmptyOrder):
			fmt.Fprintln(cp.out, "Please add at least one product to the order.")
		case errors.As(err, &unknown):
			fmt.Fprintf(cp.out, "Unknown product: %s\n", unknown.Ref)
		default:
			fmt.Fprintf(cp.out, "Order submission failed: %v\n", err)
		}
		return false, nil
	}

	fmt.Fprintf(cp.out, "Order %s created, total %.2f\n", order.OrderNumber, order.TotalAmount)
	return true, nil
}

// parseRow reads a 1-based row number from the first argument
func (cp *composer) parseRow(args []string) (int, bool) {
	if len(args) == 0 {
		fmt.Fprintln(cp.out, "A row number is required.")
		return 0, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		fmt.Fprintf(cp.out, "Invalid row number %q\n", args[0])
		return 0, false
	}
	return n - 1, true
}

func (cp *composer) printDraft() {
	for i, item := range cp.draft.Items() {
		name := "(none)"
		if p, ok := cp.catalog.Lookup(item.ProductRef); ok {
			name = fmt.Sprintf("%s @ %.2f", p.Name, p.Price)
		} else if item.ProductRef != "" {
			name = fmt.Sprintf("(unknown id %s)", item.ProductRef)
		}
		fmt.Fprintf(cp.out, "  %d. product: %s  qty: %s\n", i+1, name, item.RequestedQuantity)
	}
}

func (cp *composer) printCatalog() {
	for _, p := range cp.catalog.Products() {
		fmt.Fprintf(cp.out, "  %d. %s - %.2f (stock: %d)\n", p.ID, p.Name, p.Price, p.Quantity)
	}
}
