package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"invctl/internal/api"
	"invctl/internal/views"
)

func historyCommand(client *api.Client) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "inspect the inventory audit trail",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "product", Usage: "filter by product id"},
			&cli.StringFlag{Name: "action", Usage: "filter by action (ADD, UPDATE, DELETE, ORDER)"},
		},
		Action: func(c *cli.Context) error {
			history, err := views.FetchHistory(c.Context, client, c.Int64("product"), c.String("action"))
			if err != nil {
				return err
			}

			if len(history) == 0 {
				fmt.Println("No history records found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tACTION\tPRODUCT\tQTY CHANGE\tDESCRIPTION")
			for _, h := range history {
				product := ""
				if h.Product != nil {
					product = h.Product.Name
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d -> %d\t%s\n",
					h.CreatedAt.Format("2006-01-02 15:04"), h.Action, product,
					h.PreviousQuantity, h.NewQuantity, h.Description)
			}
			w.Flush()
			return nil
		},
	}
}
