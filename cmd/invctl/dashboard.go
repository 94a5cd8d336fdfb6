package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"invctl/internal/api"
	"invctl/internal/views"
)

func dashboardCommand(client *api.Client) *cli.Command {
	return &cli.Command{
		Name:  "dashboard",
		Usage: "show inventory and order statistics",
		Action: func(c *cli.Context) error {
			stats, err := views.LoadStats(c.Context, client)
			if err != nil {
				return err
			}

			fmt.Printf("Total products:    %d\n", stats.TotalProducts)
			fmt.Printf("Total orders:      %d\n", stats.TotalOrders)
			fmt.Printf("Low stock items:   %d\n", stats.LowStockProducts)

			if len(stats.RecentOrders) > 0 {
				fmt.Println("\nRecent orders:")
				for _, o := range stats.RecentOrders {
					fmt.Printf("  %s  %s  %.2f\n", o.OrderNumber, o.Status, o.TotalAmount)
				}
			}
			return nil
		},
	}
}
