package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"invctl/internal/api"
	"invctl/internal/models"
)

func productsCommand(client *api.Client) *cli.Command {
	return &cli.Command{
		Name:  "products",
		Usage: "browse and manage products",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list all products",
				Action: func(c *cli.Context) error {
					products, err := client.ListProducts(c.Context)
					if err != nil {
						return err
					}
					printProducts(products)
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "create a product",
				Flags: productFlags(),
				Action: func(c *cli.Context) error {
					product, err := client.CreateProduct(c.Context, productRequestFromFlags(c))
					if err != nil {
						return err
					}
					fmt.Printf("Product created: %s (id %d)\n", product.Name, product.ID)
					return nil
				},
			},
			{
				Name:      "update",
				Usage:     "update a product",
				ArgsUsage: "<id>",
				Flags:     productFlags(),
				Action: func(c *cli.Context) error {
					id, err := parseID(c.Args().First())
					if err != nil {
						return err
					}
					product, err := client.UpdateProduct(c.Context, id, productRequestFromFlags(c))
					if err != nil {
						return err
					}
					fmt.Printf("Product updated: %s (id %d)\n", product.Name, product.ID)
					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "delete a product",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					id, err := parseID(c.Args().First())
					if err != nil {
						return err
					}
					if err := client.DeleteProduct(c.Context, id); err != nil {
						return err
					}
					fmt.Println("Product deleted")
					return nil
				},
			},
		},
	}
}

func productFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "sku", Required: true},
		&cli.StringFlag{Name: "name", Required: true},
		&cli.StringFlag{Name: "description"},
		&cli.StringFlag{Name: "price", Required: true},
		&cli.StringFlag{Name: "quantity", Required: true},
		&cli.StringFlag{Name: "category"},
	}
}

func productRequestFromFlags(c *cli.Context) models.ProductRequest {
	return models.ProductRequest{
		SKU:         c.String("sku"),
		Name:        c.String("name"),
		Description: c.String("description"),
		Price:       c.String("price"),
		Quantity:    c.String("quantity"),
		Category:    c.String("category"),
	}
}

func printProducts(products []models.Product) {
	if len(products) == 0 {
		fmt.Println("No products found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSKU\tNAME\tPRICE\tSTOCK\tCATEGORY")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%d\t%s\n", p.ID, p.SKU, p.Name, p.Price, p.Quantity, p.Category)
	}
	w.Flush()
}
