package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// delivery products lists the product catalog.
var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List the product catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := loggedIn(cmd.Context())
		if err != nil {
			return err
		}

		products, err := a.catalog.Products(cmd.Context())
		if err != nil {
			return err
		}

		if len(products) == 0 {
			fmt.Println("No products available.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPRICE")
		for _, p := range products {
			fmt.Fprintf(w, "%d\t%s\t$%.2f\n", p.ID, p.Name, p.Price)
		}
		return w.Flush()
	},
}
