package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "delivery",
	Short: "Delivery ordering client",
	Long:  "Command-line client for the delivery ordering backend: customers place and edit orders, delivery admins advance their status.",
}

var (
	flagEmail    string
	flagPassword string
	flagRole     string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEmail, "email", "", "account email")
	rootCmd.PersistentFlags().StringVar(&flagPassword, "password", "", "account password")
	rootCmd.PersistentFlags().StringVar(&flagRole, "type", "customer", "account type: customer or delivery")

	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(productsCmd)

	ordersCmd.AddCommand(ordersListCmd)
	ordersCmd.AddCommand(ordersPlaceCmd)
	ordersCmd.AddCommand(ordersEditCmd)
	ordersCmd.AddCommand(ordersStatusCmd)
	ordersCmd.AddCommand(ordersDeleteCmd)
}
