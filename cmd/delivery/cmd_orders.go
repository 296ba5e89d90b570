package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/AshleyKendi786/Delivery-App/internal/domain"
)

var (
	flagProduct string
	flagAddress string
	flagPrice   float64
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List and manage orders",
}

// delivery orders list shows own orders for customers and everything for
// delivery accounts.
var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the order list for your role",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, user, err := loggedIn(cmd.Context())
		if err != nil {
			return err
		}

		if err := a.loadScoped(cmd.Context(), user); err != nil {
			return err
		}

		orders := a.orders.Orders()
		if len(orders) == 0 {
			fmt.Println("No orders yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		if user.Type == domain.RoleDelivery {
			fmt.Fprintln(w, "ID\tPRODUCT\tCUSTOMER\tADDRESS\tPRICE\tSTATUS")
			for _, o := range orders {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t$%.2f\t%s\n",
					o.ID, o.ProductName, o.CustomerName, o.Address, o.Price, statusDisplay(o.Status))
			}
		} else {
			fmt.Fprintln(w, "ID\tPRODUCT\tADDRESS\tPRICE\tSTATUS")
			for _, o := range orders {
				fmt.Fprintf(w, "%d\t%s\t%s\t$%.2f\t%s\n",
					o.ID, o.ProductName, o.Address, o.Price, statusDisplay(o.Status))
			}
		}
		return w.Flush()
	},
}

// delivery orders place submits a new order. Leaving --price at zero picks
// a suggested price once an address is given.
var ordersPlaceCmd = &cobra.Command{
	Use:   "place",
	Short: "Place a new order",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, user, err := loggedIn(cmd.Context())
		if err != nil {
			return err
		}

		draft := a.orders.ApplyPriceSuggestion(domain.OrderDraft{
			ProductName: flagProduct,
			Address:     flagAddress,
			Price:       flagPrice,
		})

		order, err := a.orders.Create(cmd.Context(), user.ID, draft)
		if err != nil {
			return err
		}

		fmt.Printf("Order %d placed: %s to %s for $%.2f (%s)\n",
			order.ID, order.ProductName, order.Address, order.Price, statusDisplay(order.Status))
		return nil
	},
}

// delivery orders edit changes product, address or price of a pending order.
var ordersEditCmd = &cobra.Command{
	Use:   "edit <order-id>",
	Short: "Edit a pending order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseOrderID(args[0])
		if err != nil {
			return err
		}

		a, user, err := loggedIn(cmd.Context())
		if err != nil {
			return err
		}

		if err := a.loadScoped(cmd.Context(), user); err != nil {
			return err
		}

		current, ok := a.orders.Get(id)
		if !ok {
			return fmt.Errorf("order %d is not in your order list", id)
		}
		if !current.Editable() {
			return fmt.Errorf("order %d is %s; only pending orders can be edited", id, statusDisplay(current.Status))
		}

		patch := domain.OrderPatch{}
		if cmd.Flags().Changed("product") {
			patch.ProductName = &flagProduct
		}
		if cmd.Flags().Changed("address") {
			patch.Address = &flagAddress
		}
		if cmd.Flags().Changed("price") {
			patch.Price = &flagPrice
		}
		if !patch.EditsFields() {
			return fmt.Errorf("nothing to change: pass --product, --address or --price")
		}

		order, err := a.orders.Update(cmd.Context(), id, patch)
		if err != nil {
			return err
		}

		fmt.Printf("Order %d updated: %s to %s for $%.2f\n",
			order.ID, order.ProductName, order.Address, order.Price)
		return nil
	},
}

// delivery orders status moves an order to another status.
var ordersStatusCmd = &cobra.Command{
	Use:   "status <order-id> <status>",
	Short: "Update an order's status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseOrderID(args[0])
		if err != nil {
			return err
		}
		newStatus := args[1]

		a, user, err := loggedIn(cmd.Context())
		if err != nil {
			return err
		}

		if user.Type != domain.RoleDelivery {
			return fmt.Errorf("only delivery accounts can update order status")
		}

		if err := a.loadScoped(cmd.Context(), user); err != nil {
			return err
		}

		if current, ok := a.orders.Get(id); ok {
			options := domain.StatusOptions(current.Status)
			if !contains(options, newStatus) {
				return fmt.Errorf("order %d is %q; choose one of: %s",
					id, current.Status, strings.Join(options, ", "))
			}
		}

		order, err := a.orders.Update(cmd.Context(), id, domain.OrderPatch{Status: &newStatus})
		if err != nil {
			return err
		}

		fmt.Printf("Order %d is now %s\n", order.ID, statusDisplay(order.Status))
		return nil
	},
}

// delivery orders delete removes an order by id.
var ordersDeleteCmd = &cobra.Command{
	Use:   "delete <order-id>",
	Short: "Delete an order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseOrderID(args[0])
		if err != nil {
			return err
		}

		a, _, err := loggedIn(cmd.Context())
		if err != nil {
			return err
		}

		if err := a.orders.Remove(cmd.Context(), id); err != nil {
			return err
		}

		fmt.Printf("Order %d deleted\n", id)
		return nil
	},
}

func parseOrderID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid order id %q", raw)
	}
	return uint(id), nil
}

func contains(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}

func init() {
	for _, cmd := range []*cobra.Command{ordersPlaceCmd, ordersEditCmd} {
		cmd.Flags().StringVar(&flagProduct, "product", "", "product name")
		cmd.Flags().StringVar(&flagAddress, "address", "", "delivery address")
		cmd.Flags().Float64Var(&flagPrice, "price", 0, "price in dollars (10-100)")
	}
}
