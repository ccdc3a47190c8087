package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/storefront/pkg/cart"
)

func newMenuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "List the products and their sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			menu := a.page.Catalog()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, it := range menu.Items {
				for _, v := range it.Variants {
					fmt.Fprintf(w, "%s\t%s\t%s%s\n", it.Name, v.Size, menu.Currency, cart.FormatAmount(v.Price))
				}
			}
			return w.Flush()
		},
	}
}

func newCartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the shopping cart",
	}

	var size string
	add := &cobra.Command{
		Use:   "add NAME",
		Short: "Add one item to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := a.page.AddToCart(cmd.Context(), args[0], size)
			if err != nil {
				return userError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s). Total: %s\n", args[0], size, a.amount(total))
			return nil
		},
	}
	add.Flags().StringVar(&size, "size", "M", "size")

	list := &cobra.Command{
		Use:   "list",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.printCart(cmd)
		},
	}

	inc := &cobra.Command{
		Use:   "inc POSITION",
		Short: "Increase the quantity of a line",
		Args:  cobra.ExactArgs(1),
		RunE: a.lineCmd(func(cmd *cobra.Command, i int, _ []string) error {
			return a.page.Cart().Increase(cmd.Context(), i)
		}),
	}

	dec := &cobra.Command{
		Use:   "dec POSITION",
		Short: "Decrease the quantity of a line, stopping at one",
		Args:  cobra.ExactArgs(1),
		RunE: a.lineCmd(func(cmd *cobra.Command, i int, _ []string) error {
			_, err := a.page.Cart().Decrease(cmd.Context(), i)
			return err
		}),
	}

	set := &cobra.Command{
		Use:   "set POSITION QUANTITY",
		Short: "Set the quantity of a line",
		Args:  cobra.ExactArgs(2),
		RunE: a.lineCmd(func(cmd *cobra.Command, i int, args []string) error {
			q, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("quantity %q: %w", args[1], err)
			}
			return a.page.Cart().SetQuantity(cmd.Context(), i, q)
		}),
	}

	rm := &cobra.Command{
		Use:   "rm POSITION",
		Short: "Remove a line",
		Args:  cobra.ExactArgs(1),
		RunE: a.lineCmd(func(cmd *cobra.Command, i int, _ []string) error {
			return a.page.Cart().Remove(cmd.Context(), i)
		}),
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.page.Cart().Clear(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Cart cleared.")
			return nil
		},
	}

	cmd.AddCommand(add, list, inc, dec, set, rm, clearCmd)
	return cmd
}

// lineCmd parses the 1-based position argument and prints the cart after fn.
func (a *app) lineCmd(fn func(cmd *cobra.Command, index int, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		pos, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("position %q: %w", args[0], err)
		}
		if err := fn(cmd, pos-1, args); err != nil {
			return userError(err)
		}
		return a.printCart(cmd)
	}
}

func (a *app) printCart(cmd *cobra.Command) error {
	c := a.page.Cart()
	out := cmd.OutOrStdout()
	if c.Len() == 0 {
		fmt.Fprintln(out, "Your cart is empty.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for i, li := range c.Items() {
		fmt.Fprintf(w, "%d\t%s\t%s\tx%d\t%s\n", i+1, li.Name, li.Size, li.Quantity, a.amount(li.Subtotal()))
	}
	fmt.Fprintf(w, "\t\t\t%d items\t%s\n", c.Count(), a.amount(c.Total()))
	return w.Flush()
}

func (a *app) amount(v float64) string {
	return a.page.Catalog().Currency + cart.FormatAmount(v)
}
