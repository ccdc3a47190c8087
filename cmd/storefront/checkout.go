package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/storefront"
	"github.com/dmitrymomot/storefront/pkg/cart"
	"github.com/dmitrymomot/storefront/pkg/checkout"
	"github.com/dmitrymomot/storefront/pkg/validator"
)

func newCheckoutCmd(a *app) *cobra.Command {
	var (
		form  checkout.OrderForm
		place bool
	)

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Review the order, or place it with --place",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			summary, err := a.page.Checkout(ctx)
			if err != nil {
				return userError(err)
			}
			if !place {
				if err := a.printCart(cmd); err != nil {
					return err
				}
				fmt.Fprintf(out, "Subtotal: %s%s\nDelivery: %s%s\nTotal:    %s%s\n",
					summary.Currency, cart.FormatAmount(summary.Subtotal),
					summary.Currency, cart.FormatAmount(summary.DeliveryFee),
					summary.Currency, cart.FormatAmount(summary.GrandTotal))
				return nil
			}

			conf, err := a.page.PlaceOrder(ctx, form)
			if err != nil {
				return userError(err)
			}
			fmt.Fprintf(out, "Order placed! Your order number is #%d.\n", conf.Reference)
			fmt.Fprintf(out, "Total: %s%s (%s)\n", conf.Currency, cart.FormatAmount(conf.GrandTotal), conf.PaymentMethod)
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVar(&place, "place", false, "place the order")
	f.StringVar(&form.FirstName, "first-name", "", "first name")
	f.StringVar(&form.LastName, "last-name", "", "last name")
	f.StringVar(&form.Email, "email", "", "contact e-mail")
	f.StringVar(&form.Phone, "phone", "", "phone number")
	f.StringVar(&form.Address, "address", "", "street address")
	f.StringVar(&form.City, "city", "", "city")
	f.StringVar(&form.Zip, "zip", "", "ZIP code")
	f.StringVar(&form.PaymentMethod, "payment", "", "payment method (default: cash_on_delivery)")
	return cmd
}

func newFeedbackCmd(a *app) *cobra.Command {
	var form validator.FeedbackForm

	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Send a message from the contact page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.page.SubmitFeedback(cmd.Context(), form); err != nil {
				return userError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), storefront.MsgFeedbackSent)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&form.Name, "name", "", "your name")
	f.StringVar(&form.Email, "email", "", "your e-mail")
	f.StringVar(&form.Subject, "subject", "", "subject")
	f.StringVar(&form.Message, "message", "", "message")
	return cmd
}
