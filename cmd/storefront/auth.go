package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/storefront"
	"github.com/dmitrymomot/storefront/pkg/validator"
)

func newSignupCmd(a *app) *cobra.Command {
	var form validator.SignupForm

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := a.page.Signup(cmd.Context(), form)
			if err != nil {
				return userError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), storefront.MsgSignupSuccess)
			fmt.Fprintln(cmd.OutOrStdout(), state.Greeting)
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Name, "name", "", "display name")
	cmd.Flags().StringVar(&form.Email, "email", "", "e-mail address")
	cmd.Flags().StringVar(&form.Password, "password", "", "password")
	return cmd
}

func newLoginCmd(a *app) *cobra.Command {
	var form validator.LoginForm

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to an existing account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := a.page.Login(cmd.Context(), form)
			if err != nil {
				return userError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), storefront.MsgLoginSuccess)
			fmt.Fprintln(cmd.OutOrStdout(), state.Greeting)
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Email, "email", "", "e-mail address")
	cmd.Flags().StringVar(&form.Password, "password", "", "password")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.page.Logout(cmd.Context()); err != nil {
				return userError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := a.page.AuthState(cmd.Context())
			if !state.LoggedIn {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", state.Greeting, state.Email)
			return nil
		},
	}
}
