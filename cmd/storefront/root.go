package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/storefront"
	"github.com/dmitrymomot/storefront/pkg/activity"
	"github.com/dmitrymomot/storefront/pkg/catalog"
	"github.com/dmitrymomot/storefront/pkg/config"
	"github.com/dmitrymomot/storefront/pkg/logger"
)

// app carries the page built by the root pre-run hook.
type app struct {
	envFile     string
	catalogPath string
	driver      string
	storePath   string
	origin      string

	log     *slog.Logger
	page    *storefront.Page
	backend *storefront.Backend
}

// displayError shows the shopper-facing message while keeping the cause.
type displayError struct {
	err error
}

func (e displayError) Error() string { return storefront.Message(e.err) }
func (e displayError) Unwrap() error { return e.err }

func userError(err error) error {
	if err == nil {
		return nil
	}
	return displayError{err: err}
}

// BuildRootCmd returns the storefront command tree.
func BuildRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "storefront",
		Short:        "Cinco Coffee storefront: accounts, sessions and cart",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.shutdown(cmd.Context())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", ".env", "optional .env file")
	flags.StringVar(&a.catalogPath, "catalog", "", "menu YAML file (default: built-in menu)")
	flags.StringVar(&a.driver, "store", "", "storage driver: memory, file, redis or mongo (default: from env)")
	flags.StringVar(&a.storePath, "store-path", "", "file store location (default: from env)")
	flags.StringVar(&a.origin, "origin", "", "origin namespace for shared stores (default: from env)")

	cmd.AddCommand(
		newSignupCmd(a),
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newMenuCmd(a),
		newCartCmd(a),
		newCheckoutCmd(a),
		newFeedbackCmd(a),
		newHealthCmd(a),
	)
	return cmd
}

func (a *app) open(cmd *cobra.Command) error {
	var cfg storefront.Config
	if err := config.Load(&cfg, config.WithOptionalEnvFiles(a.envFile)); err != nil {
		return err
	}
	if a.driver != "" {
		cfg.Storage.Driver = a.driver
	}
	if a.storePath != "" {
		cfg.Storage.Path = a.storePath
	}
	if a.origin != "" {
		cfg.Storage.Origin = a.origin
	}

	a.log = storefront.NewLogger(cfg.Log, cmd.ErrOrStderr())

	menu := catalog.Default()
	if a.catalogPath != "" {
		var err error
		if menu, err = catalog.Load(a.catalogPath); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	backend, err := storefront.OpenStore(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Storage.Driver, err)
	}
	a.backend = backend

	a.page, err = storefront.New(cfg, backend,
		storefront.WithCatalog(menu),
		storefront.WithNotifier(notifier{out: cmd.ErrOrStderr()}),
		storefront.WithLogger(a.log),
	)
	if err != nil {
		return errors.Join(err, backend.Close(ctx))
	}

	state := a.page.Load(ctx)
	a.log.DebugContext(ctx, "page loaded", slog.Bool("logged_in", state.LoggedIn), logger.Subject(state.Email))

	// Running a command is the shopper interacting with the page.
	if _, err := a.page.HandleEvent(ctx, string(activity.EventClick)); err != nil {
		a.log.WarnContext(ctx, "activity not recorded", logger.Error(err))
	}
	return nil
}

func (a *app) shutdown(ctx context.Context) error {
	if a.page != nil {
		a.page.Close()
	}
	if a.backend != nil {
		return a.backend.Close(ctx)
	}
	return nil
}

func newHealthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the storage backend is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.backend.Ping(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s store: ok\n", a.backend.Driver)
			return nil
		},
	}
}
