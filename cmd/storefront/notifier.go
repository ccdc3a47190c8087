package main

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrymomot/storefront"
)

// notifier prints session expiry notices to the terminal.
type notifier struct {
	out io.Writer
}

func (n notifier) NotifyExpired(context.Context) {
	fmt.Fprintln(n.out, storefront.MsgSessionExpired)
}

func (n notifier) DismissNotice(context.Context) {}

func (n notifier) RedirectToLogin(context.Context) {
	fmt.Fprintln(n.out, "Run `storefront login` to continue.")
}
