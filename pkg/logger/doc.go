// Package logger builds the *slog.Logger instances shared by the storefront
// components.
//
// New returns a logger configured through functional options: output format
// (json or text), level, static attributes and ContextExtractor callbacks that
// copy values such as the current session subject from context.Context into
// every record.
//
// Attribute constructors in attr.go keep key names consistent across
// packages, e.g. logger.Component("session") or logger.Key(storage.KeyCart).
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment("development", "storefront"),
//		logger.WithContextExtractors(logger.SubjectExtractor),
//	)
//
//	ctx = logger.ContextWithSubject(ctx, "ana@example.com")
//	log.InfoContext(ctx, "session refreshed", logger.Component("session"))
//
// Components default to Discard() so that libraries stay silent unless the
// application injects a logger.
package logger
