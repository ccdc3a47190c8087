package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/storefront/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "subject", logger.Subject("a@b.co").Key)
	assert.True(t, logger.Subject("").Equal(slog.Attr{}))
}

func TestSimpleAttrs(t *testing.T) {
	assert.Equal(t, "component", logger.Component("cart").Key)
	assert.Equal(t, "event", logger.Event("click").Key)
	assert.Equal(t, "key", logger.Key("users").Key)
	assert.Equal(t, int64(2), logger.Index(2).Value.Int64())
	assert.Equal(t, "duration", logger.Duration(time.Second).Key)
}
