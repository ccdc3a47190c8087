package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/pkg/catalog"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	c := catalog.Default()
	assert.Equal(t, "₱", c.Currency)
	assert.NotEmpty(t, c.Items)

	p, ok := c.Find("latte", "m")
	require.True(t, ok)
	assert.Equal(t, "Latte", p.Name)
	assert.Equal(t, "M", p.Size)
	assert.InDelta(t, 120.0, p.Price, 0)
	assert.NoError(t, p.Validate())

	_, ok = c.Find("Latte", "XL")
	assert.False(t, ok)
	_, ok = c.Find("Espresso Tonic", "M")
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name: "valid",
			yaml: "items:\n  - name: Latte\n    variants:\n      - {size: M, price: 120.5}\n",
		},
		{
			name:    "not yaml",
			yaml:    "items: [",
			wantErr: catalog.ErrFailedToParseYAML,
		},
		{
			name:    "empty",
			yaml:    "currency: x\n",
			wantErr: catalog.ErrInvalidCatalog,
		},
		{
			name:    "bad name",
			yaml:    "items:\n  - name: \"Latte & Co\"\n    variants:\n      - {size: M, price: 1}\n",
			wantErr: catalog.ErrInvalidCatalog,
		},
		{
			name:    "duplicate product",
			yaml:    "items:\n  - name: Latte\n    variants: [{size: M, price: 1}]\n  - name: latte\n    variants: [{size: L, price: 1}]\n",
			wantErr: catalog.ErrInvalidCatalog,
		},
		{
			name:    "duplicate size",
			yaml:    "items:\n  - name: Latte\n    variants: [{size: M, price: 1}, {size: m, price: 2}]\n",
			wantErr: catalog.ErrInvalidCatalog,
		},
		{
			name:    "bad price",
			yaml:    "items:\n  - name: Latte\n    variants: [{size: M, price: 1.005}]\n",
			wantErr: catalog.ErrInvalidCatalog,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := catalog.Parse([]byte(tt.yaml))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, c.Items, 1)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - name: Mocha\n    image: m.jpg\n    variants: [{size: M, price: 135.5}]\n"), 0o600))

	c, err := catalog.Load(path)
	require.NoError(t, err)
	p, ok := c.Find("Mocha", "M")
	require.True(t, ok)
	assert.Equal(t, "m.jpg", p.Image)

	_, err = catalog.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
