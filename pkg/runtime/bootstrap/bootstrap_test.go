package bootstrap

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/parking-atlas/pkg/config"
	profiles "github.com/de-tools/parking-atlas/pkg/services/config"
	"github.com/de-tools/parking-atlas/pkg/services/parking"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	return cfg
}

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNew_EmbeddedSample(t *testing.T) {
	ctx := testContext(t)

	components, err := New(ctx, defaultConfig(t))

	require.NoError(t, err)
	assert.Len(t, components.Catalog.Fleet(), 5)
	assert.Equal(t, "USD", components.Money.Code())
	assert.InDelta(t, 65.0, components.Service.Price(ctx).PricePerMinute, 1e-9)
	assert.Equal(t, "$719,875", components.Money.Format(components.Service.Dashboard(ctx).TotalCost))
}

func TestNew_PricingProfile(t *testing.T) {
	ctx := testContext(t)
	cfg := defaultConfig(t)
	cfg.Pricing.ProfilesPath = writeFile(t, "profiles.ini", `[oslo]
rate_per_minute = 80
currency = NOK
locale = nb-NO
`)
	cfg.Pricing.Profile = "oslo"

	components, err := New(ctx, cfg)

	require.NoError(t, err)
	assert.InDelta(t, 80.0, components.Service.Price(ctx).PricePerMinute, 1e-9)
	assert.Equal(t, "NOK", components.Money.Code())
}

func TestNew_Errors(t *testing.T) {
	ctx := testContext(t)

	t.Run("missing profile", func(t *testing.T) {
		cfg := defaultConfig(t)
		cfg.Pricing.ProfilesPath = writeFile(t, "profiles.ini", "[default]\nrate_per_minute = 65\n")
		cfg.Pricing.Profile = "tokyo"

		_, err := New(ctx, cfg)
		assert.ErrorIs(t, err, profiles.ErrProfileNotFound)
	})

	t.Run("dataset with unknown reference", func(t *testing.T) {
		cfg := defaultConfig(t)
		cfg.Dataset.Path = writeFile(t, "fleet.yaml", `aircraft:
  - id: b777-1
    model: Boeing 777
airports:
  - id: jfk
    name: John F. Kennedy International Airport
    code: JFK
    city: New York
    country: United States
    coordinates: [-73.7781, 40.6413]
parking:
  - {aircraft_id: b777-1, airport_id: lhr, date: "2023-06-10", parking_minutes: 320}
`)

		_, err := New(ctx, cfg)
		assert.ErrorIs(t, err, parking.ErrUnknownReference)
	})

	t.Run("unknown currency", func(t *testing.T) {
		cfg := defaultConfig(t)
		cfg.Pricing.Currency = "XX"

		_, err := New(ctx, cfg)
		assert.Error(t, err)
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "WARN")
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	_, err = NewLogger(&buf, "loud")
	assert.Error(t, err)
}
