package bootstrap

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/de-tools/parking-atlas/pkg/config"
	"github.com/de-tools/parking-atlas/pkg/services/currency"
	"github.com/de-tools/parking-atlas/pkg/services/parking"
	profiles "github.com/de-tools/parking-atlas/pkg/services/config"
	"github.com/de-tools/parking-atlas/pkg/store/dataset"
	"github.com/de-tools/parking-atlas/pkg/store/pricing"
	"github.com/rs/zerolog"
)

// Components are the read-only services shared by the CLI and the web API.
type Components struct {
	Catalog *parking.Catalog
	Service *parking.Service
	Money   *currency.Formatter
}

func NewLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// New loads the dataset and pricing described by cfg.
func New(ctx context.Context, cfg *config.Config) (*Components, error) {
	logger := zerolog.Ctx(ctx)

	pricingCfg, err := resolvePricing(ctx, cfg.Pricing)
	if err != nil {
		return nil, err
	}

	ds, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	catalog, err := parking.NewCatalog(ds)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}

	money, err := currency.NewFormatter(pricingCfg.Currency, pricingCfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("failed to create currency formatter: %w", err)
	}

	prices := pricing.NewStore(pricing.Settings{
		RatePerMinute: pricingCfg.RatePerMinute,
		CurrencyCode:  pricingCfg.Currency,
	})

	source := cfg.Dataset.Path
	if source == "" {
		source = "embedded sample"
	}
	logger.Info().
		Str("dataset", source).
		Int("aircraft", len(ds.Aircraft)).
		Int("airports", len(ds.Airports)).
		Int("records", len(ds.Records)).
		Float64("rate_per_minute", prices.GetParkingPrice(ctx).PricePerMinute).
		Str("currency", money.Code()).
		Msg("parking catalog loaded")

	return &Components{
		Catalog: catalog,
		Service: parking.NewService(catalog, prices),
		Money:   money,
	}, nil
}

// resolvePricing overlays the configured profile, if any, on the plain settings.
func resolvePricing(ctx context.Context, cfg config.PricingConfig) (config.PricingConfig, error) {
	if cfg.ProfilesPath == "" {
		return cfg, nil
	}

	registry, err := profiles.NewRegistry(cfg.ProfilesPath)
	if err != nil {
		return cfg, err
	}
	profile, err := registry.GetProfile(ctx, cfg.Profile)
	if err != nil {
		return cfg, fmt.Errorf("failed to resolve pricing profile: %w", err)
	}

	if profile.RatePerMinute > 0 {
		cfg.RatePerMinute = profile.RatePerMinute
	}
	if profile.Currency != "" {
		cfg.Currency = profile.Currency
	}
	if profile.Locale != "" {
		cfg.Locale = profile.Locale
	}

	zerolog.Ctx(ctx).Debug().Str("profile", profile.Name).Msg("pricing profile applied")
	return cfg, nil
}
