package pricing

import (
	"context"
)

const (
	// DefaultRatePerMinute is the parking fee charged for one minute of ground time.
	DefaultRatePerMinute = 65
	DefaultCurrencyCode  = "USD"
)

type Price struct {
	PricePerMinute float64
	CurrencyCode   string
}

type Store interface {
	GetParkingPrice(ctx context.Context) Price
}

// Settings configure the flat parking rate. Zero values fall back to the defaults.
type Settings struct {
	RatePerMinute float64
	CurrencyCode  string
}

type pricingStore struct {
	price Price
}

func NewStore(settings Settings) Store {
	price := Price{PricePerMinute: settings.RatePerMinute, CurrencyCode: settings.CurrencyCode}
	if price.PricePerMinute == 0 {
		price.PricePerMinute = DefaultRatePerMinute
	}
	if price.CurrencyCode == "" {
		price.CurrencyCode = DefaultCurrencyCode
	}
	return &pricingStore{price: price}
}

// GetParkingPrice returns the same rate for every airport and aircraft.
func (p *pricingStore) GetParkingPrice(_ context.Context) Price {
	return p.price
}
