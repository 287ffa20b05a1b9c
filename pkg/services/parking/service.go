package parking

import (
	"context"
	"errors"

	"github.com/de-tools/parking-atlas/pkg/models/domain"
	"github.com/de-tools/parking-atlas/pkg/store/pricing"
)

var ErrUnknownFilter = errors.New("unknown filter value")

// Reporter is the read-only query surface used by the terminal and HTTP views.
type Reporter interface {
	Dashboard(ctx context.Context) domain.Dashboard
	Fleet(ctx context.Context) domain.Fleet
	Analytics(ctx context.Context, f domain.Filter) (domain.Analytics, error)
	Global(ctx context.Context, continent string) (domain.Global, error)
	LookupAircraft(id string) (domain.Aircraft, bool)
	LookupAirport(id string) (domain.Airport, bool)
	Price(ctx context.Context) pricing.Price
}

var _ Reporter = (*Service)(nil)

type Service struct {
	catalog *Catalog
	prices  pricing.Store
}

func NewService(catalog *Catalog, prices pricing.Store) *Service {
	return &Service{
		catalog: catalog,
		prices:  prices,
	}
}

func (s *Service) Catalog() *Catalog {
	return s.catalog
}

func (s *Service) LookupAircraft(id string) (domain.Aircraft, bool) {
	return s.catalog.LookupAircraft(id)
}

func (s *Service) LookupAirport(id string) (domain.Airport, bool) {
	return s.catalog.LookupAirport(id)
}

func (s *Service) Price(ctx context.Context) pricing.Price {
	return s.prices.GetParkingPrice(ctx)
}

// Cost prices minutes at the configured rate.
func (s *Service) Cost(ctx context.Context, minutes int64) float64 {
	return Cost(minutes, s.Price(ctx).PricePerMinute)
}
