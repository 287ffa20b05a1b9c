package parking

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/de-tools/parking-atlas/pkg/adapters"
	"github.com/de-tools/parking-atlas/pkg/models/api"
	"github.com/de-tools/parking-atlas/pkg/models/domain"
	"github.com/de-tools/parking-atlas/pkg/services/parking"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	reporter parking.Reporter
	money    adapters.MoneyFormatter
}

func NewHandler(reporter parking.Reporter, money adapters.MoneyFormatter) *Handler {
	return &Handler{
		reporter: reporter,
		money:    money,
	}
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard := h.reporter.Dashboard(r.Context())
	writeJSON(w, r, adapters.MapDashboardDomainToApi(dashboard, h.money))
}

func (h *Handler) GetFleet(w http.ResponseWriter, r *http.Request) {
	fleet := h.reporter.Fleet(r.Context())
	writeJSON(w, r, adapters.MapFleetDomainToApi(fleet, h.money))
}

func (h *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()
	filter := domain.Filter{
		AircraftID: query.Get("aircraft"),
		AirportID:  query.Get("airport"),
		Continent:  query.Get("continent"),
	}

	analytics, err := h.reporter.Analytics(ctx, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapAnalyticsDomainToApi(analytics, h.money))
}

func (h *Handler) GetGlobal(w http.ResponseWriter, r *http.Request) {
	global, err := h.reporter.Global(r.Context(), r.URL.Query().Get("continent"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapGlobalDomainToApi(global, h.money))
}

func (h *Handler) GetAircraft(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	aircraft, ok := h.reporter.LookupAircraft(id)
	if !ok {
		http.Error(w, fmt.Sprintf("aircraft %q not found", id), http.StatusNotFound)
		return
	}
	writeJSON(w, r, adapters.MapAircraftDomainToApi(aircraft))
}

func (h *Handler) GetAirport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	airport, ok := h.reporter.LookupAirport(id)
	if !ok {
		http.Error(w, fmt.Sprintf("airport %q not found", id), http.StatusNotFound)
		return
	}
	writeJSON(w, r, adapters.MapAirportDomainToApi(airport, parking.ClassifyContinent(airport.Country)))
}

func (h *Handler) GetContinent(w http.ResponseWriter, r *http.Request) {
	// chi matches on RawPath when it is set, leaving the segment escaped.
	country := chi.URLParam(r, "country")
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(country)
		if err != nil {
			http.Error(w, "invalid country", http.StatusBadRequest)
			return
		}
		country = unescaped
	}
	writeJSON(w, r, api.Continent{
		Country:   country,
		Continent: string(parking.ClassifyContinent(country)),
	})
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, parking.ErrUnknownFilter) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, r *http.Request, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("failed to encode response")
	}
}
