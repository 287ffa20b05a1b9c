package config

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/ini.v1"
)

var ErrProfileNotFound = errors.New("pricing profile not found")

// Profile is a named pricing setup read from an INI profiles file:
//
//	[default]
//	rate_per_minute = 65
//	currency        = USD
//	locale          = en-US
type Profile struct {
	Name          string
	RatePerMinute float64
	Currency      string
	Locale        string
}

type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (Profile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load pricing profiles %s: %w", path, err)
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

// GetProfile returns the named profile. Keys missing from the section stay
// zero so callers can fall back to their own defaults.
func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (Profile, error) {
	section, err := cr.cfg.GetSection(name)
	if err != nil || len(section.Keys()) == 0 {
		return Profile{}, fmt.Errorf("%s: %w", name, ErrProfileNotFound)
	}

	profile := Profile{
		Name:     name,
		Currency: section.Key("currency").String(),
		Locale:   section.Key("locale").String(),
	}
	if section.HasKey("rate_per_minute") {
		rate, err := section.Key("rate_per_minute").Float64()
		if err != nil {
			return Profile{}, fmt.Errorf("profile %s: invalid rate_per_minute: %w", name, err)
		}
		if rate <= 0 {
			return Profile{}, fmt.Errorf("profile %s: rate_per_minute must be greater than 0", name)
		}
		profile.RatePerMinute = rate
	}

	return profile, nil
}
