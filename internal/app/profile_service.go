package app

import (
	"context"
	"log"
	"math"
	"strconv"
	"sync"

	"dailytrack/internal/domain"
)

// ProfileService keeps the body measurements used for BMI. Each field is
// stored under its own key.
type ProfileService struct {
	mu      sync.Mutex
	kv      domain.KeyValueStore
	units   domain.UnitOptions
	profile domain.BodyProfile
}

// NewProfileService loads the body profile from kv. Missing or unreadable
// measurements load as zero; missing or unknown units load as the defaults in
// units.
func NewProfileService(ctx context.Context, kv domain.KeyValueStore, units domain.UnitOptions) *ProfileService {
	s := &ProfileService{kv: kv, units: units}
	s.profile = domain.BodyProfile{
		Weight:     s.loadMeasurement(ctx, domain.KeyWeight),
		WeightUnit: units.WeightUnitOrDefault(s.loadText(ctx, domain.KeyWeightUnit)),
		Height:     s.loadMeasurement(ctx, domain.KeyHeight),
		HeightUnit: units.HeightUnitOrDefault(s.loadText(ctx, domain.KeyHeightUnit)),
	}
	return s
}

// Units returns the recognised units and their defaults.
func (s *ProfileService) Units() domain.UnitOptions {
	return s.units
}

// Profile returns the current body profile.
func (s *ProfileService) Profile() domain.BodyProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// SaveProfile replaces the body profile and writes every field. Unknown
// units are replaced by the defaults; negative or non-finite measurements are
// stored as zero.
func (s *ProfileService) SaveProfile(ctx context.Context, p domain.BodyProfile) domain.BodyProfile {
	p.WeightUnit = s.units.WeightUnitOrDefault(string(p.WeightUnit))
	p.HeightUnit = s.units.HeightUnitOrDefault(string(p.HeightUnit))
	p.Weight = measurement(p.Weight)
	p.Height = measurement(p.Height)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
	s.store(ctx, domain.KeyWeight, formatMeasurement(p.Weight))
	s.store(ctx, domain.KeyWeightUnit, string(p.WeightUnit))
	s.store(ctx, domain.KeyHeight, formatMeasurement(p.Height))
	s.store(ctx, domain.KeyHeightUnit, string(p.HeightUnit))
	return p
}

// BMI computes the reading for the current profile.
func (s *ProfileService) BMI() domain.BMIResult {
	return s.Profile().BMI()
}

func (s *ProfileService) loadText(ctx context.Context, key string) string {
	v, found, err := s.kv.Get(ctx, key)
	if err != nil {
		log.Printf("load %s: %v", key, err)
		return ""
	}
	if !found {
		return ""
	}
	return v
}

func (s *ProfileService) loadMeasurement(ctx context.Context, key string) float64 {
	return measurement(domain.ParseNumber(s.loadText(ctx, key)))
}

func (s *ProfileService) store(ctx context.Context, key, value string) {
	if err := s.kv.Set(ctx, key, value); err != nil {
		log.Printf("persist %s: %v", key, err)
	}
}

func measurement(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// formatMeasurement writes an unset measurement as an empty field.
func formatMeasurement(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
