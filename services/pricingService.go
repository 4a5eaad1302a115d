package services

import (
	"sync"

	"go.uber.org/zap"

	"oushodcloud-web/models"
)

// PricingService holds the pricing singleton in process memory, seeded from
// the default catalog on construction. Restarts reset any admin edits. Only
// the tier list is mutable; addons stay static.
type PricingService struct {
	mu     sync.RWMutex
	data   models.PricingData
	logger *zap.Logger
}

func NewPricingService(logger *zap.Logger) *PricingService {
	return &PricingService{
		data: models.PricingData{
			PricingTiers: models.DefaultPricingTiers(),
			Addons:       models.DefaultAddons(),
		},
		logger: logger,
	}
}

// GetPricingData returns a snapshot; callers never see later mutations and
// cannot write through to the singleton, not even via a tier's feature list
// or regular-price pointer.
func (s *PricingService) GetPricingData() models.PricingData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := models.PricingData{
		PricingTiers: cloneTiers(s.data.PricingTiers),
		Addons:       make([]models.Addon, len(s.data.Addons)),
	}
	copy(snapshot.Addons, s.data.Addons)
	return snapshot
}

// UpdatePricingData replaces the tier list wholesale. Any list is accepted,
// including an empty one; the admin settings form is the only writer.
func (s *PricingService) UpdatePricingData(tiers []models.PricingTier) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.PricingTiers = cloneTiers(tiers)

	s.logger.Info("pricing tiers updated", zap.Int("tier_count", len(tiers)))
	return true
}

func cloneTiers(tiers []models.PricingTier) []models.PricingTier {
	out := make([]models.PricingTier, len(tiers))
	copy(out, tiers)
	for i := range out {
		out[i].Features = append([]string(nil), out[i].Features...)
		if out[i].RegularPrice != nil {
			regularPrice := *out[i].RegularPrice
			out[i].RegularPrice = &regularPrice
		}
	}
	return out
}
