package service

import (
	"math"

	"github.com/mikolimka20-hash/starsmarket.io/pkg/apperror"
)

// Conversion constants for stars -> provider currency. The unit rate is
// the base exchange rate with the marketplace markup folded in.
const (
	baseStarRate = 1.50
	markupFactor = 1.04
	unitRate     = baseStarRate * markupFactor
)

// PricingServiceImpl implements ports.PricingService. Pure and
// deterministic: same star count always yields the same amount.
type PricingServiceImpl struct{}

// NewPricingService creates a new PricingServiceImpl.
func NewPricingService() *PricingServiceImpl {
	return &PricingServiceImpl{}
}

// PriceForStars converts a star count to a currency amount rounded to
// exactly two decimal places.
func (s *PricingServiceImpl) PriceForStars(stars int64) (float64, error) {
	if stars <= 0 {
		return 0, apperror.ErrInvalidPrice()
	}
	return math.Round(float64(stars)*unitRate*100) / 100, nil
}

// MinorUnits converts a two-decimal currency amount to the provider's
// integer minor units.
func (s *PricingServiceImpl) MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
