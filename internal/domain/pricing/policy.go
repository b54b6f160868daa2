package pricing

import (
	"errors"
	"fmt"
	"sort"
)

const (
	// DefaultShippingRate is charged per kg per km.
	DefaultShippingRate = 0.01
	// DefaultShippingThreshold caps shipping as a share of the discounted order value.
	DefaultShippingThreshold = 0.15
)

var (
	ErrNegativeShippingRate      = errors.New("shipping rate cannot be negative")
	ErrNegativeShippingThreshold = errors.New("shipping threshold cannot be negative")
	ErrInvalidDiscountTier       = errors.New("invalid discount tier")
	ErrDuplicateDiscountTier     = errors.New("duplicate discount tier threshold")
)

type DiscountTier struct {
	MinQuantity int
	Rate        float64
}

// DefaultDiscountTiers lists volume discounts from the highest threshold down.
var DefaultDiscountTiers = []DiscountTier{
	{MinQuantity: 250, Rate: 0.20},
	{MinQuantity: 100, Rate: 0.15},
	{MinQuantity: 50, Rate: 0.10},
	{MinQuantity: 25, Rate: 0.05},
}

type Policy struct {
	shippingRate      float64
	shippingThreshold float64
	tiers             []DiscountTier
}

func NewPolicy(shippingRate, shippingThreshold float64, tiers []DiscountTier) (Policy, error) {
	if shippingRate < 0 {
		return Policy{}, ErrNegativeShippingRate
	}
	if shippingThreshold < 0 {
		return Policy{}, ErrNegativeShippingThreshold
	}

	sorted := make([]DiscountTier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinQuantity > sorted[j].MinQuantity
	})

	for i, tier := range sorted {
		if tier.MinQuantity <= 0 || tier.Rate < 0 || tier.Rate >= 1 {
			return Policy{}, fmt.Errorf("%w: min quantity %d, rate %v", ErrInvalidDiscountTier, tier.MinQuantity, tier.Rate)
		}
		if i > 0 && sorted[i-1].MinQuantity == tier.MinQuantity {
			return Policy{}, fmt.Errorf("%w: %d", ErrDuplicateDiscountTier, tier.MinQuantity)
		}
	}

	return Policy{
		shippingRate:      shippingRate,
		shippingThreshold: shippingThreshold,
		tiers:             sorted,
	}, nil
}

func DefaultPolicy() Policy {
	p, err := NewPolicy(DefaultShippingRate, DefaultShippingThreshold, DefaultDiscountTiers)
	if err != nil {
		panic("default pricing policy is invalid: " + err.Error())
	}
	return p
}

// Discount returns the amount taken off subtotal for the highest tier quantity reaches.
func (p Policy) Discount(quantity int, subtotal float64) float64 {
	for _, tier := range p.tiers {
		if quantity >= tier.MinQuantity {
			return subtotal * tier.Rate
		}
	}
	return 0
}

// ShippingCost prices moving quantity units of unitWeightKg over distanceKm.
func (p Policy) ShippingCost(distanceKm float64, quantity int, unitWeightKg float64) float64 {
	return distanceKm * float64(quantity) * unitWeightKg * p.shippingRate
}

// ShippingLimit is the highest shipping cost an order of the given discounted value may carry.
func (p Policy) ShippingLimit(discountedValue float64) float64 {
	return p.shippingThreshold * discountedValue
}

func (p Policy) ShippingRate() float64      { return p.shippingRate }
func (p Policy) ShippingThreshold() float64 { return p.shippingThreshold }

func (p Policy) Tiers() []DiscountTier {
	out := make([]DiscountTier, len(p.tiers))
	copy(out, p.tiers)
	return out
}
