package config

import (
	"fmt"
	"strconv"
	"strings"

	"order-fulfillment/internal/domain/pricing"
)

// DiscountTiers decodes "minQty:rate" pairs separated by commas, e.g. "250:0.20,100:0.15".
type DiscountTiers []pricing.DiscountTier

func (d *DiscountTiers) Decode(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		*d = nil
		return nil
	}

	parts := strings.Split(value, ",")
	tiers := make([]pricing.DiscountTier, 0, len(parts))
	for _, part := range parts {
		qty, rate, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return fmt.Errorf("discount tier %q: expected minQty:rate", part)
		}
		minQty, err := strconv.Atoi(strings.TrimSpace(qty))
		if err != nil {
			return fmt.Errorf("discount tier %q: invalid quantity: %w", part, err)
		}
		r, err := strconv.ParseFloat(strings.TrimSpace(rate), 64)
		if err != nil {
			return fmt.Errorf("discount tier %q: invalid rate: %w", part, err)
		}
		tiers = append(tiers, pricing.DiscountTier{MinQuantity: minQty, Rate: r})
	}

	*d = tiers
	return nil
}
