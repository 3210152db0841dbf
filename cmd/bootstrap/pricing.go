package bootstrap

import (
	"hotel-quote-engine/internal/domain/pricing"
	"hotel-quote-engine/internal/domain/stay"
	"hotel-quote-engine/internal/infra/rules"
	"hotel-quote-engine/internal/pkg/config"
	"hotel-quote-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var PricingModule = fx.Module("pricing",
	fx.Provide(
		NewPolicy,
		NewCalendar,
		NewPricingDefaults,
		fx.Annotate(
			pricing.NewDefaultPriceCalculator,
			fx.As(new(pricing.PriceCalculator)),
		),
	),
)

// An empty PRICING_RULES_FILE disables long-stay discounts.
func NewPolicy(cfg config.Config) (pricing.Policy, error) {
	return rules.LoadPolicy(cfg.Pricing.RulesFile)
}

func NewCalendar(cfg config.Config) (*stay.Calendar, error) {
	return stay.NewCalendar(cfg.Pricing.TimeZone)
}

func NewPricingDefaults(cfg config.Config) queries.PricingDefaults {
	return queries.PricingDefaults{
		Currency:         cfg.Pricing.Currency,
		TaxPercentage:    cfg.Pricing.DefaultTaxPercentage,
		MaxStayNights:    cfg.Pricing.MaxStayNights,
		MaxOccupancyDays: cfg.Pricing.MaxOccupancyDays,
	}
}
