package rules

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"hotel-quote-engine/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type fileFormat struct {
	LongStay []longStayRule `yaml:"long_stay"`
}

type longStayRule struct {
	MinNights int     `yaml:"min_nights"`
	Percent   string  `yaml:"percent"`
	MaxAmount *string `yaml:"max_amount"`
}

// LoadPolicy reads the discount rules file. An empty path yields a policy
// without long-stay discounts.
func LoadPolicy(path string) (pricing.Policy, error) {
	if path == "" {
		return pricing.Policy{}, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return pricing.Policy{}, fmt.Errorf("read pricing rules: %w", err)
	}
	return ParsePolicy(b)
}

func ParsePolicy(b []byte) (pricing.Policy, error) {
	var raw fileFormat
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return pricing.Policy{}, fmt.Errorf("parse pricing rules: %w", err)
	}

	rules := make([]pricing.LongStayRule, 0, len(raw.LongStay))
	for i, r := range raw.LongStay {
		pct, err := decimal.NewFromString(r.Percent)
		if err != nil {
			return pricing.Policy{}, fmt.Errorf("long_stay[%d].percent: %w", i, err)
		}
		rule := pricing.LongStayRule{MinNights: r.MinNights, Percent: pct}
		if r.MaxAmount != nil {
			m, err := pricing.ParseMoney(*r.MaxAmount)
			if err != nil {
				return pricing.Policy{}, fmt.Errorf("long_stay[%d].max_amount: %w", i, err)
			}
			rule.MaxAmount = &m
		}
		rules = append(rules, rule)
	}

	policy, err := pricing.NewPolicy(rules)
	if err != nil {
		return pricing.Policy{}, fmt.Errorf("pricing rules: %w", err)
	}
	return policy, nil
}
