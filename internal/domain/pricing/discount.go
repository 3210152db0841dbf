package pricing

import (
	"errors"
	"strconv"
	"strings"

	"hotel-quote-engine/internal/domain/stay"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDiscountRule = errors.New("invalid discount rule")
	ErrPromoInactive       = errors.New("discount code is not active")
	ErrPromoNotYetValid    = errors.New("discount code is not valid yet")
	ErrPromoExpired        = errors.New("discount code has expired")
	ErrPromoMinimumAmount  = errors.New("booking amount below discount minimum")
	ErrPromoUnknown        = errors.New("invalid discount code")
)

type DiscountKind string

const (
	DiscountPercentage DiscountKind = "percentage"
	DiscountFixed      DiscountKind = "fixed"
)

func (k DiscountKind) IsValid() bool {
	switch k {
	case DiscountPercentage, DiscountFixed:
		return true
	default:
		return false
	}
}

type DiscountSource string

const (
	SourceNone     DiscountSource = "none"
	SourceLongStay DiscountSource = "long_stay"
	SourcePromo    DiscountSource = "promo_code"
)

// PromoCode is a hotel discount code. Validity bounds are inclusive and compared
// against the check-in date.
type PromoCode struct {
	ID               int64
	HotelID          int64
	Code             string
	Kind             DiscountKind
	Value            decimal.Decimal
	Description      string
	MinBookingAmount Money
	MaxDiscount      *Money
	ValidFrom        *stay.Date
	ValidTill        *stay.Date
	Active           bool
}

func (p PromoCode) Evaluate(subtotal Money, checkIn stay.Date) (Money, error) {
	if !p.Active {
		return Money{}, ErrPromoInactive
	}
	if p.ValidFrom != nil && checkIn.Before(*p.ValidFrom) {
		return Money{}, ErrPromoNotYetValid
	}
	if p.ValidTill != nil && checkIn.After(*p.ValidTill) {
		return Money{}, ErrPromoExpired
	}
	if subtotal.LessThan(p.MinBookingAmount) {
		return Money{}, ErrPromoMinimumAmount
	}

	var amount Money
	switch p.Kind {
	case DiscountPercentage:
		amount = subtotal.Percent(p.Value)
	case DiscountFixed:
		amount = NewMoney(p.Value)
	default:
		return Money{}, ErrInvalidDiscountRule
	}
	if p.MaxDiscount != nil {
		amount = MinMoney(amount, *p.MaxDiscount)
	}
	return amount, nil
}

// LongStayRule takes Percent off the subtotal once the stay reaches MinNights.
type LongStayRule struct {
	MinNights int
	Percent   decimal.Decimal
	MaxAmount *Money
}

func (r LongStayRule) validate() error {
	if r.MinNights < 1 || !isValidPercent(r.Percent) {
		return ErrInvalidDiscountRule
	}
	if r.MaxAmount != nil && r.MaxAmount.IsNegative() {
		return ErrInvalidDiscountRule
	}
	return nil
}

// Policy is the configured discount rule set. The zero value grants no discount.
type Policy struct {
	longStay []LongStayRule
}

func NewPolicy(longStay []LongStayRule) (Policy, error) {
	for _, r := range longStay {
		if err := r.validate(); err != nil {
			return Policy{}, err
		}
	}
	return Policy{longStay: append([]LongStayRule(nil), longStay...)}, nil
}

func (p Policy) LongStayRules() []LongStayRule {
	return append([]LongStayRule(nil), p.longStay...)
}

type DiscountRequest struct {
	Nights   int
	Subtotal Money
	CheckIn  stay.Date
	Code     string
	Promo    *PromoCode
}

type DiscountDetails struct {
	Source      DiscountSource `json:"source"`
	Code        string         `json:"code,omitempty"`
	Description string         `json:"description,omitempty"`
	Error       string         `json:"error,omitempty"`
}

// Resolve picks the single largest applicable discount, capped at the subtotal.
// A rejected code is reported in the details and never fails the quote.
func (p Policy) Resolve(req DiscountRequest) (Money, DiscountDetails) {
	best := Money{}
	details := DiscountDetails{Source: SourceNone}

	for _, r := range p.longStay {
		if req.Nights < r.MinNights {
			continue
		}
		amount := req.Subtotal.Percent(r.Percent)
		if r.MaxAmount != nil {
			amount = MinMoney(amount, *r.MaxAmount)
		}
		if amount.GreaterThan(best) {
			best = amount
			details = DiscountDetails{
				Source:      SourceLongStay,
				Description: r.Percent.String() + "% off for stays of " + strconv.Itoa(r.MinNights) + "+ nights",
			}
		}
	}

	code := strings.TrimSpace(req.Code)
	if code != "" {
		promoAmount, err := evaluatePromo(req, code)
		switch {
		case err != nil:
			details.Code = code
			details.Error = err.Error()
		case promoAmount.GreaterThan(best):
			best = promoAmount
			details = DiscountDetails{Source: SourcePromo, Code: req.Promo.Code, Description: req.Promo.Description}
		}
	}

	if best.GreaterThan(req.Subtotal) {
		best = req.Subtotal
	}
	return best, details
}

func evaluatePromo(req DiscountRequest, code string) (Money, error) {
	if req.Promo == nil || !strings.EqualFold(req.Promo.Code, code) {
		return Money{}, ErrPromoUnknown
	}
	return req.Promo.Evaluate(req.Subtotal, req.CheckIn)
}
