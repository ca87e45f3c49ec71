// Package split computes per-participant shares of a shared expense.
//
// All arithmetic runs on decimals so shares are cent-exact: for the
// equal and percentage strategies each share is rounded down to a cent
// and the leftover cents are handed out one each to the earliest
// participants in input order, so the shares always sum to the rounded
// total.
package split

import (
	"github.com/shopspring/decimal"

	"github.com/nkale/homeboard/internal/apperr"
)

// Strategy selects how an expense is divided among participants.
type Strategy string

const (
	// StrategyEqual divides the total uniformly.
	StrategyEqual Strategy = "equal"

	// StrategyExact takes each participant's share directly from the
	// details map; the values must sum to the total within Tolerance.
	StrategyExact Strategy = "exact"

	// StrategyPercentage takes percentage points per participant from
	// the details map; the values must sum to 100 within Tolerance.
	StrategyPercentage Strategy = "percentage"
)

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyEqual, StrategyExact, StrategyPercentage:
		return true
	}
	return false
}

// Tolerance is the maximum allowed deviation, in currency units (or
// percentage points), between declared details and their target sum.
const Tolerance = 0.01

var tolerance = decimal.NewFromFloat(Tolerance)

// Share is one participant's computed portion of an expense.
type Share struct {
	UserID string
	Amount float64
}

// ComputeShares calculates each participant's share of total using the
// given strategy. details is required for the exact and percentage
// strategies and must hold exactly one value per participant.
//
// The result has one share per participant, in participant order, and
// the share amounts sum to the total (within Tolerance for the exact
// strategy, exactly for equal and percentage).
func ComputeShares(total float64, participants []string, strategy Strategy, details map[string]float64) ([]Share, error) {
	if total <= 0 {
		return nil, apperr.New(apperr.KindValidation, "amount must be greater than zero")
	}
	if len(participants) == 0 {
		return nil, apperr.New(apperr.KindValidation, "at least one participant is required")
	}
	seen := make(map[string]bool, len(participants))
	for _, p := range participants {
		if seen[p] {
			return nil, apperr.Newf(apperr.KindValidation, "duplicate participant %q", p)
		}
		seen[p] = true
	}
	if !strategy.Valid() {
		return nil, apperr.Newf(apperr.KindValidation, "unknown split strategy %q", strategy)
	}

	totalDec := decimal.NewFromFloat(total).Round(2)

	switch strategy {
	case StrategyEqual:
		return equalShares(totalDec, participants), nil
	case StrategyExact:
		return exactShares(totalDec, participants, details)
	default:
		return percentageShares(totalDec, participants, details)
	}
}

func equalShares(total decimal.Decimal, participants []string) []Share {
	n := decimal.NewFromInt(int64(len(participants)))
	base := total.Div(n).RoundDown(2)

	shares := make([]decimal.Decimal, len(participants))
	for i := range shares {
		shares[i] = base
	}
	reconcile(shares, total)
	return attach(participants, shares)
}

func exactShares(total decimal.Decimal, participants []string, details map[string]float64) ([]Share, error) {
	amounts, err := detailAmounts(participants, details)
	if err != nil {
		return nil, err
	}

	sum := decimal.Zero
	for _, a := range amounts {
		sum = sum.Add(a)
	}
	if sum.Sub(total).Abs().GreaterThan(tolerance) {
		return nil, apperr.Newf(apperr.KindValidation,
			"exact shares sum to %s, expected %s", sum.StringFixed(2), total.StringFixed(2))
	}

	return attach(participants, amounts), nil
}

func percentageShares(total decimal.Decimal, participants []string, details map[string]float64) ([]Share, error) {
	percents, err := detailAmounts(participants, details)
	if err != nil {
		return nil, err
	}

	sum := decimal.Zero
	for _, p := range percents {
		sum = sum.Add(p)
	}
	hundred := decimal.NewFromInt(100)
	if sum.Sub(hundred).Abs().GreaterThan(tolerance) {
		return nil, apperr.Newf(apperr.KindValidation,
			"percentages sum to %s, expected 100", sum.String())
	}

	shares := make([]decimal.Decimal, len(participants))
	for i, p := range percents {
		shares[i] = total.Mul(p).Div(hundred).RoundDown(2)
	}
	reconcile(shares, total)
	return attach(participants, shares), nil
}

// detailAmounts pulls one decimal value per participant out of details,
// rejecting missing, extra or negative entries.
func detailAmounts(participants []string, details map[string]float64) ([]decimal.Decimal, error) {
	if details == nil {
		return nil, apperr.New(apperr.KindValidation, "split details are required for this strategy")
	}
	amounts := make([]decimal.Decimal, len(participants))
	for i, p := range participants {
		v, ok := details[p]
		if !ok {
			return nil, apperr.Newf(apperr.KindValidation, "missing split detail for participant %q", p)
		}
		if v < 0 {
			return nil, apperr.Newf(apperr.KindValidation, "negative split detail for participant %q", p)
		}
		amounts[i] = decimal.NewFromFloat(v).Round(2)
	}
	if len(details) > len(participants) {
		return nil, apperr.New(apperr.KindValidation, "split details reference users outside the participant list")
	}
	return amounts, nil
}

// reconcile nudges shares by single cents, starting from the first
// participant, until they sum exactly to total. Downward corrections
// skip shares that have nothing left, so no share ever goes negative.
func reconcile(shares []decimal.Decimal, total decimal.Decimal) {
	sum := decimal.Zero
	for _, s := range shares {
		sum = sum.Add(s)
	}
	cent := decimal.New(1, -2)
	diffCents := total.Sub(sum).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	for i := 0; diffCents != 0; i = (i + 1) % len(shares) {
		if diffCents > 0 {
			shares[i] = shares[i].Add(cent)
			diffCents--
		} else if shares[i].GreaterThanOrEqual(cent) {
			shares[i] = shares[i].Sub(cent)
			diffCents++
		}
	}
}

func attach(participants []string, amounts []decimal.Decimal) []Share {
	shares := make([]Share, len(participants))
	for i, p := range participants {
		shares[i] = Share{UserID: p, Amount: amounts[i].InexactFloat64()}
	}
	return shares
}
