package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// Discount rules. Happy hour is exclusive: when it applies, the bulk
// discount does not.
var (
	taxRate       = decimal.NewFromFloat(0.14)
	happyHourRate = decimal.NewFromFloat(0.20)
	bulkRate      = decimal.NewFromFloat(0.10)
	bulkThreshold = decimal.NewFromInt(100)
)

const (
	happyHourStart = 15 // inclusive, local hour
	happyHourEnd   = 17 // exclusive

	// DefaultPrepMinutes is assumed for menu items without a
	// preparation time on record.
	DefaultPrepMinutes = 30

	// DeliverySurchargeMinutes is added on top of kitchen time for
	// delivery orders.
	DeliverySurchargeMinutes = 30
)

// Line is one cart line as far as pricing is concerned: a quantity at
// the unit price snapshotted when the item was added.
type Line struct {
	Quantity  int
	UnitPrice decimal.Decimal
}

// Quote is the full money breakdown of a checkout.
type Quote struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// Calculate prices a set of cart lines at the given wall-clock time.
// The time is a parameter, not read inside, so callers pass time.Now()
// and tests pass a fixed hour.
//
//	subtotal = Σ qty·price
//	tax      = subtotal · 14%
//	discount = 20% during happy hour [15,17), else 10% if subtotal > 100, else 0
//	total    = subtotal + tax − discount
func Calculate(lines []Line, at time.Time) Quote {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	tax := subtotal.Mul(taxRate)

	discount := decimal.Zero
	hour := at.Hour()
	if hour >= happyHourStart && hour < happyHourEnd {
		discount = subtotal.Mul(happyHourRate)
	} else if subtotal.GreaterThan(bulkThreshold) {
		discount = subtotal.Mul(bulkRate)
	}

	return Quote{
		Subtotal: subtotal,
		Tax:      tax,
		Discount: discount,
		Total:    subtotal.Add(tax).Sub(discount),
	}
}

// EstimatedReadyTime computes when the order should be ready: the
// slowest item's preparation time from now, plus a fixed surcharge for
// delivery orders. Prep times of zero or less fall back to the default.
func EstimatedReadyTime(prepMinutes []int, delivery bool, at time.Time) time.Time {
	max := 0
	for _, p := range prepMinutes {
		if p <= 0 {
			p = DefaultPrepMinutes
		}
		if p > max {
			max = p
		}
	}
	if max == 0 {
		max = DefaultPrepMinutes
	}
	eta := at.Add(time.Duration(max) * time.Minute)
	if delivery {
		eta = eta.Add(DeliverySurchargeMinutes * time.Minute)
	}
	return eta
}
