package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// at builds a fixed timestamp at the given local hour.
func at(hour int) time.Time {
	return time.Date(2025, 6, 10, hour, 30, 0, 0, time.Local)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func line(qty int, price string) Line {
	return Line{Quantity: qty, UnitPrice: dec(price)}
}

func assertQuote(t *testing.T, q Quote, subtotal, tax, discount, total string) {
	t.Helper()
	if !q.Subtotal.Equal(dec(subtotal)) {
		t.Errorf("subtotal = %s, want %s", q.Subtotal, subtotal)
	}
	if !q.Tax.Equal(dec(tax)) {
		t.Errorf("tax = %s, want %s", q.Tax, tax)
	}
	if !q.Discount.Equal(dec(discount)) {
		t.Errorf("discount = %s, want %s", q.Discount, discount)
	}
	if !q.Total.Equal(dec(total)) {
		t.Errorf("total = %s, want %s", q.Total, total)
	}
}

func TestCalculateNoDiscount(t *testing.T) {
	// 2 × 25.00 at noon: below bulk threshold, outside happy hour
	q := Calculate([]Line{line(2, "25.00")}, at(12))
	assertQuote(t, q, "50.00", "7.00", "0", "57.00")
}

func TestCalculateBulkDiscount(t *testing.T) {
	// 150.00 > 100 at noon: 10% bulk discount
	q := Calculate([]Line{line(1, "150.00")}, at(12))
	assertQuote(t, q, "150.00", "21.00", "15.00", "156.00")
}

func TestCalculateHappyHourBeatsBulk(t *testing.T) {
	// 16:30 is happy hour: 20% applies even though subtotal > 100,
	// and the two discounts never combine
	q := Calculate([]Line{line(1, "150.00")}, at(16))
	assertQuote(t, q, "150.00", "21.00", "30.00", "141.00")
}

func TestCalculateHappyHourSmallOrder(t *testing.T) {
	// happy hour applies regardless of subtotal size
	q := Calculate([]Line{line(1, "10.00")}, at(15))
	assertQuote(t, q, "10.00", "1.40", "2.00", "9.40")
}

func TestCalculateHappyHourBoundaries(t *testing.T) {
	lines := []Line{line(1, "150.00")}
	cases := []struct {
		hour     int
		discount string
	}{
		{14, "15.00"}, // before window: bulk
		{15, "30.00"}, // window opens
		{16, "30.00"},
		{17, "15.00"}, // window is exclusive at 17: back to bulk
	}
	for _, tc := range cases {
		q := Calculate(lines, at(tc.hour))
		if !q.Discount.Equal(dec(tc.discount)) {
			t.Errorf("hour %d: discount = %s, want %s", tc.hour, q.Discount, tc.discount)
		}
	}
}

func TestCalculateBulkThresholdIsExclusive(t *testing.T) {
	// exactly 100 does not qualify for the bulk discount
	q := Calculate([]Line{line(4, "25.00")}, at(12))
	assertQuote(t, q, "100.00", "14.00", "0", "114.00")

	q = Calculate([]Line{line(1, "100.01")}, at(12))
	if !q.Discount.Equal(dec("10.001")) {
		t.Errorf("discount just over threshold = %s, want 10.001", q.Discount)
	}
}

func TestCalculateMultipleLinesExact(t *testing.T) {
	// no intermediate rounding: 3×19.99 + 1×0.01 = 59.98
	q := Calculate([]Line{line(3, "19.99"), line(1, "0.01")}, at(9))
	assertQuote(t, q, "59.98", "8.3972", "0", "68.3772")
}

func TestCalculateTotalNeverNegative(t *testing.T) {
	q := Calculate(nil, at(16))
	if q.Total.IsNegative() {
		t.Errorf("total = %s, want >= 0", q.Total)
	}
	if !q.Total.IsZero() {
		t.Errorf("empty cart total = %s, want 0", q.Total)
	}
}

func TestEstimatedReadyTimeMaxPrep(t *testing.T) {
	now := at(12)
	eta := EstimatedReadyTime([]int{15, 45, 20}, false, now)
	if want := now.Add(45 * time.Minute); !eta.Equal(want) {
		t.Errorf("eta = %v, want %v", eta, want)
	}
}

func TestEstimatedReadyTimeDeliverySurcharge(t *testing.T) {
	now := at(12)
	eta := EstimatedReadyTime([]int{15, 45, 20}, true, now)
	if want := now.Add(75 * time.Minute); !eta.Equal(want) {
		t.Errorf("eta = %v, want %v", eta, want)
	}
}

func TestEstimatedReadyTimeMissingPrepDefaults(t *testing.T) {
	now := at(12)
	// zero prep time falls back to 30 minutes and can be the max
	eta := EstimatedReadyTime([]int{0, 10}, false, now)
	if want := now.Add(30 * time.Minute); !eta.Equal(want) {
		t.Errorf("eta = %v, want %v", eta, want)
	}
	// fast kitchen: max below the default stays the max
	eta = EstimatedReadyTime([]int{10, 20}, false, now)
	if want := now.Add(20 * time.Minute); !eta.Equal(want) {
		t.Errorf("eta = %v, want %v", eta, want)
	}
}
