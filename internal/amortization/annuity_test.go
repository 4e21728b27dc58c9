package amortization

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeInstallment(t *testing.T) {
	// 10000 * 0.0668 * 1.0668^12 / (1.0668^12 - 1)
	got := ComputeInstallment(10000, 0.0668, 12)
	assert.InDelta(t, 1237.63, roundTo2Decimals(got), 0.001)
}

func TestComputeInstallment_DegenerateInputs(t *testing.T) {
	tests := []struct {
		name    string
		pv      float64
		rate    float64
		periods int
	}{
		{name: "zero present value", pv: 0, rate: 0.05, periods: 12},
		{name: "negative present value", pv: -100, rate: 0.05, periods: 12},
		{name: "zero rate", pv: 1000, rate: 0, periods: 12},
		{name: "negative rate", pv: 1000, rate: -0.01, periods: 12},
		{name: "zero periods", pv: 1000, rate: 0.05, periods: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Zero(t, ComputeInstallment(tt.pv, tt.rate, tt.periods))
			assert.Zero(t, ComputePresentValue(tt.pv, tt.rate, tt.periods))
		})
	}
}

func TestPresentValueRoundTrip(t *testing.T) {
	tests := []struct {
		pv      float64
		rate    float64
		periods int
	}{
		{pv: 10000, rate: 0.0668, periods: 12},
		{pv: 500, rate: 0.0385, periods: 1},
		{pv: 250000, rate: 0.0986, periods: 60},
		{pv: 1234.56, rate: 0.001, periods: 360},
	}
	for _, tt := range tests {
		pmt := ComputeInstallment(tt.pv, tt.rate, tt.periods)
		assert.InDelta(t, tt.pv, ComputePresentValue(pmt, tt.rate, tt.periods), 1e-6)
	}
}

func TestApplyGracePeriod(t *testing.T) {
	assert.InDelta(t, 1102.5, ApplyGracePeriod(1000, 0.05, 2), 1e-9)
	assert.Equal(t, 1000.0, ApplyGracePeriod(1000, 0.05, 0))
	assert.Equal(t, 1000.0, ApplyGracePeriod(1000, 0.05, -3))
	assert.Equal(t, 0.0, ApplyGracePeriod(0, 0.05, 4))
}

func TestGraceMonths(t *testing.T) {
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name         string
		firstPayment time.Time
		want         int
	}{
		{name: "first payment next month", firstPayment: time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), want: 0},
		{name: "one month of grace", firstPayment: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), want: 1},
		{name: "two months of grace", firstPayment: time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC), want: 2},
		{name: "past date clamps to zero", firstPayment: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), want: 0},
		// Feb 31 normalizes to Mar 3: 46.58 days, 1.55 buckets.
		{name: "month overflow rounds half up", firstPayment: time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GraceMonths(tt.firstPayment, now))
		})
	}
}
