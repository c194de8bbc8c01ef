package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestTransactionSign(t *testing.T) {
	tests := []struct {
		amount  string
		deposit bool
		payment bool
	}{
		{"1500.00", true, false},
		{"-89.50", false, true},
		{"0", false, false},
		{"0.00", false, false},
		{"0.01", true, false},
	}
	for _, tt := range tests {
		txn := Transaction{Amount: dec(tt.amount)}
		assert.Equal(t, tt.deposit, txn.IsDeposit(), "IsDeposit(%s)", tt.amount)
		assert.Equal(t, tt.payment, txn.IsPayment(), "IsPayment(%s)", tt.amount)
	}
}

func TestTransactionBefore(t *testing.T) {
	d1 := time.Date(2023, 4, 15, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2023, 4, 16, 0, 0, 0, 0, time.UTC)

	morning := Transaction{Date: d1, Time: TimeOfDay{10, 13, 25}}
	noon := Transaction{Date: d1, Time: TimeOfDay{11, 15, 0}}
	nextDay := Transaction{Date: d2, Time: TimeOfDay{0, 0, 1}}

	assert.True(t, morning.Before(noon))
	assert.False(t, noon.Before(morning))
	assert.True(t, noon.Before(nextDay))
	assert.False(t, morning.Before(morning), "equal keys are not before each other")
}

func TestTransactionEqual(t *testing.T) {
	a := Transaction{
		Date:        time.Date(2023, 4, 15, 0, 0, 0, 0, time.UTC),
		Time:        TimeOfDay{10, 13, 25},
		Description: "ergonomic keyboard",
		Vendor:      "Amazon",
		Amount:      dec("-89.50"),
	}
	b := a
	b.Amount = dec("-89.5")
	assert.True(t, a.Equal(b), "amounts compare by value")

	b.Vendor = "amazon"
	assert.False(t, a.Equal(b), "vendor comparison is exact")
}

func TestDay(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	got := Day(time.Date(2024, 3, 5, 23, 30, 0, 0, loc))
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", FormatDate(d))

	_, err = ParseDate("2023-02-29")
	assert.Error(t, err)
	_, err = ParseDate("15/04/2023")
	assert.Error(t, err)
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("10:13:25")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 10, Minute: 13, Second: 25}, tod)
	assert.Equal(t, "10:13:25", tod.String())

	tod, err = ParseTimeOfDay("00:00:00")
	require.NoError(t, err)
	assert.Equal(t, "00:00:00", tod.String())

	for _, bad := range []string{"25:00:00", "10:13", "ten", ""} {
		_, err := ParseTimeOfDay(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestTimeOfDayCompare(t *testing.T) {
	a := TimeOfDay{10, 13, 25}
	b := TimeOfDay{11, 15, 0}
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(TimeOfDay{10, 13, 25}))
}

func TestTimeOfDayOf(t *testing.T) {
	got := TimeOfDayOf(time.Date(2024, 1, 1, 7, 8, 9, 999_000_000, time.UTC))
	assert.Equal(t, TimeOfDay{7, 8, 9}, got)
}
