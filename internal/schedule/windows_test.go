package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"barbershop/internal/domain"
)

func TestMergeRanges_AdjacentAndOverlapping(t *testing.T) {
	got := MergeRanges([]TimeRange{
		{Open: "09:00", Close: "10:00"},
		{Open: "10:00", Close: "11:00"},
		{Open: "14:00", Close: "19:00"},
	})

	assert.Equal(t, []TimeRange{
		{Open: "09:00", Close: "11:00"},
		{Open: "14:00", Close: "19:00"},
	}, got)
}

func TestMergeRanges_Idempotent(t *testing.T) {
	merged := MergeRanges([]TimeRange{
		{Open: "14:00", Close: "19:00"},
		{Open: "09:30", Close: "12:00"},
		{Open: "09:00", Close: "10:00"},
	})
	assert.Equal(t, merged, MergeRanges(merged))
}

func TestMergeRanges_ContainedRange(t *testing.T) {
	got := MergeRanges([]TimeRange{
		{Open: "09:00", Close: "18:00"},
		{Open: "10:00", Close: "11:00"},
	})
	assert.Equal(t, []TimeRange{{Open: "09:00", Close: "18:00"}}, got)
}

func TestMergeRanges_Empty(t *testing.T) {
	assert.Empty(t, MergeRanges(nil))
}

func TestWindowsForWeekday_FiltersAndMerges(t *testing.T) {
	rows := []domain.OperatingWindow{
		{BarberID: 1, Weekday: 1, Open: "09:00", Close: "12:00"},
		{BarberID: 1, Weekday: 1, Open: "12:00", Close: "19:00"},
		{BarberID: 1, Weekday: 2, Open: "10:00", Close: "16:00"},
	}

	assert.Equal(t, []TimeRange{{Open: "09:00", Close: "19:00"}}, WindowsForWeekday(rows, 1))
	assert.Equal(t, []TimeRange{{Open: "10:00", Close: "16:00"}}, WindowsForWeekday(rows, 2))
	assert.Empty(t, WindowsForWeekday(rows, 0))
}

func TestValidateRanges(t *testing.T) {
	assert.NoError(t, ValidateRanges([]TimeRange{
		{Open: "09:00", Close: "12:00"},
		{Open: "12:00", Close: "19:00"},
	}))

	// overlapping input is rejected, not coalesced
	assert.Error(t, ValidateRanges([]TimeRange{
		{Open: "09:00", Close: "13:00"},
		{Open: "12:00", Close: "19:00"},
	}))

	assert.Error(t, ValidateRanges([]TimeRange{{Open: "12:00", Close: "09:00"}}))
	assert.Error(t, ValidateRanges([]TimeRange{{Open: "25:00", Close: "26:00"}}))
	assert.Error(t, ValidateRanges([]TimeRange{{Open: "9h00", Close: "10:00"}}))
}

func TestParseClock(t *testing.T) {
	min, err := ParseClock("09:30")
	assert.NoError(t, err)
	assert.Equal(t, 570, min)

	_, err = ParseClock("9:30")
	assert.Error(t, err)
	_, err = ParseClock("09:60")
	assert.Error(t, err)
}

func TestNormalizeClock(t *testing.T) {
	assert.Equal(t, "09:00", NormalizeClock(" 9:00 "))
	assert.Equal(t, "19:30", NormalizeClock("19:30"))
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:05", FormatClock(545))
	assert.Equal(t, "00:00", FormatClock(0))
}
