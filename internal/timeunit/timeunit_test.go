package timeunit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	u, err := Parse("YearMonth")
	require.NoError(t, err)
	assert.Equal(t, YearMonth, u)

	_, err = Parse("fortnight")
	assert.ErrorContains(t, err, "unknown time unit")
}

func TestExpression(t *testing.T) {
	testCases := []struct {
		unit Unit
		want string
	}{
		{Month, "datetime(2006, month(datum.date), 1, 0, 0, 0, 0)"},
		{Year, "datetime(year(datum.date), 0, 1, 0, 0, 0, 0)"},
		{Day, "datetime(2006, 0, day(datum.date)+1, 0, 0, 0, 0)"},
		{YearMonthDate, "datetime(year(datum.date), month(datum.date), date(datum.date), 0, 0, 0, 0)"},
		{Quarter, "datetime(2006, floor(month(datum.date)/3)*3, 1, 0, 0, 0, 0)"},
		{HoursMinutes, "datetime(2006, 0, 1, hours(datum.date), minutes(datum.date), 0, 0)"},
	}
	for _, tc := range testCases {
		t.Run(string(tc.unit), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.unit.Expression("datum.date"))
		})
	}
}

func TestEnumExpression(t *testing.T) {
	assert.Equal(t, "datetime(2006, datum.data, 1, 0, 0, 0, 0)", Month.EnumExpression("datum.data"))
	assert.Equal(t, "datetime(2006, 0, datum.data+1, 0, 0, 0, 0)", Day.EnumExpression("datum.data"))
	assert.Equal(t, "datetime(2006, datum.data*3, 1, 0, 0, 0, 0)", Quarter.EnumExpression("datum.data"))
}

func TestDomain(t *testing.T) {
	assert.Len(t, Month.Domain(), 12)
	assert.Equal(t, 0, Month.Domain()[0])
	assert.Len(t, Day.Domain(), 7)
	assert.Len(t, Hours.Domain(), 24)
	assert.Len(t, Minutes.Domain(), 60)

	date := Date.Domain()
	require.Len(t, date, 31)
	assert.Equal(t, 1, date[0])
	assert.Equal(t, 31, date[30])

	assert.Nil(t, Year.Domain())
	assert.Nil(t, YearMonth.Domain())
	assert.False(t, Milliseconds.Bounded())
	assert.True(t, Seconds.Bounded())
}
