package ctdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSailingSearchParamsQueryDefaults(t *testing.T) {
	query, err := SailingSearchParams{}.Query()
	require.NoError(t, err)

	assert.Equal(t, NewQuerySailings(), query)
	assert.Equal(t, DefaultSearchPage, query.Page)
	assert.Equal(t, DefaultSearchLimit, query.Limit)
}

func TestSailingSearchParamsQuery(t *testing.T) {
	query, err := SailingSearchParams{
		Departure:          " 高松 ",
		Arrival:            "直島",
		DepartureTimeStart: "9:00",
		DepartureTimeEnd:   "17:30",
		AllowsVehicles:     "true",
		AllowsBicycles:     "false",
		Page:               "2",
		Limit:              "100",
	}.Query()
	require.NoError(t, err)

	assert.Equal(t, "高松", query.Departure)
	assert.Equal(t, "直島", query.Arrival)
	assert.Empty(t, query.Company)
	require.NotNil(t, query.DepartureTimeStart)
	assert.Equal(t, ClockTime(9*60), *query.DepartureTimeStart)
	require.NotNil(t, query.DepartureTimeEnd)
	assert.Equal(t, ClockTime(17*60+30), *query.DepartureTimeEnd)
	assert.Equal(t, boolPointer(true), query.AllowsVehicles)
	assert.Equal(t, boolPointer(false), query.AllowsBicycles)
	assert.Equal(t, 2, query.Page)
	assert.Equal(t, 100, query.Limit)
}

func TestSailingSearchParamsQueryValidation(t *testing.T) {
	tests := []struct {
		name   string
		params SailingSearchParams
		field  string
	}{
		{"bad start time", SailingSearchParams{DepartureTimeStart: "9am"}, "departure_time_start"},
		{"bad end time", SailingSearchParams{DepartureTimeEnd: "24:00"}, "departure_time_end"},
		{"non boolean vehicles", SailingSearchParams{AllowsVehicles: "maybe"}, "allows_vehicles"},
		{"non boolean bicycles", SailingSearchParams{AllowsBicycles: "是"}, "allows_bicycles"},
		{"non numeric page", SailingSearchParams{Page: "first"}, "page"},
		{"zero page", SailingSearchParams{Page: "0"}, "page"},
		{"negative limit", SailingSearchParams{Limit: "-5"}, "limit"},
		{"zero limit", SailingSearchParams{Limit: "0"}, "limit"},
		{"limit over maximum", SailingSearchParams{Limit: "101"}, "limit"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := test.params.Query()
			require.Error(t, err)

			assert.ErrorIs(t, err, ErrInvalidQuery)

			var validationError *ValidationError
			require.ErrorAs(t, err, &validationError)
			assert.Equal(t, test.field, validationError.Field)
			assert.NotEmpty(t, validationError.Reason)
		})
	}
}

func TestQuerySailingsValidate(t *testing.T) {
	query := NewQuerySailings()
	assert.NoError(t, query.Validate())

	query.Limit = MaxSearchLimit + 1
	assert.ErrorIs(t, query.Validate(), ErrInvalidQuery)
}

func TestQuerySailingsValidateTimeWindow(t *testing.T) {
	query := NewQuerySailings()
	end := ClockTime(24 * 60)
	query.DepartureTimeEnd = &end

	var validationError *ValidationError
	require.ErrorAs(t, query.Validate(), &validationError)
	assert.Equal(t, "departure_time_end", validationError.Field)
	assert.Equal(t, "must be less than 1440", validationError.Reason)
}

func TestQuerySailingsCacheKey(t *testing.T) {
	a := NewQuerySailings()
	a.Departure = "Takamatsu"

	b := NewQuerySailings()
	b.Departure = "takamatsu"

	c := NewQuerySailings()
	c.Departure = "takamatsu"
	c.Page = 2

	assert.Equal(t, a.CacheKey(), b.CacheKey())
	assert.NotEqual(t, a.CacheKey(), c.CacheKey())
}

func testTimetableSailings() []*Sailing {
	return []*Sailing{
		newTestSailing("高松", "直島(宮浦)", "08:12", "09:02", "四国汽船", "¥520"),
		newTestSailing("宇野", "直島(宮浦)", "9:05", "09:25", "四国汽船", "¥300"),
		newTestSailing("Takamatsu", "Naoshima", "10:00", "10:30", "Shikoku Kisen", "¥1,220"),
		newTestSailing("高松", "小豆島(土庄)", "10:40", "11:40", "四国フェリー", "¥700"),
		newTestSailing("直島(本村)", "豊島(家浦)", "未定", "未定", "豊島フェリー", "お問い合わせください"),
	}
}

func TestFilterSailingsNoConstraints(t *testing.T) {
	sailings := testTimetableSailings()

	filtered := FilterSailings(sailings, NewQuerySailings())

	assert.Equal(t, sailings, filtered)
}

func TestFilterSailingsEmptyTable(t *testing.T) {
	filtered := FilterSailings(nil, NewQuerySailings())

	assert.NotNil(t, filtered)
	assert.Empty(t, filtered)
}

func TestFilterSailingsSubstringMatch(t *testing.T) {
	sailings := testTimetableSailings()

	query := NewQuerySailings()
	query.Arrival = "直島"
	assert.Equal(t, []string{"08:12", "9:05"}, departureTimes(FilterSailings(sailings, query)))

	query = NewQuerySailings()
	query.Departure = "takamatsu"
	query.Arrival = "NAOSHIMA"
	assert.Equal(t, []string{"10:00"}, departureTimes(FilterSailings(sailings, query)))

	query = NewQuerySailings()
	query.Company = "フェリー"
	assert.Equal(t, []string{"10:40", "未定"}, departureTimes(FilterSailings(sailings, query)))
}

func TestFilterSailingsTimeWindow(t *testing.T) {
	sailings := testTimetableSailings()

	query := NewQuerySailings()
	query.DepartureTimeStart = clockTimePointer(9 * 60)
	query.DepartureTimeEnd = clockTimePointer(10 * 60)

	// 9:05 is unpadded, the unparseable row is excluded only because a bound is set
	assert.Equal(t, []string{"9:05", "10:00"}, departureTimes(FilterSailings(sailings, query)))

	query = NewQuerySailings()
	query.DepartureTimeStart = clockTimePointer(10*60 + 40)
	assert.Equal(t, []string{"10:40"}, departureTimes(FilterSailings(sailings, query)))

	query = NewQuerySailings()
	query.DepartureTimeEnd = clockTimePointer(8*60 + 12)
	assert.Equal(t, []string{"08:12"}, departureTimes(FilterSailings(sailings, query)))
}

func TestFilterSailingsInvertedTimeWindow(t *testing.T) {
	query := NewQuerySailings()
	query.DepartureTimeStart = clockTimePointer(12 * 60)
	query.DepartureTimeEnd = clockTimePointer(8 * 60)

	assert.Empty(t, FilterSailings(testTimetableSailings(), query))
}

func TestFilterSailingsCapabilities(t *testing.T) {
	sailings := testTimetableSailings()
	sailings[0].AllowsVehicles = true
	sailings[3].AllowsVehicles = true
	sailings[3].AllowsBicycles = true

	query := NewQuerySailings()
	query.AllowsVehicles = boolPointer(true)
	assert.Equal(t, []string{"08:12", "10:40"}, departureTimes(FilterSailings(sailings, query)))

	query.AllowsBicycles = boolPointer(true)
	assert.Equal(t, []string{"10:40"}, departureTimes(FilterSailings(sailings, query)))

	query = NewQuerySailings()
	query.AllowsVehicles = boolPointer(false)
	assert.Equal(t, []string{"9:05", "10:00", "未定"}, departureTimes(FilterSailings(sailings, query)))
}
