package ctdf

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateItineraryGroupsCrossMidnight(t *testing.T) {
	sailings := []*Sailing{
		newTestSailing("Takamatsu", "Naoshima", "23:50", "00:10", "Shikoku Kisen", "¥1,220"),
		newTestSailing("Takamatsu", "Naoshima", "08:00", "08:25", "Shikoku Kisen", "¥1,220"),
	}

	groups := GenerateItineraryGroupsFromSailings(sailings)
	require.Len(t, groups, 1)

	group := groups[0]
	assert.Equal(t, "Takamatsu→Naoshima", group.RouteKey)
	assert.Equal(t, "Takamatsu", group.Departure)
	assert.Equal(t, "Naoshima", group.Arrival)
	assert.Equal(t, []string{"08:00", "23:50"}, departureTimes(group.Sailings))
	require.NotNil(t, group.MinPrice)
	assert.Equal(t, 1220, *group.MinPrice)
	assert.Equal(t, 2, group.TotalSchedules)
	assert.Equal(t, []string{"Shikoku Kisen"}, group.Companies)

	assert.Equal(t, 20, group.Sailings[1].Duration().Minutes)
}

func TestGenerateItineraryGroupsMultipleOperators(t *testing.T) {
	sailings := []*Sailing{
		newTestSailing("高松", "小豆島", "08:00", "09:00", "四国フェリー", "¥700"),
		newTestSailing("高松", "小豆島", "08:30", "09:05", "小豆島豊島フェリー", "¥1,190"),
		newTestSailing("宇野", "直島", "07:00", "07:20", "四国汽船", "¥300"),
		newTestSailing("高松", "小豆島", "09:00", "10:00", "四国フェリー", "¥690"),
	}

	groups := GenerateItineraryGroupsFromSailings(sailings)
	require.Len(t, groups, 2)

	assert.Equal(t, "高松→小豆島", groups[0].RouteKey)
	assert.Equal(t, "宇野→直島", groups[1].RouteKey)

	assert.Equal(t, []string{"四国フェリー", "小豆島豊島フェリー"}, groups[0].Companies)
	assert.Equal(t, 3, groups[0].TotalSchedules)
	require.NotNil(t, groups[0].MinPrice)
	assert.Equal(t, 690, *groups[0].MinPrice)
	require.NotNil(t, groups[0].MinChildPrice)
	assert.Equal(t, 690, *groups[0].MinChildPrice)
}

func TestGenerateItineraryGroupsWithoutPrice(t *testing.T) {
	sailings := []*Sailing{
		newTestSailing("直島", "豊島", "10:00", "10:20", "豊島フェリー", "お問い合わせください"),
	}

	groups := GenerateItineraryGroupsFromSailings(sailings)
	require.Len(t, groups, 1)

	assert.Nil(t, groups[0].MinPrice)
	assert.Equal(t, 1, groups[0].TotalSchedules)
}

func TestGenerateItineraryGroupsSkipsUnpricedRowsInMinimum(t *testing.T) {
	sailings := []*Sailing{
		newTestSailing("直島", "豊島", "10:00", "10:20", "豊島フェリー", "お問い合わせください"),
		newTestSailing("直島", "豊島", "12:00", "12:20", "豊島フェリー", "¥630"),
	}

	groups := GenerateItineraryGroupsFromSailings(sailings)
	require.Len(t, groups, 1)

	require.NotNil(t, groups[0].MinPrice)
	assert.Equal(t, 630, *groups[0].MinPrice)
	assert.Equal(t, 2, groups[0].TotalSchedules)
}

func TestGenerateItineraryGroupsSortsUnparseableTimesLast(t *testing.T) {
	sailings := []*Sailing{
		newTestSailing("A", "B", "未定", "", "X", "100"),
		newTestSailing("A", "B", "17:00", "17:30", "X", "100"),
		newTestSailing("A", "B", "9:05", "9:30", "X", "100"),
		newTestSailing("A", "B", "", "", "X", "100"),
	}

	groups := GenerateItineraryGroupsFromSailings(sailings)
	require.Len(t, groups, 1)

	assert.Equal(t, []string{"9:05", "17:00", "未定", ""}, departureTimes(groups[0].Sailings))
}

func TestGenerateItineraryGroupsNotesAndDateLimited(t *testing.T) {
	sailings := []*Sailing{
		newTestSailing("A", "B", "08:00", "08:30", "X", "100"),
		newTestSailing("A", "B", "09:00", "09:30", "X", "100"),
		newTestSailing("A", "B", "10:00", "10:30", "X", "100"),
		newTestSailing("C", "D", "10:00", "10:30", "X", "100"),
	}
	sailings[1].OperatingDays = OperatingDaysDateLimited
	sailings[1].Notes = "瀬戸内国際芸術祭期間のみ"
	sailings[2].Notes = "瀬戸内国際芸術祭期間のみ"

	groups := GenerateItineraryGroupsFromSailings(sailings)
	require.Len(t, groups, 2)

	assert.True(t, groups[0].DateLimited)
	assert.Equal(t, []string{"瀬戸内国際芸術祭期間のみ"}, groups[0].Notes)

	assert.False(t, groups[1].DateLimited)
	assert.Empty(t, groups[1].Notes)
}

func TestGenerateItineraryGroupsEmpty(t *testing.T) {
	groups := GenerateItineraryGroupsFromSailings(nil)

	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestGenerateItineraryGroupsOrderIndependent(t *testing.T) {
	sailings := []*Sailing{
		newTestSailing("高松", "直島", "08:12", "09:02", "四国汽船", "¥520"),
		newTestSailing("高松", "直島", "12:40", "13:30", "四国汽船", "¥520"),
		newTestSailing("高松", "直島", "07:20", "07:50", "四国汽船", "¥1,220"),
		newTestSailing("宇野", "直島", "06:10", "06:30", "四国汽船", "¥300"),
		newTestSailing("宇野", "直島", "22:00", "22:20", "四国汽船", "¥300"),
		newTestSailing("高松", "小豆島", "10:40", "11:40", "四国フェリー", "¥700"),
	}

	summarise := func(groups []*ItineraryGroup) map[string][]string {
		summary := map[string][]string{}
		for _, group := range groups {
			summary[group.RouteKey] = departureTimes(group.Sailings)
		}
		return summary
	}

	expected := summarise(GenerateItineraryGroupsFromSailings(sailings))

	random := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]*Sailing, len(sailings))
		copy(shuffled, sailings)
		random.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		assert.Equal(t, expected, summarise(GenerateItineraryGroupsFromSailings(shuffled)))
	}
}

func TestRouteKeyString(t *testing.T) {
	key := newTestSailing("宇野", "直島", "06:10", "06:30", "四国汽船", "¥300").RouteKey()

	assert.Equal(t, RouteKey{Departure: "宇野", Arrival: "直島"}, key)
	assert.Equal(t, "宇野→直島", key.String())
}
