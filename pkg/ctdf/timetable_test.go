package ctdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReferenceTimetable() *Timetable {
	return &Timetable{
		Version:  "v1",
		Sailings: testTimetableSailings(),
		Operators: []*Operator{
			{Name: "四国汽船", MainRoutes: "高松-直島, 宇野-直島"},
			{Name: "四国フェリー", MainRoutes: "高松-小豆島"},
		},
		Stops: []*Stop{
			{Name: "高松", Island: "四国", Address: "香川県高松市サンポート"},
			{Name: "直島(宮浦)", Island: "直島", Address: "香川県香川郡直島町"},
		},
		Fares: []*FareSummary{
			{DeparturePort: "高松", ArrivalPort: "直島(宮浦)", AdultFare: "¥520"},
			{DeparturePort: "宇野", ArrivalPort: "直島(宮浦)", AdultFare: "¥300"},
			{DeparturePort: "Takamatsu", ArrivalPort: "Naoshima", AdultFare: "¥1,220"},
		},
	}
}

func TestTimetableGetOperatorAndStop(t *testing.T) {
	timetable := testReferenceTimetable()

	operator := timetable.GetOperator("四国フェリー")
	require.NotNil(t, operator)
	assert.Equal(t, "高松-小豆島", operator.MainRoutes)
	assert.Nil(t, timetable.GetOperator("unknown"))

	stop := timetable.GetStop("高松")
	require.NotNil(t, stop)
	assert.Equal(t, "四国", stop.Island)
	assert.Nil(t, timetable.GetStop("高"))
}

func TestTimetableSearchReferenceData(t *testing.T) {
	timetable := testReferenceTimetable()

	assert.Len(t, timetable.SearchOperators(""), 2)
	assert.Len(t, timetable.SearchOperators("宇野"), 1)
	assert.Empty(t, timetable.SearchOperators("jr"))

	assert.Len(t, timetable.SearchStops("  "), 2)
	assert.Len(t, timetable.SearchStops("直島町"), 1)
	assert.Len(t, timetable.SearchStops("四国"), 1)
}

func TestTimetableSearchFares(t *testing.T) {
	timetable := testReferenceTimetable()

	assert.Len(t, timetable.SearchFares("", ""), 3)
	assert.Len(t, timetable.SearchFares("", "直島"), 2)
	assert.Len(t, timetable.SearchFares("takamatsu", "naoshima"), 1)
	assert.Empty(t, timetable.SearchFares("宇野", "小豆島"))
}

func TestTimetableStoreSwap(t *testing.T) {
	store := NewTimetableStore(nil)
	assert.Nil(t, store.Load())

	first := &Timetable{Version: "first"}
	second := &Timetable{Version: "second"}

	assert.Nil(t, store.Swap(first))
	assert.Equal(t, "first", store.Load().Version)

	previous := store.Swap(second)
	require.NotNil(t, previous)
	assert.Equal(t, "first", previous.Version)
	assert.Equal(t, "second", store.Load().Version)
}
