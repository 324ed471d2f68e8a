package localtimetable

import (
	"github.com/setoferry/setoferry/pkg/ctdf"
	"github.com/setoferry/setoferry/pkg/dataaggregator/query"
	"github.com/setoferry/setoferry/pkg/dataaggregator/source"
)

func (s Source) IslandQuery(timetable *ctdf.Timetable, q query.Island) (*ctdf.Island, error) {
	island := timetable.GetIsland(q.Name)
	if island == nil {
		return nil, source.ErrNotFound
	}

	return island, nil
}
