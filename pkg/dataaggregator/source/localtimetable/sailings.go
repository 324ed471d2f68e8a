package localtimetable

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/setoferry/setoferry/pkg/ctdf"
	"github.com/setoferry/setoferry/pkg/dataaggregator/query"
	"github.com/setoferry/setoferry/pkg/dataaggregator/source/cachedresults"
)

func (s Source) SailingsQuery(timetable *ctdf.Timetable, q query.Sailings) (*ctdf.SailingSearchResults, error) {
	if err := q.Query.Validate(); err != nil {
		return nil, err
	}

	// Keyed by timetable version so a reload never serves stale results
	cacheKey := fmt.Sprintf("sailings:%s:%s", timetable.Version, q.Query.CacheKey())

	if cached, ok := cachedresults.Get[*ctdf.SailingSearchResults](context.Background(), s.Cache, cacheKey); ok {
		log.Debug().Str("key", cacheKey).Msg("Sailing search served from cache")
		return cached, nil
	}

	results := ctdf.SearchTimetable(timetable, q.Query)

	s.Cache.Set(context.Background(), cacheKey, results)

	return results, nil
}
