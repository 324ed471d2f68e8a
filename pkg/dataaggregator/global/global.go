package global

import (
	"time"

	"github.com/setoferry/setoferry/pkg/ctdf"
	"github.com/setoferry/setoferry/pkg/dataaggregator"
	"github.com/setoferry/setoferry/pkg/dataaggregator/source/cachedresults"
	"github.com/setoferry/setoferry/pkg/dataaggregator/source/localtimetable"
	"github.com/setoferry/setoferry/pkg/redis_client"
)

// Setup registers the data sources backing dataaggregator.Lookup. Search
// results are cached in Redis when a Redis client has been connected.
func Setup(store *ctdf.TimetableStore, cacheExpiration time.Duration) {
	dataaggregator.GlobalAggregator = dataaggregator.Aggregator{}

	resultsCache := &cachedresults.Cache{}
	resultsCache.Setup(redis_client.Client, cacheExpiration)

	dataaggregator.GlobalAggregator.RegisterSource(localtimetable.Source{
		Store: store,
		Cache: resultsCache,
	})
}
