package dataaggregator

import (
	"errors"
	"reflect"

	"github.com/rs/zerolog/log"
	"github.com/setoferry/setoferry/pkg/dataaggregator/source"
)

var ErrNoMatchingSource = errors.New("failed to find a matching data source for type")

type Aggregator struct {
	Sources []DataSource
}

var GlobalAggregator Aggregator

func (a *Aggregator) RegisterSource(source DataSource) {
	a.Sources = append(a.Sources, source)

	log.Debug().Str("name", source.GetName()).Msg("Registering new Data Source")
}

// Lookup runs the query against the global aggregator.
func Lookup[T any](query any) (T, error) {
	return AggregatorLookup[T](&GlobalAggregator, query)
}

// AggregatorLookup asks each source that supports T in turn. A source that
// returns source.ErrUnsupportedSource for this particular query is skipped.
func AggregatorLookup[T any](aggregator *Aggregator, query any) (T, error) {
	var empty T

	lookupType := reflect.TypeOf(*new(T))
	if lookupType.Kind() == reflect.Pointer {
		lookupType = lookupType.Elem()
	}

	for _, dataSource := range aggregator.Sources {
		matches := false

		for _, supportedType := range dataSource.Supports() {
			if lookupType == supportedType {
				matches = true
				break
			}
		}

		if !matches {
			continue
		}

		returnValue, err := dataSource.Lookup(query)
		if errors.Is(err, source.ErrUnsupportedSource) {
			continue
		}

		if returnValue == nil {
			return empty, err
		}

		typedValue, ok := returnValue.(T)
		if !ok {
			return empty, ErrNoMatchingSource
		}

		return typedValue, err
	}

	return empty, ErrNoMatchingSource
}
