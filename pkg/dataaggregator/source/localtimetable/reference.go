package localtimetable

import (
	"github.com/setoferry/setoferry/pkg/ctdf"
	"github.com/setoferry/setoferry/pkg/dataaggregator/query"
	"github.com/setoferry/setoferry/pkg/dataaggregator/source"
	"github.com/setoferry/setoferry/pkg/transforms"
)

func (s Source) OperatorQuery(timetable *ctdf.Timetable, q query.Operator) (*ctdf.Operator, error) {
	operator := timetable.GetOperator(q.Name)
	if operator == nil {
		return nil, source.ErrNotFound
	}

	return transforms.Decorate(operator)
}

func (s Source) OperatorsQuery(timetable *ctdf.Timetable, q query.Operators) ([]*ctdf.Operator, error) {
	return transforms.DecorateAll(timetable.SearchOperators(q.Search))
}

func (s Source) StopQuery(timetable *ctdf.Timetable, q query.Stop) (*ctdf.Stop, error) {
	stop := timetable.GetStop(q.Name)
	if stop == nil {
		return nil, source.ErrNotFound
	}

	return transforms.Decorate(stop)
}

func (s Source) StopsQuery(timetable *ctdf.Timetable, q query.Stops) ([]*ctdf.Stop, error) {
	return transforms.DecorateAll(timetable.SearchStops(q.Search))
}
