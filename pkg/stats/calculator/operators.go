package calculator

import (
	"github.com/setoferry/setoferry/pkg/ctdf"
)

type OperatorsStats struct {
	Total int

	Sailings map[string]int
}

func GetOperators(timetable *ctdf.Timetable) OperatorsStats {
	return OperatorsStats{
		Total: len(timetable.Operators),
		Sailings: CountAggregate(timetable.Sailings, func(sailing *ctdf.Sailing) string {
			return sailing.Company
		}),
	}
}
