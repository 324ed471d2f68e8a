package calculator

// CountAggregate counts records by the key returned for each. Empty keys are
// counted under "unknown".
func CountAggregate[T any](records []T, key func(T) string) map[string]int {
	countMap := map[string]int{}

	for _, record := range records {
		aggregateKey := key(record)
		if aggregateKey == "" {
			aggregateKey = "unknown"
		}

		countMap[aggregateKey]++
	}

	return countMap
}
