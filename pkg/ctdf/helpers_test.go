package ctdf

func newTestSailing(departurePort, arrivalPort, departureTime, arrivalTime, company, adultFare string) *Sailing {
	return &Sailing{
		DeparturePort: departurePort,
		ArrivalPort:   arrivalPort,
		DepartureTime: departureTime,
		ArrivalTime:   arrivalTime,
		Company:       company,
		ShipType:      "フェリー",
		AdultFare:     adultFare,
		ChildFare:     adultFare,
		OperatingDays: "毎日",
	}
}

func clockTimePointer(value ClockTime) *ClockTime {
	return &value
}

func boolPointer(value bool) *bool {
	return &value
}

func intPointer(value int) *int {
	return &value
}

func departureTimes(sailings []*Sailing) []string {
	times := []string{}
	for _, sailing := range sailings {
		times = append(times, sailing.DepartureTime)
	}
	return times
}
