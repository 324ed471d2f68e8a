package setouchi

import (
	"bytes"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/setoferry/setoferry/pkg/ctdf"
)

const (
	noBicycleRental = "no_bicycle_rental"
	noBus           = "no_bus"
)

var priceDecorations = strings.NewReplacer("円", "", "日元", "", "¥", "", "￥", "", ",", "", "，", "", " ", "")

// ParsePrice reads a yen price cell such as "1,000円". Placeholders, ranges and
// anything else that is not a plain amount give nil.
func ParsePrice(value string) *int {
	value = strings.TrimSpace(value)
	switch value {
	case "", "-", "要確認":
		return nil
	}

	plain := priceDecorations.Replace(value)
	if plain == "" || strings.Trim(plain, "0123456789") != "" {
		log.Debug().Str("value", value).Msg("Unreadable island price, leaving it unknown")
		return nil
	}

	price, ok := ctdf.ParseFare(plain)
	if !ok {
		return nil
	}

	return &price
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			return value
		}
	}
	return ""
}

// ParseBicycleRentals skips the no_bicycle_rental marker row some islands use
// to record that nothing is available.
func ParseBicycleRentals(data []byte) ([]*ctdf.BicycleRental, error) {
	rows, err := unmarshal[BicycleRentalRow](data)
	if err != nil {
		return nil, err
	}

	rentals := make([]*ctdf.BicycleRental, 0, len(rows))

	for _, row := range rows {
		shopName := strings.TrimSpace(row.ShopName)
		if shopName == "" || shopName == noBicycleRental {
			continue
		}

		rentals = append(rentals, &ctdf.BicycleRental{
			ShopName:       shopName,
			Location:       strings.TrimSpace(row.Location),
			BicycleType:    strings.TrimSpace(row.BicycleType),
			PriceOneDay:    ParsePrice(firstNonEmpty(row.PriceOneDay, row.PricePerDay, row.PriceDay)),
			PriceFourHours: ParsePrice(row.PriceFourHours),
			PriceOvernight: ParsePrice(row.PriceOvernight),
			OperatingHours: strings.TrimSpace(row.OperatingHours),
			Contact:        strings.TrimSpace(row.Contact),
			Notes:          strings.TrimSpace(row.Notes),
			Equipment:      strings.TrimSpace(row.Equipment),
			Insurance:      strings.TrimSpace(row.Insurance),
		})
	}

	return rentals, nil
}

// ParseBusTimetable skips rows with no bus type and the no_bus marker row.
func ParseBusTimetable(data []byte) ([]*ctdf.BusSchedule, error) {
	rows, err := unmarshal[BusTimetableRow](data)
	if err != nil {
		return nil, err
	}

	schedules := make([]*ctdf.BusSchedule, 0, len(rows))

	for _, row := range rows {
		busType := firstNonEmpty(row.BusType, row.BusLine, row.TransportType)
		if busType == "" || busType == noBus {
			continue
		}

		schedules = append(schedules, &ctdf.BusSchedule{
			BusType:       busType,
			Route:         strings.TrimSpace(row.Route),
			DepartureStop: strings.TrimSpace(row.DepartureStop),
			ArrivalStop:   strings.TrimSpace(row.ArrivalStop),
			DepartureTime: strings.TrimSpace(row.DepartureTime),
			ArrivalTime:   strings.TrimSpace(row.ArrivalTime),
			AdultFare:     ParsePrice(firstNonEmpty(row.AdultFare, row.AdultFareOnly)),
			ChildFare:     ParsePrice(row.ChildFare),
			Operator:      strings.TrimSpace(row.Operator),
			Notes:         strings.TrimSpace(row.Notes),
			Frequency:     strings.TrimSpace(row.Frequency),
		})
	}

	return schedules, nil
}

func ParseOtherTransport(data []byte) ([]*ctdf.OtherTransport, error) {
	rows, err := unmarshal[OtherTransportRow](data)
	if err != nil {
		return nil, err
	}

	transports := make([]*ctdf.OtherTransport, 0, len(rows))

	for _, row := range rows {
		transportType := strings.TrimSpace(row.TransportType)
		if transportType == "" {
			continue
		}

		transports = append(transports, &ctdf.OtherTransport{
			TransportType:  transportType,
			ServiceName:    strings.TrimSpace(row.ServiceName),
			Location:       strings.TrimSpace(row.Location),
			Price:          ParsePrice(row.Price),
			OperatingHours: strings.TrimSpace(row.OperatingHours),
			Contact:        strings.TrimSpace(row.Contact),
			Notes:          strings.TrimSpace(row.Notes),
			Capacity:       strings.TrimSpace(row.Capacity),
			Requirements:   strings.TrimSpace(row.Requirements),
		})
	}

	return transports, nil
}

// ParseIslandSummary reads the free text transport summary kept next to the
// island's files.
func ParseIslandSummary(data []byte) string {
	return string(bytes.TrimSpace(bytes.TrimPrefix(data, utf8BOM)))
}
