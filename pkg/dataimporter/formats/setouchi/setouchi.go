package setouchi

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"github.com/setoferry/setoferry/pkg/ctdf"
	"github.com/setoferry/setoferry/pkg/util"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func init() {
	// Allow us to ignore those naughty records that have missing columns
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.FieldsPerRecord = -1
		r.TrimLeadingSpace = true
		return r
	})
}

func unmarshal[T any](data []byte) ([]*T, error) {
	rows := []*T{}

	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return rows, nil
	}

	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}

// ParseTimetable converts the sailing timetable. Rows without both ports are
// dropped; every other row is kept even when its times or fares are unusable.
func ParseTimetable(data []byte) ([]*ctdf.Sailing, error) {
	rows, err := unmarshal[TimetableRow](data)
	if err != nil {
		return nil, err
	}

	sailings := make([]*ctdf.Sailing, 0, len(rows))

	for i, row := range rows {
		departurePort := strings.TrimSpace(row.DeparturePort)
		arrivalPort := strings.TrimSpace(row.ArrivalPort)

		if departurePort == "" || arrivalPort == "" {
			log.Warn().Int("row", i+2).Msg("Skipping timetable row without departure or arrival port")
			continue
		}

		sailings = append(sailings, &ctdf.Sailing{
			DeparturePort:  departurePort,
			ArrivalPort:    arrivalPort,
			DepartureTime:  strings.TrimSpace(row.DepartureTime),
			ArrivalTime:    strings.TrimSpace(row.ArrivalTime),
			Company:        strings.TrimSpace(row.Company),
			ShipType:       strings.TrimSpace(row.ShipType),
			AllowsVehicles: ParseBool(row.AllowsVehicles),
			AllowsBicycles: ParseBool(row.AllowsBicycles),
			AdultFare:      strings.TrimSpace(row.AdultFare),
			ChildFare:      strings.TrimSpace(row.ChildFare),
			OperatingDays:  strings.TrimSpace(row.OperatingDays),
			Notes:          strings.TrimSpace(row.Notes),
		})
	}

	return sailings, nil
}

func ParseCompanies(data []byte) ([]*ctdf.Operator, error) {
	rows, err := unmarshal[CompanyRow](data)
	if err != nil {
		return nil, err
	}

	operators := make([]*ctdf.Operator, 0, len(rows))

	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			continue
		}

		website := strings.TrimSpace(row.Website)
		if website == "" {
			website = strings.TrimSpace(row.WebsiteShort)
		}

		operators = append(operators, &ctdf.Operator{
			Name:        name,
			PhoneNumber: strings.TrimSpace(row.Phone),
			Website:     website,
			MainRoutes:  strings.TrimSpace(row.MainRoutes),
			Notes:       strings.TrimSpace(row.Notes),
		})
	}

	return operators, nil
}

func ParsePorts(data []byte) ([]*ctdf.Stop, error) {
	rows, err := unmarshal[PortRow](data)
	if err != nil {
		return nil, err
	}

	stops := make([]*ctdf.Stop, 0, len(rows))

	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			continue
		}

		stops = append(stops, &ctdf.Stop{
			Name:        name,
			Island:      strings.TrimSpace(row.Island),
			Address:     strings.TrimSpace(row.Address),
			Features:    strings.TrimSpace(row.Features),
			Connections: SplitList(row.Connections),
		})
	}

	return stops, nil
}

func ParseFares(data []byte) ([]*ctdf.FareSummary, error) {
	rows, err := unmarshal[FareRow](data)
	if err != nil {
		return nil, err
	}

	fares := make([]*ctdf.FareSummary, 0, len(rows))

	for _, row := range rows {
		fares = append(fares, &ctdf.FareSummary{
			DeparturePort: strings.TrimSpace(row.DeparturePort),
			ArrivalPort:   strings.TrimSpace(row.ArrivalPort),
			Company:       strings.TrimSpace(row.Company),
			AdultFare:     strings.TrimSpace(row.AdultFare),
			ChildFare:     strings.TrimSpace(row.ChildFare),
			Notes:         strings.TrimSpace(row.Notes),
		})
	}

	return fares, nil
}

// ParseBool reads the 是/否 flags used in the timetable, along with the usual
// English spellings. Anything unrecognised is false.
func ParseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "是", "可", "○", "true", "yes", "y", "1":
		return true
	case "否", "不可", "×", "false", "no", "n", "0", "":
		return false
	default:
		log.Debug().Str("value", value).Msg("Unrecognised boolean, treating as false")
		return false
	}
}

// SplitList splits a list cell on the separators seen in the dataset and
// drops empty or repeated entries.
func SplitList(value string) []string {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		switch r {
		case ',', '，', '、', '/', '／', ';', '；':
			return true
		}
		return false
	})

	for i, field := range fields {
		fields[i] = strings.TrimSpace(field)
	}

	list := util.RemoveDuplicateStrings(fields, nil)
	if list == nil {
		return []string{}
	}

	return list
}
