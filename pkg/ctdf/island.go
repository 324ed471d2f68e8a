package ctdf

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Island holds the on-island transport of one destination island: bicycle
// rentals, local buses and anything else listed for it.
type Island struct {
	Name   string `json:"island_name"`
	NameEn string `json:"island_name_en"`

	BicycleRentals  []*BicycleRental  `json:"bicycle_rentals"`
	BusSchedules    []*BusSchedule    `json:"bus_schedules"`
	OtherTransports []*OtherTransport `json:"other_transports"`

	Summary string `json:"summary"`

	// Notes is a configured remark such as a vehicle ban, surfaced in summaries
	Notes string `json:"-"`
}

// MatchesName reports whether name is the island's name in either language,
// ignoring case and surrounding space.
func (island *Island) MatchesName(name string) bool {
	name = strings.TrimSpace(name)
	return strings.EqualFold(island.Name, name) || strings.EqualFold(island.NameEn, name)
}

type BicycleRental struct {
	ShopName       string `json:"shop_name"`
	Location       string `json:"location"`
	BicycleType    string `json:"bicycle_type"`
	PriceOneDay    *int   `json:"price_1day_yen"`
	PriceFourHours *int   `json:"price_4hours_yen"`
	PriceOvernight *int   `json:"price_overnight_yen"`
	OperatingHours string `json:"operating_hours"`
	Contact        string `json:"contact"`
	Notes          string `json:"notes"`
	Equipment      string `json:"equipment"`
	Insurance      string `json:"insurance"`
}

type BusSchedule struct {
	BusType       string `json:"bus_type"`
	Route         string `json:"route"`
	DepartureStop string `json:"departure_stop"`
	ArrivalStop   string `json:"arrival_stop"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	AdultFare     *int   `json:"fare_adult_yen"`
	ChildFare     *int   `json:"fare_child_yen"`
	Operator      string `json:"operator"`
	Notes         string `json:"notes"`
	Frequency     string `json:"frequency"`
}

type OtherTransport struct {
	TransportType  string `json:"transport_type"`
	ServiceName    string `json:"service_name"`
	Location       string `json:"location"`
	Price          *int   `json:"price_yen"`
	OperatingHours string `json:"operating_hours"`
	Contact        string `json:"contact"`
	Notes          string `json:"notes"`
	Capacity       string `json:"capacity"`
	Requirements   string `json:"requirements"`
}

// Display names for the transport types listed in other transport files.
// Unlisted types are left out of summaries.
var otherTransportNames = map[string]string{
	"taxi":             "出租车",
	"car_rental":       "汽车租赁",
	"walking":          "步行",
	"motorbike_rental": "摩托车租赁",
}

const (
	transportNameBus           = "巴士"
	transportNameBicycleRental = "自行车租赁"
)

type IslandSummary struct {
	Name               string   `json:"island_name"`
	NameEn             string   `json:"island_name_en"`
	HasBus             bool     `json:"has_bus"`
	HasBicycleRental   bool     `json:"has_bicycle_rental"`
	BicycleRentalCount int      `json:"bicycle_rental_count"`
	MinBicyclePrice    *int     `json:"min_bicycle_price"`
	TransportTypes     []string `json:"transport_types"`
	SpecialNotes       string   `json:"special_notes,omitempty"`
}

// GetSummary condenses the island's transport. The minimum bicycle price only
// considers known, positive one day prices.
func (island *Island) GetSummary() *IslandSummary {
	summary := &IslandSummary{
		Name:               island.Name,
		NameEn:             island.NameEn,
		HasBus:             len(island.BusSchedules) > 0,
		HasBicycleRental:   len(island.BicycleRentals) > 0,
		BicycleRentalCount: len(island.BicycleRentals),
		TransportTypes:     []string{},
		SpecialNotes:       island.Notes,
	}

	for _, rental := range island.BicycleRentals {
		if rental.PriceOneDay == nil || *rental.PriceOneDay <= 0 {
			continue
		}
		if summary.MinBicyclePrice == nil || *rental.PriceOneDay < *summary.MinBicyclePrice {
			price := *rental.PriceOneDay
			summary.MinBicyclePrice = &price
		}
	}

	if summary.HasBus {
		summary.TransportTypes = append(summary.TransportTypes, transportNameBus)
	}
	if summary.HasBicycleRental {
		summary.TransportTypes = append(summary.TransportTypes, transportNameBicycleRental)
	}
	for _, transport := range island.OtherTransports {
		name, ok := otherTransportNames[transport.TransportType]
		if ok && !slices.Contains(summary.TransportTypes, name) {
			summary.TransportTypes = append(summary.TransportTypes, name)
		}
	}

	return summary
}

// QueryBicycleRentals filters rentals across every island. A rental without a
// known one day price is never excluded by MaxPrice.
type QueryBicycleRentals struct {
	Island     string
	MaxPrice   *int
	RentalType string
}

type BicycleRentalResult struct {
	IslandName   string         `json:"island_name"`
	IslandNameEn string         `json:"island_name_en"`
	Rental       *BicycleRental `json:"rental_info"`
}

func (q QueryBicycleRentals) Matches(rental *BicycleRental) bool {
	if q.MaxPrice != nil && rental.PriceOneDay != nil && *rental.PriceOneDay > *q.MaxPrice {
		return false
	}
	if q.RentalType != "" && !containsFold(rental.BicycleType, q.RentalType) {
		return false
	}
	return true
}

// BicycleRentalSearchParams is the raw query string of a rental search.
type BicycleRentalSearchParams struct {
	Island     string `query:"island_name"`
	MaxPrice   string `query:"max_price" validate:"omitempty,number"`
	RentalType string `query:"rental_type"`
}

func (p BicycleRentalSearchParams) Query() (QueryBicycleRentals, error) {
	p = BicycleRentalSearchParams{
		Island:     strings.TrimSpace(p.Island),
		MaxPrice:   strings.TrimSpace(p.MaxPrice),
		RentalType: strings.TrimSpace(p.RentalType),
	}

	if err := validate.Struct(p); err != nil {
		return QueryBicycleRentals{}, validationErrorFrom(err)
	}

	query := QueryBicycleRentals{
		Island:     p.Island,
		RentalType: p.RentalType,
	}

	if p.MaxPrice != "" {
		maxPrice, ok := ParseFare(p.MaxPrice)
		if !ok {
			return QueryBicycleRentals{}, &ValidationError{
				Field:  "max_price",
				Value:  p.MaxPrice,
				Reason: "must be a whole number",
			}
		}
		query.MaxPrice = &maxPrice
	}

	return query, nil
}
