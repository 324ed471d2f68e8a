package ctdf

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultSearchPage  = 1
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

// SailingSearchParams is a search as it arrives over the wire: every field is
// an optional string. Query validates it and produces a QuerySailings.
type SailingSearchParams struct {
	Departure          string `query:"departure"`
	Arrival            string `query:"arrival"`
	Company            string `query:"company"`
	DepartureTimeStart string `query:"departure_time_start" validate:"omitempty,clocktime"`
	DepartureTimeEnd   string `query:"departure_time_end" validate:"omitempty,clocktime"`
	AllowsVehicles     string `query:"allows_vehicles" validate:"omitempty,boolean"`
	AllowsBicycles     string `query:"allows_bicycles" validate:"omitempty,boolean"`
	Page               string `query:"page" validate:"omitempty,number"`
	Limit              string `query:"limit" validate:"omitempty,number"`
}

func (p SailingSearchParams) Query() (QuerySailings, error) {
	p = p.trimmed()

	if err := validate.Struct(p); err != nil {
		return QuerySailings{}, validationErrorFrom(err)
	}

	query := QuerySailings{
		Departure: p.Departure,
		Arrival:   p.Arrival,
		Company:   p.Company,
		Page:      DefaultSearchPage,
		Limit:     DefaultSearchLimit,
	}

	if p.DepartureTimeStart != "" {
		start, _ := ParseClockTime(p.DepartureTimeStart)
		query.DepartureTimeStart = &start
	}
	if p.DepartureTimeEnd != "" {
		end, _ := ParseClockTime(p.DepartureTimeEnd)
		query.DepartureTimeEnd = &end
	}
	if p.AllowsVehicles != "" {
		allowsVehicles, _ := strconv.ParseBool(p.AllowsVehicles)
		query.AllowsVehicles = &allowsVehicles
	}
	if p.AllowsBicycles != "" {
		allowsBicycles, _ := strconv.ParseBool(p.AllowsBicycles)
		query.AllowsBicycles = &allowsBicycles
	}
	if p.Page != "" {
		page, err := strconv.Atoi(p.Page)
		if err != nil {
			return QuerySailings{}, &ValidationError{Field: "page", Value: p.Page, Reason: "must be a whole number"}
		}
		query.Page = page
	}
	if p.Limit != "" {
		limit, err := strconv.Atoi(p.Limit)
		if err != nil {
			return QuerySailings{}, &ValidationError{Field: "limit", Value: p.Limit, Reason: "must be a whole number"}
		}
		query.Limit = limit
	}

	if err := query.Validate(); err != nil {
		return QuerySailings{}, err
	}

	return query, nil
}

func (p SailingSearchParams) trimmed() SailingSearchParams {
	return SailingSearchParams{
		Departure:          strings.TrimSpace(p.Departure),
		Arrival:            strings.TrimSpace(p.Arrival),
		Company:            strings.TrimSpace(p.Company),
		DepartureTimeStart: strings.TrimSpace(p.DepartureTimeStart),
		DepartureTimeEnd:   strings.TrimSpace(p.DepartureTimeEnd),
		AllowsVehicles:     strings.TrimSpace(p.AllowsVehicles),
		AllowsBicycles:     strings.TrimSpace(p.AllowsBicycles),
		Page:               strings.TrimSpace(p.Page),
		Limit:              strings.TrimSpace(p.Limit),
	}
}

// QuerySailings is a validated sailing search. Zero value string fields and
// nil pointers place no constraint on that dimension.
type QuerySailings struct {
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	Company   string `json:"company"`

	DepartureTimeStart *ClockTime `json:"departure_time_start" validate:"omitempty,gte=0,lt=1440"`
	DepartureTimeEnd   *ClockTime `json:"departure_time_end" validate:"omitempty,gte=0,lt=1440"`

	AllowsVehicles *bool `json:"allows_vehicles"`
	AllowsBicycles *bool `json:"allows_bicycles"`

	Page  int `json:"page" validate:"gte=1"`
	Limit int `json:"limit" validate:"gte=1,lte=100"`
}

func NewQuerySailings() QuerySailings {
	return QuerySailings{Page: DefaultSearchPage, Limit: DefaultSearchLimit}
}

func (q QuerySailings) Validate() error {
	if err := validate.Struct(q); err != nil {
		return validationErrorFrom(err)
	}
	return nil
}

// Matches reports whether the sailing satisfies every constraint of the query.
// Port and company matching is a case insensitive substring match. A sailing
// whose departure time cannot be parsed never matches a time bounded query.
func (q QuerySailings) Matches(sailing *Sailing) bool {
	if q.Departure != "" && !containsFold(sailing.DeparturePort, q.Departure) {
		return false
	}
	if q.Arrival != "" && !containsFold(sailing.ArrivalPort, q.Arrival) {
		return false
	}
	if q.Company != "" && !containsFold(sailing.Company, q.Company) {
		return false
	}

	if q.DepartureTimeStart != nil || q.DepartureTimeEnd != nil {
		departure, ok := sailing.DepartureClockTime()
		if !ok {
			return false
		}
		if q.DepartureTimeStart != nil && departure < *q.DepartureTimeStart {
			return false
		}
		if q.DepartureTimeEnd != nil && departure > *q.DepartureTimeEnd {
			return false
		}
	}

	if q.AllowsVehicles != nil && sailing.AllowsVehicles != *q.AllowsVehicles {
		return false
	}
	if q.AllowsBicycles != nil && sailing.AllowsBicycles != *q.AllowsBicycles {
		return false
	}

	return true
}

// CacheKey identifies the normalised query, page and limit included. Port and
// company filters are lower cased since matching ignores case.
func (q QuerySailings) CacheKey() string {
	normalised := q
	normalised.Departure = strings.ToLower(q.Departure)
	normalised.Arrival = strings.ToLower(q.Arrival)
	normalised.Company = strings.ToLower(q.Company)

	encoded, _ := json.Marshal(normalised)
	return fmt.Sprintf("%x", sha256.Sum256(encoded))
}

// FilterSailings returns the sailings matching the query in their original order.
func FilterSailings(sailings []*Sailing, query QuerySailings) []*Sailing {
	filtered := make([]*Sailing, 0, len(sailings))

	for _, sailing := range sailings {
		if query.Matches(sailing) {
			filtered = append(filtered, sailing)
		}
	}

	return filtered
}

func containsFold(s string, substring string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substring))
}
