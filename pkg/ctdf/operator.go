package ctdf

import (
	"strings"
)

// Operator is a ferry company. Operators are display reference data and are
// not used when searching sailings.
type Operator struct {
	Name string `groups:"basic,detailed" json:"name"`

	PhoneNumber string `groups:"detailed" json:"phone_number"`
	Website     string `groups:"detailed" json:"website"`
	MainRoutes  string `groups:"basic,detailed" json:"main_routes"`
	Notes       string `groups:"detailed" json:"notes"`

	BrandColour string `groups:"basic,detailed" json:"brand_colour,omitempty"`
	BrandIcon   string `groups:"basic,detailed" json:"brand_icon,omitempty"`
}

// MatchesSearch is a case insensitive match against the name or main routes.
func (operator *Operator) MatchesSearch(search string) bool {
	search = strings.TrimSpace(search)
	if search == "" {
		return true
	}

	return containsFold(operator.Name, search) || containsFold(operator.MainRoutes, search)
}
