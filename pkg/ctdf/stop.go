package ctdf

import (
	"strings"
)

// Stop is a ferry port.
type Stop struct {
	Name    string `groups:"basic,detailed" json:"name"`
	Island  string `groups:"basic,detailed" json:"island"`
	Address string `groups:"detailed" json:"address"`

	Features    string   `groups:"detailed" json:"features"`
	Connections []string `groups:"basic,detailed" json:"connections"`

	BrandColour string `groups:"basic,detailed" json:"brand_colour,omitempty"`
	BrandIcon   string `groups:"basic,detailed" json:"brand_icon,omitempty"`
}

func (stop *Stop) MatchesSearch(search string) bool {
	search = strings.TrimSpace(search)
	if search == "" {
		return true
	}

	return containsFold(stop.Name, search) ||
		containsFold(stop.Island, search) ||
		containsFold(stop.Address, search)
}
