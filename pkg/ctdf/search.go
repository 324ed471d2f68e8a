package ctdf

// SailingSearchResults is the grouped response to a sailing search. Total
// counts matching sailings, not groups, and is taken before pagination.
type SailingSearchResults struct {
	Groups []*ItineraryGroup `json:"groups"`

	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`

	TimetableVersion string `json:"timetableVersion,omitempty"`
}

// SearchSailings filters, paginates then groups. Only the sailings on the
// requested page are grouped.
func SearchSailings(sailings []*Sailing, query QuerySailings) *SailingSearchResults {
	filtered := FilterSailings(sailings, query)
	page := Paginate(filtered, query.Page, query.Limit)

	return &SailingSearchResults{
		Groups: GenerateItineraryGroupsFromSailings(page),
		Total:  len(filtered),
		Page:   query.Page,
		Limit:  query.Limit,
		Pages:  PageCount(len(filtered), query.Limit),
	}
}

func SearchTimetable(timetable *Timetable, query QuerySailings) *SailingSearchResults {
	results := SearchSailings(timetable.Sailings, query)
	results.TimetableVersion = timetable.Version

	return results
}
