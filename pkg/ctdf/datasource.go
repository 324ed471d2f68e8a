package ctdf

// DataSource records where a loaded timetable came from.
type DataSource struct {
	OriginalFormat string `json:"original_format"`
	Provider       string `json:"provider"`
	Dataset        string `json:"dataset"`
	Identifier     string `json:"identifier"`
}
