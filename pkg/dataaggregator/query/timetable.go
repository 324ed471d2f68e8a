package query

// Timetable asks for the currently loaded timetable itself.
type Timetable struct{}

type TimetableStats struct{}
