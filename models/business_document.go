package models

// BusinessDocument matches the raw business hours JSON served by the
// location endpoint. Hour triples arrive in arbitrary order and a day may
// appear multiple times, once per shift.
type BusinessDocument struct {
	LocationName string      `json:"location_name"`
	Hours        []HourRange `json:"hours"`
}

// HourRange is one (day, start, end) triple of the wire format. Times are
// local wall-clock "HH:MM:SS" strings; "24:00:00" is legal only as an end
// value and "00:00:00" only as a start value.
type HourRange struct {
	DayOfWeek      string `json:"day_of_week"`
	StartLocalTime string `json:"start_local_time"`
	EndLocalTime   string `json:"end_local_time"`
}
