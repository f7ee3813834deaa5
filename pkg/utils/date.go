package utils

import (
	"time"
)

// DisplayLayout is the rendering used for article timestamps on the console.
const DisplayLayout = "2006-01-02 15:04:05 MST"

// WireLayout is the absolute UTC timestamp format the news source delivers.
const WireLayout = "2006-01-02T15:04:05Z"

// LoadLocation resolves a zone name, falling back to the process local zone
// when the name is empty or unknown to the tz database.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}

// FormatLocalTime converts a WireLayout timestamp into the display layout in loc.
// Anything else, including offsets and fractional seconds, is returned unchanged.
func FormatLocalTime(iso string, loc *time.Location) string {
	// time.Parse accepts fractional seconds the layout does not mention.
	if len(iso) != len(WireLayout) {
		return iso
	}
	t, err := time.Parse(WireLayout, iso)
	if err != nil {
		return iso
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DisplayLayout)
}

// FormatWireTime renders t in the news source wire format.
func FormatWireTime(t time.Time) string {
	return t.UTC().Format(WireLayout)
}
