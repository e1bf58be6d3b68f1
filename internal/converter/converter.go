package converter

import (
	"slices"
	"time"

	"gorm.io/datatypes"
)

// isoLayout matches the timestamps clients already parse: UTC with
// microseconds and a Z suffix.
const isoLayout = "2006-01-02T15:04:05.000000Z07:00"

const dateLayout = "2006-01-02"

func isoString(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

func dateString(d datatypes.Date) string {
	return time.Time(d).Format(dateLayout)
}

func has(relations []string, relation string) bool {
	return slices.Contains(relations, relation)
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

func stringPtr(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

func uintValue(v any) uint {
	n, _ := v.(uint)
	return n
}

func uintPtr(v any) *uint {
	n, ok := v.(uint)
	if !ok {
		return nil
	}
	return &n
}

func timeValue(v any) time.Time {
	t, _ := v.(time.Time)
	return t
}

func dateValue(v any) datatypes.Date {
	t := timeValue(v)
	return datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}
