package validator

import (
	"sort"
	"strings"
)

// Errors maps field names to their failure messages.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// Single builds an Errors value with one message for one field.
func Single(field, message string) Errors {
	return Errors{field: {message}}
}

// Taken reports the value of field as already in use by another record.
func Taken(field string) Errors {
	return Single(field, takenMessage(labelOf(field)))
}
