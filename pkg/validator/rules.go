package validator

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	ruleRequired  = "required"
	ruleSometimes = "sometimes"
	ruleNullable  = "nullable"
)

// DateRef is a moving reference point for date comparison rules.
type DateRef string

const (
	Now   DateRef = "now"
	Today DateRef = "today"
)

type checkFunc func(ctx context.Context, e *evaluation, label string, value any) (any, string, error)

// Rule is a single validation step. Presence rules (Required, Sometimes,
// Nullable) carry no check and only change how absent or null values are
// treated.
type Rule struct {
	name    string
	message string
	check   checkFunc
}

// WithMessage replaces the default failure message of the rule.
func (r Rule) WithMessage(message string) Rule {
	r.message = message
	return r
}

// Field is a named input key with its ordered rules.
type Field struct {
	Name  string
	Rules []Rule
}

// RuleSet lists the recognized fields of a payload in declaration order.
type RuleSet []Field

// On builds a Field.
func On(name string, rules ...Rule) Field {
	return Field{Name: name, Rules: rules}
}

func (f Field) flags() (required, sometimes, nullable bool) {
	for _, r := range f.Rules {
		switch r.name {
		case ruleRequired:
			required = true
		case ruleSometimes:
			sometimes = true
		case ruleNullable:
			nullable = true
		}
	}
	return
}

func (f Field) label() string {
	return labelOf(f.Name)
}

func labelOf(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}

func takenMessage(label string) string {
	return "The " + label + " has already been taken."
}

func (f Field) message(rule, fallback string) string {
	for _, r := range f.Rules {
		if r.name == rule && r.message != "" {
			return r.message
		}
	}
	return fallback
}

func Required() Rule  { return Rule{name: ruleRequired} }
func Sometimes() Rule { return Rule{name: ruleSometimes} }
func Nullable() Rule  { return Rule{name: ruleNullable} }

func String() Rule {
	return Rule{name: "string", check: func(_ context.Context, _ *evaluation, label string, value any) (any, string, error) {
		s, ok := value.(string)
		if !ok {
			return nil, "The " + label + " field must be a string.", nil
		}
		return s, "", nil
	}}
}

func Email() Rule {
	return Rule{name: "email", check: func(_ context.Context, e *evaluation, label string, value any) (any, string, error) {
		s, ok := value.(string)
		if !ok || e.cv.validator.Var(s, "email") != nil {
			return nil, "The " + label + " field must be a valid email address.", nil
		}
		return s, "", nil
	}}
}

// Max limits the length of a string in characters.
func Max(n int) Rule {
	return Rule{name: "max", check: func(_ context.Context, e *evaluation, label string, value any) (any, string, error) {
		s, ok := value.(string)
		if !ok || e.cv.validator.Var(s, fmt.Sprintf("max=%d", n)) != nil {
			return nil, fmt.Sprintf("The %s field must not be greater than %d characters.", label, n), nil
		}
		return s, "", nil
	}}
}

// Regex checks a string against one of the registered format tags
// (uk_mobile, nhs_number).
func Regex(tag string) Rule {
	return Rule{name: "regex", check: func(_ context.Context, e *evaluation, label string, value any) (any, string, error) {
		s, ok := value.(string)
		if !ok || e.cv.validator.Var(s, tag) != nil {
			return nil, "The " + label + " field format is invalid.", nil
		}
		return s, "", nil
	}}
}

// In requires the value to be one of values.
func In(values ...string) Rule {
	tag := "oneof=" + strings.Join(values, " ")
	return Rule{name: "in", check: func(_ context.Context, e *evaluation, label string, value any) (any, string, error) {
		s, ok := value.(string)
		if !ok || e.cv.validator.Var(s, tag) != nil {
			return nil, "The selected " + label + " is invalid.", nil
		}
		return s, "", nil
	}}
}

func Integer() Rule {
	return Rule{name: "integer", check: func(_ context.Context, _ *evaluation, label string, value any) (any, string, error) {
		n, ok := toInt(value)
		if !ok {
			return nil, "The " + label + " field must be an integer.", nil
		}
		return n, "", nil
	}}
}

// Between bounds an integer inclusively. It expects Integer to run first.
func Between(min, max int) Rule {
	return Rule{name: "between", check: func(_ context.Context, e *evaluation, label string, value any) (any, string, error) {
		n, ok := toInt(value)
		if !ok {
			return nil, "The " + label + " field must be an integer.", nil
		}
		if e.cv.validator.Var(n, fmt.Sprintf("gte=%d", min)) != nil {
			return nil, fmt.Sprintf("The %s field must be at least %d.", label, min), nil
		}
		if e.cv.validator.Var(n, fmt.Sprintf("lte=%d", max)) != nil {
			return nil, fmt.Sprintf("The %s field must not be greater than %d.", label, max), nil
		}
		return n, "", nil
	}}
}

func Date() Rule {
	return Rule{name: "date", check: func(_ context.Context, _ *evaluation, label string, value any) (any, string, error) {
		t, ok := toTime(value)
		if !ok {
			return nil, "The " + label + " field must be a valid date.", nil
		}
		return t, "", nil
	}}
}

// Before requires a date strictly earlier than ref.
func Before(ref DateRef) Rule {
	return compareDate("before", ref, func(v, r time.Time) bool { return v.Before(r) },
		"The %s field must be a date before %s.")
}

// BeforeOrEqual requires a date no later than ref.
func BeforeOrEqual(ref DateRef) Rule {
	return compareDate("before_or_equal", ref, func(v, r time.Time) bool { return !v.After(r) },
		"The %s field must be a date before or equal to %s.")
}

// After requires a date strictly later than ref.
func After(ref DateRef) Rule {
	return compareDate("after", ref, func(v, r time.Time) bool { return v.After(r) },
		"The %s field must be a date after %s.")
}

func compareDate(name string, ref DateRef, ok func(v, r time.Time) bool, format string) Rule {
	return Rule{name: name, check: func(_ context.Context, e *evaluation, label string, value any) (any, string, error) {
		t, parsed := toTime(value)
		if !parsed {
			return nil, "The " + label + " field must be a valid date.", nil
		}
		reference := e.now
		if ref == Today {
			reference = e.today()
		}
		if !ok(t, reference) {
			return nil, fmt.Sprintf(format, label, ref), nil
		}
		return t, "", nil
	}}
}

// Exists requires the value to be the id of an active row in table. The
// normalized value is the id as uint.
func Exists(table string) Rule {
	return Rule{name: "exists", check: func(ctx context.Context, e *evaluation, label string, value any) (any, string, error) {
		invalid := "The selected " + label + " is invalid."
		n, ok := toInt(value)
		if !ok || n <= 0 {
			return nil, invalid, nil
		}
		if e.opts.Lookup == nil {
			return nil, "", fmt.Errorf("exists rule on %s: no lookup configured", table)
		}
		found, err := e.opts.Lookup.Exists(ctx, table, uint(n))
		if err != nil {
			return nil, "", fmt.Errorf("exists rule on %s: %w", table, err)
		}
		if !found {
			return nil, invalid, nil
		}
		return uint(n), "", nil
	}}
}

// Unique requires no other active row of table to hold the value in column.
// The row identified by Options.IgnoreID is not considered.
func Unique(table, column string) Rule {
	return Rule{name: "unique", check: func(ctx context.Context, e *evaluation, label string, value any) (any, string, error) {
		if e.opts.Lookup == nil {
			return nil, "", fmt.Errorf("unique rule on %s.%s: no lookup configured", table, column)
		}
		unique, err := e.opts.Lookup.IsUnique(ctx, table, column, value, e.opts.IgnoreID)
		if err != nil {
			return nil, "", fmt.Errorf("unique rule on %s.%s: %w", table, column, err)
		}
		if !unique {
			return nil, takenMessage(label), nil
		}
		return value, "", nil
	}}
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

func toTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t.UTC(), true
			}
		}
	}
	return time.Time{}, false
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case uint:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case json.Number:
		n, err := strconv.Atoi(v.String())
		return n, err == nil
	case string:
		n, err := strconv.Atoi(v)
		return n, err == nil
	}
	return 0, false
}
