// Package validator evaluates declarative field rule sets against raw request
// payloads decoded into maps.
package validator

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	ukMobilePattern  = regexp.MustCompile(`^(\+44\s?7\d{3}|\(?07\d{3}\)?)\s?\d{3}\s?\d{3}$`)
	nhsNumberPattern = regexp.MustCompile(`^\d{10}$`)
)

// Lookup answers the existence and uniqueness questions asked by Exists and
// Unique rules. Soft-deleted rows never count.
type Lookup interface {
	Exists(ctx context.Context, table string, id uint) (bool, error)
	IsUnique(ctx context.Context, table, column string, value any, ignoreID uint) (bool, error)
}

// Options carries the per-call context of a validation run.
type Options struct {
	Lookup Lookup
	// IgnoreID is the primary key of the record being updated; Unique rules
	// skip that row.
	IgnoreID uint
}

type CustomValidator struct {
	validator *validator.Validate
	now       func() time.Time
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("uk_mobile", func(fl validator.FieldLevel) bool {
		return ukMobilePattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("nhs_number", func(fl validator.FieldLevel) bool {
		return nhsNumberPattern.MatchString(fl.Field().String())
	})

	return &CustomValidator{
		validator: v,
		now:       time.Now,
	}
}

// WithClock returns a copy of the validator that reads the current time from now.
func (cv *CustomValidator) WithClock(now func() time.Time) *CustomValidator {
	return &CustomValidator{validator: cv.validator, now: now}
}

// ValidateFields checks input against rules. On success it returns the
// normalized values of the recognized fields present in input; otherwise the
// returned error is an Errors value keyed by field name. Any other error comes
// from the Lookup.
func (cv *CustomValidator) ValidateFields(ctx context.Context, rules RuleSet, input map[string]any, opts Options) (map[string]any, error) {
	run := &evaluation{
		cv:   cv,
		opts: opts,
		now:  cv.now().UTC(),
	}

	fields := make(map[string]any)
	errs := Errors{}

	for _, field := range rules {
		raw, present := input[field.Name]
		value := Value{Present: present, Raw: normalize(raw)}

		out, message, err := run.field(ctx, field, value)
		if err != nil {
			return nil, err
		}
		if message != "" {
			errs.Add(field.Name, message)
			continue
		}
		if value.Present {
			fields[field.Name] = out
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return fields, nil
}

// Value is an optional input value: Present is false when the key was not
// supplied at all, Raw is nil when it was supplied as null.
type Value struct {
	Present bool
	Raw     any
}

func (v Value) IsNull() bool {
	return v.Raw == nil
}

type evaluation struct {
	cv   *CustomValidator
	opts Options
	now  time.Time
}

func (e *evaluation) today() time.Time {
	y, m, d := e.now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (e *evaluation) field(ctx context.Context, field Field, value Value) (any, string, error) {
	required, sometimes, nullable := field.flags()
	label := field.label()

	if !value.Present {
		if required && !sometimes {
			return nil, field.message(ruleRequired, "The "+label+" field is required."), nil
		}
		return nil, "", nil
	}

	if value.IsNull() {
		if required {
			return nil, field.message(ruleRequired, "The "+label+" field is required."), nil
		}
		if nullable {
			return nil, "", nil
		}
	}

	current := value.Raw
	for _, rule := range field.Rules {
		if rule.check == nil {
			continue
		}
		out, message, err := rule.check(ctx, e, label, current)
		if err != nil {
			return nil, "", err
		}
		if message != "" {
			if rule.message != "" {
				message = rule.message
			}
			return nil, message, nil
		}
		current = out
	}

	return current, "", nil
}

// normalize trims strings and turns empty strings into null.
func normalize(raw any) any {
	s, ok := raw.(string)
	if !ok {
		return raw
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}
