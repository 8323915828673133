package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Constraint names reported in a Violation.
const (
	ConstraintRequired = "required"
	ConstraintType     = "type"
	ConstraintOneOf    = "oneof"
	ConstraintMin      = "gte"
	ConstraintEmail    = "email"
)

type Violation struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
	Value      any    `json:"value,omitempty"`
}

// ValidationError lists every constraint an input violated.
type ValidationError struct {
	Kind       Kind        `json:"kind"`
	Violations []Violation `json:"violations"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Constraint)
	}
	return fmt.Sprintf("invalid %s: %s", e.Kind, strings.Join(parts, "; "))
}

// Has reports whether field violated constraint.
func (e *ValidationError) Has(field, constraint string) bool {
	for _, v := range e.Violations {
		if v.Field == field && v.Constraint == constraint {
			return true
		}
	}
	return false
}

// NewValidationError builds a ValidationError from violations collected outside the schema.
func NewValidationError(kind Kind, violations ...Violation) *ValidationError {
	return &ValidationError{Kind: kind, Violations: violations}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldReader decodes loosely typed input, remembering fields whose value had the wrong type.
type fieldReader struct {
	raw        map[string]any
	violations []Violation
	badType    map[string]bool
}

func newFieldReader(raw map[string]any) *fieldReader {
	return &fieldReader{raw: raw, badType: map[string]bool{}}
}

func (r *fieldReader) typeError(field string, value any) {
	r.badType[field] = true
	r.violations = append(r.violations, Violation{Field: field, Constraint: ConstraintType, Value: value})
}

func (r *fieldReader) lookup(field string) (any, bool) {
	v, ok := r.raw[field]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (r *fieldReader) str(field string) *string {
	v, ok := r.lookup(field)
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		r.typeError(field, v)
		return nil
	}
	return &s
}

func (r *fieldReader) number(field string) *float64 {
	v, ok := r.lookup(field)
	if !ok {
		return nil
	}
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			r.typeError(field, v)
			return nil
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			r.typeError(field, v)
			return nil
		}
		f = parsed
	default:
		r.typeError(field, v)
		return nil
	}
	// Inf and NaN cannot be stored as JSON
	if math.IsInf(f, 0) || math.IsNaN(f) {
		r.typeError(field, v)
		return nil
	}
	return &f
}

func (r *fieldReader) timestamp(field string) *Timestamp {
	v, ok := r.lookup(field)
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case Timestamp:
		return &t
	case time.Time:
		return &Timestamp{Time: t}
	case string:
		ts, err := ParseTimestamp(t)
		if err != nil {
			r.typeError(field, v)
			return nil
		}
		return &ts
	}
	r.typeError(field, v)
	return nil
}

func (r *fieldReader) attributes(field string) Attributes {
	v, ok := r.lookup(field)
	if !ok {
		return Attributes{}
	}
	var m map[string]any
	switch t := v.(type) {
	case Attributes:
		m = t
	case map[string]any:
		m = t
	default:
		r.typeError(field, v)
		return Attributes{}
	}
	if bad := invalidAttributePaths(field, m); len(bad) > 0 {
		for _, path := range bad {
			r.typeError(path, nil)
		}
		return Attributes{}
	}
	return Attributes(m)
}

// check runs the struct constraints on s and merges them with the decode violations.
func (r *fieldReader) check(kind Kind, s any) error {
	violations := r.violations
	if err := validate.Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validate %s: %w", kind, err)
		}
		for _, fe := range fieldErrs {
			if r.badType[fe.Field()] {
				continue
			}
			violations = append(violations, violationFromFieldError(fe))
		}
	}
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Kind: kind, Violations: violations}
}

func violationFromFieldError(fe validator.FieldError) Violation {
	v := Violation{Field: fe.Field(), Constraint: fe.Tag()}
	if fe.Tag() == ConstraintRequired {
		return v
	}
	switch val := fe.Value().(type) {
	case *string:
		if val != nil {
			v.Value = *val
		}
	case *float64:
		if val != nil {
			v.Value = *val
		}
	default:
		v.Value = val
	}
	return v
}
