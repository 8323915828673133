package models

import "fmt"

// Kind names an entity type. Records of a kind live in the collection of the same name.
type Kind string

const (
	KindGuest        Kind = "guest"
	KindBooking      Kind = "booking"
	KindIDDocument   Kind = "iddocument"
	KindNotification Kind = "notification"
)

func (k Kind) Collection() string { return string(k) }

// Record is a validated entity that can be flattened for storage.
type Record interface {
	Kind() Kind
	StorageRecord() map[string]any
}

// Validate checks raw input against the schema of kind and returns the typed record.
// All violated constraints are reported at once in a *ValidationError.
func Validate(kind Kind, raw map[string]any) (Record, error) {
	switch kind {
	case KindGuest:
		g, err := ValidateGuest(raw)
		if err != nil {
			return nil, err
		}
		return g, nil
	case KindBooking:
		b, err := ValidateBooking(raw)
		if err != nil {
			return nil, err
		}
		return b, nil
	case KindIDDocument:
		d, err := ValidateIDDocument(raw)
		if err != nil {
			return nil, err
		}
		return d, nil
	case KindNotification:
		n, err := ValidateNotification(raw)
		if err != nil {
			return nil, err
		}
		return n, nil
	}
	return nil, fmt.Errorf("unknown entity kind %q", kind)
}

// ToStorageRecord flattens r into the mapping handed to the document store.
// Absent optional fields are present with a nil value and defaults are applied.
func ToStorageRecord(r Record) map[string]any {
	return r.StorageRecord()
}

func strOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func strOrDefault(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
