package address

import (
	"fmt"
	"strings"

	"github.com/GlobalPhilatelicNetwork/GoogleSheet-Function-GetAdress/internal/htmltext"
)

// UnknownFieldError indicates a requested field exists neither on the
// selected address nor on the default address.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown address field: %s", e.Field)
}

// DefaultOf returns the authoritative record of a set: the first record
// flagged as default, or the first record when none is flagged. Returns nil
// for an empty set.
func DefaultOf(set Set) *Record {
	for _, rec := range set {
		if rec.Default {
			return rec
		}
	}
	if len(set) > 0 {
		return set[0]
	}
	return nil
}

// Select picks the record matching typeFilter, or the default record when
// the filter is empty or matches nothing. Type matching is a trimmed,
// case-insensitive comparison against each record's address_types, in set
// order; the first match wins.
func Select(set Set, typeFilter string) *Record {
	def := DefaultOf(set)

	typeFilter = strings.TrimSpace(typeFilter)
	if typeFilter == "" {
		return def
	}

	for _, rec := range set {
		for _, t := range rec.Types {
			if strings.EqualFold(t, typeFilter) {
				return rec
			}
		}
	}
	return def
}

// Resolve produces the final string for a selected record. An empty
// fieldFilter yields the rendered address as plain text. Otherwise the field
// is looked up on target, then on defaultAddr when target is a different
// record, and a miss on both is an UnknownFieldError. Null and empty field
// values both resolve to "".
func Resolve(target, defaultAddr *Record, fieldFilter string) (string, error) {
	fieldFilter = strings.TrimSpace(fieldFilter)
	if fieldFilter == "" {
		return htmltext.ToPlainText(target.Rendered), nil
	}

	key := strings.ToLower(fieldFilter)
	if value, ok := lookupField(target, key); ok {
		return value, nil
	}
	if target != defaultAddr {
		if value, ok := lookupField(defaultAddr, key); ok {
			return value, nil
		}
	}
	return "", &UnknownFieldError{Field: key}
}

// lookupField reads a single field from a record's address map. The key must
// already be normalized; matching is exact, no fuzzy lookup.
func lookupField(rec *Record, key string) (string, bool) {
	if rec == nil {
		return "", false
	}
	value, ok := rec.Fields[key]
	if !ok {
		return "", false
	}
	if value == nil {
		return "", true
	}
	return *value, true
}
