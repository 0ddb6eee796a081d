// Package fieldmap translates public JSON payloads into storage column maps
// through explicit per-entity tables.
//
// A key that is absent from the payload is absent from the result, so an
// update leaves that column untouched. A JSON null on a nullable field maps
// to a nil value, which clears the column.
package fieldmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Decoder turns one raw JSON value into its storage value. skip reports that
// the value normalizes to "absent" (for example an empty optional string).
type Decoder func(raw json.RawMessage) (value any, skip bool, err error)

// Field describes how one public field is stored.
type Field struct {
	Column   string
	Nullable bool
	Decode   Decoder
}

// Table is the public-name to column mapping for one entity.
type Table struct {
	entity   string
	fields   map[string]Field
	required []string
}

// NewTable builds a table. required lists public names that must be present
// and non-null on create.
func NewTable(entity string, fields map[string]Field, required ...string) *Table {
	return &Table{entity: entity, fields: fields, required: required}
}

// Column returns the storage column for a public field name.
func (t *Table) Column(public string) (string, bool) {
	f, ok := t.fields[public]

	return f.Column, ok
}

// Columns lists every public name the table accepts, sorted.
func (t *Table) Columns() []string {
	names := make([]string, 0, len(t.fields))
	for name := range t.fields {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Translate maps a partial payload for an update.
func (t *Table) Translate(payload map[string]json.RawMessage) (map[string]any, error) {
	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make(map[string]any, len(payload))
	for _, key := range keys {
		field, ok := t.fields[key]
		if !ok {
			return nil, domainerrors.ErrInvalidInput.WithDetails(fmt.Sprintf("unknown %s field %q", t.entity, key))
		}

		raw := payload[key]
		if isNull(raw) {
			if !field.Nullable {
				return nil, domainerrors.ErrInvalidInput.WithDetails(fmt.Sprintf("%s field %q cannot be null", t.entity, key))
			}
			out[field.Column] = nil

			continue
		}

		value, skip, err := field.Decode(raw)
		if err != nil {
			return nil, domainerrors.ErrInvalidInput.WithDetails(fmt.Sprintf("%s field %q: %s", t.entity, key, err.Error()))
		}
		if skip {
			continue
		}
		out[field.Column] = value
	}

	return out, nil
}

// TranslateCreate maps a full payload and enforces required fields.
func (t *Table) TranslateCreate(payload map[string]json.RawMessage) (map[string]any, error) {
	out, err := t.Translate(payload)
	if err != nil {
		return nil, err
	}

	for _, name := range t.required {
		if out[t.fields[name].Column] == nil {
			return nil, domainerrors.ErrInvalidInput.WithDetails(fmt.Sprintf("%s field %q is required", t.entity, name))
		}
	}

	return out, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// Text decodes a trimmed, non-empty string of at most maxLen runes.
func Text(maxLen int) Decoder {
	return func(raw json.RawMessage) (any, bool, error) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, false, errors.Errorf("must be a string")
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, false, errors.Errorf("must not be empty")
		}
		if len([]rune(s)) > maxLen {
			return nil, false, errors.Errorf("must be at most %d characters", maxLen)
		}

		return s, false, nil
	}
}

// OptionalText is Text where an empty string means absent.
func OptionalText(maxLen int) Decoder {
	return func(raw json.RawMessage) (any, bool, error) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, false, errors.Errorf("must be a string")
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, true, nil
		}
		if len([]rune(s)) > maxLen {
			return nil, false, errors.Errorf("must be at most %d characters", maxLen)
		}

		return s, false, nil
	}
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Slug decodes a lowercase, hyphen-separated identifier.
func Slug(raw json.RawMessage) (any, bool, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false, errors.Errorf("must be a string")
	}
	s = strings.TrimSpace(s)
	if !IsSlug(s) {
		return nil, false, errors.Errorf("must be a lowercase slug")
	}

	return s, false, nil
}

// Money decodes a non-negative decimal given as a JSON number or string.
func Money(raw json.RawMessage) (any, bool, error) {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(raw); err != nil {
		return nil, false, errors.Errorf("must be a decimal amount")
	}
	if d.IsNegative() {
		return nil, false, errors.Errorf("must not be negative")
	}

	return d.Round(2), false, nil
}

// NonNegativeInt decodes an integer >= 0.
func NonNegativeInt(raw json.RawMessage) (any, bool, error) {
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, false, errors.Errorf("must be an integer")
	}
	if n < 0 {
		return nil, false, errors.Errorf("must not be negative")
	}

	return n, false, nil
}

// Bool decodes a JSON boolean.
func Bool(raw json.RawMessage) (any, bool, error) {
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, false, errors.Errorf("must be a boolean")
	}

	return b, false, nil
}

// UUID decodes a UUID string.
func UUID(raw json.RawMessage) (any, bool, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false, errors.Errorf("must be a string")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return nil, false, errors.Errorf("must be a UUID")
	}

	return id, false, nil
}

// StringList decodes an array of strings, trimming entries and dropping empties.
func StringList(raw json.RawMessage) (any, bool, error) {
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, errors.Errorf("must be an array of strings")
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out, false, nil
}

// IsSlug reports whether s is a valid lowercase slug.
func IsSlug(s string) bool {
	return slugPattern.MatchString(s) && len(s) <= 200
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a slug from a display name.
func Slugify(name string) string {
	s := nonSlugChars.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")

	return strings.Trim(s, "-")
}
