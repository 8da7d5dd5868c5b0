package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// objectEntry is one key/value pair of a JSON object, in file order.
type objectEntry struct {
	Key   string
	Value json.RawMessage
}

// decodeOrderedObject decodes a JSON object and returns its members in the
// order they appear in the document. Several data files encode meaning in
// that order (plumbing contract items use position as their id).
func decodeOrderedObject(data []byte) ([]objectEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode object: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("decode object: expected '{', got %v", tok)
	}

	var entries []objectEntry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode object key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("decode object: expected string key, got %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("decode value of %q: %w", key, err)
		}
		entries = append(entries, objectEntry{Key: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode object end: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("decode object: trailing data after object")
	}
	return entries, nil
}

// FlexID is an identifier that may be encoded as a JSON number or a numeric
// string. Valid reports whether a usable integer was decoded.
type FlexID struct {
	Value int
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *FlexID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*id = FlexID{}
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
	}
	n, ok := parseID(s)
	*id = FlexID{Value: n, Valid: ok}
	return nil
}

// String renders the id, or "-" when absent.
func (id FlexID) String() string {
	if !id.Valid {
		return NoReferences
	}
	return strconv.Itoa(id.Value)
}

// parseID accepts integers and integral floats ("3", "3.0").
func parseID(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

// DocRef is a drawing sheet or spec section reference. Files encode it either
// as a ["code", "title"] pair or as a single string.
type DocRef []string

// UnmarshalJSON implements json.Unmarshaler.
func (r *DocRef) UnmarshalJSON(b []byte) error {
	var parts []string
	if err := json.Unmarshal(b, &parts); err == nil {
		*r = parts
		return nil
	}
	var single string
	if err := json.Unmarshal(b, &single); err != nil {
		return fmt.Errorf("doc ref must be a string or string array: %w", err)
	}
	*r = DocRef{single}
	return nil
}

// String joins the parts with " - ".
func (r DocRef) String() string {
	return strings.Join(r, " - ")
}

// joinDocRefs renders refs joined with ", ", or "-" when there are none.
func joinDocRefs(refs []DocRef) string {
	parts := make([]string, 0, len(refs))
	for _, r := range refs {
		if s := r.String(); s != "" {
			parts = append(parts, s)
		}
	}
	return joinOrSentinel(parts)
}

func joinOrSentinel(parts []string) string {
	if len(parts) == 0 {
		return NoReferences
	}
	return strings.Join(parts, ", ")
}
