package dor

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Record is an opaque JSON object returned by the service, such as a Cocina
// model. The raw document is kept, so key order is preserved.
type Record struct {
	raw []byte
}

// NewRecord wraps raw JSON, which must be an object.
func NewRecord(raw []byte) (Record, error) {
	if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
		return Record{}, fmt.Errorf("not a JSON object: %q", raw)
	}
	return Record{raw: append([]byte(nil), raw...)}, nil
}

// Get looks up a gjson path, e.g. "description.title.0.value".
func (r Record) Get(path string) gjson.Result {
	return gjson.GetBytes(r.raw, path)
}

// String returns the value at path as a string, or "" when missing.
func (r Record) String(path string) string {
	return r.Get(path).String()
}

// Has reports whether path exists.
func (r Record) Has(path string) bool {
	return r.Get(path).Exists()
}

// ExternalIdentifier returns the object identifier assigned by the service.
func (r Record) ExternalIdentifier() string {
	return r.String("externalIdentifier")
}

// Keys returns the top-level keys in document order.
func (r Record) Keys() []string {
	var keys []string
	gjson.ParseBytes(r.raw).ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	return keys
}

// Raw returns the underlying JSON document.
func (r Record) Raw() json.RawMessage {
	return json.RawMessage(r.raw)
}

// Decode unmarshals the record into v.
func (r Record) Decode(v any) error {
	return json.Unmarshal(r.raw, v)
}

// MarshalJSON writes the raw document, or null for a zero Record.
func (r Record) MarshalJSON() ([]byte, error) {
	if len(r.raw) == 0 {
		return []byte("null"), nil
	}
	return r.raw, nil
}

// UnmarshalJSON accepts only a JSON object.
func (r *Record) UnmarshalJSON(data []byte) error {
	rec, err := NewRecord(data)
	if err != nil {
		return err
	}
	*r = rec
	return nil
}

// recordsAt collects the objects found in the array at path.
func recordsAt(body []byte, path string) []Record {
	var records []Record
	gjson.GetBytes(body, path).ForEach(func(_, value gjson.Result) bool {
		if value.IsObject() {
			records = append(records, Record{raw: []byte(value.Raw)})
		}
		return true
	})
	return records
}
