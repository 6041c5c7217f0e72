package field

import (
	"encoding/json"
	"slices"
)

// Extra is a wire key that a record does not declare, with its undecoded value.
type Extra struct {
	Key   string
	Value json.RawMessage
}

// Meta is embedded in every record model.
// It keeps the payload the record was decoded from and its unknown keys, in payload order.
type Meta struct {
	raw     json.RawMessage
	extras  []Extra
	missing []string
}

// RawJSON returns the payload the record was decoded from, or nil when it was built in code.
func (m Meta) RawJSON() json.RawMessage { return m.raw }

// Extras returns the unknown keys of the decoded payload.
func (m Meta) Extras() []Extra { return slices.Clone(m.extras) }

// Extra returns the raw value of the unknown key k.
func (m Meta) Extra(k string) (json.RawMessage, bool) {
	for _, e := range m.extras {
		if e.Key == k {
			return e.Value, true
		}
	}
	return nil, false
}

// SetExtra adds or replaces an unknown key that is written back on encode.
func (m *Meta) SetExtra(k string, v json.RawMessage) {
	for i, e := range m.extras {
		if e.Key == k {
			m.extras[i].Value = v
			return
		}
	}
	m.extras = append(m.extras, Extra{Key: k, Value: v})
}

// Missing returns the wire keys of required fields the decoded payload did not carry.
func (m Meta) Missing() []string { return slices.Clone(m.missing) }

// Reset replaces the decoding state of the record.
func (m *Meta) Reset(raw json.RawMessage, extras []Extra, missing []string) {
	m.raw = raw
	m.extras = extras
	m.missing = missing
}

// Decoded reports whether the record was built by decoding a payload.
func (m Meta) Decoded() bool { return m.raw != nil }

// RecordMeta gives access to the embedded Meta of a record.
func (m *Meta) RecordMeta() *Meta { return m }
