// Package payload models the JSON documents served by the ProfitPlug API.
//
// A Payload keeps the raw response bytes. Its Kind is decided by which known
// field the top-level object carries, checked in a fixed order, because the
// backend does not tag its documents. Decoding into the typed shapes is loose:
// scalar fields accept any JSON scalar and missing fields
// decode to their zero values.
package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Kind identifies which view template renders a payload.
type Kind int

// Kinds in dispatch priority order. KindRaw is the fallback.
const (
	KindArticle Kind = iota
	KindUpdates
	KindHoldings
	KindSteps
	KindRaw
)

// String returns the discriminant field name for the kind.
func (k Kind) String() string {
	switch k {
	case KindArticle:
		return "sections"
	case KindUpdates:
		return "updates"
	case KindHoldings:
		return "holdings"
	case KindSteps:
		return "steps"
	case KindRaw:
		return "raw"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// discriminants lists the dispatch fields in priority order.
//
//nolint:gochecknoglobals // Fixed lookup table.
var discriminants = []Kind{KindArticle, KindUpdates, KindHoldings, KindSteps}

// ErrInvalidJSON is returned by New for bodies that are not JSON.
var ErrInvalidJSON = errors.New("invalid JSON")

// Payload is a JSON document as received from the API.
type Payload struct {
	raw json.RawMessage
}

// New wraps raw JSON bytes. Leading and trailing whitespace is trimmed.
func New(raw []byte) (Payload, error) {
	trimmed := bytes.TrimSpace(raw)
	if !json.Valid(trimmed) {
		return Payload{}, ErrInvalidJSON
	}
	cp := make([]byte, len(trimmed))
	copy(cp, trimmed)
	return Payload{raw: cp}, nil
}

// MustNew is New for literals in tests and fixtures; it panics on invalid JSON.
func MustNew(raw string) Payload {
	p, err := New([]byte(raw))
	if err != nil {
		panic(fmt.Sprintf("payload.MustNew(%q): %v", raw, err))
	}
	return p
}

// Raw returns the JSON bytes exactly as received (minus surrounding whitespace).
func (p Payload) Raw() []byte {
	return p.raw
}

// IsZero reports whether the payload holds no document.
func (p Payload) IsZero() bool {
	return len(p.raw) == 0
}

// Kind returns the first discriminant present on the payload, or KindRaw.
// A field counts as present when it is JSON-truthy: not null, false, 0 or "".
// Non-object payloads are always KindRaw.
func (p Payload) Kind() Kind {
	fields, ok := p.object()
	if !ok {
		return KindRaw
	}
	for _, k := range discriminants {
		if v, found := fields[k.String()]; found && truthy(v) {
			return k
		}
	}
	return KindRaw
}

func (p Payload) object() (map[string]json.RawMessage, bool) {
	if len(p.raw) == 0 || p.raw[0] != '{' {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(p.raw, &fields); err != nil {
		return nil, false
	}
	return fields, true
}

func truthy(v json.RawMessage) bool {
	s := string(bytes.TrimSpace(v))
	switch s {
	case "", "null", "false", `""`:
		return false
	}
	var f float64
	if err := json.Unmarshal(v, &f); err == nil {
		return f != 0
	}
	return true
}

// Dump renders the payload as indented JSON, preserving key order.
func (p Payload) Dump() string {
	if p.IsZero() {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, p.raw, "", "  "); err != nil {
		return string(p.raw)
	}
	return buf.String()
}

// Text is a loosely typed display string: JSON strings decode to their value,
// any other JSON value decodes to its literal text, and null to "".
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	*t = Text(data)
	return nil
}

// String returns the text.
func (t Text) String() string {
	return string(t)
}

// Number is a loosely typed JSON number. Anything other than a JSON number,
// including null and numeric strings, decodes as missing (Valid false).
type Number struct {
	Value float64
	Valid bool
}

// Num returns a present Number holding v.
func Num(v float64) Number {
	return Number{Value: v, Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler. It never fails.
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return nil //nolint:nilerr // Non-numbers decode as missing.
	}
	*n = Num(f)
	return nil
}

// OrZero returns the value, or 0 when missing.
func (n Number) OrZero() float64 {
	if !n.Valid {
		return 0
	}
	return n.Value
}

func (p Payload) decode(v any, kind Kind) error {
	if err := json.Unmarshal(p.raw, v); err != nil {
		return fmt.Errorf("decoding %s payload: %w", kind, err)
	}
	return nil
}
