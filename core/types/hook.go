package types

import "fmt"

// Hook is the per-field contract a validation engine consumes: a coercion
// function for raw decoded input, a serializer back to the wire form and the
// static schema used for documentation.
type Hook struct {
	Name      string
	Coerce    func(raw any) (Value, error)
	Serialize func(v Value) (string, error)
	Schema    Schema
}

// Hook returns the validation hook of v.
func (v *Variant) Hook() Hook {
	return Hook{
		Name:      v.name,
		Coerce:    v.Validate,
		Serialize: v.serialize,
		Schema:    v.Schema(),
	}
}

func (v *Variant) serialize(val Value) (string, error) {
	if val == nil {
		return "", fmt.Errorf("%s: %w: nil value", v.name, ErrVariantMismatch)
	}
	if got := val.Variant(); got != v {
		return "", fmt.Errorf("%s: %w: value belongs to %v", v.name, ErrVariantMismatch, got)
	}
	return val.Serialize(), nil
}
