package metrics

import (
	"errors"

	"github.com/eth2030/hextypes/codec"
)

// Validation metric names.
const (
	ValidatedTotal = "validate.total"
	AcceptedTotal  = "validate.accepted"
	RejectedTotal  = "validate.rejected"
)

// errorKinds maps codec error categories to counter names.
var errorKinds = []struct {
	err  error
	name string
}{
	{codec.ErrValueKind, "reject.value_kind"},
	{codec.ErrHexFormat, "reject.hex_format"},
	{codec.ErrSize, "reject.size"},
	{codec.ErrRange, "reject.range"},
}

// RecordValidation counts one validation of variant in r: the totals, a
// per-variant counter, and for failures a counter per error category.
func RecordValidation(r *Registry, variant string, err error) {
	r.Counter(ValidatedTotal).Inc()
	if err == nil {
		r.Counter(AcceptedTotal).Inc()
		r.Counter("variant." + variant + ".accepted").Inc()
		return
	}
	r.Counter(RejectedTotal).Inc()
	r.Counter("variant." + variant + ".rejected").Inc()
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			r.Counter(k.name).Inc()
			return
		}
	}
	r.Counter("reject.other").Inc()
}
