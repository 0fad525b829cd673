package lookup

import (
	"strings"

	"github.com/Aman-CERP/termlens/internal/errors"
)

// Flags is the capability set a term cursor is initialized with.
//
// Position and offset data are the most expensive to materialize, so they are
// only computed when explicitly requested at cursor creation. A cursor never
// widens its capabilities after creation; see Validate.
type Flags uint8

const (
	// FlagFrequencies enables term frequency and document frequency data.
	FlagFrequencies Flags = 1 << iota
	// FlagPositions enables per-document position data.
	FlagPositions
	// FlagOffsets enables start/end byte offsets on position data.
	FlagOffsets
)

// DefaultFlags is what a plain term request gets: frequencies only.
const DefaultFlags = FlagFrequencies

// Has reports whether every bit of other is set.
func (f Flags) Has(other Flags) bool {
	return f&other == other
}

// Validate checks a new request against the capabilities the cursor was
// created with. Requesting bits that were not enabled at creation is a
// contract violation: re-initializing mid-pass would leave the cursor only
// partially consistent with documents already scanned, so the request is
// rejected instead of upgraded.
func (f Flags) Validate(requested Flags) error {
	if !f.Has(requested) {
		return errors.FlagsMismatch(
			"term handle was created with flags " + f.String() +
				" but " + requested.String() + " was requested")
	}
	return nil
}

// String returns a pipe-separated list of the set capability names.
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	if f.Has(FlagFrequencies) {
		parts = append(parts, "frequencies")
	}
	if f.Has(FlagPositions) {
		parts = append(parts, "positions")
	}
	if f.Has(FlagOffsets) {
		parts = append(parts, "offsets")
	}
	return strings.Join(parts, "|")
}
