package noder

import (
	"github.com/iancw/noding/geomerr"
	"github.com/iancw/noding/segstring"
	"github.com/iancw/noding/validate"
)

// ValidatingNoder decorates a delegate Noder, running validate.Validate
// over its noded output so a caller can opt into postcondition checking
// without hand-wiring the noder and the validator together.
type ValidatingNoder struct {
	delegate   Noder
	violations []validate.Violation
}

// NewValidatingNoder wraps delegate with a postcondition check.
func NewValidatingNoder(delegate Noder) *ValidatingNoder {
	return &ValidatingNoder{delegate: delegate}
}

// ComputeNodes runs the delegate and then validates its output, returning a
// geomerr.Error if any postcondition violation is found.
func (v *ValidatingNoder) ComputeNodes(segStrings []*segstring.SegmentString) error {
	if err := v.delegate.ComputeNodes(segStrings); err != nil {
		return err
	}

	v.violations = validate.Validate(v.delegate.GetNodedSubstrings())
	if len(v.violations) > 0 {
		return geomerr.New(geomerr.TopologyCollapse, v.violations[0].Message)
	}
	return nil
}

// GetNodedSubstrings returns the delegate's noded substrings.
func (v *ValidatingNoder) GetNodedSubstrings() []*segstring.SegmentString {
	return v.delegate.GetNodedSubstrings()
}

// Violations returns every postcondition violation found by the last
// ComputeNodes call.
func (v *ValidatingNoder) Violations() []validate.Violation {
	return v.violations
}
