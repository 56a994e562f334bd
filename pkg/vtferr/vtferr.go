// Package vtferr holds the small error taxonomy spec §7 describes,
// shared by pkg/pixel, pkg/mipmap, and pkg/present so callers can use
// a single errors.As check regardless of which component raised it.
package vtferr

import "fmt"

// Unsupported reports that a requested format tag has no codec for
// the requested direction (load or save).
type Unsupported struct {
	Format string
	Op     string // "load" or "save"
}

func (e *Unsupported) Error() string {
	return fmt.Sprintf("vtfpix: %s unsupported for format %s", e.Op, e.Format)
}

// InvalidArgument reports a malformed call: an unknown filter value or
// tag index, or a span shorter than the caller's dimensions require.
// A mipmap dimension ratio other than 1 or 1/2 is not checked and does
// not produce this error.
type InvalidArgument struct {
	Msg string
}

func (e *InvalidArgument) Error() string {
	return "vtfpix: invalid argument: " + e.Msg
}

// InitializationMismatch reports that a format registry's Init found
// a tag whose caller-supplied name disagrees with the registry's own
// name for that index.
type InitializationMismatch struct {
	Tag  int
	Got  string
	Want string
}

func (e *InitializationMismatch) Error() string {
	return fmt.Sprintf("vtfpix: tag %d name mismatch: caller says %q, registry says %q", e.Tag, e.Got, e.Want)
}
