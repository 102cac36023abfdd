package lilcom

import "github.com/pkg/errors"

// ErrTruncated is returned (via errors.Wrap) by NewReverseUintStream and
// NewReverseIntStream when code runs out of bytes before the prelude has been
// fully read. Truncation found later is reported by Read returning false.
var ErrTruncated = errors.New("lilcom: truncated bit stream")
