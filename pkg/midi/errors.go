package midi

import (
	"io"

	"github.com/pkg/errors"
)

var (
	// ErrFmtNotSupported is a generic error reporting an unknown format.
	ErrFmtNotSupported = errors.New("format not supported")
	// ErrUnexpectedData is a generic error reporting that the parser encountered unexpected data.
	ErrUnexpectedData = errors.New("unexpected data content")
	// ErrStreamTruncated reports that a field or payload extends past the end of the stream.
	ErrStreamTruncated = errors.New("stream truncated")
	// ErrUnrecognizedEventType reports a status byte whose type nibble is outside 0x8-0xF.
	ErrUnrecognizedEventType = errors.New("unrecognized event type")
)

// readErr converts an end of stream met in the middle of a record into ErrStreamTruncated.
// Any other source failure is passed through with the same context.
func readErr(err error, what string) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errors.Wrapf(ErrStreamTruncated, "reading %s", what)
	}
	return errors.Wrapf(err, "reading %s", what)
}
