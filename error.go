package ringbuffer

import "github.com/pkg/errors"

var (
	ErrGeneric         = errors.New("ring buffer error")
	ErrInvalidArgument = errors.New("invalid input argument")
	ErrNotInitialized  = errors.New("ring buffer not initialized")
	ErrInvalidIndex    = errors.New("index out of range")
	ErrBufferEmpty     = errors.New("ring buffer is empty")
	ErrBufferFull      = errors.New("ring buffer is full")

	// ErrOverflow is reserved; no operation of the core returns it.
	ErrOverflow = errors.New("ring buffer overflow")
)

// Status enumerates the outcome of an operation for callers that branch on result codes rather than on errors.
type Status uint8

const (
	StatusOK Status = iota
	StatusError
	StatusInvalidArgument
	StatusNotInitialized
	StatusInvalidIndex
	StatusBufferEmpty
	StatusBufferFull
	StatusOverflow
)

var statusErrors = [...]error{
	StatusOK:              nil,
	StatusError:           ErrGeneric,
	StatusInvalidArgument: ErrInvalidArgument,
	StatusNotInitialized:  ErrNotInitialized,
	StatusInvalidIndex:    ErrInvalidIndex,
	StatusBufferEmpty:     ErrBufferEmpty,
	StatusBufferFull:      ErrBufferFull,
	StatusOverflow:        ErrOverflow,
}

var statusNames = [...]string{
	StatusOK:              "ok",
	StatusError:           "error",
	StatusInvalidArgument: "invalid_argument",
	StatusNotInitialized:  "not_initialized",
	StatusInvalidIndex:    "invalid_index",
	StatusBufferEmpty:     "buffer_empty",
	StatusBufferFull:      "buffer_full",
	StatusOverflow:        "overflow",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// Err returns the sentinel error for s, or nil for StatusOK. Unknown statuses map to ErrGeneric.
func (s Status) Err() error {
	if int(s) < len(statusErrors) {
		return statusErrors[s]
	}
	return ErrGeneric
}

// StatusOf maps an error returned by an Engine back to its Status. Errors that did not originate from this package
// report StatusError.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}

	cause := errors.Cause(err)
	for status, sentinel := range statusErrors {
		if sentinel != nil && cause == sentinel {
			return Status(status)
		}
	}

	return StatusError
}
