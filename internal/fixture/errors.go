package fixture

import "fmt"

// NotFoundError reports a missing fixture file. Terminal for the run;
// nothing has been read or written when it is returned.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("fixture file not found: %s", e.Path)
}

// MalformedDataError reports input that is not valid JSON or does not have
// the building/request container shape the simulation schema requires.
type MalformedDataError struct {
	Path   string
	Reason string
	Err    error
}

func (e *MalformedDataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed simulation data (%s): %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed simulation data (%s): %s", e.Path, e.Reason)
}

func (e *MalformedDataError) Unwrap() error { return e.Err }

// WriteError reports a failure to persist the document. The on-disk file is
// left exactly as it was before the run.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
