package services

import "fmt"

// DataAccessError wraps a failure from the persistence layer. It is
// propagated to the caller unchanged; the analytics service never retries.
type DataAccessError struct {
	Op  string // the read that failed, e.g. "find items by creator"
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("data access failed while trying to %s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// InvalidFilterError reports a malformed statistics query. It is returned
// before any database read is issued.
type InvalidFilterError struct {
	Reason string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid filter: %s", e.Reason)
}
