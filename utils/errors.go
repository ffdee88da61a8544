package utils

import "fmt"

// WrapListError returns a wrapped list error
func WrapListError(err error) error {
	return fmt.Errorf("list error: %w", err)
}

// WrapRetrieveError returns a wrapped retrieve error
func WrapRetrieveError(err error) error {
	return fmt.Errorf("retrieve error: %w", err)
}

// WrapStoreError returns a wrapped store error
func WrapStoreError(err error) error {
	return fmt.Errorf("store error: %w", err)
}

// WrapDeleteError returns a wrapped delete error
func WrapDeleteError(err error) error {
	return fmt.Errorf("delete error: %w", err)
}

// WrapMkdirError returns a wrapped mkdir error
func WrapMkdirError(err error) error {
	return fmt.Errorf("mkdir error: %w", err)
}

// WrapDisconnectError returns a wrapped disconnect error
func WrapDisconnectError(err error) error {
	return fmt.Errorf("disconnect error: %w", err)
}
