package match

import "fmt"

// ValidationError reports a ball command the ledger refuses to record:
// an unknown or duplicated player reference, or an out-of-domain field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a referenced record absent from the store or an
// out-of-range ball index.
type NotFoundError struct {
	Resource string
	ID       any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Resource, e.ID)
}
