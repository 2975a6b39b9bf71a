package plasma

import "fmt"

// DomainError reports a snapshot field whose value puts a calculation outside
// its numerical domain (a negative square root or logarithm argument, or a
// violated physical invariant). It is surfaced synchronously and never
// recovered locally.
type DomainError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("plasma: field %s = %g out of domain: %s", e.Field, e.Value, e.Reason)
}
