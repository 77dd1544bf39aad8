package interactions

import "errors"

var (
	// ErrNotFound reports that the addressed target entity does not exist.
	ErrNotFound = errors.New("target not found")

	// ErrForbidden reports an operation the authenticated caller is not
	// permitted to perform, such as deleting another user's post or
	// liking their own profile.
	ErrForbidden = errors.New("operation not permitted")
)

// ValidationError reports input that violated a content rule. It carries
// the offending field so handlers can return field-level detail.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}
