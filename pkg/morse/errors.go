package morse

import "fmt"

// InvalidCodeError indicates a table entry is not a non-empty dot/dash string.
type InvalidCodeError struct {
	Letter rune
	Code   string
}

// Error implements error.
func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("invalid code %q for %q", e.Code, e.Letter)
}
