package dispatch

import "fmt"

// NotFoundError reports an invoke attempt against a module/method pair that
// does not exist or is hidden by the allow-list. Query operations never
// return it; they degrade to false or empty results instead.
type NotFoundError struct {
	Module string
	Method string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Method == "" {
		return fmt.Sprintf("unknown module %q", e.Module)
	}
	return fmt.Sprintf("unknown method %q in module %q", e.Method, e.Module)
}
