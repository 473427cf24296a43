package middleware

import "fmt"

// ActionName returns the name used to label the action in logs and metrics.
func ActionName[A any](action A) string {
	if s, ok := any(action).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", action)
}
