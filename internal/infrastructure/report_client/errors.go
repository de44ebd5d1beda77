package report_client

import "fmt"

type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}

	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}
