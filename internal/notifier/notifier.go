package notifier

import (
	"fmt"
	"time"
)

// ErrorSubject is the fixed subject line for pipeline failure reports.
const ErrorSubject = "Austin Estate Sales - Error Notification"

// Notifier delivers one rendered report
type Notifier interface {
	// Notify delivers the report. A nil return does not guarantee delivery:
	// implementations with incomplete credentials no-op by contract.
	Notify(subject, body string) error
}

// Subject returns the digest subject line for the given run time.
func Subject(now time.Time) string {
	return "Austin Estate Sales - " + now.Format("January 2, 2006")
}

// ErrorBody formats the body of a pipeline failure report.
func ErrorBody(runErr error) string {
	return fmt.Sprintf("An error occurred while running the estate sales scraper:\n\n%v", runErr)
}
