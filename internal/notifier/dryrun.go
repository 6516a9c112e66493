package notifier

import (
	"fmt"
	"io"
)

// DryRunNotifier prints the report instead of emailing it
type DryRunNotifier struct {
	out io.Writer
}

// NewDryRunNotifier creates a notifier that writes to out.
func NewDryRunNotifier(out io.Writer) *DryRunNotifier {
	return &DryRunNotifier{out: out}
}

// Notify prints the subject and body that would be mailed.
func (n *DryRunNotifier) Notify(subject, body string) error {
	fmt.Fprintf(n.out, "Subject: %s\n\n%s\n", subject, body)
	return nil
}
