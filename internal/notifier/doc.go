// Package notifier delivers the rendered digest.
//
// The package exposes a Notifier interface with two implementations: a
// Gmail SMTP mailer and a dry-run printer. The mailer reads its relay
// settings from an explicit config value constructed at startup; with
// incomplete credentials it logs and does nothing rather than failing the
// run. A separate error-report path mails the stringified failure when the
// pipeline dies upstream.
package notifier
