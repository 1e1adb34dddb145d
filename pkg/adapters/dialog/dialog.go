// Package dialog implements ports.Notifier for headless runs: modal
// messages become log lines and the latest one is kept for inspection.
package dialog

import (
	"github.com/ideamans/go-l10n"

	"github.com/user/vidcompare/pkg/ports"
)

// Message is a shown dialog after localization.
type Message struct {
	Title string
	Text  string
	Error bool
}

// Notifier logs dialogs.
type Notifier struct {
	log   ports.Logger
	last  Message
	shown int
}

// New creates a notifier logging through log.
func New(log ports.Logger) *Notifier {
	return &Notifier{log: log.WithComponent("dialog")}
}

// Warn logs a warning dialog.
func (n *Notifier) Warn(title, message string, args ...interface{}) {
	n.last = Message{Title: l10n.T(title), Text: l10n.F(message, args...)}
	n.shown++
	n.log.Warn("%s: %s", n.last.Title, n.last.Text)
}

// Error logs an error dialog.
func (n *Notifier) Error(title, message string, args ...interface{}) {
	n.last = Message{Title: l10n.T(title), Text: l10n.F(message, args...), Error: true}
	n.shown++
	n.log.Error("%s: %s", n.last.Title, n.last.Text)
}

// Last returns the most recent dialog and whether any was shown.
func (n *Notifier) Last() (Message, bool) {
	return n.last, n.shown > 0
}

// Shown returns the number of dialogs shown.
func (n *Notifier) Shown() int {
	return n.shown
}

var _ ports.Notifier = (*Notifier)(nil)
