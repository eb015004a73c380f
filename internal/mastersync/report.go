package mastersync

import (
	"fmt"
	"io"
)

type textReporter struct {
	w io.Writer
}

// NewTextReporter prints the pass report line by line to w.
func NewTextReporter(w io.Writer) Reporter {
	return &textReporter{w: w}
}

func (r *textReporter) NoMaster() {
	fmt.Fprintln(r.w, "Master issue does not exist.")
}

func (r *textReporter) NoEntries() {
	fmt.Fprintln(r.w, "No issues found.")
}

func (r *textReporter) Mismatch(issueRef int, isOpen, shouldBeOpen bool) {
	fmt.Fprintf(r.w, "Issue #%d is currently %s when it should be %s\n", issueRef, openness(isOpen), openness(shouldBeOpen))
}

func (r *textReporter) OutOfSync() {
	fmt.Fprintln(r.w, "Out of sync.")
}

func (r *textReporter) Updating() {
	fmt.Fprintln(r.w, "Updating GitLab.")
}

func (r *textReporter) Complete(text string) {
	fmt.Fprintf(r.w, "Sync complete.\n\n%s\n", text)
}

func (r *textReporter) UpToDate() {
	fmt.Fprintln(r.w, "GitLab is up to date.")
}

func openness(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}

type nopReporter struct{}

func (nopReporter) NoMaster()                {}
func (nopReporter) NoEntries()               {}
func (nopReporter) Mismatch(int, bool, bool) {}
func (nopReporter) OutOfSync()               {}
func (nopReporter) Updating()                {}
func (nopReporter) Complete(string)          {}
func (nopReporter) UpToDate()                {}

// NopReporter discards the report.
func NopReporter() Reporter {
	return nopReporter{}
}
