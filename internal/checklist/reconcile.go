package checklist

import "strings"

// Reconcile rebuilds text from unchanged spans, substituting only the lines whose box flips.
// Entries are applied in parse order; each one addresses its own line by offset, so
// identical lines never steal each other's substitution.
func (s *service) Reconcile(entries []Entry, states []IssueState, text string) Result {
	res := Result{Text: text}

	var b strings.Builder
	cursor := 0
	rebuilt := false

	for i, e := range entries {
		state := StateUnknown
		if i < len(states) {
			state = states[i]
		}

		shouldBeOpen := state.ShouldBeOpen()
		if shouldBeOpen == e.Open {
			continue
		}

		applied := false
		if newLine := s.grammar.Toggle(e.RawLine, shouldBeOpen); newLine != e.RawLine {
			if at, ok := locate(text, e, cursor); ok {
				b.WriteString(text[cursor:at])
				b.WriteString(newLine)
				cursor = at + len(e.RawLine)
				rebuilt = true
				applied = true
			}
		}

		res.Changed = true
		res.Mismatches = append(res.Mismatches, Mismatch{
			IssueRef:     e.IssueRef,
			Line:         e.Line,
			WasOpen:      e.Open,
			ShouldBeOpen: shouldBeOpen,
			Unknown:      state == StateUnknown,
			Applied:      applied,
		})
	}

	if rebuilt {
		b.WriteString(text[cursor:])
		res.Text = b.String()
	}
	return res
}

// locate returns the offset of e.RawLine in text at or after cursor. The parsed offsets
// are trusted when they still address the line; otherwise the first later occurrence is used.
func locate(text string, e Entry, cursor int) (int, bool) {
	if e.Start >= cursor && e.End <= len(text) && e.End-e.Start == len(e.RawLine) && text[e.Start:e.End] == e.RawLine {
		return e.Start, true
	}
	if cursor > len(text) {
		return 0, false
	}
	if idx := strings.Index(text[cursor:], e.RawLine); idx >= 0 {
		return cursor + idx, true
	}
	return 0, false
}
