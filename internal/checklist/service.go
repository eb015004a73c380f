package checklist

import "strings"

type Service interface {
	// Parse extracts the checklist entries of text in line order.
	Parse(text string) []Entry

	// Reconcile flips the boxes of entries whose local state disagrees with states.
	// states is positional: states[i] belongs to entries[i].
	Reconcile(entries []Entry, states []IssueState, text string) Result

	// Stats calculates checklist statistics
	Stats(text string) Stats

	// Grammar returns the active grammar name.
	Grammar() string
}

type service struct {
	grammar   *Grammar
	separator string
}

func New(opts Options) (Service, error) {
	grammar, err := NewGrammar(opts.Grammar)
	if err != nil {
		return nil, err
	}

	sep := opts.LineSeparator
	if sep == "" {
		sep = DefaultLineSeparator
	}

	return &service{
		grammar:   grammar,
		separator: sep,
	}, nil
}

func (s *service) Grammar() string {
	return s.grammar.Name()
}

// Parse splits text on the configured separator and keeps the lines the grammar accepts.
// It never fails; text without entries yields an empty slice.
func (s *service) Parse(text string) []Entry {
	entries := make([]Entry, 0)
	inFence := false

	start := 0
	for line := 0; ; line++ {
		raw := text[start:]
		next := -1
		if idx := strings.Index(raw, s.separator); idx >= 0 {
			raw = raw[:idx]
			next = start + idx + len(s.separator)
		}

		switch {
		case s.grammar.skipFences && isFence(raw):
			inFence = !inFence
		case inFence:
		default:
			if open, ref, ok := s.grammar.Match(raw); ok {
				entries = append(entries, Entry{
					Line:     line,
					Start:    start,
					End:      start + len(raw),
					RawLine:  raw,
					IssueRef: ref,
					Open:     open,
				})
			}
		}

		if next < 0 {
			break
		}
		start = next
	}

	return entries
}

// Stats calculates checklist statistics
func (s *service) Stats(text string) Stats {
	entries := s.Parse(text)
	total := len(entries)
	if total == 0 {
		return Stats{}
	}

	completed := 0
	for _, e := range entries {
		if !e.Open {
			completed++
		}
	}

	return Stats{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
		Progress:  float64(completed) / float64(total) * 100,
	}
}
