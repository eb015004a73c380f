package checklist

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Grammar describes how checklist lines are recognised and rewritten.
type Grammar struct {
	name         string
	entry        *regexp.Regexp // Line is an entry candidate
	closed       *regexp.Regexp // Line shows a checked box
	uncheckedBox *regexp.Regexp
	checkedBox   *regexp.Regexp
	checkWith    string // Replacement template for uncheckedBox
	uncheckWith  string // Replacement template for checkedBox
	ref          func(line string) int
	skipFences   bool
}

var (
	nonNumeric = regexp.MustCompile(`[^0-9+-]+`)
	leadingInt = regexp.MustCompile(`^[+-]?[0-9]+`)
	hashRef    = regexp.MustCompile(`#([0-9]+)`)
)

// NewGrammar returns the grammar registered under name. An empty name selects GrammarLegacy.
func NewGrammar(name string) (*Grammar, error) {
	switch name {
	case "", GrammarLegacy:
		return &Grammar{
			name:         GrammarLegacy,
			entry:        regexp.MustCompile(`\*`),
			closed:       regexp.MustCompile(`(?i)\[x\]`),
			uncheckedBox: regexp.MustCompile(`\* \[ \]`),
			checkedBox:   regexp.MustCompile(`\* \[x\]`),
			checkWith:    "* [x]",
			uncheckWith:  "* [ ]",
			ref:          tailRef,
		}, nil
	case GrammarStrict:
		return &Grammar{
			name:         GrammarStrict,
			entry:        regexp.MustCompile(`^\s*[*+-]\s*\[[ xX]\]`),
			closed:       regexp.MustCompile(`^\s*[*+-]\s*\[[xX]\]`),
			uncheckedBox: regexp.MustCompile(`^(\s*[*+-]\s*)\[ \]`),
			checkedBox:   regexp.MustCompile(`^(\s*[*+-]\s*)\[[xX]\]`),
			checkWith:    "${1}[x]",
			uncheckWith:  "${1}[ ]",
			ref:          lastHashRef,
			skipFences:   true,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGrammar, name)
	}
}

// Name returns the registered grammar name.
func (g *Grammar) Name() string {
	return g.name
}

// Match reports whether line is an entry, and if so its local state and issue reference.
func (g *Grammar) Match(line string) (open bool, ref int, ok bool) {
	if !g.entry.MatchString(line) {
		return false, 0, false
	}
	return !g.closed.MatchString(line), g.ref(line), true
}

// Toggle rewrites the checkbox token of line to the requested state.
// When no token is found the line is returned unchanged.
func (g *Grammar) Toggle(line string, open bool) string {
	if open {
		return g.checkedBox.ReplaceAllString(line, g.uncheckWith)
	}
	return g.uncheckedBox.ReplaceAllString(line, g.checkWith)
}

// tailRef reads the issue number from the last refTailWidth bytes of line:
// everything but digits and signs is dropped, then a leading signed integer is read.
func tailRef(line string) int {
	if len(line) > refTailWidth {
		line = line[len(line)-refTailWidth:]
	}
	digits := leadingInt.FindString(nonNumeric.ReplaceAllString(line, ""))
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

// lastHashRef returns the number of the last "#<digits>" in line.
func lastHashRef(line string) int {
	matches := hashRef.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		return 0
	}
	n, err := strconv.Atoi(matches[len(matches)-1][1])
	if err != nil {
		return 0
	}
	return n
}

func isFence(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), codeFence)
}
