package checklist

const (
	// GrammarLegacy reproduces the fixed-width, fixed-string checklist dialect.
	GrammarLegacy = "legacy"
	// GrammarStrict only accepts real markdown task items and locates the box by pattern.
	GrammarStrict = "strict"

	// DefaultLineSeparator is used when Options.LineSeparator is empty.
	DefaultLineSeparator = "\n"

	// refTailWidth is how many trailing bytes of a legacy line hold the issue reference.
	refTailWidth = 11

	codeFence = "```"
)
