package checklist

import "errors"

var (
	ErrUnknownGrammar = errors.New("unknown checklist grammar")
)
