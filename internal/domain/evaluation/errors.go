package evaluation

import "errors"

var (
	ErrInvalidNoteType = errors.New("note type must be note or warning")
)
