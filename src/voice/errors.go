package voice

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyVoice      = errors.New("voice has no usable recordings")
	ErrDuplicateWord   = errors.New("word recorded more than once")
	ErrSampleRate      = errors.New("sample rate differs from the rest of the voice")
	ErrUnknownInstance = errors.New("instance does not belong to this voice")
)

// DatasetError is a word that could not be indexed. The rest of the voice
// still loads.
type DatasetError struct {
	Word string
	Err  error
}

func (e *DatasetError) Error() string {
	return fmt.Sprintf("word %q: %v", e.Word, e.Err)
}

func (e *DatasetError) Unwrap() error {
	return e.Err
}
