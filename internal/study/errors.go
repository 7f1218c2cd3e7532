package study

import "errors"

var (
	// ErrInvalidStatus rejects an outcome status outside the four-value enum.
	ErrInvalidStatus = errors.New("study: invalid card status")

	// ErrInvalidTiming rejects a negative response-time computation.
	ErrInvalidTiming = errors.New("study: answer timestamp precedes start timestamp")

	// ErrOutOfSequence rejects an answer submitted outside the Revealed state.
	ErrOutOfSequence = errors.New("study: answer out of sequence")

	// ErrSessionComplete rejects any transition on a finished sequencer.
	ErrSessionComplete = errors.New("study: session already complete")
)
