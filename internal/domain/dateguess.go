package domain

import "time"

type GuessMethodKind int

const (
	GuessUnknown GuessMethodKind = iota
	GuessByURL
	GuessByTag
)

// GuessMethod says where a date guess came from. HTMLTag is only set for
// GuessByTag and may be empty when the element name could not be determined.
type GuessMethod struct {
	Kind    GuessMethodKind
	HTMLTag string
}

type DateGuess struct {
	Found  bool
	Date   time.Time
	Method GuessMethod
}
