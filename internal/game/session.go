package game

import (
	"time"

	"github.com/google/uuid"
)

type charTally struct {
	correct   int
	incorrect int
}

// Session is the state of one play-through, from start signal to countdown expiry.
type Session struct {
	ID         string
	Generation uint64
	Target     []rune
	Position   int
	Score      int
	StartTime  time.Time
	EndTime    time.Time
	Playing    bool
	Keystrokes int
	Misses     int

	chars map[rune]*charTally
}

func newSession(generation uint64, now time.Time) *Session {
	return &Session{
		ID:         uuid.NewString(),
		Generation: generation,
		StartTime:  now,
		Playing:    true,
		chars:      map[rune]*charTally{},
	}
}

// Typed returns the correctly typed leading characters of the target.
func (s *Session) Typed() string {
	return string(s.Target[:s.Position])
}

// Untyped returns the characters still to be typed.
func (s *Session) Untyped() string {
	return string(s.Target[s.Position:])
}

func (s *Session) expected() rune {
	return s.Target[s.Position]
}

func (s *Session) tally(expected rune) *charTally {
	entry, ok := s.chars[expected]
	if !ok {
		entry = &charTally{}
		s.chars[expected] = entry
	}
	return entry
}
