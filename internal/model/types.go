// Package model defines shared data structures.
package model

import "time"

// Config defines game settings.
type Config struct {
	Lang         string
	WordListPath string
	Duration     time.Duration
	TickInterval time.Duration
	MissFlash    time.Duration
	FocusWeak    bool
	WeakTop      int
	WeakFactor   float64
	WeakWindow   int
	NoSave       bool
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Lang        string
	Since       *time.Time
	Last        int
	CurveWindow int
}

// SessionResult captures a finished timed session.
type SessionResult struct {
	ID         string
	StartedAt  time.Time
	EndedAt    time.Time
	Lang       string
	WordList   string
	Score      int
	Keystrokes int
	Misses     int
	DurationMs int64
	Chars      []CharStats
}

// CharStats stores per-character stats for a session, keyed by the expected character.
type CharStats struct {
	Char      string
	Correct   int
	Incorrect int
}

// CharAggregate aggregates character stats across sessions.
type CharAggregate struct {
	Char      string
	Correct   int
	Incorrect int
}

// SessionAggregate summarizes a session for reporting.
type SessionAggregate struct {
	SessionID  int64
	EndedAt    time.Time
	Score      int
	Keystrokes int
	Misses     int
	DurationMs int64
}
