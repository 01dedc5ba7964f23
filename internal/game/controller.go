// Package game implements the timed typing game controller.
//
// The controller is host-agnostic: it never schedules anything itself. A
// host feeds it normalized key events and countdown ticks tagged with the
// session generation returned by Start, and reads back a Display snapshot.
package game

import (
	"fmt"
	"sort"
	"time"

	"github.com/verte-zerg/wordrush/internal/generator"
	"github.com/verte-zerg/wordrush/internal/model"
)

// DefaultDuration is the countdown length of a session.
const DefaultDuration = 10 * time.Second

// Status messages and the terminal word marker.
const (
	MessageIdle     = "Press Space to Start"
	MessagePlaying  = "Keep typing!"
	MessageRetry    = "Press Space to Retry"
	FinishedMarker  = "FINISHED!"
	finishedTimeTxt = "0.00"
)

// Phase is the controller state.
type Phase int

// Controller phases.
const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseFinished:
		return "finished"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Key is a normalized key-press event.
type Key struct {
	// Start marks the designated start key (space).
	Start bool
	// Char is the literal character typed; zero when the key has none.
	Char rune
}

// KeyOutcome reports what a key event did.
type KeyOutcome int

// Key outcomes.
const (
	KeyIgnored KeyOutcome = iota
	KeyStarted
	KeyHit
	KeyWordDone
	KeyMiss
)

// TickOutcome reports what a countdown tick did.
type TickOutcome int

// Tick outcomes.
const (
	// TickStale means the tick belongs to an ended or replaced session.
	TickStale TickOutcome = iota
	// TickContinue means time remains and another tick should be scheduled.
	TickContinue
	// TickFinished means this tick expired the session.
	TickFinished
)

// Picker chooses the next target word.
type Picker interface {
	Pick(words []string) string
}

// Options configures a Controller.
type Options struct {
	Duration time.Duration
	Clock    func() time.Time
	Picker   Picker
}

// Display is a snapshot of everything the host renders.
type Display struct {
	Phase    Phase
	Time     string
	Score    int
	Typed    string
	Untyped  string
	Finished bool
	Message  string
	Miss     bool
}

// Word returns the plain word text, or the terminal marker once finished.
func (d Display) Word() string {
	if d.Finished {
		return FinishedMarker
	}
	return d.Typed + d.Untyped
}

// Controller owns the word list and the current session.
type Controller struct {
	words    []string
	duration time.Duration
	now      func() time.Time
	picker   Picker

	phase      Phase
	session    *Session
	generation uint64
	timeText   string
	message    string

	miss    bool
	missSeq uint64
}

// New builds a controller over a fixed, non-empty word list.
func New(words []string, opts Options) (*Controller, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	for i, w := range words {
		if w == "" {
			return nil, fmt.Errorf("word %d is empty", i)
		}
	}
	c := &Controller{
		words:    append([]string(nil), words...),
		duration: opts.Duration,
		now:      opts.Clock,
		picker:   opts.Picker,
		phase:    PhaseIdle,
		message:  MessageIdle,
	}
	if c.duration <= 0 {
		c.duration = DefaultDuration
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.picker == nil {
		c.picker = generator.New()
	}
	c.timeText = FormatRemaining(c.duration)
	return c, nil
}

// Phase returns the current controller phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Playing reports whether a session is running.
func (c *Controller) Playing() bool {
	return c.session != nil && c.session.Playing
}

// Session returns the current or most recent session, nil before the first start.
func (c *Controller) Session() *Session {
	return c.session
}

// Duration returns the countdown length.
func (c *Controller) Duration() time.Duration {
	return c.duration
}

// MissSeq identifies the most recent miss; pass it back to ClearMiss.
func (c *Controller) MissSeq() uint64 {
	return c.missSeq
}

// Start begins a new session and returns its generation. A start while
// playing is ignored and returns the running session's generation.
func (c *Controller) Start() uint64 {
	if c.Playing() {
		return c.session.Generation
	}
	c.generation++
	c.session = newSession(c.generation, c.now())
	c.phase = PhasePlaying
	c.message = MessagePlaying
	c.timeText = FormatRemaining(c.duration)
	c.selectTarget()
	return c.generation
}

func (c *Controller) selectTarget() {
	c.session.Target = []rune(c.picker.Pick(c.words))
	c.session.Position = 0
}

// Tick advances the countdown of the session with the given generation.
func (c *Controller) Tick(generation uint64) TickOutcome {
	s := c.session
	if s == nil || s.Generation != generation || !s.Playing {
		return TickStale
	}
	now := c.now()
	remaining := c.duration - now.Sub(s.StartTime)
	if remaining <= 0 {
		s.Playing = false
		s.EndTime = now
		c.phase = PhaseFinished
		c.timeText = finishedTimeTxt
		c.message = MessageRetry
		return TickFinished
	}
	c.timeText = FormatRemaining(remaining)
	return TickContinue
}

// HandleKey processes one key event.
func (c *Controller) HandleKey(k Key) KeyOutcome {
	if !c.Playing() {
		if k.Start {
			c.Start()
			return KeyStarted
		}
		return KeyIgnored
	}
	s := c.session
	s.Keystrokes++
	expected := s.expected()
	entry := s.tally(expected)
	if k.Char == 0 || k.Char != expected {
		entry.incorrect++
		s.Misses++
		c.missSeq++
		c.miss = true
		return KeyMiss
	}
	entry.correct++
	s.Position++
	if s.Position == len(s.Target) {
		s.Score++
		s.Position = 0
		c.selectTarget()
		return KeyWordDone
	}
	return KeyHit
}

// ClearMiss clears the miss flag if seq is still the latest miss.
func (c *Controller) ClearMiss(seq uint64) bool {
	if !c.miss || seq != c.missSeq {
		return false
	}
	c.miss = false
	return true
}

// Display returns the current render snapshot.
func (c *Controller) Display() Display {
	d := Display{
		Phase:   c.phase,
		Time:    c.timeText,
		Message: c.message,
		Miss:    c.miss,
	}
	if c.session == nil {
		return d
	}
	d.Score = c.session.Score
	if c.phase == PhaseFinished {
		d.Finished = true
		return d
	}
	d.Typed = c.session.Typed()
	d.Untyped = c.session.Untyped()
	return d
}

// Result summarizes the current or most recent session.
func (c *Controller) Result() model.SessionResult {
	s := c.session
	if s == nil {
		return model.SessionResult{}
	}
	end := s.EndTime
	if end.IsZero() {
		end = c.now()
	}
	chars := make([]model.CharStats, 0, len(s.chars))
	for ch, entry := range s.chars {
		chars = append(chars, model.CharStats{
			Char:      string(ch),
			Correct:   entry.correct,
			Incorrect: entry.incorrect,
		})
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i].Char < chars[j].Char })
	return model.SessionResult{
		ID:         s.ID,
		StartedAt:  s.StartTime,
		EndedAt:    end,
		Score:      s.Score,
		Keystrokes: s.Keystrokes,
		Misses:     s.Misses,
		DurationMs: end.Sub(s.StartTime).Milliseconds(),
		Chars:      chars,
	}
}

// FormatRemaining renders seconds left with two decimals, clamped at zero.
func FormatRemaining(d time.Duration) string {
	if d <= 0 {
		return finishedTimeTxt
	}
	return fmt.Sprintf("%.2f", d.Seconds())
}
