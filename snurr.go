// Package snurr provides a non-blocking terminal spinner. The spinner
// animates at the cursor position in a background goroutine while the
// host application keeps working, and Write lets the application print
// whole lines without tearing the animation.
package snurr

import (
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"emperror.dev/errors"
	"github.com/sirupsen/logrus"

	"github.com/crazywolf132/snurr/internal/term"
)

// DefaultDelay is the time between frames when WithDelay is not given.
const DefaultDelay = 100 * time.Millisecond

// maxGlyphs caps custom symbol sequences; anything longer is almost
// certainly a mistake (a pasted paragraph, not an animation).
const maxGlyphs = 100

// stopGrace bounds how long Stop waits for the worker beyond one frame
// delay, and how long any caller waits for a terminal lock an abandoned
// worker may still hold.
const stopGrace = 250 * time.Millisecond

// Spinner renders a rotating glyph sequence on the terminal.
//
// Animation frames and interleaved output all go through one terminal
// mutex, so frames and application lines never garble each other. A
// Spinner must not be copied after first use.
type Spinner struct {
	glyphs     []string
	delay      time.Duration
	appendMode bool
	out        *term.Writer

	lifecycle sync.Mutex // serializes Start and Stop
	running   atomic.Bool
	stop      chan struct{}
	done      chan struct{}

	mu     sync.Mutex // guards the terminal and what is drawn on it
	drawn  string     // what is currently on screen, "" when erased
	status string
}

type config struct {
	symbols    string
	delay      time.Duration
	appendMode bool
	status     string
	out        io.Writer
}

// Option configures a Spinner at construction time.
type Option func(*config)

// WithSymbols sets the glyph sequence to animate. The string is split
// into grapheme clusters, so multi-rune glyphs count as one frame.
func WithSymbols(symbols string) Option {
	return func(c *config) { c.symbols = symbols }
}

// WithDelay sets the time between frames.
func WithDelay(delay time.Duration) Option {
	return func(c *config) { c.delay = delay }
}

// WithAppend makes the spinner render after existing text on the
// current line, separated by a single space, instead of at the start of
// its own position.
func WithAppend(enabled bool) Option {
	return func(c *config) { c.appendMode = enabled }
}

// WithStatus sets an initial status message, rendered before the glyph.
func WithStatus(status string) Option {
	return func(c *config) { c.status = status }
}

// WithOutput redirects the spinner's output, mainly for tests. The
// default is os.Stdout.
func WithOutput(out io.Writer) Option {
	return func(c *config) { c.out = out }
}

// New builds a Spinner. Without options it animates the Classic set
// every 100ms on stdout.
func New(opts ...Option) (*Spinner, error) {
	cfg := config{
		symbols: Classic,
		delay:   DefaultDelay,
		out:     os.Stdout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.delay < 0 {
		return nil, errors.New("delay must be non-negative")
	}
	if cfg.symbols == "" {
		return nil, errors.New("symbols cannot be empty")
	}
	glyphs := term.Graphemes(cfg.symbols)
	if len(glyphs) > maxGlyphs {
		return nil, errors.Errorf("symbols too long: %d glyphs (max %d)", len(glyphs), maxGlyphs)
	}

	return &Spinner{
		glyphs:     glyphs,
		delay:      cfg.delay,
		appendMode: cfg.appendMode,
		status:     cfg.status,
		out:        term.NewWriter(cfg.out),
	}, nil
}

// Start begins the animation in a background goroutine. Calling Start
// on a running Spinner is a no-op (logged at debug level); there is
// never more than one animation worker per Spinner.
func (s *Spinner) Start() {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	if s.running.Load() {
		logrus.Debug("snurr: Start called on a running spinner, ignoring")
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	s.running.Store(true)

	if !s.withTerminal(s.out.HideCursor) {
		logrus.Debug("snurr: terminal still held by an abandoned worker, skipping cursor hide")
	}
	go s.spin(s.stop, s.done)
}

// Stop ends the animation, erases the last-drawn glyph and restores
// cursor visibility. Calling Stop on a stopped Spinner is a no-op.
//
// Stop never blocks indefinitely: it waits for the worker at most one
// frame delay plus a small grace period. A worker stuck writing to a
// wedged output stream is abandoned, and the final erase and cursor
// restore become best-effort (skipped if that worker still holds the
// terminal, where nothing renders anyway).
func (s *Spinner) Stop() {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	if !s.running.Load() {
		return
	}
	s.running.Store(false)
	close(s.stop)
	select {
	case <-s.done:
	case <-time.After(s.delay + stopGrace):
		logrus.WithFields(logrus.Fields{
			"delay": s.delay,
		}).Debug("snurr: animation worker missed the stop deadline, abandoning it")
	}

	ok := s.withTerminal(func() {
		s.erase()
		s.out.ShowCursor()
	})
	if !ok {
		logrus.Debug("snurr: terminal still wedged, skipping final cleanup")
	}
}

// Write prints text followed by a newline without disturbing the
// animation: the current glyph is erased, the text written, and the
// glyph redrawn if the spinner is still running. Safe to call
// concurrently with the animation.
func (s *Spinner) Write(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.drawn
	s.erase()
	s.out.WriteString(text + "\n")
	if s.running.Load() && current != "" {
		s.put(current)
	}
}

// SetStatus replaces the status message rendered before the glyph. On a
// running spinner the line is updated immediately, using the first
// glyph as a placeholder until the next frame lands.
func (s *Spinner) SetStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.erase()
	s.status = status
	if s.running.Load() {
		s.put(s.frame(s.glyphs[0]))
	}
}

// spin is the animation worker. It draws one frame per delay and exits
// when stop closes, checking the signal at the sleep boundary. The draw
// itself is guarded by the worker's own stop channel rather than the
// running flag, so a worker abandoned by Stop can never draw again,
// even after a later Start flips the flag back on.
func (s *Spinner) spin(stop, done chan struct{}) {
	defer close(done)
	for i := 0; ; i = (i + 1) % len(s.glyphs) {
		s.mu.Lock()
		select {
		case <-stop:
			s.mu.Unlock()
			return
		default:
			s.erase()
			s.put(s.frame(s.glyphs[i]))
		}
		s.mu.Unlock()

		select {
		case <-stop:
			return
		case <-time.After(s.delay):
		}
	}
}

// frame composes the full on-screen form of a glyph: status message and
// append-mode separator included. Callers hold s.mu.
func (s *Spinner) frame(glyph string) string {
	if s.status != "" {
		glyph = s.status + " " + glyph
	}
	if s.appendMode {
		glyph = " " + glyph
	}
	return glyph
}

// put draws frame and moves the cursor back over it, so the next erase
// or redraw overwrites exactly the drawn columns. Callers hold s.mu.
func (s *Spinner) put(frame string) {
	s.out.WriteString(frame + term.Backspaces(frame))
	s.drawn = frame
}

// erase blanks whatever is currently drawn. Callers hold s.mu.
func (s *Spinner) erase() {
	if s.drawn == "" {
		return
	}
	s.out.WriteString(term.Blank(s.drawn) + term.Backspaces(s.drawn))
	s.drawn = ""
}

// withTerminal runs fn holding the terminal mutex, polling for up to
// stopGrace in case an abandoned worker still holds it. Reports whether
// fn ran. Healthy paths acquire on the first try.
func (s *Spinner) withTerminal(fn func()) bool {
	deadline := time.Now().Add(stopGrace)
	for {
		if s.mu.TryLock() {
			fn()
			s.mu.Unlock()
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(time.Millisecond)
	}
}
