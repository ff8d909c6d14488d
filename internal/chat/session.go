package chat

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"
)

// DefaultResponseDelay is how long the widget pretends to type before a
// reply appears.
const DefaultResponseDelay = 1500 * time.Millisecond

type Message struct {
	ID        string
	Text      string
	IsUser    bool
	Timestamp time.Time
}

// Session is one chat widget conversation: an append-only message log plus
// at most one pending simulated reply. Sending again or closing the widget
// cancels the pending reply, so a burst of sends yields exactly one answer,
// for the latest message.
type Session struct {
	matcher *Matcher
	delay   time.Duration

	mu      sync.Mutex
	msgs    []Message
	opened  bool
	typing  bool
	closed  bool
	pending context.CancelFunc
	wg      sync.WaitGroup
}

type Option func(*Session)

func WithResponseDelay(d time.Duration) Option {
	return func(s *Session) { s.delay = d }
}

func NewSession(matcher *Matcher, opts ...Option) *Session {
	s := &Session{
		matcher: matcher,
		delay:   DefaultResponseDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open records the widget being shown. The first open seeds the log with the
// welcome message; later opens change nothing.
func (s *Session) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.opened || s.closed {
		return
	}
	s.opened = true

	s.msgs = append(s.msgs, Message{
		ID:        "welcome",
		Text:      s.matcher.Welcome(),
		IsUser:    false,
		Timestamp: time.Now(),
	})
}

// Send appends the user message and schedules the matched reply after the
// typing delay. Blank input is ignored. A reply still pending from an
// earlier send is cancelled and never appended.
func (s *Session) Send(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	if s.pending != nil {
		s.pending()
	}

	now := time.Now()
	s.msgs = append(s.msgs, Message{
		ID:        timeID(now),
		Text:      text,
		IsUser:    true,
		Timestamp: now,
	})

	ctx, cancel := context.WithCancel(context.Background())
	s.pending = cancel
	s.typing = true

	s.wg.Add(1)
	go s.deliver(ctx, s.matcher.Reply(text))
}

func (s *Session) deliver(ctx context.Context, reply string) {
	defer s.wg.Done()

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// A newer send or Close may have won the race for the lock.
	if ctx.Err() != nil {
		return
	}

	now := time.Now()
	s.msgs = append(s.msgs, Message{
		ID:        timeID(now.Add(time.Millisecond)),
		Text:      reply,
		IsUser:    false,
		Timestamp: now,
	})
	s.typing = false
	s.pending = nil
}

// Typing reports whether a reply is pending.
func (s *Session) Typing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.typing
}

// Messages returns a snapshot of the log in append order.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Message, len(s.msgs))
	copy(out, s.msgs)
	return out
}

// Close cancels any pending reply and waits for its goroutine to finish.
// The session accepts no input afterwards.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.typing = false
	if s.pending != nil {
		s.pending()
		s.pending = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

// Message IDs are time-derived, like the widget they come from.
func timeID(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}
