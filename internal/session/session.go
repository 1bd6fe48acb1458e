// Package session manages the turn-by-turn message list for one chat surface
// and simulates the assistant's thinking latency.
package session

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vivekkutty-vibe/starter-bank-agent/internal/models"
	"github.com/vivekkutty-vibe/starter-bank-agent/internal/responder"
)

const defaultDelay = 600 * time.Millisecond

// Message is one turn in a conversation.
type Message struct {
	ID   string
	Role string
	Text string
}

// ResponderFunc computes a reply for an input. The default is
// responder.Respond.
type ResponderFunc func(text string, ctx responder.Context) string

// Option configures a Session.
type Option func(*Session)

// WithDelay overrides the simulated thinking delay.
func WithDelay(d time.Duration) Option {
	return func(s *Session) { s.delay = d }
}

// WithResponder overrides the reply function, used by tests.
func WithResponder(fn ResponderFunc) Option {
	return func(s *Session) { s.respond = fn }
}

// Session is an ephemeral conversation. Sends are queued and replied to one
// at a time by a single worker, so rapid input cannot interleave replies out
// of send order. A closed session never appends another message.
type Session struct {
	mu       sync.Mutex
	messages []Message
	queue    []job
	typing   bool
	pending  int
	closed   bool

	delay   time.Duration
	respond ResponderFunc

	wake     chan struct{}
	done     chan struct{}
	inflight sync.WaitGroup
	worker   sync.WaitGroup
}

type job struct {
	text string
	ctx  responder.Context
}

// New creates a session. A non-empty greeting is seeded as the first agent
// message.
func New(greeting string, opts ...Option) *Session {
	s := &Session{
		delay:   defaultDelay,
		respond: responder.Respond,
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	if greeting != "" {
		s.messages = append(s.messages, Message{ID: uuid.NewString(), Role: models.RoleAgent, Text: greeting})
	}

	s.worker.Add(1)
	go s.run()
	return s
}

// Send appends the user message immediately and schedules the agent reply
// after the configured delay. Input that trims to empty is a no-op. Returns
// false when nothing was sent.
func (s *Session) Send(text string, ctx responder.Context) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	s.messages = append(s.messages, Message{ID: uuid.NewString(), Role: models.RoleUser, Text: text})
	s.typing = true
	s.pending++
	s.inflight.Add(1)
	// Queued under the lock: Close also takes the lock before stopping the
	// worker, so every queued job is either delivered or released by drop.
	s.queue = append(s.queue, job{text: text, ctx: ctx})
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
	return true
}

// Add appends a message without invoking the responder, for scripted turns.
func (s *Session) Add(role, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.messages = append(s.messages, Message{ID: uuid.NewString(), Role: role, Text: text})
}

// Messages returns a copy of the message list.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.messages...)
}

// IsTyping reports whether a reply is pending.
func (s *Session) IsTyping() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.typing
}

// Wait blocks until every queued reply has been delivered or dropped. It
// gives tests and the REPL a deterministic join point.
func (s *Session) Wait() {
	s.inflight.Wait()
}

// Close stops the worker. Replies still pending are dropped, never appended.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.typing = false
	s.mu.Unlock()

	close(s.done)
	s.worker.Wait()
}

func (s *Session) run() {
	defer s.worker.Done()
	for {
		select {
		case <-s.done:
			s.drop()
			return
		case <-s.wake:
			for {
				j, ok := s.next()
				if !ok {
					break
				}
				s.deliver(j)
			}
		}
	}
}

func (s *Session) next() (job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return job{}, false
	}
	j := s.queue[0]
	s.queue = s.queue[1:]
	return j, true
}

// deliver waits out the thinking delay, then appends the reply.
func (s *Session) deliver(j job) {
	defer s.inflight.Done()

	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-s.done:
		return
	case <-t.C:
	}

	reply := s.respond(j.text, j.ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.messages = append(s.messages, Message{ID: uuid.NewString(), Role: models.RoleAgent, Text: reply})
	s.pending--
	if s.pending == 0 {
		s.typing = false
	}
}

// drop releases jobs still queued when the session closed.
func (s *Session) drop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for range s.queue {
		s.inflight.Done()
	}
	s.queue = nil
}
