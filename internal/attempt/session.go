package attempt

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/saulo-duarte/testseries-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

var (
	ErrNotAcknowledged = errors.New("guidelines must be acknowledged before starting")
	ErrAlreadyStarted  = errors.New("attempt already started")
	ErrNotInProgress   = errors.New("attempt is not in progress")
	ErrAlreadySent     = errors.New("submission already sent")
	ErrTimeExpired     = errors.New("time expired")
	ErrUnknownQuestion = errors.New("question does not belong to this series")
	ErrInvalidOption   = errors.New("option is not one of the question options")
)

type Submitter interface {
	Submit(ctx context.Context, sub Submission) (*Receipt, error)
}

// Session is one user's run through one series. All trigger sources (the
// countdown, focus loss and manual submit) go through the same guarded
// transition, so at most one submission is in flight and at most one succeeds.
type Session struct {
	mu sync.Mutex

	series    *Series
	submitter Submitter
	interval  time.Duration

	state     State
	answers   map[string]string
	feedback  string
	total     int
	remaining int
	elapsed   int
	expired   bool
	reason    Reason
	receipt   *Receipt
	lastErr   error
	failures  int

	done chan struct{}
}

type Option func(*Session)

// WithTickInterval overrides the one second countdown step. Used by tests.
func WithTickInterval(d time.Duration) Option {
	return func(s *Session) { s.interval = d }
}

func NewSession(series *Series, submitter Submitter, opts ...Option) *Session {
	s := &Session{
		series:    series,
		submitter: submitter,
		interval:  time.Second,
		state:     NOT_STARTED,
		answers:   make(map[string]string),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Start(acknowledged bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !acknowledged {
		return ErrNotAcknowledged
	}
	if s.state != NOT_STARTED {
		return ErrAlreadyStarted
	}

	s.total = s.series.TimerSeconds()
	s.remaining = s.total
	s.state = IN_PROGRESS
	return nil
}

// Answer records option for questionID, replacing any earlier choice.
func (s *Session) Answer(questionID, option string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != IN_PROGRESS {
		return ErrNotInProgress
	}
	if s.expired {
		return ErrTimeExpired
	}

	q := s.series.question(questionID)
	if q == nil {
		return ErrUnknownQuestion
	}
	valid := false
	for _, o := range q.Options {
		if o == option {
			valid = true
			break
		}
	}
	if !valid {
		return ErrInvalidOption
	}

	s.answers[questionID] = option
	return nil
}

func (s *Session) SetFeedback(feedback string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == IN_PROGRESS {
		s.feedback = feedback
	}
}

// Tick advances the clock by one step. When a timed countdown reaches zero it
// fires the time-expired submission and returns its error.
func (s *Session) Tick(ctx context.Context) error {
	s.mu.Lock()
	if s.state != IN_PROGRESS || s.expired {
		s.mu.Unlock()
		return nil
	}

	s.elapsed++
	fire := false
	if s.total > 0 {
		s.remaining--
		if s.remaining <= 0 {
			s.remaining = 0
			s.expired = true
			fire = true
		}
	}
	s.mu.Unlock()

	if !fire {
		return nil
	}
	_, err := s.submit(ctx, ReasonTimeExpired)
	return err
}

// Blur reports that the host window lost focus.
func (s *Session) Blur(ctx context.Context) error {
	_, err := s.submit(ctx, ReasonFocusLost)
	if errors.Is(err, ErrNotInProgress) || errors.Is(err, ErrAlreadySent) {
		return nil
	}
	return err
}

func (s *Session) Submit(ctx context.Context) (*Receipt, error) {
	return s.submit(ctx, ReasonManual)
}

func (s *Session) submit(ctx context.Context, reason Reason) (*Receipt, error) {
	s.mu.Lock()
	switch {
	case s.state == SUBMITTING || s.state.IsTerminal():
		s.mu.Unlock()
		return nil, ErrAlreadySent
	case s.state != IN_PROGRESS:
		s.mu.Unlock()
		return nil, ErrNotInProgress
	}

	s.state = SUBMITTING
	s.reason = reason
	sub := Submission{
		SeriesID:  s.series.ID,
		Answers:   s.copyAnswers(),
		TimeTaken: s.timeTaken(),
		Feedback:  s.feedback,
	}
	s.mu.Unlock()

	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"series_id":  sub.SeriesID,
		"reason":     string(reason),
		"time_taken": sub.TimeTaken,
		"answered":   len(sub.Answers),
	})
	log.Info("Enviando tentativa...")

	receipt, err := s.submitter.Submit(ctx, sub)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		log.WithError(err).Warn("Falha no envio, a tentativa pode ser reenviada")
		s.state = IN_PROGRESS
		s.lastErr = err
		s.failures++
		return nil, fmt.Errorf("submit attempt: %w", err)
	}

	if reason.IsAutomatic() {
		s.state = AUTO_SUBMITTED
	} else {
		s.state = SUBMITTED
	}
	s.receipt = receipt
	s.lastErr = nil
	close(s.done)
	return receipt, nil
}

// Run drives the countdown until the session reaches a terminal state or ctx
// is cancelled. Failed automatic submissions are kept in LastError.
func (s *Session) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.done:
			return nil
		case <-ticker.C:
			if err := s.Tick(ctx); err != nil {
				config.WithContext(ctx).WithError(err).Warn("Falha no envio automático")
			}
		}
	}
}

func (s *Session) timeTaken() int {
	if s.total > 0 {
		return s.total - s.remaining
	}
	return s.elapsed
}

func (s *Session) copyAnswers() map[string]string {
	out := make(map[string]string, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

func (s *Session) Elapsed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}

func (s *Session) Timed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total > 0
}

func (s *Session) Answers() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyAnswers()
}

func (s *Session) Reason() Reason {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reason
}

func (s *Session) Receipt() *Receipt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.receipt
}

func (s *Session) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Failures counts submissions that did not reach the server.
func (s *Session) Failures() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failures
}

func (s *Session) Series() *Series {
	return s.series
}
