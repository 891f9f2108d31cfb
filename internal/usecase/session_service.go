package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/scoutschool/daily-shift/internal/domain/scoring"
	"github.com/scoutschool/daily-shift/internal/platform/id"
	"github.com/scoutschool/daily-shift/internal/platform/logging"
)

// SessionCallbacks receive timer events. Both are optional and are
// never invoked after the session has ended.
type SessionCallbacks struct {
	OnTick   func(remaining int)
	OnExpire func()
}

type timerSession struct {
	id        string
	remaining int
	active    bool
	cancel    context.CancelFunc
}

// SessionService runs the one-per-process countdown for timed shifts.
// Starting a session cancels the previous one; ticks are guarded by the
// session's active flag so a stale tick can never mutate state after
// its owner ended.
type SessionService struct {
	ids    id.Generator
	logger *logging.Logger

	mu      sync.Mutex
	current *timerSession
}

func NewSessionService(ids id.Generator, logger *logging.Logger) *SessionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SessionService{
		ids:    ids,
		logger: logger,
	}
}

// Start begins a countdown of limit seconds (the default shift length
// when limit <= 0) and returns the session ID. Any running session is
// cancelled first.
func (s *SessionService) Start(ctx context.Context, limit int, callbacks SessionCallbacks) (string, error) {
	_, span := startUsecaseSpan(ctx, "SessionService.Start")
	defer span.End()

	if limit <= 0 {
		limit = scoring.DefaultTimeLimitSeconds
	}

	sessionID, err := id.Prefixed(s.ids, "shift")
	if err != nil {
		return "", fmt.Errorf("new session id: %w", err)
	}

	runCtx, cancel := context.WithCancel(context.Background())
	sess := &timerSession{
		id:        sessionID,
		remaining: limit,
		active:    true,
		cancel:    cancel,
	}

	s.mu.Lock()
	if s.current != nil && s.current.active {
		s.current.active = false
		s.current.cancel()
	}
	s.current = sess
	s.mu.Unlock()

	go s.run(runCtx, sess, callbacks)

	s.logger.InfoContext(ctx, "session timer started", "session_id", sessionID, "limit_seconds", limit)

	return sessionID, nil
}

// Stop cancels the session's ticker. Stopping an already-ended or
// unknown session is a no-op.
func (s *SessionService) Stop(ctx context.Context, sessionID string) {
	_, span := startUsecaseSpan(ctx, "SessionService.Stop")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.current.id != sessionID || !s.current.active {
		return
	}
	s.current.active = false
	s.current.cancel()

	s.logger.InfoContext(ctx, "session timer stopped", "session_id", sessionID)
}

// Remaining reports the seconds left on a session; false when the
// session is unknown or no longer active.
func (s *SessionService) Remaining(sessionID string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.current.id != sessionID || !s.current.active {
		return 0, false
	}

	return s.current.remaining, true
}

func (s *SessionService) run(ctx context.Context, sess *timerSession, callbacks SessionCallbacks) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		s.mu.Lock()
		if s.current != sess || !sess.active {
			s.mu.Unlock()
			return
		}
		sess.remaining--
		remaining := sess.remaining
		expired := remaining <= 0
		if expired {
			sess.active = false
			sess.cancel()
		}
		s.mu.Unlock()

		if expired {
			if callbacks.OnExpire != nil {
				callbacks.OnExpire()
			}
			return
		}
		if callbacks.OnTick != nil {
			callbacks.OnTick(remaining)
		}
	}
}
