package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"trending/internal/domain"
	"trending/internal/port"
)

const (
	TweetPrompt    = "Please input the tweet"
	ContinuePrompt = "Want to enter more tweets? (yes/no)"
)

// Mode selects how the session decides to stop reading.
type Mode int

const (
	// ModeInteractive asks after every tweet whether to continue.
	ModeInteractive Mode = iota
	// ModeBatch reads until end of input without prompting.
	ModeBatch
)

func (m Mode) String() string {
	if m == ModeBatch {
		return "batch"
	}
	return "interactive"
}

type sessionState int

const (
	stateReading sessionState = iota
	stateDone
)

// ProgressCallback is called after each tweet with the number read so far.
type ProgressCallback func(lines int)

// SessionUseCase drives the read, tokenize, accumulate loop and reports the
// most frequent hashtags once input ends.
type SessionUseCase struct {
	source    port.LineSource
	tokenizer port.Tokenizer
	selector  port.TopKSelector
	reporter  port.Reporter
	prompts   io.Writer
	k         int
	logger    *logrus.Entry
}

// NewSessionUseCase creates a new session use case. Prompts are written to
// prompts; the result goes to reporter.
func NewSessionUseCase(
	source port.LineSource,
	tokenizer port.Tokenizer,
	selector port.TopKSelector,
	reporter port.Reporter,
	prompts io.Writer,
	k int,
	logger *logrus.Logger,
) *SessionUseCase {
	return &SessionUseCase{
		source:    source,
		tokenizer: tokenizer,
		selector:  selector,
		reporter:  reporter,
		prompts:   prompts,
		k:         k,
		logger:    logger.WithField("component", "session"),
	}
}

// Session is the state threaded through one run.
type Session struct {
	ID    string
	Table *domain.FrequencyTable
	Lines int
}

func newSession() *Session {
	return &Session{
		ID:    uuid.NewString(),
		Table: domain.NewFrequencyTable(),
	}
}

// SessionResult summarizes a finished run.
type SessionResult struct {
	SessionID string
	Lines     int
	Distinct  int
	Top       domain.TopKResult
}

// Run reads tweets until the user stops or input ends, then selects and
// reports the top k hashtags. The line source is closed before returning;
// a failure to close is logged and ignored.
func (u *SessionUseCase) Run(ctx context.Context, mode Mode, progress ProgressCallback) (*SessionResult, error) {
	s := newSession()
	log := u.logger.WithFields(logrus.Fields{"session_id": s.ID, "mode": mode.String()})
	defer u.release(log)

	log.Debug("session started")

	for state := stateReading; state == stateReading; {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var err error
		state, err = u.step(ctx, s, mode)
		if err != nil {
			return nil, err
		}
		if progress != nil {
			progress(s.Lines)
		}
	}

	log.WithFields(logrus.Fields{
		"lines":    s.Lines,
		"distinct": s.Table.Len(),
	}).Debug("input finished")

	top, err := u.selector.SelectTopK(s.Table, u.k)
	if err != nil {
		return nil, fmt.Errorf("failed to select top %d hashtags: %w", u.k, err)
	}

	if err := u.reporter.Report(top); err != nil {
		return nil, fmt.Errorf("failed to report results: %w", err)
	}

	return &SessionResult{
		SessionID: s.ID,
		Lines:     s.Lines,
		Distinct:  s.Table.Len(),
		Top:       top,
	}, nil
}

// step reads one tweet and, in interactive mode, the answer to the continue
// prompt. A context canceled during the tweet read stops the session before
// the prompt is asked.
func (u *SessionUseCase) step(ctx context.Context, s *Session, mode Mode) (sessionState, error) {
	if mode == ModeInteractive {
		fmt.Fprintln(u.prompts, TweetPrompt)
	}

	line, err := u.source.ReadLine()
	if errors.Is(err, io.EOF) {
		return stateDone, nil
	}
	if err != nil {
		return stateDone, fmt.Errorf("failed to read tweet: %w", err)
	}

	s.Table.Accumulate(u.tokenizer.ExtractTokens(line))
	s.Lines++

	if mode == ModeBatch {
		return stateReading, nil
	}
	if err := ctx.Err(); err != nil {
		return stateDone, err
	}

	fmt.Fprintln(u.prompts, ContinuePrompt)
	answer, err := u.source.ReadLine()
	if errors.Is(err, io.EOF) {
		return stateDone, nil
	}
	if err != nil {
		return stateDone, fmt.Errorf("failed to read answer: %w", err)
	}

	if IsAffirmative(answer) {
		return stateReading, nil
	}
	return stateDone, nil
}

func (u *SessionUseCase) release(log *logrus.Entry) {
	if err := u.source.Close(); err != nil {
		log.WithError(err).Warn("failed to close input")
	}
}

// IsAffirmative reports whether answer is "y" or "yes", ignoring case and
// surrounding whitespace.
func IsAffirmative(answer string) bool {
	answer = strings.TrimSpace(answer)
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
}
