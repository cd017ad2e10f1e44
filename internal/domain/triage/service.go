package triage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const CompletedMessage = "Questionnaire completed!"

type Service struct {
	sessions SessionRepository
	engine   *Engine
	advisor  *Advisor
	now      func() time.Time
}

func NewService(sessions SessionRepository, engine *Engine, advisor *Advisor) *Service {
	return &Service{
		sessions: sessions,
		engine:   engine,
		advisor:  advisor,
		now:      time.Now,
	}
}

type StartResult struct {
	SessionID string        `json:"sessionId"`
	Message   string        `json:"message"`
	Question  *QuestionView `json:"question"`
}

type SubmitInput struct {
	SessionID string
	// Answer is nil when the client sent none. It is required for next and
	// for unrecognised actions, which both record an answer.
	Answer *string
	Action string
}

type SubmitResult struct {
	Completed  bool          `json:"completed"`
	Question   *QuestionView `json:"question,omitempty"`
	Message    string        `json:"message,omitempty"`
	SessionID  string        `json:"sessionId,omitempty"`
	Transition Transition    `json:"-"`
}

type CurrentQuestion struct {
	Question  *QuestionView `json:"question"`
	Completed bool          `json:"completed"`
}

// -- Lifecycle --

func (s *Service) Start(ctx context.Context, symptom, description string) (*StartResult, error) {
	tmpl := Resolve(symptom)
	sess := newSession(uuid.NewString(), symptom, description, tmpl, s.now())
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Str("session_id", sess.ID).
		Str("template", string(tmpl.Family)).
		Msg("questionnaire started")

	sess.Lock()
	defer sess.Unlock()
	return &StartResult{
		SessionID: sess.ID,
		Message:   "Starting questionnaire for: " + symptom,
		Question:  Project(sess),
	}, nil
}

func (s *Service) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	sess, err := s.lookup(ctx, in.SessionID)
	if err != nil {
		return nil, err
	}
	action := ParseAction(in.Action)
	if in.Answer == nil && (action == ActionNext || action == ActionUnknown) {
		return nil, fmt.Errorf("%w: answer is required", ErrInvalidInput)
	}

	var answer string
	if in.Answer != nil {
		answer = *in.Answer
	}

	sess.Lock()
	defer sess.Unlock()

	wasCompleted := sess.Completed
	t := s.engine.Apply(sess, answer, action)

	if sess.Completed {
		if !wasCompleted {
			zerolog.Ctx(ctx).Info().
				Str("session_id", sess.ID).
				Int("questions", len(sess.Questions)).
				Msg("questionnaire completed")
		}
		return &SubmitResult{
			Completed:  true,
			Message:    CompletedMessage,
			SessionID:  sess.ID,
			Transition: t,
		}, nil
	}
	return &SubmitResult{
		Question:   Project(sess),
		Transition: t,
	}, nil
}

// -- Queries --

func (s *Service) CurrentQuestion(ctx context.Context, sessionID string) (*CurrentQuestion, error) {
	sess, err := s.lookup(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sess.Lock()
	defer sess.Unlock()
	return &CurrentQuestion{Question: Project(sess), Completed: sess.Completed}, nil
}

func (s *Service) Report(ctx context.Context, sessionID string) (*Report, error) {
	sess, err := s.lookup(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sess.Lock()
	defer sess.Unlock()
	return Assemble(sess, s.advisor, s.now()), nil
}

// ActiveSessions is the number of sessions created since startup.
func (s *Service) ActiveSessions(ctx context.Context) int {
	return s.sessions.Count(ctx)
}

func (s *Service) lookup(ctx context.Context, sessionID string) (*Session, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: sessionId is required", ErrInvalidInput)
	}
	return s.sessions.Get(ctx, sessionID)
}
