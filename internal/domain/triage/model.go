package triage

import (
	"sync"
	"time"
)

// QuestionType controls how a client renders the answer options.
type QuestionType string

const (
	TypeYesNo  QuestionType = "yes_no"
	TypeChoice QuestionType = "choice"
	TypeScale  QuestionType = "scale"
)

// Weight is the clinical importance of a question. It drives the risk score.
type Weight string

const (
	WeightLow    Weight = "low"
	WeightMedium Weight = "medium"
	WeightHigh   Weight = "high"
)

// Points returns the score contribution of a high-risk answer.
func (w Weight) Points() int {
	switch w {
	case WeightHigh:
		return 3
	case WeightMedium:
		return 2
	case WeightLow:
		return 1
	}
	return 0
}

// Question is immutable once it is part of a Template.
type Question struct {
	ID      string       `json:"id"`
	Text    string       `json:"question"`
	Type    QuestionType `json:"type"`
	Options []string     `json:"options,omitempty"`
	Weight  Weight       `json:"importance"`
}

// Family identifies a symptom template.
type Family string

const (
	FamilyStomach  Family = "stomach"
	FamilyHeadache Family = "headache"
	FamilyFever    Family = "fever"
	FamilyCough    Family = "cough"
)

// Template is shared read-only by every session that resolves to it.
// Conditionals are keyed by question id, then by the lowercased answer.
type Template struct {
	Family       Family
	Questions    []Question
	Conditionals map[string]map[string][]Question
}

// Follow returns the block to insert after questionID was answered with
// answer, or nil.
func (t *Template) Follow(questionID, answer string) []Question {
	byAnswer, ok := t.Conditionals[questionID]
	if !ok {
		return nil
	}
	return byAnswer[lower(answer)]
}

// Session is one user's walk through a template. All fields are guarded by
// mu; callers outside the package go through Service.
type Session struct {
	mu sync.Mutex

	ID          string
	Symptom     string
	Description string
	Template    *Template
	Questions   []Question
	Cursor      int
	Answers     map[string]string
	Completed   bool
	StartTime   time.Time

	// triggered records (question, answer) pairs that already spliced a
	// follow-up block. Only consulted when the engine deduplicates.
	triggered map[string]struct{}
}

func newSession(id, symptom, description string, tmpl *Template, now time.Time) *Session {
	qs := make([]Question, len(tmpl.Questions))
	copy(qs, tmpl.Questions)
	if description == "" {
		description = symptom
	}
	return &Session{
		ID:          id,
		Symptom:     symptom,
		Description: description,
		Template:    tmpl,
		Questions:   qs,
		Answers:     make(map[string]string),
		StartTime:   now,
		triggered:   make(map[string]struct{}),
	}
}

// Lock acquires exclusive access to the session.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session.
func (s *Session) Unlock() { s.mu.Unlock() }

// QuestionView is the client-facing projection of the current question.
type QuestionView struct {
	Text     string       `json:"question"`
	Type     QuestionType `json:"type"`
	Options  []string     `json:"options"`
	Current  int          `json:"current"`
	Total    int          `json:"total"`
	Progress float64      `json:"progress"`
}

// Severity is the risk tier of a report.
type Severity string

const (
	SeverityHigh     Severity = "High"
	SeverityModerate Severity = "Moderate"
	SeverityLow      Severity = "Low"
)

// Medication is an over-the-counter suggestion.
type Medication struct {
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
}

// DetailedAnswer pairs a question with the answer given, in question order.
type DetailedAnswer struct {
	QuestionText string `json:"question"`
	Answer       string `json:"answer"`
	Weight       Weight `json:"importance"`
}

// Report is an immutable snapshot built on every request.
type Report struct {
	SessionID            string            `json:"sessionId"`
	Symptom              string            `json:"symptom"`
	Description          string            `json:"initialDescription"`
	AssessmentDate       string            `json:"assessmentDate"`
	QuestionsAnswered    int               `json:"questionsAnswered"`
	TotalQuestions       int               `json:"totalQuestions"`
	Severity             Severity          `json:"severity"`
	Urgency              string            `json:"urgency"`
	RiskScore            int               `json:"riskScore"`
	Recommendations      []string          `json:"recommendations,omitempty"`
	SuggestedMedications []Medication      `json:"suggestedMedications,omitempty"`
	Answers              map[string]string `json:"answers"`
	DetailedAnswers      []DetailedAnswer  `json:"detailedAnswers"`
	Disclaimer           string            `json:"disclaimer"`
}
