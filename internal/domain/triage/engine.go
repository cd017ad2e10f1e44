package triage

// Action is the navigation command sent with an answer.
type Action int

const (
	ActionNext Action = iota
	ActionPrevious
	ActionSkip
	// ActionUnknown records the answer but leaves the cursor in place.
	ActionUnknown
)

// ParseAction maps the wire value to an Action. Empty means next; any value
// other than next, previous or skip is ActionUnknown.
func ParseAction(s string) Action {
	switch s {
	case "", "next":
		return ActionNext
	case "previous":
		return ActionPrevious
	case "skip":
		return ActionSkip
	default:
		return ActionUnknown
	}
}

func (a Action) String() string {
	switch a {
	case ActionNext:
		return "next"
	case ActionPrevious:
		return "previous"
	case ActionSkip:
		return "skip"
	}
	return "unknown"
}

// Transition reports what Apply did to the cursor.
type Transition int

const (
	Advanced Transition = iota
	Finished
	NoOp
)

// HasNext reports whether the caller should present another question.
func (t Transition) HasNext() bool { return t == Advanced }

// SkippedAnswer is the value recorded for a skipped question.
const SkippedAnswer = "Skipped"

// Engine applies navigation commands to a session. The caller must hold the
// session lock.
type Engine struct {
	dedup bool
}

// EngineOptions tunes conditional injection.
type EngineOptions struct {
	// DedupConditionals splices each (question, answer) follow-up block at
	// most once per session. When false, re-answering re-inserts the block.
	DedupConditionals bool
}

func NewEngine(opts EngineOptions) *Engine {
	return &Engine{dedup: opts.DedupConditionals}
}

// Apply records answer against the current question (except for previous)
// and then moves the cursor according to action.
func (e *Engine) Apply(s *Session, answer string, action Action) Transition {
	if action != ActionPrevious {
		e.record(s, answer)
	}

	switch action {
	case ActionNext:
		return e.next(s)
	case ActionPrevious:
		return e.previous(s)
	case ActionSkip:
		return e.skip(s)
	default:
		return Advanced
	}
}

func (e *Engine) record(s *Session, answer string) {
	if s.Cursor >= len(s.Questions) {
		return
	}
	q := s.Questions[s.Cursor]
	s.Answers[q.ID] = answer
	e.inject(s, q.ID, answer)
}

func (e *Engine) inject(s *Session, questionID, answer string) {
	block := s.Template.Follow(questionID, answer)
	if len(block) == 0 {
		return
	}
	if e.dedup {
		key := questionID + "\x00" + lower(answer)
		if _, done := s.triggered[key]; done {
			return
		}
		s.triggered[key] = struct{}{}
	}
	s.Questions = splice(s.Questions, s.Cursor+1, block)
}

func (e *Engine) next(s *Session) Transition {
	if s.Cursor < len(s.Questions)-1 {
		s.Cursor++
		return Advanced
	}
	s.Completed = true
	return Finished
}

func (e *Engine) previous(s *Session) Transition {
	if s.Cursor > 0 {
		s.Cursor--
		return Advanced
	}
	return NoOp
}

func (e *Engine) skip(s *Session) Transition {
	if s.Cursor >= len(s.Questions) {
		return NoOp
	}
	s.Answers[s.Questions[s.Cursor].ID] = SkippedAnswer
	return e.next(s)
}

// splice inserts block at index at, shifting the tail right.
func splice(qs []Question, at int, block []Question) []Question {
	if at > len(qs) {
		at = len(qs)
	}
	out := make([]Question, 0, len(qs)+len(block))
	out = append(out, qs[:at]...)
	out = append(out, block...)
	return append(out, qs[at:]...)
}
