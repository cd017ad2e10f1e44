package triage

import (
	"testing"
	"time"
)

func newTestSession(symptom string) *Session {
	return newSession("sess-1", symptom, "", Resolve(symptom), time.Unix(0, 0))
}

func ids(qs []Question) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.ID
	}
	return out
}

// advanceTo answers "No" until the cursor sits on questionID.
func advanceTo(t *testing.T, e *Engine, s *Session, questionID string) {
	t.Helper()
	for s.Questions[s.Cursor].ID != questionID {
		if e.Apply(s, "No", ActionNext) != Advanced {
			t.Fatalf("ran off the end looking for %s", questionID)
		}
	}
}

func TestParseAction(t *testing.T) {
	tests := map[string]Action{
		"":         ActionNext,
		"next":     ActionNext,
		"previous": ActionPrevious,
		"skip":     ActionSkip,
		"NEXT":     ActionUnknown,
		"jump":     ActionUnknown,
	}
	for in, want := range tests {
		if got := ParseAction(in); got != want {
			t.Errorf("ParseAction(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestNewSession_CopiesTemplate(t *testing.T) {
	s := newTestSession("stomach")
	s.Questions[0].Text = "changed"
	if stomachTemplate.Questions[0].Text == "changed" {
		t.Fatal("session mutation leaked into the template")
	}
	if s.Description != "stomach" {
		t.Errorf("expected description to default to symptom, got %q", s.Description)
	}
}

func TestEngine_NextRecordsAndAdvances(t *testing.T) {
	e := NewEngine(EngineOptions{})
	s := newTestSession("stomach")

	if got := e.Apply(s, "Yes", ActionNext); got != Advanced {
		t.Fatalf("expected Advanced, got %v", got)
	}
	if s.Cursor != 1 {
		t.Errorf("expected cursor 1, got %d", s.Cursor)
	}
	if s.Answers["hydration"] != "Yes" {
		t.Errorf("expected hydration=Yes, got %q", s.Answers["hydration"])
	}
}

func TestEngine_ConditionalInsertion(t *testing.T) {
	e := NewEngine(EngineOptions{})
	s := newTestSession("stomach")
	advanceTo(t, e, s, "nausea")
	at := s.Cursor

	e.Apply(s, "Yes", ActionNext)
	if len(s.Questions) != 13 {
		t.Fatalf("expected 13 questions, got %d", len(s.Questions))
	}
	if s.Questions[at+1].ID != "vomit_frequency" {
		t.Errorf("expected vomit_frequency right after nausea, got %v", ids(s.Questions))
	}
	if s.Questions[at+2].ID != "bowel_movement" {
		t.Errorf("expected tail shifted right, got %v", ids(s.Questions))
	}
	if s.Cursor != at+1 {
		t.Errorf("expected cursor on follow-up, got %d", s.Cursor)
	}
}

func TestEngine_ReansweringDuplicatesBlock(t *testing.T) {
	e := NewEngine(EngineOptions{})
	s := newTestSession("stomach")
	advanceTo(t, e, s, "nausea")

	e.Apply(s, "Yes", ActionNext)
	e.Apply(s, "", ActionPrevious)
	e.Apply(s, "yes", ActionNext)

	if len(s.Questions) != 14 {
		t.Fatalf("expected 14 questions, got %d", len(s.Questions))
	}
	n := 0
	for _, q := range s.Questions {
		if q.ID == "vomit_frequency" {
			n++
		}
	}
	if n != 2 {
		t.Errorf("expected the follow-up twice, got %d", n)
	}
}

func TestEngine_DedupConditionals(t *testing.T) {
	e := NewEngine(EngineOptions{DedupConditionals: true})
	s := newTestSession("stomach")
	advanceTo(t, e, s, "nausea")

	e.Apply(s, "Yes", ActionNext)
	e.Apply(s, "", ActionPrevious)
	e.Apply(s, "YES", ActionNext)

	if len(s.Questions) != 13 {
		t.Errorf("expected the follow-up once, got %d questions", len(s.Questions))
	}
}

func TestEngine_AnswerWithoutFollowUpKeepsLength(t *testing.T) {
	e := NewEngine(EngineOptions{})
	s := newTestSession("fever")
	for i := 0; i < 3; i++ {
		e.Apply(s, "No", ActionNext)
	}
	if len(s.Questions) != 10 {
		t.Errorf("expected 10 questions, got %d", len(s.Questions))
	}
}

func TestEngine_NextAtLastCompletes(t *testing.T) {
	e := NewEngine(EngineOptions{})
	s := newTestSession("cough")
	for i := 0; i < 9; i++ {
		if got := e.Apply(s, "No", ActionNext); got != Advanced {
			t.Fatalf("step %d: expected Advanced, got %v", i, got)
		}
	}
	if got := e.Apply(s, "No", ActionNext); got != Finished {
		t.Fatalf("expected Finished, got %v", got)
	}
	if !s.Completed {
		t.Error("expected session to be completed")
	}
	if s.Cursor != 9 {
		t.Errorf("expected cursor to stay on last question, got %d", s.Cursor)
	}
	if Project(s) != nil {
		t.Error("expected no current question after completion")
	}

	e.Apply(s, "", ActionPrevious)
	if !s.Completed {
		t.Error("expected completion to be permanent")
	}
}

func TestEngine_PreviousAtStartIsNoOp(t *testing.T) {
	e := NewEngine(EngineOptions{})
	s := newTestSession("headache")

	if got := e.Apply(s, "ignored", ActionPrevious); got != NoOp {
		t.Fatalf("expected NoOp, got %v", got)
	}
	if got := e.Apply(s, "ignored", ActionPrevious); got != NoOp {
		t.Fatalf("expected NoOp on repeat, got %v", got)
	}
	if s.Cursor != 0 {
		t.Errorf("expected cursor 0, got %d", s.Cursor)
	}
	if len(s.Answers) != 0 {
		t.Errorf("expected previous not to record, got %v", s.Answers)
	}
}

func TestEngine_SkipOverwritesAnswer(t *testing.T) {
	e := NewEngine(EngineOptions{})
	s := newTestSession("stomach")

	if got := e.Apply(s, "Yes", ActionSkip); got != Advanced {
		t.Fatalf("expected Advanced, got %v", got)
	}
	if s.Answers["hydration"] != SkippedAnswer {
		t.Errorf("expected Skipped, got %q", s.Answers["hydration"])
	}
	if s.Cursor != 1 {
		t.Errorf("expected cursor 1, got %d", s.Cursor)
	}
}

func TestEngine_SkipKeepsInjectedBlock(t *testing.T) {
	e := NewEngine(EngineOptions{})
	s := newTestSession("stomach")
	e.Apply(s, "No", ActionNext)

	e.Apply(s, "Yes", ActionSkip)
	if s.Questions[2].ID != "food_type" {
		t.Errorf("expected food_type inserted before the skip, got %v", ids(s.Questions))
	}
	if s.Answers["recent_meal"] != SkippedAnswer {
		t.Errorf("expected Skipped, got %q", s.Answers["recent_meal"])
	}
}

func TestEngine_UnknownActionRecordsWithoutMoving(t *testing.T) {
	e := NewEngine(EngineOptions{})
	s := newTestSession("fever")

	if got := e.Apply(s, "Above 103°F", ParseAction("jump")); got != Advanced {
		t.Fatalf("expected Advanced, got %v", got)
	}
	if s.Cursor != 0 {
		t.Errorf("expected cursor 0, got %d", s.Cursor)
	}
	if s.Answers["temperature"] != "Above 103°F" {
		t.Errorf("expected answer recorded, got %q", s.Answers["temperature"])
	}
}

func TestSplice(t *testing.T) {
	qs := []Question{{ID: "a"}, {ID: "b"}}
	block := []Question{{ID: "x"}, {ID: "y"}}

	got := ids(splice(qs, 1, block))
	want := []string{"a", "x", "y", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if ids(splice(qs, 5, block))[3] != "y" {
		t.Error("expected out-of-range index to append")
	}
}
