package triage

var defaultOptions = []string{"Yes", "No"}

// Project returns the view of the question under the cursor, or nil once
// the session is complete or the cursor has run off the end.
func Project(s *Session) *QuestionView {
	if s.Completed || s.Cursor >= len(s.Questions) {
		return nil
	}
	q := s.Questions[s.Cursor]
	opts := q.Options
	if len(opts) == 0 {
		opts = defaultOptions
	}
	current := s.Cursor + 1
	total := len(s.Questions)
	return &QuestionView{
		Text:     q.Text,
		Type:     q.Type,
		Options:  append([]string(nil), opts...),
		Current:  current,
		Total:    total,
		Progress: float64(current) / float64(total) * 100,
	}
}
