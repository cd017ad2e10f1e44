package triage

import "time"

const Disclaimer = "This assessment is for informational purposes only and does not replace " +
	"professional medical advice. Please consult a healthcare provider for proper diagnosis and treatment."

// AssessmentDateLayout formats Report.AssessmentDate.
const AssessmentDateLayout = "2006-01-02 15:04"

// Assemble builds a report from the session's current state. It does not
// modify the session; the caller must hold the session lock.
func Assemble(s *Session, advisor *Advisor, now time.Time) *Report {
	score := Score(s)
	severity, urgency := Classify(score)
	recs, meds := advisor.Advise(s.Symptom)

	answers := make(map[string]string, len(s.Answers))
	answered := 0
	for id, a := range s.Answers {
		answers[id] = a
		if a != SkippedAnswer {
			answered++
		}
	}

	detailed := make([]DetailedAnswer, 0, len(s.Questions))
	for _, q := range s.Questions {
		detailed = append(detailed, DetailedAnswer{
			QuestionText: q.Text,
			Answer:       answerFor(s, q.ID),
			Weight:       q.Weight,
		})
	}

	return &Report{
		SessionID:            s.ID,
		Symptom:              s.Symptom,
		Description:          s.Description,
		AssessmentDate:       now.Format(AssessmentDateLayout),
		QuestionsAnswered:    answered,
		TotalQuestions:       len(s.Questions),
		Severity:             severity,
		Urgency:              urgency,
		RiskScore:            score,
		Recommendations:      recs,
		SuggestedMedications: meds,
		Answers:              answers,
		DetailedAnswers:      detailed,
		Disclaimer:           Disclaimer,
	}
}
