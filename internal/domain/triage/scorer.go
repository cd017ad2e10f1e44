package triage

import "strings"

// NotAnswered stands in for questions with no recorded answer.
const NotAnswered = "Not answered"

// Substrings that mark an answer as high risk. "10" also matches any
// answer containing the digits, e.g. "10 (Unbearable)".
var riskTriggers = []string{"yes", "severe", "more than 3 days", "above 103", "7-9", "10"}

const (
	highRiskThreshold     = 15
	moderateRiskThreshold = 8
)

const (
	UrgencyImmediate = "Seek immediate medical attention"
	UrgencyWithinDay = "Consult a doctor within 24 hours"
	UrgencyMonitor   = "Monitor symptoms, see doctor if worsens"
)

// Score sums the weight points of every high-risk answer over the current
// question list, including inserted follow-ups.
func Score(s *Session) int {
	score := 0
	for _, q := range s.Questions {
		if isHighRisk(answerFor(s, q.ID)) {
			score += q.Weight.Points()
		}
	}
	return score
}

// Classify maps a risk score to its tier and urgency text.
func Classify(score int) (Severity, string) {
	switch {
	case score >= highRiskThreshold:
		return SeverityHigh, UrgencyImmediate
	case score >= moderateRiskThreshold:
		return SeverityModerate, UrgencyWithinDay
	default:
		return SeverityLow, UrgencyMonitor
	}
}

func isHighRisk(answer string) bool {
	a := lower(answer)
	for _, t := range riskTriggers {
		if strings.Contains(a, t) {
			return true
		}
	}
	return false
}

func answerFor(s *Session, questionID string) string {
	if a, ok := s.Answers[questionID]; ok {
		return a
	}
	return NotAnswered
}
