package triage

import "strings"

type familyRule struct {
	template *Template
	keywords []string
}

// Checked in order; the first rule with a matching keyword wins.
var resolverRules = []familyRule{
	{stomachTemplate, []string{"stomach", "belly", "abdomen", "tummy", "digestive", "gastric"}},
	{headacheTemplate, []string{"head", "headache", "migraine", "temple"}},
	{feverTemplate, []string{"fever", "temperature", "hot", "feverish"}},
	{coughTemplate, []string{"cough", "coughing", "throat", "respiratory"}},
}

// Resolve picks the template for a free-text symptom by case-insensitive
// substring match. Unrecognised or empty input falls back to stomach.
func Resolve(symptom string) *Template {
	s := lower(symptom)
	for _, r := range resolverRules {
		if containsAny(s, r.keywords) {
			return r.template
		}
	}
	return stomachTemplate
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func lower(s string) string { return strings.ToLower(s) }
