package triage

type advice struct {
	keywords        []string
	recommendations []string
	medications     []Medication
}

var adviceRules = []advice{
	{
		keywords: []string{"stomach", "abdomen"},
		recommendations: []string{
			"Stay hydrated with small sips of water",
			"Eat bland foods (BRAT diet: Bananas, Rice, Applesauce, Toast)",
			"Avoid dairy, caffeine, and fatty foods",
			"Rest and avoid strenuous activities",
		},
		medications: []Medication{
			{Name: "Antacids (Tums, Mylanta)", Purpose: "For acid reflux or indigestion"},
			{Name: "Bismuth subsalicylate (Pepto-Bismol)", Purpose: "For general stomach upset"},
			{Name: "Simethicone (Gas-X)", Purpose: "For gas and bloating"},
		},
	},
	{
		keywords: []string{"head"},
		recommendations: []string{
			"Rest in a quiet, dark room",
			"Apply cold compress to forehead",
			"Stay hydrated",
			"Practice relaxation techniques",
			"Maintain regular sleep schedule",
		},
		medications: []Medication{
			{Name: "Acetaminophen (Tylenol)", Purpose: "For mild to moderate pain"},
			{Name: "Ibuprofen (Advil, Motrin)", Purpose: "For inflammation and pain"},
			{Name: "Aspirin", Purpose: "For tension headaches"},
		},
	},
	{
		keywords: []string{"fever"},
		recommendations: []string{
			"Rest and get plenty of sleep",
			"Stay hydrated with water and electrolyte drinks",
			"Use cool compresses",
			"Wear light clothing",
			"Monitor temperature regularly",
		},
		medications: []Medication{
			{Name: "Acetaminophen (Tylenol)", Purpose: "To reduce fever"},
			{Name: "Ibuprofen (Advil, Motrin)", Purpose: "To reduce fever and body aches"},
		},
	},
	{
		keywords: []string{"cough"},
		recommendations: []string{
			"Stay hydrated to thin mucus",
			"Use a humidifier",
			"Gargle with warm salt water",
			"Avoid irritants like smoke",
			"Elevate head while sleeping",
		},
		medications: []Medication{
			{Name: "Dextromethorphan (Robitussin)", Purpose: "For dry cough"},
			{Name: "Guaifenesin (Mucinex)", Purpose: "For productive cough"},
			{Name: "Throat lozenges", Purpose: "For throat irritation"},
		},
	},
}

var fallbackAdvice = advice{
	recommendations: []string{
		"Rest and stay hydrated",
		"Keep track of how your symptoms change",
		"Consult a healthcare provider if symptoms persist or worsen",
	},
}

// Advisor maps a symptom to self-care recommendations and over-the-counter
// medications. Matching is independent of the resolved template, so
// "belly pain" gets the stomach questions but no stomach advice.
type Advisor struct {
	fallback bool
}

// NewAdvisor returns an Advisor. With fallback set, symptoms matching no
// family receive generic recommendations instead of none.
func NewAdvisor(fallback bool) *Advisor {
	return &Advisor{fallback: fallback}
}

func (a *Advisor) Advise(symptom string) ([]string, []Medication) {
	s := lower(symptom)
	for _, r := range adviceRules {
		if containsAny(s, r.keywords) {
			return clone(r.recommendations), cloneMeds(r.medications)
		}
	}
	if a.fallback {
		return clone(fallbackAdvice.recommendations), nil
	}
	return nil, nil
}

func clone(in []string) []string {
	return append([]string(nil), in...)
}

func cloneMeds(in []Medication) []Medication {
	return append([]Medication(nil), in...)
}
