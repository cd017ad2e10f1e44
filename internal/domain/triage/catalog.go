package triage

func yesNo(id, text string, w Weight) Question {
	return Question{ID: id, Text: text, Type: TypeYesNo, Options: []string{"Yes", "No"}, Weight: w}
}

func choice(id, text string, w Weight, opts ...string) Question {
	return Question{ID: id, Text: text, Type: TypeChoice, Options: opts, Weight: w}
}

func scale(id, text string, w Weight, opts ...string) Question {
	return Question{ID: id, Text: text, Type: TypeScale, Options: opts, Weight: w}
}

var stomachTemplate = &Template{
	Family: FamilyStomach,
	Questions: []Question{
		yesNo("hydration", "Did you drink enough water today (at least 6-8 glasses)?", WeightHigh),
		yesNo("recent_meal", "Did you eat anything unusual or outside food in the last 24 hours?", WeightHigh),
		choice("pain_location", "Is the pain in your upper abdomen or lower abdomen?", WeightHigh,
			"Upper abdomen", "Lower abdomen", "All over", "Around belly button"),
		choice("pain_type", "How would you describe the pain?", WeightMedium,
			"Sharp/Stabbing", "Dull/Aching", "Cramping", "Burning"),
		yesNo("nausea", "Are you experiencing nausea or have you vomited?", WeightHigh),
		yesNo("bowel_movement", "Have you had normal bowel movements today?", WeightMedium),
		yesNo("fever", "Do you have a fever or feel feverish?", WeightHigh),
		yesNo("exercise", "Were you involved in any strenuous exercise in the last couple of days?", WeightLow),
		yesNo("stress", "Have you been under unusual stress lately?", WeightMedium),
		yesNo("medication", "Have you taken any medication for this pain?", WeightMedium),
		choice("duration", "How long have you been experiencing this pain?", WeightHigh,
			"Less than 1 hour", "1-3 hours", "3-6 hours", "More than 6 hours"),
		scale("severity", "On a scale of 1-10, how severe is your pain?", WeightHigh,
			"1-3 (Mild)", "4-6 (Moderate)", "7-9 (Severe)", "10 (Unbearable)"),
	},
	Conditionals: map[string]map[string][]Question{
		"nausea": {
			"yes": {
				choice("vomit_frequency", "How many times have you vomited?", WeightHigh,
					"Once", "2-3 times", "More than 3 times", "Just nauseous, no vomiting"),
			},
		},
		"recent_meal": {
			"yes": {
				choice("food_type", "What type of food did you eat?", WeightMedium,
					"Street food", "Restaurant food", "Home-cooked but unusual", "Dairy products"),
			},
		},
	},
}

var headacheTemplate = &Template{
	Family: FamilyHeadache,
	Questions: []Question{
		choice("location", "Where exactly is your headache located?", WeightHigh,
			"Forehead", "Temples", "Back of head", "One side only", "Entire head"),
		choice("pain_type", "How would you describe the pain?", WeightHigh,
			"Throbbing/Pulsating", "Constant pressure", "Sharp/Stabbing", "Dull ache"),
		choice("triggers", "Did anything specific trigger this headache?", WeightMedium,
			"Stress", "Lack of sleep", "Bright lights", "Loud noise", "Not sure"),
		yesNo("light_sensitivity", "Are you sensitive to light right now?", WeightHigh),
		yesNo("sound_sensitivity", "Are you sensitive to sound right now?", WeightHigh),
		yesNo("nausea", "Do you feel nauseous?", WeightHigh),
		yesNo("vision", "Are you experiencing any vision changes (blurriness, spots, auras)?", WeightHigh),
		choice("frequency", "How often do you get headaches?", WeightMedium,
			"Rarely", "Once a month", "Weekly", "Daily"),
		yesNo("hydration", "Have you been drinking enough water today?", WeightMedium),
		choice("sleep", "How many hours did you sleep last night?", WeightMedium,
			"Less than 4", "4-6 hours", "6-8 hours", "More than 8"),
		yesNo("screen_time", "Have you been looking at screens for extended periods today?", WeightLow),
		yesNo("medication", "Have you taken any pain medication?", WeightMedium),
	},
	Conditionals: map[string]map[string][]Question{
		"medication": {
			"yes": {
				choice("med_effect", "Did the medication help?", WeightHigh,
					"Yes, completely", "Partially", "Not at all", "Made it worse"),
			},
		},
	},
}

var feverTemplate = &Template{
	Family: FamilyFever,
	Questions: []Question{
		choice("temperature", "What is your current temperature?", WeightHigh,
			"98-99°F", "100-101°F", "102-103°F", "Above 103°F", "Don't know"),
		choice("duration", "How long have you had this fever?", WeightHigh,
			"Just started", "Few hours", "1 day", "2-3 days", "More than 3 days"),
		yesNo("chills", "Are you experiencing chills or shivering?", WeightHigh),
		yesNo("sweating", "Are you sweating excessively?", WeightMedium),
		yesNo("body_ache", "Do you have body aches or muscle pain?", WeightHigh),
		yesNo("throat", "Do you have a sore throat?", WeightHigh),
		yesNo("cough", "Do you have a cough?", WeightHigh),
		yesNo("appetite", "Have you lost your appetite?", WeightMedium),
		yesNo("fatigue", "Are you feeling unusually tired or weak?", WeightHigh),
		yesNo("exposure", "Have you been exposed to anyone who was sick recently?", WeightMedium),
	},
	Conditionals: map[string]map[string][]Question{
		"cough": {
			"yes": {
				choice("cough_type", "Is your cough dry or producing phlegm?", WeightHigh,
					"Dry cough", "With phlegm", "Both"),
			},
		},
	},
}

var coughTemplate = &Template{
	Family: FamilyCough,
	Questions: []Question{
		choice("cough_type", "Is your cough dry or producing phlegm/mucus?", WeightHigh,
			"Dry cough", "With clear phlegm", "With colored phlegm", "With blood"),
		choice("duration", "How long have you been coughing?", WeightHigh,
			"Just started", "2-3 days", "1 week", "2 weeks", "More than 2 weeks"),
		choice("frequency", "How often are you coughing?", WeightMedium,
			"Occasionally", "Frequently", "Constant", "Only at night", "Only in morning"),
		yesNo("chest_pain", "Do you have chest pain when coughing?", WeightHigh),
		yesNo("breathing", "Are you experiencing shortness of breath?", WeightHigh),
		yesNo("wheezing", "Do you hear wheezing when breathing?", WeightHigh),
		yesNo("fever", "Do you have a fever?", WeightHigh),
		yesNo("smoking", "Do you smoke or have you been exposed to smoke?", WeightMedium),
		yesNo("allergies", "Do you have known allergies?", WeightMedium),
		yesNo("environment", "Have you been exposed to dust, chemicals, or irritants?", WeightMedium),
	},
}

// Catalog returns every template in resolver priority order.
func Catalog() []*Template {
	return []*Template{stomachTemplate, headacheTemplate, feverTemplate, coughTemplate}
}
