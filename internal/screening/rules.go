// Package screening implements the rule-based condition screen applied
// to uploaded patient rows.
package screening

import "strings"

// Condition names produced by the screen.
const (
	HeartDisease = "Heart Disease"
	Diabetes     = "Diabetes"
	Asthma       = "Asthma"
	Hypertension = "Hypertension"

	// NoFindings is stored when no rule matches.
	NoFindings = "None"
)

// predictionSeparator joins multiple conditions in a stored prediction.
const predictionSeparator = ", "

// Metrics holds the vitals evaluated by the rule set. Missing values
// default to zero, which no rule treats as pathological.
type Metrics struct {
	Age           int
	BMI           float64
	Cholesterol   float64
	BloodPressure float64
}

// Evaluate runs every rule against the metrics and returns the matched
// conditions in rule order. An empty slice means no findings.
func Evaluate(m Metrics) []string {
	var conditions []string

	if m.Age > 50 && m.Cholesterol > 240 {
		conditions = append(conditions, HeartDisease)
	}
	if m.BMI > 30 {
		conditions = append(conditions, Diabetes)
	}
	if m.Age < 30 && m.BMI > 0 && m.BMI < 18 {
		conditions = append(conditions, Asthma)
	}
	if m.BloodPressure > 140 {
		conditions = append(conditions, Hypertension)
	}

	return conditions
}

// Predict returns the stored prediction string for the metrics:
// matched conditions joined with ", ", or "None".
func Predict(m Metrics) string {
	conditions := Evaluate(m)
	if len(conditions) == 0 {
		return NoFindings
	}
	return strings.Join(conditions, predictionSeparator)
}

// Split breaks a stored prediction back into its individual conditions.
func Split(prediction string) []string {
	return strings.Split(prediction, predictionSeparator)
}

// Distribution counts how often each condition appears across the given
// predictions. Multi-condition predictions count once per condition.
func Distribution(predictions []string) map[string]int {
	counts := map[string]int{
		HeartDisease: 0,
		Asthma:       0,
		Diabetes:     0,
		Hypertension: 0,
		NoFindings:   0,
	}
	for _, p := range predictions {
		for _, condition := range Split(p) {
			counts[condition]++
		}
	}
	return counts
}
