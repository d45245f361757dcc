package disease

import "github.com/Anuj-165/SCAN2HEAL/internal/models"

// DefaultRecommendation is reported for disease identifiers that carry no
// recommendation rule. Unknown identifiers fall through to this instead of
// erroring; callers detect it as a sentinel.
const DefaultRecommendation = "No recommendation available."

func detailValue(details map[string]models.ThresholdDetail, name string) *float64 {
	if d, ok := details[name]; ok {
		return d.Value
	}
	return nil
}

func recommendDiabetes(details map[string]models.ThresholdDetail) (string, []string) {
	recommendation := DefaultRecommendation
	if v := detailValue(details, "HbA1c"); v != nil {
		switch {
		case *v >= 8.0:
			recommendation = "HbA1c is critically high. Medicine and doctor consultation strongly recommended."
		case *v >= 6.5:
			recommendation = "HbA1c indicates diabetes. Lifestyle changes and monitoring advised."
		case *v >= 5.7:
			recommendation = "Prediabetic range. Maintain healthy habits and retest in 3 months."
		default:
			recommendation = "HbA1c is normal. Continue your healthy lifestyle."
		}
	}
	return recommendation, []string{
		"Lifestyle changes: diet, regular exercise, and weight control.",
		"Doctors may prescribe medications such as Metformin.",
		"Regular glucose and HbA1c monitoring is advised.",
	}
}

func recommendDengue(details map[string]models.ThresholdDetail) (string, []string) {
	recommendation := "Dengue infection detected. Monitor symptoms closely and stay hydrated."
	if v := detailValue(details, "Platelets"); v != nil && *v < 100000 {
		recommendation = "Low platelet count. Hospitalization may be required."
	}
	return recommendation, []string{
		"Drink plenty of fluids and rest.",
		"Doctors may recommend paracetamol for fever.",
		"Avoid NSAIDs like ibuprofen due to bleeding risk.",
		"Monitor platelet count regularly.",
	}
}

func recommendHeart(details map[string]models.ThresholdDetail) (string, []string) {
	recommendation := "Monitor heart function and consult a doctor for detailed evaluation."
	if v := detailValue(details, "EF"); v != nil && *v < 55 {
		recommendation = "Low ejection fraction. Cardiologist consultation is highly recommended."
	}
	return recommendation, []string{
		"Cardiologist may suggest lifestyle changes and stress management.",
		"Treatments may include beta blockers or ACE inhibitors.",
		"Further tests like ECG or Echo may be required.",
	}
}

func recommendKidney(details map[string]models.ThresholdDetail) (string, []string) {
	recommendation := "Kidney parameters appear within normal limits."
	if v := detailValue(details, "Creatinine"); v != nil && *v > 1.3 {
		recommendation = "Elevated creatinine level. Possible kidney dysfunction. Doctor visit advised."
	}
	return recommendation, []string{
		"Maintain hydration and monitor blood pressure.",
		"Limit salt and protein intake if advised.",
		"Consult nephrologist for abnormal creatinine or urea.",
	}
}

func recommendLiver(details map[string]models.ThresholdDetail) (string, []string) {
	recommendation := "Liver parameters appear okay. Keep a healthy lifestyle."
	if v := detailValue(details, "Total Bilirubin"); v != nil && *v > 1.2 {
		recommendation = "Elevated bilirubin. Possible liver dysfunction. Consultation recommended."
	}
	return recommendation, []string{
		"Avoid alcohol and fatty foods.",
		"Monitor medications affecting liver.",
		"Follow up with LFT (Liver Function Tests) if needed.",
	}
}
