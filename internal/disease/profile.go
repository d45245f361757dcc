// Package disease holds the static per-disease configuration: which
// parameters each classifier expects, the textual aliases those parameters
// appear under in report text, the clinical reference ranges, and the
// recommendation rules. Everything here is data so tests can enumerate the
// exact alias and threshold tables; adding a disease means adding one Profile.
package disease

import (
	"math"

	"github.com/Anuj-165/SCAN2HEAL/internal/models"
)

// Band is one named inclusive range, e.g. ok / prediabetes / abnormal.
type Band struct {
	Name models.ParamStatus
	Low  float64
	High float64
}

// ParamThreshold is the reference definition for one clinical parameter.
// Either Ranges is set (named bands, evaluated in declared order) or Min/Max
// bound a single acceptable interval. Serology markers report "positive"
// instead of "ok" when in range: for IgM/IgG presence is the finding, there
// is no normal reference interval.
type ParamThreshold struct {
	Name     string
	Aliases  []string
	Ranges   []Band
	Min      *float64
	Max      *float64
	Serology bool
}

// RecommendFunc derives the human-readable recommendation and treatment list
// from the evaluated threshold details.
type RecommendFunc func(details map[string]models.ThresholdDetail) (string, []string)

// Profile bundles everything the pipeline needs to know about one disease.
type Profile struct {
	Name string

	// Classifier training inputs.
	DatasetFile  string
	TargetColumn string
	// TargetLabels maps textual target values to {0,1}. Nil means the
	// target is already numeric (a {1,2} coding is normalized by the
	// dataset loader).
	TargetLabels map[string]int

	// Synonyms maps each classifier feature column to the labels it may
	// appear under in free-form report text. The first alias that matches
	// wins; validation requires the key set to equal the dataset's
	// feature columns exactly.
	Synonyms map[string][]string

	Thresholds []ParamThreshold
	Recommend  RecommendFunc
}

func fptr(v float64) *float64 { return &v }

var profiles = map[string]Profile{
	"diabetes": {
		Name:         "diabetes",
		DatasetFile:  "diabetes.csv",
		TargetColumn: "Outcome",
		Synonyms: map[string][]string{
			"Pregnancies":              {"Pregnancies"},
			"Glucose":                  {"Glucose", "RBS", "Random Blood Sugar", "Blood Sugar"},
			"BloodPressure":            {"BloodPressure", "BP"},
			"SkinThickness":            {"SkinThickness"},
			"Insulin":                  {"Insulin"},
			"BMI":                      {"BMI"},
			"DiabetesPedigreeFunction": {"DiabetesPedigreeFunction"},
			"Age":                      {"Age"},
		},
		Thresholds: []ParamThreshold{
			{
				Name:    "FBS",
				Aliases: []string{"FBS", "Fasting Blood Sugar", "Fasting Glucose", "GLUCOSE, FASTING", "Glucose Fasting"},
				Ranges: []Band{
					{Name: models.StatusOK, Low: 0, High: 99},
					{Name: models.StatusPrediabetes, Low: 100, High: 125},
					{Name: models.StatusAbnormal, Low: 126, High: math.Inf(1)},
				},
			},
			{
				Name:    "HbA1c",
				Aliases: []string{"HbA1c", "A1C", "Glycated Hemoglobin", "GLYCOSYLATED HEMOGLOBIN"},
				Ranges: []Band{
					{Name: models.StatusOK, Low: 0, High: 5.6},
					{Name: models.StatusPrediabetes, Low: 5.7, High: 6.4},
					{Name: models.StatusAbnormal, Low: 6.5, High: math.Inf(1)},
				},
			},
			{
				Name:    "Glucose",
				Aliases: []string{"Glucose", "RBS", "Random Blood Sugar", "Blood Sugar"},
				Ranges: []Band{
					{Name: models.StatusOK, Low: 0, High: 99},
					{Name: models.StatusPrediabetes, Low: 100, High: 125},
					{Name: models.StatusAbnormal, Low: 126, High: math.Inf(1)},
				},
			},
		},
		Recommend: recommendDiabetes,
	},
	"kidney": {
		Name:         "kidney",
		DatasetFile:  "kidney_disease.csv",
		TargetColumn: "classification",
		TargetLabels: map[string]int{"ckd": 1, "notckd": 0},
		Synonyms: map[string][]string{
			"age":   {"Age"},
			"bp":    {"BP", "Blood Pressure"},
			"sg":    {"Specific Gravity", "SG"},
			"al":    {"Albumin"},
			"su":    {"Sugar"},
			"rbc":   {"RBC"},
			"pc":    {"Pus Cells"},
			"pcc":   {"Pus Cell Clumps"},
			"ba":    {"Bacteria"},
			"bgr":   {"Blood Glucose Random", "BGR"},
			"bu":    {"Blood Urea", "BU"},
			"sc":    {"Serum Creatinine", "SC"},
			"sod":   {"Sodium", "Na+"},
			"pot":   {"Potassium", "K+"},
			"hemo":  {"Hemoglobin", "HGB", "HB"},
			"pcv":   {"Packed Cell Volume", "PCV"},
			"wc":    {"WBC Count", "WC"},
			"rc":    {"RBC Count", "RC"},
			"htn":   {"Hypertension", "HTN"},
			"dm":    {"Diabetes Mellitus", "DM"},
			"cad":   {"Coronary Artery Disease", "CAD"},
			"appet": {"Appetite"},
			"pe":    {"Pedal Edema", "PE"},
			"ane":   {"Anemia"},
		},
		Thresholds: []ParamThreshold{
			{Name: "Creatinine", Aliases: []string{"Creatinine", "Serum Creatinine"}, Max: fptr(1.3)},
			{Name: "Urea", Aliases: []string{"Urea", "Blood Urea"}, Max: fptr(43)},
			{Name: "Sodium", Aliases: []string{"Sodium", "Na+"}, Min: fptr(135), Max: fptr(145)},
			{Name: "Potassium", Aliases: []string{"Potassium", "K+"}, Max: fptr(5.0)},
		},
		Recommend: recommendKidney,
	},
	"liver": {
		Name:         "liver",
		DatasetFile:  "indian_liver_patient.csv",
		TargetColumn: "Dataset",
		Synonyms: map[string][]string{
			"Age":                        {"Age"},
			"Gender":                     {"Sex", "Gender"},
			"Total_Bilirubin":            {"Total Bilirubin", "Bilirubin Total", "SERUM BILIRUBIN (TOTAL)"},
			"Direct_Bilirubin":           {"Direct Bilirubin", "Bilirubin Direct", "SERUM BILIRUBIN (DIRECT)"},
			"Alkaline_Phosphotase":       {"Alkaline Phosphatase", "ALK PHOS", "ALP"},
			"Alamine_Aminotransferase":   {"ALT", "SGPT", "ALT (SGPT)"},
			"Aspartate_Aminotransferase": {"AST", "SGOT"},
			"Total_Protiens":             {"Total Protein", "TP"},
			"Albumin":                    {"Albumin", "ALB"},
			"Albumin_and_Globulin_Ratio": {"A/G", "AG Ratio", "Albumin/Globulin Ratio", "(A/G)Ratio"},
		},
		Thresholds: []ParamThreshold{
			{Name: "Total Bilirubin", Aliases: []string{"Total Bilirubin", "Bilirubin Total"}, Max: fptr(1.2)},
			{Name: "Direct Bilirubin", Aliases: []string{"Direct Bilirubin", "Bilirubin Direct"}, Max: fptr(0.2)},
			{Name: "AST", Aliases: []string{"AST", "SGOT"}, Max: fptr(35)},
			{Name: "ALT", Aliases: []string{"ALT", "SGPT"}, Max: fptr(45)},
			{Name: "Alkaline Phosphatase", Aliases: []string{"Alkaline Phosphatase", "ALP"}, Min: fptr(40), Max: fptr(129)},
		},
		Recommend: recommendLiver,
	},
	"heart": {
		Name:         "heart",
		DatasetFile:  "heart.csv",
		TargetColumn: "target",
		Synonyms: map[string][]string{
			"age":      {"Age"},
			"sex":      {"Sex", "Gender"},
			"cp":       {"Chest Pain Type", "CP"},
			"trestbps": {"Resting Blood Pressure", "Resting BP", "TRESTBPS"},
			"chol":     {"Cholesterol", "Serum Cholesterol", "CHOL"},
			"fbs":      {"Fasting Blood Sugar", "FBS"},
			"restecg":  {"Resting ECG", "RESTECG"},
			"thalach":  {"Max Heart Rate", "THALACH"},
			"exang":    {"Exercise Induced Angina", "EXANG"},
			"oldpeak":  {"ST Depression", "Oldpeak"},
			"slope":    {"ST Slope", "Slope"},
			"ca":       {"Major Vessels", "CA"},
			"thal":     {"Thalassemia", "THAL"},
		},
		Thresholds: []ParamThreshold{
			{Name: "EF", Aliases: []string{"EF", "Ejection Fraction"}, Min: fptr(55)},
			{Name: "PASP", Aliases: []string{"PASP"}, Max: fptr(35)},
			{Name: "Peak TR Velocity", Aliases: []string{"Peak TR Velocity"}, Max: fptr(2.8)},
		},
		Recommend: recommendHeart,
	},
	"dengue": {
		Name:         "dengue",
		DatasetFile:  "dengue.csv",
		TargetColumn: "Final Output",
		Synonyms: map[string][]string{
			"WBC":        {"WBC Count", "White Blood Cells"},
			"Platelets":  {"Platelet Count", "Platelets"},
			"Hemoglobin": {"Hemoglobin", "Hb", "HGB"},
			"RBC":        {"RBC Count", "RBC"},
			"HCT":        {"Hematocrit", "HCT"},
			"NS1":        {"NS1 Antigen"},
			"IgM":        {"IgM", "DENGUE IgM"},
			"IgG":        {"IgG", "DENGUE IgG"},
		},
		Thresholds: []ParamThreshold{
			{Name: "WBC", Aliases: []string{"WBC", "WBC Count"}, Min: fptr(4000), Max: fptr(11000)},
			{Name: "Platelets", Aliases: []string{"Platelet Count", "Platelets"}, Min: fptr(150000)},
			{Name: "IgM", Aliases: []string{"IgM", "DENGUE FEVER ANTIBODY, IgM"}, Min: fptr(1.1), Serology: true},
			{Name: "IgG", Aliases: []string{"IgG", "DENGUE FEVER ANTIBODY, IgG"}, Min: fptr(2.2), Serology: true},
		},
		Recommend: recommendDengue,
	},
}

// Get returns the profile for a disease identifier (case handled by caller).
func Get(name string) (Profile, bool) {
	p, ok := profiles[name]
	return p, ok
}

// Names lists the supported disease identifiers in a stable order.
func Names() []string {
	return []string{"diabetes", "heart", "liver", "kidney", "dengue"}
}
