package report

import (
	"regexp"
	"strings"
)

// medicalTerms is the domain vocabulary the relevance gate matches
// against: organ names, symptoms, lab values, clinical qualifiers and
// procedure names. Lowercase; matched as substrings.
var medicalTerms = []string{
	"medical", "health", "doctor", "patient", "diagnosis", "treatment", "symptoms",
	"medication", "medicine", "prescription", "test", "lab", "blood", "urine",
	"x-ray", "scan", "mri", "ct", "ultrasound", "biopsy", "surgery", "procedure",
	"condition", "disease", "illness", "infection", "pain", "fever", "cough",
	"headache", "nausea", "vomiting", "diarrhea", "constipation", "fatigue",
	"weakness", "dizziness", "chest pain", "shortness of breath", "swelling",
	"rash", "bruise", "wound", "injury", "fracture", "sprain", "strain",
	"chronic", "acute", "allergy", "asthma", "diabetes", "hypertension",
	"heart", "lung", "liver", "kidney", "brain", "cancer", "tumor",
	"report", "results", "findings", "normal", "abnormal", "elevated",
	"decreased", "positive", "negative", "high", "low", "range", "level",
	"count", "pressure", "temperature", "pulse", "heart rate", "blood pressure",
	"weight", "height", "bmi", "cholesterol", "glucose", "hemoglobin",
	"white blood cell", "red blood cell", "platelet", "protein", "albumin",
	"bilirubin", "creatinine", "bun", "sodium", "potassium", "chloride",
	"calcium", "magnesium", "phosphate", "vitamin", "mineral", "hormone",
	"thyroid", "adrenal", "pituitary", "pancreas", "gallbladder", "spleen",
	"lymph node", "immune", "antibody", "antigen", "vaccine", "immunization",
	"pregnancy", "obstetric", "gynecologic", "menstrual", "fertility",
	"pediatric", "geriatric", "psychiatric", "mental", "depression", "anxiety",
	"stress", "sleep", "appetite", "digestion", "metabolism",
	"endocrine", "neurological", "spinal", "nervous",
	"musculoskeletal", "joint", "bone", "muscle", "tendon", "ligament",
	"skin", "dermatological", "dental", "oral", "ophthalmic", "eye",
	"ear", "nose", "throat", "respiratory", "cardiovascular", "gastrointestinal",
	"genitourinary", "reproductive", "oncology", "radiology", "pathology",
	"pharmacy", "pharmacology", "therapeutic", "dosage", "side effect",
	"interaction", "contraindication", "precaution", "monitoring", "follow-up",
	"prognosis", "outcome", "recovery", "rehabilitation", "therapy", "counseling",
}

// Gate is a precision-low, recall-high lexical filter that blocks
// obviously off-topic queries before any retrieval or generation cost
// is spent. Vocabulary substring match short-circuits first; failing
// that, interrogative patterns over the same vocabulary are tried.
type Gate struct {
	terms    []string
	patterns []*regexp.Regexp
}

func NewGate() *Gate {
	quoted := make([]string, len(medicalTerms))
	for i, term := range medicalTerms {
		quoted[i] = regexp.QuoteMeta(term)
	}
	alternation := strings.Join(quoted, "|")

	return &Gate{
		terms: medicalTerms,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(what|how|why|when|where)\b.*\b(?:` + alternation + `)\b`),
			regexp.MustCompile(`\b(explain|describe|tell me about|what does|what is|what are|how do|how does|why do|why does|when do|when does|where do|where does)\b.*\b(?:` + alternation + `)\b`),
		},
	}
}

// IsMedicalQuery reports whether the query looks medical. Matching is
// case-insensitive and deterministic.
func (g *Gate) IsMedicalQuery(query string) bool {
	q := strings.ToLower(query)

	for _, term := range g.terms {
		if strings.Contains(q, term) {
			return true
		}
	}

	for _, pattern := range g.patterns {
		if pattern.MatchString(q) {
			return true
		}
	}

	return false
}
