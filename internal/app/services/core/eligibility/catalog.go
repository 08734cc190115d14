package eligibility

// QuestionCategory tags a catalog question by contraindication severity.
type QuestionCategory string

const (
	CategoryAbsolute QuestionCategory = "absolute"
	CategoryRelative QuestionCategory = "relative"
)

// QuestionDefinition is one entry of the static questionnaire catalog.
type QuestionDefinition struct {
	ID       string
	Category QuestionCategory
	Text     string
}

// Catalog is the fixed medical-eligibility question set. Order here is
// the display and finding order; it never changes at runtime.
var Catalog = []QuestionDefinition{
	{ID: "active_malignancy", Category: CategoryAbsolute, Text: "Do you currently have an active, untreated cancer?"},
	{ID: "severe_heart_failure", Category: CategoryAbsolute, Text: "Have you been diagnosed with severe heart failure that is not under control?"},
	{ID: "active_systemic_infection", Category: CategoryAbsolute, Text: "Do you currently have an active, untreated systemic infection?"},
	{ID: "severe_lung_disease", Category: CategoryAbsolute, Text: "Do you have severe lung disease requiring continuous oxygen?"},
	{ID: "active_substance_use", Category: CategoryAbsolute, Text: "Have you used recreational drugs or alcohol heavily in the past six months?"},
	{ID: "untreated_mental_illness", Category: CategoryAbsolute, Text: "Do you have a severe psychiatric condition that is currently untreated?"},
	{ID: "smoking_current", Category: CategoryRelative, Text: "Do you currently smoke or vape nicotine products?"},
	{ID: "bmi_over_40", Category: CategoryRelative, Text: "Is your body mass index above 40?"},
	{ID: "uncontrolled_diabetes", Category: CategoryRelative, Text: "Is your diabetes currently poorly controlled?"},
	{ID: "age_over_75", Category: CategoryRelative, Text: "Are you over 75 years old?"},
	{ID: "prior_transplant", Category: CategoryRelative, Text: "Have you previously received an organ transplant?"},
	{ID: "limited_support_network", Category: CategoryRelative, Text: "Would you have difficulty arranging help at home after surgery?"},
}
