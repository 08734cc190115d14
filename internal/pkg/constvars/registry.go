package constvars

// Resource path segments on the transplant registry service.
const (
	ResourcePatients         = "/patients"
	ResourceQuestionnaire    = "/questionnaire"
	ResourceStatus           = "/status"
	ResourceChecklist        = "/checklist"
	ResourceChecklistItems   = "/checklist/items"
	ResourceDocuments        = "/documents"
	ResourceFinancialProfile = "/financial-profile"
	ResourceReferral         = "/referral"
)

const (
	RegistryEntityPatient          = "Patient"
	RegistryEntityQuestionnaire    = "QuestionnaireSubmission"
	RegistryEntityStatus           = "StatusSummary"
	RegistryEntityChecklist        = "TransplantChecklist"
	RegistryEntityFinancialProfile = "FinancialProfile"
	RegistryEntityReferral         = "ReferralState"
)
