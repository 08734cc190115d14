package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Session messages
	SessionCreatedSuccess = "session created successfully"

	// Navigation messages
	NavigationResolvedSuccess = "navigation state resolved successfully"
	NavigationAdvancedSuccess = "navigation advanced successfully"
	NavigationBackSuccess     = "navigated back successfully"
	TabSwitchedSuccess        = "active tab switched successfully"

	// Patient messages
	PatientCreatedSuccess = "patient record created successfully"
	PatientDeletedSuccess = "patient record deleted successfully"
	ProfileGetSuccess     = "get profile successfully"

	// Questionnaire messages
	QuestionnaireSubmittedSuccess = "questionnaire submitted successfully"
	StatusGetSuccess              = "get eligibility status successfully"

	// Checklist messages
	ChecklistGetSuccess       = "get checklist successfully"
	ChecklistItemPatchSuccess = "checklist item updated successfully"
	DocumentAttachedSuccess   = "document attached successfully"

	// Financial messages
	FinancialProfileGetSuccess   = "get financial profile successfully"
	FinancialDraftAcceptedNotice = "financial draft accepted"
	FinancialSubmittedSuccess    = "financial questionnaire submitted successfully"

	// Pathway messages
	PathwayGetSuccess = "get pathway successfully"

	// Referral messages
	ReferralGetSuccess = "get referral successfully"
)
