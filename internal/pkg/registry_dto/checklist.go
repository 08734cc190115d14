package registry_dto

// DocumentReference points at a document held elsewhere; the navigator
// never moves file bytes, only references.
type DocumentReference struct {
	ID       string `json:"id"`
	Title    string `json:"title,omitempty"`
	URL      string `json:"url"`
	MimeType string `json:"mimeType,omitempty"`
}

// ChecklistItem is one evaluation task. Order values are strictly
// increasing but may be sparse. CompletedAt is present iff IsComplete.
type ChecklistItem struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Order       int                 `json:"order"`
	IsComplete  bool                `json:"isComplete"`
	CompletedAt string              `json:"completedAt,omitempty"`
	Notes       string              `json:"notes,omitempty"`
	Documents   []DocumentReference `json:"documents,omitempty"`
}

// TransplantChecklist is the patient's evaluation checklist resource.
type TransplantChecklist struct {
	ID        string          `json:"id,omitempty"`
	PatientID string          `json:"patientId"`
	Items     []ChecklistItem `json:"items"`
	UpdatedAt string          `json:"updatedAt,omitempty"`
}

// ChecklistItemPatch is a partial item update. Nil fields are left
// untouched by the registry.
type ChecklistItemPatch struct {
	IsComplete *bool   `json:"isComplete,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}
