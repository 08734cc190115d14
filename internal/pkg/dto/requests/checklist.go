package requests

// PatchChecklistItem updates completion and/or notes on one item. Nil
// fields are not sent to the registry.
type PatchChecklistItem struct {
	IsComplete *bool   `json:"isComplete,omitempty"`
	Notes      *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// AttachDocument registers a document reference on a checklist item. The
// document itself lives elsewhere; only the reference travels.
type AttachDocument struct {
	Title    string `json:"title,omitempty" validate:"omitempty,max=200"`
	URL      string `json:"url" validate:"required,url"`
	MimeType string `json:"mimeType,omitempty" validate:"omitempty,max=100"`
}
