package dto

// PageRequest pagination for listings.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage applies defaults when Limit/Offset are zero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse page metadata on list responses.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// EligibilityErrorResponse HTTP error body for business-rule refusals.
// Carries the machine-readable code plus everything a client needs to explain
// the refusal without recomputing rules: completion and missing field labels.
type EligibilityErrorResponse struct {
	Code          string   `json:"code"`
	Message       string   `json:"message"`
	Completion    int      `json:"completion"`
	MissingFields []string `json:"missing_fields,omitempty"`
}
