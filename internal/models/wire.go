package models

// ResearchRequest is the JSON body sent to POST /research.
type ResearchRequest struct {
	CompanyName string `json:"company_name"`
}

// ResearchResponse is the success body returned by the backend.
type ResearchResponse struct {
	Report string `json:"report"`
}

// ErrorResponse is the failure body. Detail is optional; an empty or
// undecodable body falls back to a generic message.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse is the body of the backend's health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
