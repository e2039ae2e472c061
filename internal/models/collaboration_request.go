package models

// RequestStatus is the lifecycle state of a collaboration request.
// Pending is the initial state; accepted and declined are terminal.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusDeclined RequestStatus = "declined"
)

// RequestDirection tags a request relative to the viewing user.
type RequestDirection string

const (
	RequestDirectionSent     RequestDirection = "sent"
	RequestDirectionReceived RequestDirection = "received"
)

// CollaborationRequest links a collaborator to a project. Requests are never
// deleted; resolved requests persist with their terminal status. The
// Collaborator and Project snapshots are captured at creation time.
type CollaborationRequest struct {
	ID             string                `json:"id"`
	ProjectID      string                `json:"projectId"`
	CollaboratorID string                `json:"collaboratorId"`
	Message        string                `json:"message"`
	Status         RequestStatus         `json:"status"`
	CreatedAt      string                `json:"createdAt"`
	Collaborator   *CollaboratorSnapshot `json:"collaborator,omitempty"`
	Project        *ProjectSnapshot      `json:"project,omitempty"`
	Type           RequestDirection      `json:"type,omitempty"`

	// Fields below are filled by the request generator.
	Skills            []string           `json:"skills,omitempty"`
	Availability      Availability       `json:"availability,omitempty"`
	InterestLevel     int                `json:"interestLevel,omitempty"`
	EstimatedHours    int                `json:"estimatedHours,omitempty"`
	EnhancedPortfolio *EnhancedPortfolio `json:"enhancedPortfolio,omitempty"`
}

// IsPending reports whether the request may still transition.
func (r *CollaborationRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}

// EnhancedPortfolio is a structured summary of a collaborator's prior work,
// produced either by the generative matcher or by the template fallback.
type EnhancedPortfolio struct {
	Projects              []PortfolioProject `json:"projects"`
	Specialties           []string           `json:"specialties"`
	Equipment             []string           `json:"equipment"`
	NotableCollaborations []string           `json:"notable_collaborations"`
	YearsExperience       int                `json:"years_experience"`
	Education             string             `json:"education"`
}

// PortfolioProject is a single past-work entry in an enhanced portfolio.
type PortfolioProject struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Year        int    `json:"year"`
	Category    string `json:"category"`
	Role        string `json:"role"`
	Status      string `json:"status"`
}

// CreateCollaborationRequest is the payload for POST /collaboration-requests.
type CreateCollaborationRequest struct {
	ProjectID      string `json:"projectId"`
	CollaboratorID string `json:"collaboratorId"`
	Message        string `json:"message"`
}

// Validate checks the required fields for request creation.
func (r *CreateCollaborationRequest) Validate() error {
	if r.ProjectID == "" {
		return &ValidationError{Field: "projectId", Message: "Project ID is required"}
	}
	if r.CollaboratorID == "" {
		return &ValidationError{Field: "collaboratorId", Message: "Collaborator ID is required"}
	}
	if r.Message == "" {
		return &ValidationError{Field: "message", Message: "Message is required"}
	}
	return nil
}
