package models

// ProjectType is the kind of production a project represents.
type ProjectType string

const (
	ProjectTypeShortFilm   ProjectType = "short-film"
	ProjectTypeFeatureFilm ProjectType = "feature-film"
	ProjectTypeMusicVideo  ProjectType = "music-video"
	ProjectTypeDocumentary ProjectType = "documentary"
	ProjectTypeCommercial  ProjectType = "commercial"
)

// ProjectStatus tracks where a project is in its lifecycle.
type ProjectStatus string

const (
	ProjectStatusActive     ProjectStatus = "active"
	ProjectStatusRecruiting ProjectStatus = "recruiting"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// Project is a posted production looking for collaborators. Collaborators
// and Requests are denormalized counters maintained by the services that
// mutate them; they are not derived from the request collection.
type Project struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Type          ProjectType   `json:"type"`
	Description   string        `json:"description"`
	Budget        string        `json:"budget"`
	Timeline      string        `json:"timeline"`
	LookingFor    []string      `json:"lookingFor"`
	Status        ProjectStatus `json:"status"`
	Collaborators int           `json:"collaborators"`
	Requests      int           `json:"requests"`
	Deadline      string        `json:"deadline"`
	CreatedBy     string        `json:"createdBy"`
	CreatedAt     string        `json:"createdAt"`
}

// Snapshot returns the denormalized project view stored on a request.
func (p *Project) Snapshot() *ProjectSnapshot {
	return &ProjectSnapshot{
		ID:    p.ID,
		Title: p.Title,
		Type:  string(p.Type),
	}
}

// ProjectSnapshot is the denormalized project view stored on a request.
type ProjectSnapshot struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

// CreateProjectRequest is the payload for POST /projects.
type CreateProjectRequest struct {
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Budget      string   `json:"budget"`
	Timeline    string   `json:"timeline"`
	LookingFor  []string `json:"lookingFor"`
	UserID      string   `json:"userId"`
	Deadline    string   `json:"deadline"`
}

// Validate checks the required fields for project creation.
func (r *CreateProjectRequest) Validate() error {
	if r.Title == "" {
		return &ValidationError{Field: "title", Message: "Project title is required"}
	}
	if r.Type == "" {
		return &ValidationError{Field: "type", Message: "Project type is required"}
	}
	switch ProjectType(r.Type) {
	case ProjectTypeShortFilm, ProjectTypeFeatureFilm, ProjectTypeMusicVideo,
		ProjectTypeDocumentary, ProjectTypeCommercial:
	default:
		return &ValidationError{Field: "type", Message: "Unknown project type"}
	}
	if r.Description == "" {
		return &ValidationError{Field: "description", Message: "Project description is required"}
	}
	return nil
}
