package models

// Availability describes whether a collaborator can take on new work.
type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityBusy        Availability = "busy"
	AvailabilityUnavailable Availability = "unavailable"
)

// Collaborator is the canonical profile record. External profile shapes are
// adapted into this type at the repository boundary; partial shapes never
// reach the scoring logic.
type Collaborator struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Role         string       `json:"role"`
	Location     string       `json:"location"`
	Bio          string       `json:"bio"`
	Skills       []string     `json:"skills"`
	Rating       float64      `json:"rating"`
	MatchScore   int          `json:"matchScore"`
	Avatar       string       `json:"avatar"`
	Availability Availability `json:"availability"`
	Experience   string       `json:"experience"`
	Portfolio    int          `json:"portfolio"`
	ProfileURL   string       `json:"profileUrl,omitempty"`
}

// Snapshot captures the display fields embedded in a collaboration request
// at creation time, so request lists render without a join.
func (c *Collaborator) Snapshot() *CollaboratorSnapshot {
	return &CollaboratorSnapshot{
		ID:     c.ID,
		Name:   c.Name,
		Role:   c.Role,
		Avatar: c.Avatar,
		Rating: c.Rating,
	}
}

// CollaboratorSnapshot is the denormalized collaborator view stored on a request.
type CollaboratorSnapshot struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Role   string  `json:"role"`
	Avatar string  `json:"avatar"`
	Rating float64 `json:"rating"`
}
