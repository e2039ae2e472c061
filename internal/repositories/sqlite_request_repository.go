package repositories

import (
	"database/sql"
	"encoding/json"

	"github.com/alimgiray/crewmatch/internal/models"
)

// SQLiteCollaborationRequestRepository stores collaboration requests in
// SQLite. Snapshots and the enhanced portfolio are kept as JSON columns.
type SQLiteCollaborationRequestRepository struct {
	db *sql.DB
}

func NewSQLiteCollaborationRequestRepository(db *sql.DB) *SQLiteCollaborationRequestRepository {
	return &SQLiteCollaborationRequestRepository{db: db}
}

const requestColumns = `id, project_id, collaborator_id, message, status, created_at, collaborator_snapshot, project_snapshot, direction, skills, availability, interest_level, estimated_hours, enhanced_portfolio`

// List returns all requests in insertion order.
func (r *SQLiteCollaborationRequestRepository) List() ([]*models.CollaborationRequest, error) {
	rows, err := r.db.Query(`SELECT ` + requestColumns + ` FROM collaboration_requests ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*models.CollaborationRequest
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}

// GetByID retrieves a request by ID.
func (r *SQLiteCollaborationRequestRepository) GetByID(id string) (*models.CollaborationRequest, error) {
	row := r.db.QueryRow(`SELECT `+requestColumns+` FROM collaboration_requests WHERE id = ?`, id)
	request, err := scanRequest(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return request, nil
}

// Insert adds a new request.
func (r *SQLiteCollaborationRequestRepository) Insert(request *models.CollaborationRequest) error {
	values, err := requestJSONValues(request)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(`
		INSERT INTO collaboration_requests (`+requestColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		request.ID,
		request.ProjectID,
		request.CollaboratorID,
		request.Message,
		string(request.Status),
		request.CreatedAt,
		values.collaborator,
		values.project,
		string(request.Type),
		values.skills,
		string(request.Availability),
		request.InterestLevel,
		request.EstimatedHours,
		values.portfolio,
	)
	return err
}

// Update updates an existing request.
func (r *SQLiteCollaborationRequestRepository) Update(request *models.CollaborationRequest) error {
	values, err := requestJSONValues(request)
	if err != nil {
		return err
	}

	result, err := r.db.Exec(`
		UPDATE collaboration_requests
		SET project_id = ?, collaborator_id = ?, message = ?, status = ?, created_at = ?,
			collaborator_snapshot = ?, project_snapshot = ?, direction = ?, skills = ?,
			availability = ?, interest_level = ?, estimated_hours = ?, enhanced_portfolio = ?
		WHERE id = ?
	`,
		request.ProjectID,
		request.CollaboratorID,
		request.Message,
		string(request.Status),
		request.CreatedAt,
		values.collaborator,
		values.project,
		string(request.Type),
		values.skills,
		string(request.Availability),
		request.InterestLevel,
		request.EstimatedHours,
		values.portfolio,
		request.ID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type requestJSON struct {
	collaborator sql.NullString
	project      sql.NullString
	portfolio    sql.NullString
	skills       string
}

func requestJSONValues(request *models.CollaborationRequest) (*requestJSON, error) {
	values := &requestJSON{}

	skills, err := json.Marshal(request.Skills)
	if err != nil {
		return nil, err
	}
	values.skills = string(skills)

	if request.Collaborator != nil {
		data, err := json.Marshal(request.Collaborator)
		if err != nil {
			return nil, err
		}
		values.collaborator = sql.NullString{String: string(data), Valid: true}
	}
	if request.Project != nil {
		data, err := json.Marshal(request.Project)
		if err != nil {
			return nil, err
		}
		values.project = sql.NullString{String: string(data), Valid: true}
	}
	if request.EnhancedPortfolio != nil {
		data, err := json.Marshal(request.EnhancedPortfolio)
		if err != nil {
			return nil, err
		}
		values.portfolio = sql.NullString{String: string(data), Valid: true}
	}
	return values, nil
}

func scanRequest(row rowScanner) (*models.CollaborationRequest, error) {
	request := &models.CollaborationRequest{}
	var status, direction, availability, skills string
	var collaborator, project, portfolio sql.NullString

	err := row.Scan(
		&request.ID,
		&request.ProjectID,
		&request.CollaboratorID,
		&request.Message,
		&status,
		&request.CreatedAt,
		&collaborator,
		&project,
		&direction,
		&skills,
		&availability,
		&request.InterestLevel,
		&request.EstimatedHours,
		&portfolio,
	)
	if err != nil {
		return nil, err
	}

	request.Status = models.RequestStatus(status)
	request.Type = models.RequestDirection(direction)
	request.Availability = models.Availability(availability)

	if err := json.Unmarshal([]byte(skills), &request.Skills); err != nil {
		return nil, err
	}
	if collaborator.Valid {
		request.Collaborator = &models.CollaboratorSnapshot{}
		if err := json.Unmarshal([]byte(collaborator.String), request.Collaborator); err != nil {
			return nil, err
		}
	}
	if project.Valid {
		request.Project = &models.ProjectSnapshot{}
		if err := json.Unmarshal([]byte(project.String), request.Project); err != nil {
			return nil, err
		}
	}
	if portfolio.Valid {
		request.EnhancedPortfolio = &models.EnhancedPortfolio{}
		if err := json.Unmarshal([]byte(portfolio.String), request.EnhancedPortfolio); err != nil {
			return nil, err
		}
	}
	return request, nil
}
