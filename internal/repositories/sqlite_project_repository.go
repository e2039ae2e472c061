package repositories

import (
	"database/sql"
	"encoding/json"

	"github.com/alimgiray/crewmatch/internal/models"
)

// SQLiteProjectRepository stores projects in SQLite. The looking_for list is
// kept as a JSON array column.
type SQLiteProjectRepository struct {
	db *sql.DB
}

func NewSQLiteProjectRepository(db *sql.DB) *SQLiteProjectRepository {
	return &SQLiteProjectRepository{db: db}
}

const projectColumns = `id, title, type, description, budget, timeline, looking_for, status, collaborators, requests, deadline, created_by, created_at`

// List returns all projects in insertion order.
func (r *SQLiteProjectRepository) List() ([]*models.Project, error) {
	rows, err := r.db.Query(`SELECT ` + projectColumns + ` FROM projects ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

// GetByID retrieves a project by ID.
func (r *SQLiteProjectRepository) GetByID(id string) (*models.Project, error) {
	row := r.db.QueryRow(`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	project, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return project, nil
}

// Insert adds a new project.
func (r *SQLiteProjectRepository) Insert(project *models.Project) error {
	lookingFor, err := json.Marshal(project.LookingFor)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(`
		INSERT INTO projects (`+projectColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		project.ID,
		project.Title,
		string(project.Type),
		project.Description,
		project.Budget,
		project.Timeline,
		string(lookingFor),
		string(project.Status),
		project.Collaborators,
		project.Requests,
		project.Deadline,
		project.CreatedBy,
		project.CreatedAt,
	)
	return err
}

// Update updates an existing project.
func (r *SQLiteProjectRepository) Update(project *models.Project) error {
	lookingFor, err := json.Marshal(project.LookingFor)
	if err != nil {
		return err
	}

	result, err := r.db.Exec(`
		UPDATE projects
		SET title = ?, type = ?, description = ?, budget = ?, timeline = ?,
			looking_for = ?, status = ?, collaborators = ?, requests = ?,
			deadline = ?, created_by = ?, created_at = ?
		WHERE id = ?
	`,
		project.Title,
		string(project.Type),
		project.Description,
		project.Budget,
		project.Timeline,
		string(lookingFor),
		string(project.Status),
		project.Collaborators,
		project.Requests,
		project.Deadline,
		project.CreatedBy,
		project.CreatedAt,
		project.ID,
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

func scanProject(row rowScanner) (*models.Project, error) {
	project := &models.Project{}
	var projectType, lookingFor, status string

	err := row.Scan(
		&project.ID,
		&project.Title,
		&projectType,
		&project.Description,
		&project.Budget,
		&project.Timeline,
		&lookingFor,
		&status,
		&project.Collaborators,
		&project.Requests,
		&project.Deadline,
		&project.CreatedBy,
		&project.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(lookingFor), &project.LookingFor); err != nil {
		return nil, err
	}
	project.Type = models.ProjectType(projectType)
	project.Status = models.ProjectStatus(status)
	return project, nil
}
