package repositories

import (
	"database/sql"
	"encoding/json"

	"github.com/alimgiray/crewmatch/internal/models"
)

// SQLiteCollaboratorRepository stores collaborators in SQLite. Skills are
// kept as a JSON array column.
type SQLiteCollaboratorRepository struct {
	db *sql.DB
}

func NewSQLiteCollaboratorRepository(db *sql.DB) *SQLiteCollaboratorRepository {
	return &SQLiteCollaboratorRepository{db: db}
}

const collaboratorColumns = `id, name, role, location, bio, skills, rating, avatar, availability, experience, portfolio, profile_url`

// List returns all collaborators in insertion order.
func (r *SQLiteCollaboratorRepository) List() ([]*models.Collaborator, error) {
	rows, err := r.db.Query(`SELECT ` + collaboratorColumns + ` FROM collaborators ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var collaborators []*models.Collaborator
	for rows.Next() {
		collaborator, err := scanCollaborator(rows)
		if err != nil {
			return nil, err
		}
		collaborators = append(collaborators, collaborator)
	}
	return collaborators, rows.Err()
}

// GetByID retrieves a collaborator by ID.
func (r *SQLiteCollaboratorRepository) GetByID(id string) (*models.Collaborator, error) {
	row := r.db.QueryRow(`SELECT `+collaboratorColumns+` FROM collaborators WHERE id = ?`, id)
	collaborator, err := scanCollaborator(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return collaborator, nil
}

// Insert adds a new collaborator.
func (r *SQLiteCollaboratorRepository) Insert(collaborator *models.Collaborator) error {
	skills, err := json.Marshal(collaborator.Skills)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(`
		INSERT INTO collaborators (`+collaboratorColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		collaborator.ID,
		collaborator.Name,
		collaborator.Role,
		collaborator.Location,
		collaborator.Bio,
		string(skills),
		collaborator.Rating,
		collaborator.Avatar,
		string(collaborator.Availability),
		collaborator.Experience,
		collaborator.Portfolio,
		collaborator.ProfileURL,
	)
	return err
}

// Update updates an existing collaborator.
func (r *SQLiteCollaboratorRepository) Update(collaborator *models.Collaborator) error {
	skills, err := json.Marshal(collaborator.Skills)
	if err != nil {
		return err
	}

	result, err := r.db.Exec(`
		UPDATE collaborators
		SET name = ?, role = ?, location = ?, bio = ?, skills = ?, rating = ?,
			avatar = ?, availability = ?, experience = ?, portfolio = ?, profile_url = ?
		WHERE id = ?
	`,
		collaborator.Name,
		collaborator.Role,
		collaborator.Location,
		collaborator.Bio,
		string(skills),
		collaborator.Rating,
		collaborator.Avatar,
		string(collaborator.Availability),
		collaborator.Experience,
		collaborator.Portfolio,
		collaborator.ProfileURL,
		collaborator.ID,
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCollaborator(row rowScanner) (*models.Collaborator, error) {
	collaborator := &models.Collaborator{}
	var skills, availability string

	err := row.Scan(
		&collaborator.ID,
		&collaborator.Name,
		&collaborator.Role,
		&collaborator.Location,
		&collaborator.Bio,
		&skills,
		&collaborator.Rating,
		&collaborator.Avatar,
		&availability,
		&collaborator.Experience,
		&collaborator.Portfolio,
		&collaborator.ProfileURL,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(skills), &collaborator.Skills); err != nil {
		return nil, err
	}
	collaborator.Availability = models.Availability(availability)
	return collaborator, nil
}
