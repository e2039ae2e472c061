package services

import (
	"fmt"
	"strings"

	"github.com/alimgiray/crewmatch/internal/models"
	"github.com/alimgiray/crewmatch/internal/repositories"
	"github.com/xuri/excelize/v2"
)

// Project-type browse buckets: a collaborator belongs to a bucket when one
// of their skills matches the bucket's role set exactly.
var (
	filmBucketSkills  = []string{"Director", "Producer", "DoP", "Cinematographer", "Editor"}
	musicBucketSkills = []string{"Producer", "Sound Engineer", "Composer", "Audio Engineer"}
)

// CollaboratorService serves collaborator browsing, per-project
// recommendations, extended profiles and the roster export.
type CollaboratorService struct {
	collaboratorRepo repositories.CollaboratorRepository
	projectRepo      repositories.ProjectRepository
	matchService     *MatchService
	rng              *Rand
}

func NewCollaboratorService(
	collaboratorRepo repositories.CollaboratorRepository,
	projectRepo repositories.ProjectRepository,
	matchService *MatchService,
	rng *Rand,
) *CollaboratorService {
	return &CollaboratorService{
		collaboratorRepo: collaboratorRepo,
		projectRepo:      projectRepo,
		matchService:     matchService,
		rng:              rng,
	}
}

// GetByID retrieves a collaborator by ID.
func (s *CollaboratorService) GetByID(id string) (*models.Collaborator, error) {
	return s.collaboratorRepo.GetByID(id)
}

// List returns all collaborators.
func (s *CollaboratorService) List() ([]*models.Collaborator, error) {
	return s.collaboratorRepo.List()
}

// Search filters collaborators by a free-text term (name, role, location or
// skill substring) and an optional project-type bucket, truncated to limit.
func (s *CollaboratorService) Search(search, projectType string, limit int) ([]*models.Collaborator, error) {
	collaborators, err := s.collaboratorRepo.List()
	if err != nil {
		return nil, err
	}

	if search != "" {
		searchLower := strings.ToLower(search)
		matched := make([]*models.Collaborator, 0, len(collaborators))
		for _, c := range collaborators {
			if matchesSearch(c, searchLower) {
				matched = append(matched, c)
			}
		}
		collaborators = matched
	}

	if projectType != "" && projectType != "both" {
		matched := make([]*models.Collaborator, 0, len(collaborators))
		for _, c := range collaborators {
			if matchesBucket(c, projectType) {
				matched = append(matched, c)
			}
		}
		collaborators = matched
	}

	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}
	if len(collaborators) > limit {
		collaborators = collaborators[:limit]
	}
	return collaborators, nil
}

func matchesSearch(c *models.Collaborator, searchLower string) bool {
	if strings.Contains(strings.ToLower(c.Name), searchLower) ||
		strings.Contains(strings.ToLower(c.Role), searchLower) ||
		strings.Contains(strings.ToLower(c.Location), searchLower) {
		return true
	}
	for _, skill := range c.Skills {
		if strings.Contains(strings.ToLower(skill), searchLower) {
			return true
		}
	}
	return false
}

func matchesBucket(c *models.Collaborator, projectType string) bool {
	var bucket []string
	switch projectType {
	case "film":
		bucket = filmBucketSkills
	case "music":
		bucket = musicBucketSkills
	default:
		return true
	}

	for _, skill := range c.Skills {
		for _, bucketSkill := range bucket {
			if skill == bucketSkill {
				return true
			}
		}
	}
	return false
}

// RecommendedForProject ranks all collaborators against a stored project.
func (s *CollaboratorService) RecommendedForProject(projectID string, limit int) ([]*models.Collaborator, error) {
	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, err
	}

	collaborators, err := s.collaboratorRepo.List()
	if err != nil {
		return nil, err
	}
	return s.matchService.Rank(project, collaborators, limit), nil
}

// ProfileStats are headline numbers for the extended profile page.
type ProfileStats struct {
	ProjectsCompleted int `json:"projectsCompleted"`
	YearsExperience   int `json:"yearsExperience"`
	Collaborators     int `json:"collaborators"`
	Awards            int `json:"awards"`
}

// CollaboratorProfile is the extended profile view: the stored record plus
// synthesized portfolio highlights and stats.
type CollaboratorProfile struct {
	*models.Collaborator
	PortfolioHighlights *models.EnhancedPortfolio `json:"portfolioHighlights"`
	Stats               ProfileStats              `json:"stats"`
}

// Profile returns the extended profile for a collaborator.
func (s *CollaboratorService) Profile(id string) (*CollaboratorProfile, error) {
	collaborator, err := s.collaboratorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	highlights := fallbackPortfolio(collaborator, s.rng)
	return &CollaboratorProfile{
		Collaborator:        collaborator,
		PortfolioHighlights: highlights,
		Stats: ProfileStats{
			ProjectsCompleted: collaborator.Portfolio,
			YearsExperience:   highlights.YearsExperience,
			Collaborators:     collaborator.Portfolio * 3,
			Awards:            int(collaborator.Rating * 2),
		},
	}, nil
}

// RosterWorkbook builds an xlsx workbook with the full collaborator roster.
func (s *CollaboratorService) RosterWorkbook() (*excelize.File, error) {
	collaborators, err := s.collaboratorRepo.List()
	if err != nil {
		return nil, err
	}

	file := excelize.NewFile()
	sheet := "Collaborators"
	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{"ID", "Name", "Role", "Location", "Skills", "Rating", "Availability", "Experience", "Portfolio", "Profile URL"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, c := range collaborators {
		values := []interface{}{
			c.ID, c.Name, c.Role, c.Location, strings.Join(c.Skills, ", "),
			c.Rating, string(c.Availability), c.Experience, c.Portfolio, c.ProfileURL,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	if len(collaborators) == 0 {
		return file, nil
	}
	if err := file.AutoFilter(sheet, fmt.Sprintf("A1:J%d", len(collaborators)+1), nil); err != nil {
		return nil, err
	}
	return file, nil
}
