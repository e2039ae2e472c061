package services

import (
	"fmt"
	"strings"

	"github.com/alimgiray/crewmatch/internal/models"
)

// Template policy for collaboration request messages. Template choice is
// randomized for variety, but every template references the collaborator's
// name, their lead skill and the project title, so any selection is a
// correct output.
var messageTemplates = []string{
	"Hi! I'm %[1]s, a %[2]s interested in collaborating on %[4]q. I believe my skills in %[3]s would be valuable for this project.",
	"Hi, %[1]s here. Your project %[4]q caught my attention and my background as a %[2]s with strong %[3]s experience feels like a great fit. I'd love to collaborate.",
	"Hello! I'm %[1]s and I'd love to join %[4]q. As a %[2]s I can bring solid %[3]s work to the team from day one.",
}

func templateMessage(collaborator *models.Collaborator, project *models.Project, rng *Rand) string {
	template := messageTemplates[0]
	if rng != nil {
		template = messageTemplates[rng.Intn(len(messageTemplates))]
	}

	leadSkill := "creative work"
	if len(collaborator.Skills) > 0 {
		leadSkill = collaborator.Skills[0]
	}
	return fmt.Sprintf(template, collaborator.Name, collaborator.Role, leadSkill, project.Title)
}

// portfolioCategories maps role keywords to plausible past-work categories
// for the fallback portfolio.
var portfolioCategories = map[string][]string{
	"director":        {"Feature Film", "Short Film", "Documentary", "Music Video"},
	"actor":           {"Feature Film", "Short Film", "Theatre", "Commercial"},
	"cinematographer": {"Feature Film", "Documentary", "Music Video", "Commercial"},
	"writer":          {"Feature Film", "Short Film", "Theatre", "Web Series"},
	"producer":        {"Feature Film", "Documentary", "Short Film", "Commercial"},
	"musician":        {"Music Video", "Film Score", "Album", "Live Performance"},
	"editor":          {"Feature Film", "Documentary", "Music Video", "Commercial"},
}

var defaultCategories = []string{"Short Film", "Commercial", "Music Video"}

func categoriesForRole(role string) []string {
	roleLower := strings.ToLower(role)
	for keyword, categories := range portfolioCategories {
		if strings.Contains(roleLower, keyword) {
			return categories
		}
	}
	return defaultCategories
}

// fallbackPortfolio synthesizes an enhanced portfolio from the profile
// fields alone, used when no generated portfolio is available.
func fallbackPortfolio(collaborator *models.Collaborator, rng *Rand) *models.EnhancedPortfolio {
	role := collaborator.Role
	if role == "" {
		role = "Creative Professional"
	}
	categories := categoriesForRole(role)

	leadSkill := "creative"
	if len(collaborator.Skills) > 0 {
		leadSkill = collaborator.Skills[0]
	}

	projectCount := 3
	years := 5
	if rng != nil {
		projectCount = rng.Intn(3) + 3
		years = rng.Intn(8) + 2
	}

	projects := make([]models.PortfolioProject, 0, projectCount)
	for i := 0; i < projectCount; i++ {
		category := categories[i%len(categories)]
		status := "Completed"
		if i == 0 {
			status = "In Progress"
		}
		year := 2024 - i%3
		projects = append(projects, models.PortfolioProject{
			Title:       fmt.Sprintf("%s Project %d", role, i+1),
			Description: fmt.Sprintf("Professional %s showcasing %s expertise", strings.ToLower(category), leadSkill),
			Year:        year,
			Category:    category,
			Role:        role,
			Status:      status,
		})
	}

	specialties := collaborator.Skills
	if len(specialties) > 3 {
		specialties = specialties[:3]
	}
	if len(specialties) == 0 {
		specialties = []string{"Creative Direction"}
	}

	return &models.EnhancedPortfolio{
		Projects:              projects,
		Specialties:           specialties,
		Equipment:             []string{"Professional Equipment", "Industry Standard Tools"},
		NotableCollaborations: []string{"Independent Productions", "Local Film Community"},
		YearsExperience:       years,
		Education:             "Professional Training",
	}
}
