package view

import "github.com/ignatzorin/portfolio-site/internal/models"

// ProjectPolicy управляет разбиением проектов на избранные и остальные.
type ProjectPolicy struct {
	// FeaturedLimit: сколько избранных проектов показывать, 0 без ограничения.
	FeaturedLimit int
	// ExcludeFeaturedFromOthers убирает избранные проекты из списка остальных.
	ExcludeFeaturedFromOthers bool
}

// DefaultProjectPolicy: два избранных проекта, без повторов в общем списке.
func DefaultProjectPolicy() ProjectPolicy {
	return ProjectPolicy{FeaturedLimit: 2, ExcludeFeaturedFromOthers: true}
}

// FeaturedProjects возвращает проекты с featured == true в исходном порядке.
func FeaturedProjects(projects []models.Project, policy ProjectPolicy) []models.Project {
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if !p.Featured {
			continue
		}
		if policy.FeaturedLimit > 0 && len(out) == policy.FeaturedLimit {
			break
		}
		out = append(out, p)
	}
	return out
}

// OtherProjects возвращает проекты для общего списка.
// При ExcludeFeaturedFromOthers исключаются только показанные избранные:
// избранные сверх лимита остаются в общем списке.
func OtherProjects(projects []models.Project, policy ProjectPolicy) []models.Project {
	out := make([]models.Project, 0, len(projects))
	shown := 0
	for _, p := range projects {
		if policy.ExcludeFeaturedFromOthers && p.Featured &&
			(policy.FeaturedLimit == 0 || shown < policy.FeaturedLimit) {
			shown++
			continue
		}
		out = append(out, p)
	}
	return out
}
