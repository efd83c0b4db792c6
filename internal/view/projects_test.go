package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/portfolio-site/internal/models"
)

func titles(projects []models.Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Title)
	}
	return out
}

func sampleProjects() []models.Project {
	return []models.Project{
		{ID: "1", Title: "A", Featured: true},
		{ID: "2", Title: "B"},
		{ID: "3", Title: "C", Featured: true},
		{ID: "4", Title: "D", Featured: true},
		{ID: "5", Title: "E"},
	}
}

func TestFeaturedProjects_OnlyFeatured(t *testing.T) {
	policy := ProjectPolicy{FeaturedLimit: 0}
	got := FeaturedProjects(sampleProjects(), policy)

	assert.Equal(t, []string{"A", "C", "D"}, titles(got))
	for _, p := range sampleProjects() {
		assert.Equal(t, p.Featured, containsTitle(got, p.Title), p.Title)
	}
}

func TestFeaturedProjects_Limit(t *testing.T) {
	got := FeaturedProjects(sampleProjects(), DefaultProjectPolicy())
	assert.Equal(t, []string{"A", "C"}, titles(got))
}

func TestFeaturedProjects_Empty(t *testing.T) {
	assert.Empty(t, FeaturedProjects(nil, DefaultProjectPolicy()))
	assert.NotNil(t, FeaturedProjects(nil, DefaultProjectPolicy()))
}

func TestOtherProjects_Dedup(t *testing.T) {
	got := OtherProjects(sampleProjects(), DefaultProjectPolicy())
	// D избранный, но не попал в лимит и остаётся в общем списке.
	assert.Equal(t, []string{"B", "D", "E"}, titles(got))
}

func TestOtherProjects_DedupWithoutLimit(t *testing.T) {
	got := OtherProjects(sampleProjects(), ProjectPolicy{ExcludeFeaturedFromOthers: true})
	assert.Equal(t, []string{"B", "E"}, titles(got))
}

func TestOtherProjects_AllProjects(t *testing.T) {
	got := OtherProjects(sampleProjects(), ProjectPolicy{FeaturedLimit: 2})
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, titles(got))
}

func containsTitle(projects []models.Project, title string) bool {
	for _, p := range projects {
		if p.Title == title {
			return true
		}
	}
	return false
}
