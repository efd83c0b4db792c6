package view

import (
	"strings"
	"time"
	"unicode"

	"github.com/ignatzorin/portfolio-site/internal/models"
	"github.com/ignatzorin/portfolio-site/internal/provider"
)

const (
	previewCategories = 3
	otherProjectTags  = 2
	projectImageWidth = 800
)

// ImageResolver строит URL изображения по ссылке из CMS.
type ImageResolver interface {
	URL(img *models.ImageRef, width int) string
}

// Status описывает состояние страницы.
type Status string

const (
	// StatusLoading - документ ещё загружается.
	StatusLoading Status = "loading"
	// StatusReady - документ получен.
	StatusReady Status = "ready"
	// StatusFailed - загрузка завершилась ошибкой.
	StatusFailed Status = "failed"
)

// NavItem описывает пункт навигации.
type NavItem struct {
	Name string
	Href string
}

// Hero описывает первый экран. CVURL указывает прямо на файл в CMS.
type Hero struct {
	Name        string
	MainRole    string
	SubRole     string
	LandingInfo string
	CVURL       string
	ImageURL    string
}

// SkillView описывает навык с процентом владения.
type SkillView struct {
	Name       string
	Percentage float64
}

// CategoryView описывает категорию навыков.
type CategoryView struct {
	Name        string
	Description string
	Skills      []SkillView
}

// About описывает раздел "обо мне".
type About struct {
	Heading    string
	Journey    string
	Preview    []CategoryView
	Categories []CategoryView
	HasMore    bool
}

// ProjectCard описывает карточку проекта.
type ProjectCard struct {
	ID          string
	Title       string
	Description string
	LiveLink    string
	GithubLink  string
	ImageURL    string
	Tags        []string
	ExtraTags   int
	Featured    bool
}

// ExperienceItem описывает запись об опыте работы.
type ExperienceItem struct {
	Role         string
	Company      string
	CompanyURL   string
	Location     string
	Period       string
	Ongoing      bool
	Description  string
	Achievements []string
	Technologies []string
}

// Contact содержит контакты автора и готовые mailto/tel ссылки.
type Contact struct {
	Email     string
	EmailHref string
	Phone     string
	PhoneHref string
}

// Footer описывает подвал страницы.
type Footer struct {
	Name string
	Year int
}

// Page описывает всю страницу.
type Page struct {
	Status      Status
	Error       string
	Nav         []NavItem
	Hero        Hero
	About       About
	Featured    []ProjectCard
	Others      []ProjectCard
	Experiences []ExperienceItem
	Contact     Contact
	Footer      Footer
}

var navigation = []NavItem{
	{Name: "About", Href: "#about"},
	{Name: "Projects", Href: "#projects"},
	{Name: "Experience", Href: "#experience"},
	{Name: "Contact", Href: "#contact"},
}

// BuildPage проецирует состояние провайдера в модель страницы.
func BuildPage(s provider.State, policy ProjectPolicy, images ImageResolver, now time.Time) Page {
	page := Page{Nav: navigation, Footer: Footer{Year: now.Year()}}

	switch st := s.(type) {
	case provider.Loading:
		page.Status = StatusLoading
	case provider.Failed:
		page.Status = StatusFailed
		page.Error = st.Message()
	case provider.Ready:
		page.Status = StatusReady
		fillPage(&page, st.Data, policy, images)
	default:
		page.Status = StatusLoading
	}
	return page
}

func fillPage(page *Page, doc *models.Portfolio, policy ProjectPolicy, images ImageResolver) {
	if doc == nil {
		return
	}

	page.Hero = HeroOf(doc, images)
	page.About = AboutOf(doc)
	page.Contact = ContactOf(doc.Author)
	page.Footer.Name = doc.AuthorName()

	for _, p := range FeaturedProjects(doc.Projects, policy) {
		page.Featured = append(page.Featured, projectCard(p, images, 0))
	}
	for _, p := range OtherProjects(doc.Projects, policy) {
		page.Others = append(page.Others, projectCard(p, images, otherProjectTags))
	}
	for _, e := range SortExperiences(doc.Experiences) {
		page.Experiences = append(page.Experiences, experienceItem(e))
	}
}

// HeroOf собирает первый экран.
func HeroOf(doc *models.Portfolio, images ImageResolver) Hero {
	hero := Hero{Name: doc.AuthorName(), CVURL: doc.CVURL()}
	if d := doc.Details; d != nil {
		hero.MainRole = d.MainRole
		hero.SubRole = d.SubRole
		hero.LandingInfo = d.LandingInfo
	}
	if doc.Author != nil && images != nil {
		hero.ImageURL = images.URL(doc.Author.Image, 480)
	}
	return hero
}

// AboutOf собирает раздел "обо мне": первые категории и полный список.
func AboutOf(doc *models.Portfolio) About {
	about := About{}
	if d := doc.Details; d != nil {
		about.Heading = d.AboutHeading
		about.Journey = d.Journey
	}

	for _, c := range doc.Categories {
		cv := CategoryView{Name: c.Name, Description: c.Description}
		for _, s := range c.Skills {
			cv.Skills = append(cv.Skills, SkillView{Name: s.Name, Percentage: s.Percent()})
		}
		about.Categories = append(about.Categories, cv)
	}

	about.Preview = about.Categories
	if len(about.Preview) > previewCategories {
		about.Preview = about.Preview[:previewCategories]
		about.HasMore = true
	}
	return about
}

// ContactOf собирает контакты автора. В tel: остаются только цифры.
func ContactOf(a *models.Author) Contact {
	if a == nil {
		return Contact{}
	}
	c := Contact{Email: a.Email, Phone: a.Phone}
	if a.Email != "" {
		c.EmailHref = "mailto:" + a.Email
	}
	if digits := onlyDigits(a.Phone); digits != "" {
		c.PhoneHref = "tel:" + digits
	}
	return c
}

func onlyDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

func projectCard(p models.Project, images ImageResolver, maxTags int) ProjectCard {
	card := ProjectCard{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		LiveLink:    p.LiveLink,
		GithubLink:  p.GithubLink,
		Featured:    p.Featured,
	}
	if images != nil {
		card.ImageURL = images.URL(p.Image, projectImageWidth)
	}
	for _, l := range p.Languages {
		card.Tags = append(card.Tags, l.Name)
	}
	if maxTags > 0 && len(card.Tags) > maxTags {
		card.ExtraTags = len(card.Tags) - maxTags
		card.Tags = card.Tags[:maxTags]
	}
	return card
}

func experienceItem(e models.Experience) ExperienceItem {
	item := ExperienceItem{
		Role:         e.Role,
		Company:      e.Company,
		CompanyURL:   e.CompanyWebsite,
		Location:     e.Location,
		Period:       Period(e),
		Ongoing:      e.Ongoing(),
		Description:  e.Description,
		Achievements: e.Achievements,
	}
	for _, t := range e.Technologies {
		item.Technologies = append(item.Technologies, t.Name)
	}
	return item
}
