package models

import "strings"

// ImageRef описывает ссылку на изображение в CMS (ещё не URL).
type ImageRef struct {
	Type  string    `json:"_type"`
	Asset *AssetRef `json:"asset"`
}

// AssetRef ссылается на ассет вида image-<id>-<W>x<H>-<ext>.
type AssetRef struct {
	Ref  string `json:"_ref"`
	Type string `json:"_type"`
}

// Ref возвращает идентификатор ассета или пустую строку.
func (i *ImageRef) Ref() string {
	if i == nil || i.Asset == nil {
		return ""
	}
	return i.Asset.Ref
}

// Author описывает владельца портфолио.
type Author struct {
	ID    string    `json:"_id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
	Image *ImageRef `json:"image"`
}

// Details содержит тексты страницы и ссылки на навыки.
type Details struct {
	ID           string  `json:"_id"`
	MainRole     string  `json:"mainrole"`
	SubRole      string  `json:"subrole"`
	LandingInfo  string  `json:"landinginfo"`
	AboutHeading string  `json:"aboutheading"`
	Journey      string  `json:"journey"`
	Author       *Author `json:"author"`
	Skills       []Skill `json:"skills"`
}

// CategoryRef содержит разрешённую ссылку на категорию навыка.
type CategoryRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Skill описывает навык. Percentage берётся из CMS как есть, без проверки диапазона;
// nil соответствует null в ответе CMS.
type Skill struct {
	ID         string       `json:"_id"`
	Name       string       `json:"name"`
	Percentage *float64     `json:"percentage"`
	Category   *CategoryRef `json:"category"`
}

// Percent возвращает процент владения навыком или 0, если он не задан.
func (s Skill) Percent() float64 {
	if s.Percentage == nil {
		return 0
	}
	return *s.Percentage
}

// SkillCategory описывает категорию со списком навыков, которые на неё ссылаются.
type SkillCategory struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Skills      []Skill `json:"skills"`
}

// Project описывает работу в портфолио.
type Project struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	LiveLink    string    `json:"liveLink"`
	GithubLink  string    `json:"githubLink"`
	Image       *ImageRef `json:"image"`
	Featured    bool      `json:"featured"`
	Languages   []Skill   `json:"languages"`
}

// Experience описывает место работы. EndDate равный nil или пустой строке означает текущую работу.
type Experience struct {
	ID             string   `json:"_id"`
	Role           string   `json:"role"`
	Company        string   `json:"company"`
	CompanyWebsite string   `json:"companywebsite"`
	Location       string   `json:"location"`
	StartDate      string   `json:"startDate"`
	EndDate        *string  `json:"endDate"`
	Description    string   `json:"description"`
	Achievements   []string `json:"achievements"`
	Technologies   []Skill  `json:"technologies"`
}

// Ongoing сообщает, что у записи нет даты окончания.
func (e Experience) Ongoing() bool {
	return strings.TrimSpace(e.End()) == ""
}

// End возвращает дату окончания или пустую строку.
func (e Experience) End() string {
	if e.EndDate == nil {
		return ""
	}
	return *e.EndDate
}

// Upload описывает загруженный файл с разрешённым URL.
type Upload struct {
	ID      string `json:"_id"`
	Title   string `json:"title"`
	FileURL string `json:"fileUrl"`
}

// Portfolio содержит агрегированный документ, получаемый одним запросом.
type Portfolio struct {
	Author      *Author         `json:"author"`
	Details     *Details        `json:"details"`
	Skills      []Skill         `json:"skills"`
	Categories  []SkillCategory `json:"categories"`
	Projects    []Project       `json:"projects"`
	Experiences []Experience    `json:"experiences"`
	Uploads     []Upload        `json:"uploads"`
}

// CVURL возвращает URL первого загруженного файла. Первый upload считается резюме.
func (p *Portfolio) CVURL() string {
	if p == nil || len(p.Uploads) == 0 {
		return ""
	}
	return p.Uploads[0].FileURL
}

// AuthorName возвращает имя автора или пустую строку.
func (p *Portfolio) AuthorName() string {
	if p == nil || p.Author == nil {
		return ""
	}
	return p.Author.Name
}
