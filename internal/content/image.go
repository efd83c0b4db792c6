package content

import (
	"fmt"
	"strings"

	"github.com/ignatzorin/portfolio-site/internal/models"
)

const imageCDN = "https://cdn.sanity.io/images"

// ImageURLBuilder превращает ссылки на изображения в URL CDN.
type ImageURLBuilder struct {
	projectID string
	dataset   string
}

// NewImageURLBuilder создаёт построитель URL для проекта и датасета.
func NewImageURLBuilder(projectID, dataset string) ImageURLBuilder {
	return ImageURLBuilder{projectID: projectID, dataset: dataset}
}

// URL возвращает адрес изображения; width > 0 добавляет параметр w.
// Для пустой или некорректной ссылки возвращается "".
func (b ImageURLBuilder) URL(img *models.ImageRef, width int) string {
	return b.FromRef(img.Ref(), width)
}

// FromRef строит URL по идентификатору ассета image-<id>-<W>x<H>-<ext>.
func (b ImageURLBuilder) FromRef(ref string, width int) string {
	if b.projectID == "" || b.dataset == "" {
		return ""
	}

	id, dims, ext, ok := parseImageRef(ref)
	if !ok {
		return ""
	}

	u := fmt.Sprintf("%s/%s/%s/%s-%s.%s", imageCDN, b.projectID, b.dataset, id, dims, ext)
	if width > 0 {
		u += fmt.Sprintf("?w=%d&auto=format", width)
	}
	return u
}

func parseImageRef(ref string) (id, dims, ext string, ok bool) {
	rest, found := strings.CutPrefix(ref, "image-")
	if !found {
		return "", "", "", false
	}

	parts := strings.Split(rest, "-")
	if len(parts) < 3 {
		return "", "", "", false
	}

	ext = parts[len(parts)-1]
	dims = parts[len(parts)-2]
	id = strings.Join(parts[:len(parts)-2], "-")

	w, h, found := strings.Cut(dims, "x")
	if !found || !isDigits(w) || !isDigits(h) || id == "" || ext == "" {
		return "", "", "", false
	}
	return id, dims, ext, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
