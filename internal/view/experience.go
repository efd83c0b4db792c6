package view

import (
	"sort"
	"strings"
	"time"

	"github.com/ignatzorin/portfolio-site/internal/models"
)

var dateLayouts = []string{"2006-01-02", "2006-01", time.RFC3339, "2006"}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortExperiences сортирует опыт от новых к старым. Текущие места работы
// (без даты окончания) идут первыми, записи с нераспознанной датой начала идут последними.
// Входной срез не изменяется.
func SortExperiences(exps []models.Experience) []models.Experience {
	out := make([]models.Experience, len(exps))
	copy(out, exps)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Ongoing() != b.Ongoing() {
			return a.Ongoing()
		}

		at, aok := parseDate(a.StartDate)
		bt, bok := parseDate(b.StartDate)
		switch {
		case aok && bok:
			return at.After(bt)
		case aok != bok:
			return aok
		default:
			return false
		}
	})
	return out
}

// Period форматирует срок работы: "2021-03-01 - Current" для текущей работы.
func Period(e models.Experience) string {
	end := e.End()
	if e.Ongoing() {
		end = "Current"
	}
	return e.StartDate + " - " + end
}
