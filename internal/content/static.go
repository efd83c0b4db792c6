package content

import (
	"context"
	"encoding/json"
	"os"

	"github.com/ignatzorin/portfolio-site/internal/models"
)

// StaticStore читает документ из JSON файла. Принимает как ответ Sanity
// целиком ({"result": {...}}), так и сам документ.
type StaticStore struct {
	path string
}

// NewStaticStore создаёт хранилище поверх файла.
func NewStaticStore(path string) *StaticStore {
	return &StaticStore{path: path}
}

// Fetch читает и разбирает файл.
func (s *StaticStore) Fetch(ctx context.Context) (*models.Portfolio, error) {
	if err := ctx.Err(); err != nil {
		return nil, fail("content: запрос отменён", err)
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fail("content: не удалось прочитать файл "+s.path, err)
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fail("content: некорректный JSON в "+s.path, err)
	}
	if _, wrapped := probe["result"]; wrapped {
		return decodeResponse(200, raw)
	}

	var doc models.Portfolio
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fail("content: документ не соответствует схеме", err)
	}
	return &doc, nil
}
