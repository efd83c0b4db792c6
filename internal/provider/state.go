package provider

import "github.com/ignatzorin/portfolio-site/internal/models"

// State описывает состояние провайдера: Loading, Ready или Failed.
// Потребители разбирают его через type switch по всем трём вариантам.
type State interface {
	state()
}

// Loading: запрос ещё выполняется.
type Loading struct{}

// Ready: документ получен.
type Ready struct {
	Data *models.Portfolio
}

// Failed: запрос завершился ошибкой.
type Failed struct {
	Err error
}

func (Loading) state() {}
func (Ready) state()   {}
func (Failed) state()  {}

// Message возвращает текст ошибки.
func (f Failed) Message() string {
	if f.Err == nil {
		return ""
	}
	return f.Err.Error()
}

// Name возвращает имя состояния для логов и метрик.
func Name(s State) string {
	switch s.(type) {
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "loading"
	}
}

// Snapshot хранит тройку {data, loading, error}, которую видят потребители.
type Snapshot struct {
	Data    *models.Portfolio `json:"data"`
	Loading bool              `json:"loading"`
	Error   *string           `json:"error"`
}

// SnapshotOf проецирует состояние в тройку.
func SnapshotOf(s State) Snapshot {
	switch st := s.(type) {
	case Ready:
		return Snapshot{Data: st.Data}
	case Failed:
		msg := st.Message()
		return Snapshot{Error: &msg}
	default:
		return Snapshot{Loading: true}
	}
}
