package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ignatzorin/portfolio-site/internal/provider"
)

var states = []string{"loading", "ready", "failed"}

// Metrics собирает метрики загрузки контента и HTTP запросов.
type Metrics struct {
	registry      *prometheus.Registry
	fetchDuration *prometheus.HistogramVec
	contentState  *prometheus.GaugeVec
	requests      *prometheus.CounterVec
	contactTotal  *prometheus.CounterVec
}

// New регистрирует метрики в собственном реестре.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		fetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "portfolio",
			Name:      "content_fetch_duration_seconds",
			Help:      "Длительность агрегированного запроса к CMS.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"state"}),
		contentState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "portfolio",
			Name:      "content_state",
			Help:      "Текущее состояние контента (1 у активного).",
		}, []string{"state"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "http_requests_total",
			Help:      "HTTP запросы по маршруту и статусу.",
		}, []string{"method", "route", "status"}),
		contactTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "contact_messages_total",
			Help:      "Сообщения формы обратной связи по результату.",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		m.fetchDuration,
		m.contentState,
		m.requests,
		m.contactTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m.setState("loading")
	return m
}

// Registry возвращает реестр (для тестов).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveFetch подходит как provider.Observer.
func (m *Metrics) ObserveFetch(s provider.State, took time.Duration) {
	name := provider.Name(s)
	m.fetchDuration.WithLabelValues(name).Observe(took.Seconds())
	m.setState(name)
}

// ContactSubmitted учитывает результат отправки формы.
func (m *Metrics) ContactSubmitted(result string) {
	m.contactTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) setState(current string) {
	for _, s := range states {
		v := 0.0
		if s == current {
			v = 1
		}
		m.contentState.WithLabelValues(s).Set(v)
	}
}

// Middleware считает запросы по шаблону маршрута.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Handler отдаёт метрики в формате Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
