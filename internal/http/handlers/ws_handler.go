package handlers

import (
	"net/http"
	"net/url"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ignatzorin/portfolio-site/internal/logger"
	"github.com/ignatzorin/portfolio-site/internal/provider"
	"github.com/ignatzorin/portfolio-site/internal/ws"
)

// WSHandler отвечает за установку WebSocket соединений.
type WSHandler struct {
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

// NewWSHandler создаёт хэндлер. Разрешены свой хост и allowedOrigins; пустой список разрешает всё.
func NewWSHandler(hub *ws.Hub, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if len(allowedOrigins) == 0 || origin == "" || slices.Contains(allowedOrigins, origin) {
					return true
				}
				u, err := url.Parse(origin)
				return err == nil && u.Host == r.Host
			},
		},
	}
}

// Handle обслуживает GET /api/ws. Сразу после подключения клиент получает текущий снимок,
// после загрузки контента хаб присылает итоговый.
func (h *WSHandler) Handle(c *gin.Context) {
	p := provider.MustFrom(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Component("ws").WithError(err).Debug("Не удалось установить соединение")
		return
	}

	client := ws.NewClient(conn, h.hub)
	if !h.hub.Register(client) {
		_ = conn.Close()
		return
	}

	sent := p.Snapshot()
	h.sendSnapshot(client, sent)
	// загрузка могла завершиться между регистрацией и отправкой
	if sent.Loading {
		select {
		case <-p.Done():
			h.sendSnapshot(client, p.Snapshot())
		default:
		}
	}

	client.Run(c.Request.Context())
}

func (h *WSHandler) sendSnapshot(client *ws.Client, snapshot provider.Snapshot) {
	raw, err := ws.Encode(ws.EventPortfolioState, snapshot)
	if err != nil {
		logger.Component("ws").WithError(err).Error("Не удалось сериализовать снимок")
		return
	}
	client.Send(raw)
}
