package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/Dosada05/golf-matchplay/hub"
	"github.com/Dosada05/golf-matchplay/services"
)

type WebSocketHandler struct {
	hub      *hub.Hub
	table    services.MatchupTable
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewWebSocketHandler builds the leaderboard feed handler. allowedOrigins of ["*"] or an
// empty list accept every origin.
func NewWebSocketHandler(h *hub.Hub, table services.MatchupTable, allowedOrigins []string, logger *slog.Logger) *WebSocketHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WebSocketHandler{
		hub:   h,
		table: table,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		logger: logger,
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		set[o] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || len(set) == 0 || set[origin]
	}
}

// ServeWs подписывает клиента на обновления таблицы очков года.
// Клиент подключается к /ws/tournaments/{year}
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	year, err := getYearFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if _, err := h.table.Year(year); err != nil {
		notFoundResponse(w, r, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// upgrader.Upgrade сам отправляет HTTP ошибку клиенту
		h.logger.Warn("failed to upgrade websocket connection", slog.Int("year", year), slog.Any("error", err))
		return
	}

	room := hub.TournamentRoom(year)
	h.hub.Attach(conn, room)
	h.logger.Info("websocket client attached", slog.String("room", room))
}
