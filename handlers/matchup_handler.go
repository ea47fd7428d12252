package handlers

import (
	"net/http"
	"strconv"

	"github.com/Dosada05/golf-matchplay/services"
)

type MatchupHandler struct {
	matchupService     services.MatchupService
	leaderboardService services.LeaderboardService
}

func NewMatchupHandler(ms services.MatchupService, ls services.LeaderboardService) *MatchupHandler {
	return &MatchupHandler{matchupService: ms, leaderboardService: ls}
}

// ListMatchups godoc
// @Summary Таблица матчей года с рассчитанными ударами форы
// @Tags matchups
// @Produce json
// @Param year path int true "Tournament year"
// @Param foursome query int false "Foursome ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /tournaments/{year}/matchups [get]
func (h *MatchupHandler) ListMatchups(w http.ResponseWriter, r *http.Request) {
	year, err := getYearFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	foursomeID, err := optionalIntQuery(r, "foursome")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	views, err := h.matchupService.ListMatchups(r.Context(), year, foursomeID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"matchups": views}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetStrokes godoc
// @Summary Удары форы для пары игроков
// @Tags matchups
// @Produce json
// @Param year path int true "Tournament year"
// @Param player1 query int true "Player 1 ID"
// @Param player2 query int true "Player 2 ID"
// @Param segment query string false "Hole segment (1-6, 7-12, 13-18)"
// @Success 200 {object} services.AllocationView
// @Failure 422 {object} map[string]string
// @Router /tournaments/{year}/strokes [get]
func (h *MatchupHandler) GetStrokes(w http.ResponseWriter, r *http.Request) {
	year, err := getYearFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	q := r.URL.Query()
	player1, err1 := strconv.Atoi(q.Get("player1"))
	player2, err2 := strconv.Atoi(q.Get("player2"))
	if err1 != nil || err2 != nil {
		failedValidationResponse(w, r, map[string]string{"player1": "player1 and player2 query parameters must be player IDs"})
		return
	}

	view, err := h.matchupService.Allocate(r.Context(), year, player1, player2, q.Get("segment"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"strokes": view}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetLeaderboard godoc
// @Summary Таблица очков
// @Tags leaderboard
// @Produce json
// @Param year path int true "Tournament year"
// @Param foursome query int false "Foursome ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /tournaments/{year}/leaderboard [get]
func (h *MatchupHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	year, err := getYearFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	foursomeID, err := optionalIntQuery(r, "foursome")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	standings, err := h.leaderboardService.Compute(r.Context(), year, foursomeID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"year": year, "leaderboard": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
