package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Dosada05/golf-matchplay/services"
)

const maxScorecardSize = 10 << 20

type ResultHandler struct {
	resultService services.MatchResultService
}

func NewResultHandler(rs services.MatchResultService) *ResultHandler {
	return &ResultHandler{resultService: rs}
}

// RecordResult godoc
// @Summary Записать результат матча на отрезке
// @Tags results
// @Accept json
// @Produce json
// @Param year path int true "Tournament year"
// @Param input body services.RecordResultInput true "Gross scores"
// @Success 201 {object} map[string]interface{}
// @Failure 403 {object} map[string]string "Не участник матча"
// @Failure 409 {object} map[string]string "Результат уже записан"
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /tournaments/{year}/results [post]
func (h *ResultHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	year, err := getYearFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	actor, err := currentActor(r)
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	var input services.RecordResultInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.resultService.Record(r.Context(), year, input, actor)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/tournaments/%d/results/%d", year, result.ID))
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"result": result}, headers); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListResults godoc
// @Summary Результаты года
// @Tags results
// @Produce json
// @Param year path int true "Tournament year"
// @Param foursome query int false "Foursome ID"
// @Success 200 {object} map[string]interface{}
// @Router /tournaments/{year}/results [get]
func (h *ResultHandler) ListResults(w http.ResponseWriter, r *http.Request) {
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

	results, err := h.resultService.List(r.Context(), year, foursomeID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"results": results}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CorrectResult godoc
// @Summary Исправить счёт (админ)
// @Tags results
// @Accept json
// @Produce json
// @Param year path int true "Tournament year"
// @Param resultID path int true "Result ID"
// @Param input body services.CorrectResultInput true "Gross scores"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /tournaments/{year}/results/{resultID} [put]
func (h *ResultHandler) CorrectResult(w http.ResponseWriter, r *http.Request) {
	year, err := getYearFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	resultID, err := getIDFromURL(r, "resultID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	actor, err := currentActor(r)
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	var input services.CorrectResultInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.resultService.Correct(r.Context(), year, resultID, input, actor)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"result": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteResult godoc
// @Summary Удалить результат (админ)
// @Tags results
// @Param year path int true "Tournament year"
// @Param resultID path int true "Result ID"
// @Success 204
// @Security BearerAuth
// @Router /tournaments/{year}/results/{resultID} [delete]
func (h *ResultHandler) DeleteResult(w http.ResponseWriter, r *http.Request) {
	year, err := getYearFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	resultID, err := getIDFromURL(r, "resultID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	actor, err := currentActor(r)
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	if err := h.resultService.Delete(r.Context(), year, resultID, actor); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadScorecard godoc
// @Summary Загрузить фото карточки счёта
// @Tags results
// @Accept multipart/form-data
// @Produce json
// @Param year path int true "Tournament year"
// @Param resultID path int true "Result ID"
// @Param scorecard formData file true "Scorecard photo"
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]string "Хранилище не настроено"
// @Security BearerAuth
// @Router /tournaments/{year}/results/{resultID}/scorecard [post]
func (h *ResultHandler) UploadScorecard(w http.ResponseWriter, r *http.Request) {
	year, err := getYearFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	resultID, err := getIDFromURL(r, "resultID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	actor, err := currentActor(r)
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxScorecardSize+(1<<20))
	if err := r.ParseMultipartForm(maxScorecardSize); err != nil {
		badRequestResponse(w, r, fmt.Errorf("failed to parse multipart form: %w", err))
		return
	}

	file, header, err := r.FormFile("scorecard")
	if err != nil {
		badRequestResponse(w, r, fmt.Errorf("failed to get scorecard file from form: %w", err))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		badRequestResponse(w, r, errors.New("content-type header is required for scorecard"))
		return
	}

	result, err := h.resultService.AttachScorecard(r.Context(), year, resultID, actor, file, contentType)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"result": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
