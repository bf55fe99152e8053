package interfaces

import (
	"net/http"
	"strconv"

	"github.com/Desai0Aryan/finance-tracker/internal/finance/application"
	"github.com/Desai0Aryan/finance-tracker/internal/finance/domain"
)

const (
	defaultReportMonths = 6
	maxReportMonths     = 24
)

type ReportServiceInterface interface {
	GetSummary(userID string) (application.Summary, error)
	GetExpensesByCategory(userID string) ([]domain.CategoryAmount, error)
	GetMonthlyData(userID string, months int) ([]domain.MonthlySummary, error)
	GetGoalProgress(userID string) ([]application.GoalProgressReport, error)
}

type ReportHandler struct {
	service      ReportServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewReportHandler(
	service ReportServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *ReportHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &ReportHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *ReportHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summary, err := h.service.GetSummary(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to build summary")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"summary": summary,
	})
}

func (h *ReportHandler) GetExpensesByCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	breakdown, err := h.service.GetExpensesByCategory(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to build category breakdown")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "success",
		"categories": breakdown,
	})
}

func (h *ReportHandler) GetMonthlyData(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	months := defaultReportMonths
	if raw := r.URL.Query().Get("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxReportMonths {
			h.respondError(w, http.StatusBadRequest, "Invalid months parameter")
			return
		}
		months = parsed
	}

	data, err := h.service.GetMonthlyData(userID, months)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to build monthly data")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"months": data,
	})
}

func (h *ReportHandler) GetGoalProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	progress, err := h.service.GetGoalProgress(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to build goal progress")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"goals":  progress,
	})
}
