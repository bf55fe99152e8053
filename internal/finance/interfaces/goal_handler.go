package interfaces

import (
	"encoding/json"
	"net/http"

	"github.com/Desai0Aryan/finance-tracker/internal/finance/domain"
)

type GoalServiceInterface interface {
	CreateGoal(goal *domain.SavingsGoal) error
	EditGoal(userID, goalID string, patch domain.GoalPatch) error
	DeleteGoal(userID, goalID string) error
	GetUserGoals(userID string) ([]domain.SavingsGoal, error)
}

type GoalHandler struct {
	service      GoalServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewGoalHandler(
	service GoalServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *GoalHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &GoalHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

type goalRequest struct {
	Name         string  `json:"name"`
	TargetAmount float64 `json:"target_amount"`
}

type goalPatchRequest struct {
	Name         *string  `json:"name"`
	TargetAmount *float64 `json:"target_amount"`
}

func (h *GoalHandler) GetGoals(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	goals, err := h.service.GetUserGoals(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve goals")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"goals":  goals,
	})
}

func (h *GoalHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	goal := domain.SavingsGoal{
		UserID:       userID,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
	}

	if err := h.service.CreateGoal(&goal); err != nil {
		h.respondError(w, statusForError(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Goal created successfully.",
		"goal":    goal,
	})
}

func (h *GoalHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	goalID := r.PathValue("goalID")
	if goalID == "" {
		h.respondError(w, http.StatusBadRequest, "Goal ID is required")
		return
	}

	var req goalPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	patch := domain.GoalPatch{Name: req.Name, TargetAmount: req.TargetAmount}
	if err := h.service.EditGoal(userID, goalID, patch); err != nil {
		h.respondError(w, statusForError(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Goal updated successfully.",
	})
}

func (h *GoalHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	goalID := r.PathValue("goalID")
	if goalID == "" {
		h.respondError(w, http.StatusBadRequest, "Goal ID is required")
		return
	}

	if err := h.service.DeleteGoal(userID, goalID); err != nil {
		h.respondError(w, statusForError(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Goal deleted successfully.",
	})
}
