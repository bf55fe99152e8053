package interfaces

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Desai0Aryan/finance-tracker/internal/finance/domain"
	financeErrors "github.com/Desai0Aryan/finance-tracker/internal/finance/errors"
	"github.com/stretchr/testify/assert"
)

func authenticatedRequest(method, target string, body []byte, userID string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	return req.WithContext(context.WithValue(req.Context(), "userID", userID))
}

func TestCreateTransaction_Success(t *testing.T) {
	var created *domain.Transaction
	service := &MockTransactionService{
		CreateFunc: func(transaction *domain.Transaction) error {
			transaction.ID = "generated-id"
			created = transaction
			return nil
		},
	}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	body, err := json.Marshal(map[string]interface{}{
		"description": "weekly groceries",
		"amount":      42.50,
		"type":        "expense",
		"category":    "Food",
		"date":        "2024-03-10",
		"notes":       "supermarket",
	})
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	handler.CreateTransaction(w, authenticatedRequest(http.MethodPost, "/api/transactions", body, "u1"))

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	assert.NotNil(t, created)
	assert.Equal(t, "u1", created.UserID)
	assert.Equal(t, "weekly groceries", created.Description)
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), created.Date)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "success", response["status"])
}

func TestCreateTransaction_InvalidDate(t *testing.T) {
	service := &MockTransactionService{
		CreateFunc: func(transaction *domain.Transaction) error {
			t.Fatal("service must not be called for a malformed date")
			return nil
		},
	}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(map[string]interface{}{
		"description": "weekly groceries",
		"amount":      42.50,
		"type":        "expense",
		"category":    "Food",
		"date":        "10/03/2024",
	})

	w := httptest.NewRecorder()
	handler.CreateTransaction(w, authenticatedRequest(http.MethodPost, "/api/transactions", body, "u1"))

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestCreateTransaction_ValidationErrorMapsTo400(t *testing.T) {
	service := &MockTransactionService{
		CreateFunc: func(transaction *domain.Transaction) error {
			return financeErrors.NewValidationError("Amount must be greater than zero")
		},
	}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(map[string]interface{}{
		"description": "bad amount",
		"amount":      -5,
		"type":        "expense",
		"category":    "Food",
		"date":        "2024-03-10",
	})

	w := httptest.NewRecorder()
	handler.CreateTransaction(w, authenticatedRequest(http.MethodPost, "/api/transactions", body, "u1"))

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "error", response["status"])
	assert.Equal(t, "Amount must be greater than zero", response["message"])
}

func TestCreateTransaction_MissingUserContext(t *testing.T) {
	handler := NewTransactionHandler(&MockTransactionService{}, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodPost, "/api/transactions", bytes.NewBufferString("{}"))
	w := httptest.NewRecorder()
	handler.CreateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestGetTransactions_Success(t *testing.T) {
	service := &MockTransactionService{
		ListFunc: func(userID string) ([]domain.Transaction, error) {
			assert.Equal(t, "u1", userID)
			return []domain.Transaction{
				{ID: "t2", UserID: "u1", Description: "second"},
				{ID: "t1", UserID: "u1", Description: "first"},
			}, nil
		},
	}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	w := httptest.NewRecorder()
	handler.GetTransactions(w, authenticatedRequest(http.MethodGet, "/api/transactions", nil, "u1"))

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Status       string               `json:"status"`
		Transactions []domain.Transaction `json:"transactions"`
	}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "success", response.Status)
	assert.Len(t, response.Transactions, 2)
	assert.Equal(t, "t2", response.Transactions[0].ID)
}

func TestUpdateTransaction_PassesPatchThrough(t *testing.T) {
	var gotID string
	var gotPatch domain.TransactionPatch
	service := &MockTransactionService{
		EditFunc: func(userID, transactionID string, patch domain.TransactionPatch) error {
			gotID = transactionID
			gotPatch = patch
			return nil
		},
	}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(map[string]interface{}{
		"amount": 99.99,
		"date":   "2024-04-01",
	})

	req := authenticatedRequest(http.MethodPut, "/api/transactions/t1", body, "u1")
	req.SetPathValue("transactionID", "t1")
	w := httptest.NewRecorder()
	handler.UpdateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	assert.Equal(t, "t1", gotID)
	assert.Nil(t, gotPatch.Description)
	assert.NotNil(t, gotPatch.Amount)
	assert.Equal(t, 99.99, *gotPatch.Amount)
	assert.NotNil(t, gotPatch.Date)
	assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), *gotPatch.Date)
}

func TestDeleteTransaction_Success(t *testing.T) {
	var deletedID string
	service := &MockTransactionService{
		DeleteFunc: func(userID, transactionID string) error {
			deletedID = transactionID
			return nil
		},
	}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	req := authenticatedRequest(http.MethodDelete, "/api/transactions/t1", nil, "u1")
	req.SetPathValue("transactionID", "t1")
	w := httptest.NewRecorder()
	handler.DeleteTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "t1", deletedID)
}
