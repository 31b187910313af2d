package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sebuszqo/BudgetManager/internal/budget/domain"
	budgetErrors "github.com/sebuszqo/BudgetManager/internal/budget/errors"
)

func TestGetCategories_Success(t *testing.T) {
	service := &MockCategoryService{
		Categories: []domain.Category{
			{ID: "cat-1", Name: "Travel"},
			{ID: "cat-2", Name: "Office Supplies"},
		},
	}
	handler := NewCategoryHandler(service, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rr := httptest.NewRecorder()
	handler.GetCategories(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response map[string]interface{}
	err := json.NewDecoder(rr.Body).Decode(&response)
	assert.NoError(t, err)
	data, ok := response["data"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, data, 2)
}

func TestCreateCategory_Success(t *testing.T) {
	service := &MockCategoryService{
		Category: &domain.Category{ID: "cat-1", Name: "Travel", Description: "Team travel"},
	}
	handler := NewCategoryHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(map[string]string{
		"name":        "Travel",
		"description": "Team travel",
	})
	req := authenticatedRequest(http.MethodPost, "/api/categories", body)
	rr := httptest.NewRecorder()
	handler.CreateCategory(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestCreateCategory_Duplicate(t *testing.T) {
	service := &MockCategoryService{Err: budgetErrors.ErrDuplicateCategory}
	handler := NewCategoryHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(map[string]string{"name": "Travel"})
	req := authenticatedRequest(http.MethodPost, "/api/categories", body)
	rr := httptest.NewRecorder()
	handler.CreateCategory(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestCreateCategory_EmptyName(t *testing.T) {
	service := &MockCategoryService{Err: budgetErrors.NewValidationError("category name must not be empty")}
	handler := NewCategoryHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(map[string]string{"name": ""})
	req := authenticatedRequest(http.MethodPost, "/api/categories", body)
	rr := httptest.NewRecorder()
	handler.CreateCategory(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRenameCategory_Success(t *testing.T) {
	service := &MockCategoryService{
		Category: &domain.Category{ID: "cat-1", Name: "Business Travel"},
	}
	handler := NewCategoryHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(map[string]string{"name": "Business Travel"})
	req := authenticatedRequest(http.MethodPut, "/api/categories/cat-1", body)
	req.SetPathValue("categoryID", "cat-1")
	rr := httptest.NewRecorder()
	handler.RenameCategory(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRenameCategory_Unauthorized(t *testing.T) {
	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodPut, "/api/categories/cat-1", nil)
	req.SetPathValue("categoryID", "cat-1")
	rr := httptest.NewRecorder()
	handler.RenameCategory(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestDeleteCategory_Referenced(t *testing.T) {
	service := &MockCategoryService{Err: budgetErrors.ErrCategoryReferenced}
	handler := NewCategoryHandler(service, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodDelete, "/api/categories/cat-1", nil)
	req.SetPathValue("categoryID", "cat-1")
	rr := httptest.NewRecorder()
	handler.DeleteCategory(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestDeleteCategory_Success(t *testing.T) {
	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodDelete, "/api/categories/cat-1", nil)
	req.SetPathValue("categoryID", "cat-1")
	rr := httptest.NewRecorder()
	handler.DeleteCategory(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
