package interfaces

import (
	"github.com/Desai0Aryan/finance-tracker/internal/finance/domain"
)

type MockCategoryService struct {
	ListFunc   func(userID string) ([]domain.Category, error)
	CreateFunc func(category *domain.Category) error
	EditFunc   func(userID, categoryID string, patch domain.CategoryPatch) error
	DeleteFunc func(userID, categoryID string) error
}

func (m *MockCategoryService) GetUserCategories(userID string) ([]domain.Category, error) {
	if m.ListFunc == nil {
		panic("ListFunc not set")
	}
	return m.ListFunc(userID)
}

func (m *MockCategoryService) CreateCategory(category *domain.Category) error {
	if m.CreateFunc == nil {
		panic("CreateFunc not set")
	}
	return m.CreateFunc(category)
}

func (m *MockCategoryService) EditCategory(userID, categoryID string, patch domain.CategoryPatch) error {
	if m.EditFunc == nil {
		panic("EditFunc not set")
	}
	return m.EditFunc(userID, categoryID, patch)
}

func (m *MockCategoryService) DeleteCategory(userID, categoryID string) error {
	if m.DeleteFunc == nil {
		panic("DeleteFunc not set")
	}
	return m.DeleteFunc(userID, categoryID)
}
