package application

import (
	"strings"

	"github.com/Desai0Aryan/finance-tracker/internal/finance/domain"
	financeErrors "github.com/Desai0Aryan/finance-tracker/internal/finance/errors"
	"github.com/google/uuid"
)

// CategoryService enforces the rules the repository deliberately leaves out:
// case-insensitive uniqueness per (user, name, type) and the ban on deleting
// a category still referenced by a transaction.
type CategoryService struct {
	repo         domain.CategoryRepository
	transactions domain.TransactionRepository
}

func NewCategoryService(repo domain.CategoryRepository, transactions domain.TransactionRepository) *CategoryService {
	return &CategoryService{repo: repo, transactions: transactions}
}

// GetUserCategories lazily seeds the default set the first time a user with
// no categories is seen, then returns the user's categories in insertion
// order.
func (s *CategoryService) GetUserCategories(userID string) ([]domain.Category, error) {
	if err := s.repo.EnsureDefaultCategories(userID); err != nil {
		return nil, err
	}
	return s.repo.FindCategoriesByUser(userID)
}

// CreateCategory assigns a fresh id and rejects duplicates of an existing
// (user, name, type) triple, comparing names case-insensitively.
func (s *CategoryService) CreateCategory(category *domain.Category) error {
	category.ID = uuid.NewString()
	if err := category.Validate(); err != nil {
		return err
	}

	duplicate, err := s.hasDuplicate(category.UserID, category.Name, category.Type, "")
	if err != nil {
		return err
	}
	if duplicate {
		return financeErrors.NewDuplicateEntityError("category", category.Name)
	}

	return s.repo.SaveCategory(*category)
}

// EditCategory merges the patch after re-running the duplicate check against
// the would-be name and type, excluding the category being edited. Renaming
// a category does not rewrite transactions that reference the old name; they
// keep their original category text.
func (s *CategoryService) EditCategory(userID, categoryID string, patch domain.CategoryPatch) error {
	if err := patch.Validate(); err != nil {
		return err
	}

	current, ok, err := s.findOwned(userID, categoryID)
	if err != nil || !ok {
		return err
	}

	name := current.Name
	categoryType := current.Type
	if patch.Name != nil {
		name = *patch.Name
	}
	if patch.Type != nil {
		categoryType = *patch.Type
	}

	duplicate, err := s.hasDuplicate(userID, name, categoryType, categoryID)
	if err != nil {
		return err
	}
	if duplicate {
		return financeErrors.NewDuplicateEntityError("category", name)
	}

	return s.repo.UpdateCategory(categoryID, patch)
}

// DeleteCategory removes the user's category unless a transaction still
// references it by name. Unknown or foreign ids are a silent no-op.
func (s *CategoryService) DeleteCategory(userID, categoryID string) error {
	category, ok, err := s.findOwned(userID, categoryID)
	if err != nil || !ok {
		return err
	}

	transactions, err := s.transactions.FindTransactionsByUser(userID)
	if err != nil {
		return err
	}
	for _, t := range transactions {
		if t.Category == category.Name {
			return financeErrors.NewEntityInUseError("category", category.Name)
		}
	}

	return s.repo.DeleteCategory(categoryID)
}

func (s *CategoryService) findOwned(userID, categoryID string) (domain.Category, bool, error) {
	categories, err := s.repo.FindCategoriesByUser(userID)
	if err != nil {
		return domain.Category{}, false, err
	}
	for _, c := range categories {
		if c.ID == categoryID {
			return c, true, nil
		}
	}
	return domain.Category{}, false, nil
}

func (s *CategoryService) hasDuplicate(userID, name, categoryType, excludeID string) (bool, error) {
	categories, err := s.repo.FindCategoriesByUser(userID)
	if err != nil {
		return false, err
	}
	for _, c := range categories {
		if c.ID != excludeID && c.Type == categoryType && strings.EqualFold(c.Name, name) {
			return true, nil
		}
	}
	return false, nil
}
