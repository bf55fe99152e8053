package infrastructure

import (
	"sync"

	"github.com/Desai0Aryan/finance-tracker/internal/finance/domain"
	"github.com/google/uuid"
)

// MemoryStore holds every user's transactions, categories and savings goals
// in memory. Transactions are kept newest-first; categories and goals in
// insertion order. All mutations run under a single mutex, which also makes
// EnsureDefaults atomic against concurrent callers.
//
// It implements domain.TransactionRepository, domain.CategoryRepository and
// domain.GoalRepository.
type MemoryStore struct {
	mu           sync.RWMutex
	transactions []domain.Transaction
	categories   []domain.Category
	goals        []domain.SavingsGoal
	subscribers  []func()
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Subscribe registers a callback invoked after every mutation. Callbacks run
// outside the store lock and must not mutate the store synchronously.
func (s *MemoryStore) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *MemoryStore) notify() {
	s.mu.RLock()
	subs := append([]func(){}, s.subscribers...)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn()
	}
}

// SaveTransaction prepends, so FindTransactionsByUser returns newest-first.
func (s *MemoryStore) SaveTransaction(transaction domain.Transaction) error {
	s.mu.Lock()
	s.transactions = append([]domain.Transaction{transaction}, s.transactions...)
	s.mu.Unlock()
	s.notify()
	return nil
}

// DeleteTransaction removes the matching transaction. Unknown ids are a
// silent no-op.
func (s *MemoryStore) DeleteTransaction(transactionID string) error {
	s.mu.Lock()
	for i, t := range s.transactions {
		if t.ID == transactionID {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

// UpdateTransaction merges the patch into the matching transaction. Unknown
// ids are a silent no-op. ID and UserID never change.
func (s *MemoryStore) UpdateTransaction(transactionID string, patch domain.TransactionPatch) error {
	s.mu.Lock()
	for i := range s.transactions {
		if s.transactions[i].ID == transactionID {
			patch.Apply(&s.transactions[i])
			break
		}
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *MemoryStore) FindTransactionsByUser(userID string) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.Transaction
	for _, t := range s.transactions {
		if t.UserID == userID {
			result = append(result, t)
		}
	}
	return result, nil
}

// SaveCategory appends the category. Duplicate checks belong to the caller.
func (s *MemoryStore) SaveCategory(category domain.Category) error {
	s.mu.Lock()
	s.categories = append(s.categories, category)
	s.mu.Unlock()
	s.notify()
	return nil
}

// DeleteCategory removes the matching category without checking usage.
// Unknown ids are a silent no-op.
func (s *MemoryStore) DeleteCategory(categoryID string) error {
	s.mu.Lock()
	for i, c := range s.categories {
		if c.ID == categoryID {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *MemoryStore) UpdateCategory(categoryID string, patch domain.CategoryPatch) error {
	s.mu.Lock()
	for i := range s.categories {
		if s.categories[i].ID == categoryID {
			patch.Apply(&s.categories[i])
			break
		}
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *MemoryStore) FindCategoriesByUser(userID string) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.Category
	for _, c := range s.categories {
		if c.UserID == userID {
			result = append(result, c)
		}
	}
	return result, nil
}

// EnsureDefaultCategories seeds the default categories for a user that has
// none. The emptiness check and the inserts run under one lock acquisition,
// so two concurrent calls can never both seed.
func (s *MemoryStore) EnsureDefaultCategories(userID string) error {
	s.mu.Lock()
	for _, c := range s.categories {
		if c.UserID == userID {
			s.mu.Unlock()
			return nil
		}
	}
	for _, d := range domain.DefaultCategories {
		s.categories = append(s.categories, domain.Category{
			ID:     uuid.NewString(),
			UserID: userID,
			Name:   d.Name,
			Type:   d.Type,
		})
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *MemoryStore) SaveGoal(goal domain.SavingsGoal) error {
	s.mu.Lock()
	s.goals = append(s.goals, goal)
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *MemoryStore) DeleteGoal(goalID string) error {
	s.mu.Lock()
	for i, g := range s.goals {
		if g.ID == goalID {
			s.goals = append(s.goals[:i], s.goals[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *MemoryStore) UpdateGoal(goalID string, patch domain.GoalPatch) error {
	s.mu.Lock()
	for i := range s.goals {
		if s.goals[i].ID == goalID {
			patch.Apply(&s.goals[i])
			break
		}
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *MemoryStore) FindGoalsByUser(userID string) ([]domain.SavingsGoal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.SavingsGoal
	for _, g := range s.goals {
		if g.UserID == userID {
			result = append(result, g)
		}
	}
	return result, nil
}

// State is the full store content. Snapshot/Restore round-trip it exactly,
// including ordering, which is what the snapshot file persists.
type State struct {
	Transactions []domain.Transaction `json:"transactions"`
	Categories   []domain.Category    `json:"categories"`
	Goals        []domain.SavingsGoal `json:"goals"`
}

func (s *MemoryStore) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{
		Transactions: append([]domain.Transaction(nil), s.transactions...),
		Categories:   append([]domain.Category(nil), s.categories...),
		Goals:        append([]domain.SavingsGoal(nil), s.goals...),
	}
}

func (s *MemoryStore) Restore(state State) {
	s.mu.Lock()
	s.transactions = append([]domain.Transaction(nil), state.Transactions...)
	s.categories = append([]domain.Category(nil), state.Categories...)
	s.goals = append([]domain.SavingsGoal(nil), state.Goals...)
	s.mu.Unlock()
	s.notify()
}
