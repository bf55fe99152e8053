package infrastructure

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Desai0Aryan/finance-tracker/internal/finance/domain"
	"github.com/google/uuid"
)

// PostgresStore is the durable backend. It implements the same repository
// interfaces as MemoryStore; an insert sequence column reproduces the memory
// store's ordering (transactions newest-first, categories and goals in
// insertion order).
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the finance tables if they do not exist yet.
func (s *PostgresStore) EnsureSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS transactions (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		description TEXT NOT NULL,
		amount NUMERIC(14,2) NOT NULL,
		type TEXT NOT NULL,
		category TEXT NOT NULL,
		date TIMESTAMPTZ NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		position BIGSERIAL
	);
	CREATE TABLE IF NOT EXISTS categories (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		position BIGSERIAL
	);
	CREATE TABLE IF NOT EXISTS savings_goals (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		name TEXT NOT NULL,
		target_amount NUMERIC(14,2) NOT NULL,
		position BIGSERIAL
	);
	CREATE INDEX IF NOT EXISTS idx_transactions_user ON transactions (user_id);
	CREATE INDEX IF NOT EXISTS idx_categories_user ON categories (user_id);
	CREATE INDEX IF NOT EXISTS idx_savings_goals_user ON savings_goals (user_id);
	`
	_, err := s.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("could not create finance schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) SaveTransaction(transaction domain.Transaction) error {
	query := `INSERT INTO transactions (id, user_id, description, amount, type, category, date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := s.db.Exec(query,
		transaction.ID, transaction.UserID, transaction.Description, transaction.Amount,
		transaction.Type, transaction.Category, transaction.Date, transaction.Notes)
	return err
}

func (s *PostgresStore) DeleteTransaction(transactionID string) error {
	_, err := s.db.Exec("DELETE FROM transactions WHERE id = $1", transactionID)
	return err
}

func (s *PostgresStore) UpdateTransaction(transactionID string, patch domain.TransactionPatch) error {
	var set []string
	var args []interface{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Amount != nil {
		add("amount", *patch.Amount)
	}
	if patch.Type != nil {
		add("type", *patch.Type)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.Date != nil {
		add("date", *patch.Date)
	}
	if patch.Notes != nil {
		add("notes", *patch.Notes)
	}
	if len(set) == 0 {
		return nil
	}
	args = append(args, transactionID)
	query := fmt.Sprintf("UPDATE transactions SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))
	_, err := s.db.Exec(query, args...)
	return err
}

func (s *PostgresStore) FindTransactionsByUser(userID string) ([]domain.Transaction, error) {
	query := `SELECT id, user_id, description, amount, type, category, date, notes
		FROM transactions WHERE user_id = $1 ORDER BY position DESC`
	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Description, &t.Amount, &t.Type, &t.Category, &t.Date, &t.Notes); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func (s *PostgresStore) SaveCategory(category domain.Category) error {
	query := "INSERT INTO categories (id, user_id, name, type) VALUES ($1, $2, $3, $4)"
	_, err := s.db.Exec(query, category.ID, category.UserID, category.Name, category.Type)
	return err
}

func (s *PostgresStore) DeleteCategory(categoryID string) error {
	_, err := s.db.Exec("DELETE FROM categories WHERE id = $1", categoryID)
	return err
}

func (s *PostgresStore) UpdateCategory(categoryID string, patch domain.CategoryPatch) error {
	var set []string
	var args []interface{}
	if patch.Name != nil {
		args = append(args, *patch.Name)
		set = append(set, fmt.Sprintf("name = $%d", len(args)))
	}
	if patch.Type != nil {
		args = append(args, *patch.Type)
		set = append(set, fmt.Sprintf("type = $%d", len(args)))
	}
	if len(set) == 0 {
		return nil
	}
	args = append(args, categoryID)
	query := fmt.Sprintf("UPDATE categories SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))
	_, err := s.db.Exec(query, args...)
	return err
}

func (s *PostgresStore) FindCategoriesByUser(userID string) ([]domain.Category, error) {
	query := "SELECT id, user_id, name, type FROM categories WHERE user_id = $1 ORDER BY position ASC"
	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Type); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// EnsureDefaultCategories seeds defaults inside one transaction, serialized
// per user with an advisory lock so concurrent calls cannot both seed.
func (s *PostgresStore) EnsureDefaultCategories(userID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext($1))", userID); err != nil {
		return err
	}

	var count int
	if err := tx.QueryRow("SELECT COUNT(*) FROM categories WHERE user_id = $1", userID).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return tx.Commit()
	}

	for _, d := range domain.DefaultCategories {
		_, err := tx.Exec("INSERT INTO categories (id, user_id, name, type) VALUES ($1, $2, $3, $4)",
			uuid.NewString(), userID, d.Name, d.Type)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *PostgresStore) SaveGoal(goal domain.SavingsGoal) error {
	query := "INSERT INTO savings_goals (id, user_id, name, target_amount) VALUES ($1, $2, $3, $4)"
	_, err := s.db.Exec(query, goal.ID, goal.UserID, goal.Name, goal.TargetAmount)
	return err
}

func (s *PostgresStore) DeleteGoal(goalID string) error {
	_, err := s.db.Exec("DELETE FROM savings_goals WHERE id = $1", goalID)
	return err
}

func (s *PostgresStore) UpdateGoal(goalID string, patch domain.GoalPatch) error {
	var set []string
	var args []interface{}
	if patch.Name != nil {
		args = append(args, *patch.Name)
		set = append(set, fmt.Sprintf("name = $%d", len(args)))
	}
	if patch.TargetAmount != nil {
		args = append(args, *patch.TargetAmount)
		set = append(set, fmt.Sprintf("target_amount = $%d", len(args)))
	}
	if len(set) == 0 {
		return nil
	}
	args = append(args, goalID)
	query := fmt.Sprintf("UPDATE savings_goals SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))
	_, err := s.db.Exec(query, args...)
	return err
}

func (s *PostgresStore) FindGoalsByUser(userID string) ([]domain.SavingsGoal, error) {
	query := "SELECT id, user_id, name, target_amount FROM savings_goals WHERE user_id = $1 ORDER BY position ASC"
	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []domain.SavingsGoal
	for rows.Next() {
		var g domain.SavingsGoal
		if err := rows.Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}
