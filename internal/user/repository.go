package user

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
)

var ErrUserNotFound = errors.New("user not found")

type Repository interface {
	Save(user User) error
	FindByEmail(email string) (*User, error)
	FindByID(userID string) (*User, error)
	Update(user User) error
}

// MemoryRepository keeps users in memory; it backs the memory data backend
// and the tests. Email lookups are case-insensitive.
type MemoryRepository struct {
	mu        sync.RWMutex
	byID      map[string]User
	idByEmail map[string]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:      make(map[string]User),
		idByEmail: make(map[string]string),
	}
}

func (r *MemoryRepository) Save(user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[user.ID] = user
	r.idByEmail[strings.ToLower(user.Email)] = user.ID
	return nil
}

func (r *MemoryRepository) FindByEmail(email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.idByEmail[strings.ToLower(email)]
	if !ok {
		return nil, ErrUserNotFound
	}
	u := r.byID[id]
	return &u, nil
}

func (r *MemoryRepository) FindByID(userID string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

func (r *MemoryRepository) Update(user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, ok := r.byID[user.ID]
	if !ok {
		return ErrUserNotFound
	}
	if !strings.EqualFold(old.Email, user.Email) {
		delete(r.idByEmail, strings.ToLower(old.Email))
		r.idByEmail[strings.ToLower(user.Email)] = user.ID
	}
	r.byID[user.ID] = user
	return nil
}

// PostgresRepository is the durable user store used with the postgres data
// backend.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_lower ON users (LOWER(email));
	`
	_, err := r.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("could not create users schema: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Save(user User) error {
	query := "INSERT INTO users (id, name, email, password_hash, created_at) VALUES ($1, $2, $3, $4, $5)"
	_, err := r.db.Exec(query, user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt)
	return err
}

func (r *PostgresRepository) FindByEmail(email string) (*User, error) {
	query := "SELECT id, name, email, password_hash, created_at FROM users WHERE LOWER(email) = LOWER($1)"
	return r.scanOne(r.db.QueryRow(query, email))
}

func (r *PostgresRepository) FindByID(userID string) (*User, error) {
	query := "SELECT id, name, email, password_hash, created_at FROM users WHERE id = $1"
	return r.scanOne(r.db.QueryRow(query, userID))
}

func (r *PostgresRepository) Update(user User) error {
	query := "UPDATE users SET name = $1, email = $2, password_hash = $3 WHERE id = $4"
	result, err := r.db.Exec(query, user.Name, user.Email, user.PasswordHash, user.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
