package infrastructure

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Desai0Aryan/finance-tracker/internal/finance/domain"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres spins up a disposable database for the integration tests.
// Requires a working Docker daemon; skipped in short mode.
func startPostgres(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("financetracker"),
		postgres.WithUsername("financetracker"),
		postgres.WithPassword("financetracker"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, container.Terminate(ctx))
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Ping())
	return db
}

func TestPostgresStore_Integration(t *testing.T) {
	db := startPostgres(t)
	store := NewPostgresStore(db)
	require.NoError(t, store.EnsureSchema())

	userID := uuid.NewString()
	otherUserID := uuid.NewString()

	t.Run("transactions newest first", func(t *testing.T) {
		first := domain.Transaction{
			ID: uuid.NewString(), UserID: userID, Description: "first", Amount: 10.50,
			Type: domain.TypeExpense, Category: "Food",
			Date: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		}
		second := domain.Transaction{
			ID: uuid.NewString(), UserID: userID, Description: "second", Amount: 3000,
			Type: domain.TypeIncome, Category: "Salary",
			Date: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), Notes: "march pay",
		}
		foreign := domain.Transaction{
			ID: uuid.NewString(), UserID: otherUserID, Description: "foreign", Amount: 1,
			Type: domain.TypeExpense, Category: "Food",
			Date: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		}

		require.NoError(t, store.SaveTransaction(first))
		require.NoError(t, store.SaveTransaction(second))
		require.NoError(t, store.SaveTransaction(foreign))

		transactions, err := store.FindTransactionsByUser(userID)
		require.NoError(t, err)
		require.Len(t, transactions, 2)
		assert.Equal(t, "second", transactions[0].Description)
		assert.Equal(t, "first", transactions[1].Description)
		assert.Equal(t, 3000.0, transactions[0].Amount)
		assert.Equal(t, "march pay", transactions[0].Notes)
		assert.True(t, transactions[0].Date.Equal(second.Date))
	})

	t.Run("update merges only provided fields", func(t *testing.T) {
		transactions, err := store.FindTransactionsByUser(userID)
		require.NoError(t, err)
		target := transactions[1]

		newAmount := 99.99
		require.NoError(t, store.UpdateTransaction(target.ID, domain.TransactionPatch{Amount: &newAmount}))

		transactions, err = store.FindTransactionsByUser(userID)
		require.NoError(t, err)
		assert.Equal(t, 99.99, transactions[1].Amount)
		assert.Equal(t, target.Description, transactions[1].Description)
	})

	t.Run("delete is a silent no-op on unknown id", func(t *testing.T) {
		require.NoError(t, store.DeleteTransaction(uuid.NewString()))
	})

	t.Run("default categories seed once", func(t *testing.T) {
		require.NoError(t, store.EnsureDefaultCategories(userID))
		require.NoError(t, store.EnsureDefaultCategories(userID))

		categories, err := store.FindCategoriesByUser(userID)
		require.NoError(t, err)
		require.Len(t, categories, 8)
		assert.Equal(t, "Food", categories[0].Name)
		assert.Equal(t, domain.TypeExpense, categories[0].Type)
		assert.Equal(t, "Freelance", categories[7].Name)
		assert.Equal(t, domain.TypeIncome, categories[7].Type)
	})

	t.Run("goals round trip", func(t *testing.T) {
		goal := domain.SavingsGoal{ID: uuid.NewString(), UserID: userID, Name: "Vacation", TargetAmount: 5000}
		require.NoError(t, store.SaveGoal(goal))

		newTarget := 7500.0
		require.NoError(t, store.UpdateGoal(goal.ID, domain.GoalPatch{TargetAmount: &newTarget}))

		goals, err := store.FindGoalsByUser(userID)
		require.NoError(t, err)
		require.Len(t, goals, 1)
		assert.Equal(t, 7500.0, goals[0].TargetAmount)
		assert.Equal(t, "Vacation", goals[0].Name)

		require.NoError(t, store.DeleteGoal(goal.ID))
		goals, err = store.FindGoalsByUser(userID)
		require.NoError(t, err)
		assert.Empty(t, goals)
	})
}
