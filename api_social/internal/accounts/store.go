// Package accounts looks up the social accounts a user has linked.
package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"stratagix/pkg/clients"
	"stratagix/pkg/content"
)

// ErrAccountNotFound means the user has no linked account for the platform.
var ErrAccountNotFound = errors.New("social account not found")

// Account is a row of social_accounts.
type Account struct {
	ID          string
	ProfileID   string
	Platform    content.Platform
	AccessToken string
}

// Store finds the account a profile linked for a platform.
type Store interface {
	FindAccount(ctx context.Context, profileID string, platform content.Platform) (Account, error)
}

const findAccountQuery = `
	SELECT id, profile_id, platform, access_token
	FROM social_accounts
	WHERE profile_id = $1 AND platform = $2
	LIMIT 1`

// PostgresStore reads social_accounts through a retrying, circuit-broken executor.
type PostgresStore struct {
	db   *sql.DB
	exec *clients.Executor[Account]
}

func NewPostgresStore(db *sql.DB, exec *clients.Executor[Account]) *PostgresStore {
	if exec == nil {
		exec = clients.NewExecutor[Account](clients.DefaultExecutorConfig("social_accounts"))
	}
	return &PostgresStore{db: db, exec: exec}
}

func (s *PostgresStore) FindAccount(ctx context.Context, profileID string, platform content.Platform) (Account, error) {
	acct, err := s.exec.Get(ctx, func(ctx context.Context) (Account, error) {
		var a Account
		err := s.db.QueryRowContext(ctx, findAccountQuery, profileID, string(platform)).
			Scan(&a.ID, &a.ProfileID, &a.Platform, &a.AccessToken)
		if errors.Is(err, sql.ErrNoRows) {
			return Account{}, clients.Permanent(ErrAccountNotFound)
		}
		return a, err
	})
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return Account{}, ErrAccountNotFound
		}
		return Account{}, fmt.Errorf("find %s account: %w", platform, err)
	}
	return acct, nil
}

// MemoryStore keeps accounts in process. Used for local development and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]Account
}

func NewMemoryStore(accounts ...Account) *MemoryStore {
	s := &MemoryStore{accounts: make(map[string]Account, len(accounts))}
	for _, a := range accounts {
		s.Link(a)
	}
	return s
}

func memoryKey(profileID string, platform content.Platform) string {
	return profileID + "/" + string(platform)
}

// Link stores a, replacing any account for the same profile and platform.
func (s *MemoryStore) Link(a Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[memoryKey(a.ProfileID, a.Platform)] = a
}

func (s *MemoryStore) FindAccount(_ context.Context, profileID string, platform content.Platform) (Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[memoryKey(profileID, platform)]
	if !ok {
		return Account{}, ErrAccountNotFound
	}
	return a, nil
}
