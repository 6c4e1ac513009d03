package account

import (
	"crypto/subtle"
	"fmt"
	"sort"

	"github.com/hashicorp/go-memdb"
	"go.uber.org/zap"

	"github.com/breinnndel/storefront/internal/shop"
)

const tableUsers = "users"

// Store is the memdb-backed Repository.
type Store struct {
	db     *memdb.MemDB
	logger *zap.Logger

	// seq is only touched while the memdb writer lock is held.
	seq int
}

var _ Repository = (*Store)(nil)

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableUsers: {
				Name: tableUsers,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Username"},
					},
					"role": {
						Name:    "role",
						Indexer: &memdb.StringFieldIndex{Field: "Role"},
					},
				},
			},
		},
	}
}

// NewStore creates an empty user store.
func NewStore(logger *zap.Logger) (*Store, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("create user store: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: db, logger: logger.Named("account")}, nil
}

// Authenticate returns the user whose credentials match.
func (s *Store) Authenticate(username, password string) (User, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tableUsers, "id", username)
	if err != nil {
		return User{}, fmt.Errorf("lookup user: %w", err)
	}
	if raw == nil {
		s.logger.Info("login failed", zap.String("username", username))
		return User{}, shop.New(shop.KindAuthFailure, ErrMsgLoginFailed)
	}
	u := raw.(*User)
	if subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) != 1 {
		s.logger.Info("login failed", zap.String("username", username))
		return User{}, shop.New(shop.KindAuthFailure, ErrMsgLoginFailed)
	}

	s.logger.Info("login succeeded", zap.String("username", username), zap.String("role", string(u.Role)))
	return *u, nil
}

// Add registers a new user. Usernames are unique.
func (s *Store) Add(user User) (User, error) {
	if err := shop.RequireNotBlank(user.Username, ErrMsgUsernameRequired); err != nil {
		return User{}, err
	}
	if err := shop.RequireNotBlank(user.Password, ErrMsgPasswordRequired); err != nil {
		return User{}, err
	}
	if _, err := ParseRole(string(user.Role)); err != nil {
		return User{}, err
	}

	txn := s.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(tableUsers, "id", user.Username)
	if err != nil {
		return User{}, fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return User{}, shop.Newf(shop.KindInvalidInput, ErrMsgUsernameTakenf, user.Username)
	}

	s.seq++
	user.Seq = s.seq
	if err := txn.Insert(tableUsers, &user); err != nil {
		s.seq--
		return User{}, fmt.Errorf("insert user %s: %w", user.Username, err)
	}
	txn.Commit()

	s.logger.Debug("user added", zap.String("username", user.Username), zap.String("role", string(user.Role)))
	return user, nil
}

// Delete removes a non-admin user.
func (s *Store) Delete(username string) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tableUsers, "id", username)
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}
	if raw == nil {
		return shop.NewNotFoundf(ErrMsgCannotDelete)
	}
	u := raw.(*User)
	if u.Role == RoleAdmin {
		s.logger.Warn("refused to delete admin", zap.String("username", username))
		return shop.NewInvalidInput(ErrMsgCannotDelete)
	}
	if err := txn.Delete(tableUsers, u); err != nil {
		return fmt.Errorf("delete user %s: %w", username, err)
	}
	txn.Commit()

	s.logger.Info("user deleted", zap.String("username", username))
	return nil
}

// List returns every user in registration order.
func (s *Store) List() ([]User, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableUsers, "id")
	if err != nil {
		return nil, fmt.Errorf("scan users: %w", err)
	}
	return collect(it), nil
}

// ListByRole returns the users holding role in registration order.
func (s *Store) ListByRole(role Role) ([]User, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableUsers, "role", string(role))
	if err != nil {
		return nil, fmt.Errorf("scan users by role: %w", err)
	}
	return collect(it), nil
}

func collect(it memdb.ResultIterator) []User {
	var users []User
	for raw := it.Next(); raw != nil; raw = it.Next() {
		users = append(users, *raw.(*User))
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Seq < users[j].Seq })
	return users
}
