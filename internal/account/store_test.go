package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/breinnndel/storefront/internal/shop"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(nil)
	require.NoError(t, err)
	for _, u := range []User{
		{Username: "admin", Password: "1234", Role: RoleAdmin},
		{Username: "user", Password: "pass", Role: RoleBuyer},
		{Username: "seller", Password: "sell", Role: RoleSeller},
	} {
		_, err := s.Add(u)
		require.NoError(t, err)
	}
	return s
}

func usernames(users []User) []string {
	names := make([]string, len(users))
	for i, u := range users {
		names[i] = u.Username
	}
	return names
}

func TestAuthenticate(t *testing.T) {
	s := newStore(t)

	u, err := s.Authenticate("seller", "sell")
	require.NoError(t, err)
	assert.Equal(t, RoleSeller, u.Role)

	_, err = s.Authenticate("seller", "wrong")
	require.ErrorIs(t, err, shop.ErrAuthFailure)
	assert.Equal(t, ErrMsgLoginFailed, err.Error())
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = s.Authenticate("nobody", "sell")
	require.ErrorIs(t, err, shop.ErrAuthFailure)
}

func TestAdd_RejectsDuplicatesAndBlanks(t *testing.T) {
	s := newStore(t)

	_, err := s.Add(User{Username: "user", Password: "other", Role: RoleBuyer})
	require.ErrorIs(t, err, shop.ErrInvalidInput)

	_, err = s.Add(User{Username: " ", Password: "x", Role: RoleBuyer})
	require.ErrorIs(t, err, shop.ErrInvalidInput)

	_, err = s.Add(User{Username: "ghost", Password: "x", Role: "guest"})
	require.ErrorIs(t, err, shop.ErrInvalidInput)

	added, err := s.Add(User{Username: "ana", Password: "pw", Role: RoleBuyer})
	require.NoError(t, err)
	assert.Equal(t, 4, added.Seq)
}

func TestList_RegistrationOrder(t *testing.T) {
	s := newStore(t)

	all, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"admin", "user", "seller"}, usernames(all))
	assert.Equal(t, "Username: user | Role: buyer", all[1].String())

	_, err = s.Add(User{Username: "bea", Password: "pw", Role: RoleBuyer})
	require.NoError(t, err)

	buyers, err := s.ListByRole(RoleBuyer)
	require.NoError(t, err)
	assert.Equal(t, []string{"user", "bea"}, usernames(buyers))

	sellers, err := s.ListByRole(RoleSeller)
	require.NoError(t, err)
	assert.Equal(t, []string{"seller"}, usernames(sellers))
}

func TestDelete(t *testing.T) {
	s := newStore(t)

	err := s.Delete("admin")
	require.ErrorIs(t, err, shop.ErrInvalidInput)
	assert.Equal(t, ErrMsgCannotDelete, err.Error())

	err = s.Delete("nobody")
	require.ErrorIs(t, err, shop.ErrNotFound)

	require.NoError(t, s.Delete("user"))
	_, err = s.Authenticate("user", "pass")
	require.ErrorIs(t, err, shop.ErrAuthFailure)

	all, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"admin", "seller"}, usernames(all))
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("buyer")
	require.NoError(t, err)
	assert.Equal(t, RoleBuyer, r)

	_, err = ParseRole("root")
	require.ErrorIs(t, err, shop.ErrInvalidInput)
}
