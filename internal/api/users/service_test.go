package users

import (
	"context"
	"testing"
	"time"

	"partner-ads/database"
	"partner-ads/database/databasetest"
	"partner-ads/internal/auth"
	du "partner-ads/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*Service, *auth.Issuer) {
	t.Helper()
	issuer := auth.NewIssuer("test-secret", time.Hour)
	return NewService(databasetest.Open(t), issuer, zap.NewNop()), issuer
}

func ptr[T any](v T) *T { return &v }

func createUser(t *testing.T, s *Service, email, password string) *du.User {
	t.Helper()
	u, err := s.Create(context.Background(), CreateInput{
		LastName:  "Durand",
		FirstName: "Alice",
		Email:     email,
		Password:  password,
		Role:      du.RolePartner,
	})
	require.NoError(t, err)
	return u
}

func TestCreateHashesPasswordAndSetsDefaults(t *testing.T) {
	s, _ := newTestService(t)
	u := createUser(t, s, "alice@example.com", "s3cret")

	require.NotNil(t, u.Password)
	assert.NotEqual(t, "s3cret", *u.Password)
	assert.True(t, u.CheckPassword("s3cret"))
	assert.True(t, u.Active)
	assert.NotNil(t, u.Permissions)
	assert.False(t, u.CreatedAt.IsZero())
}

func TestCreateRejectsUnknownRole(t *testing.T) {
	s, _ := newTestService(t)
	_, err := s.Create(context.Background(), CreateInput{LastName: "a", FirstName: "b", Email: "x@y.z", Role: "root"})
	assert.Error(t, err)
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	s, _ := newTestService(t)
	createUser(t, s, "dup@example.com", "")

	_, err := s.Create(context.Background(), CreateInput{LastName: "a", FirstName: "b", Email: "dup@example.com", Role: du.RoleClient})
	assert.Error(t, err)
}

func TestUpdateAppliesOnlySuppliedFields(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)
	u := createUser(t, s, "bob@example.com", "old")

	got, err := s.Update(ctx, u.ID, Patch{City: ptr("Lyon"), Password: ptr("new")})
	require.NoError(t, err)
	assert.Equal(t, "Lyon", *got.City)
	assert.Equal(t, "Durand", got.LastName)
	assert.Equal(t, du.RolePartner, got.Role)

	stored, err := s.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, stored.CheckPassword("new"))
	assert.False(t, stored.CheckPassword("old"))
}

func TestUpdateAndDeleteMissingUser(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)

	_, err := s.Update(ctx, 42, Patch{City: ptr("Paris")})
	assert.ErrorIs(t, err, database.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, 42), database.ErrNotFound)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	s, issuer := newTestService(t)
	u := createUser(t, s, "carol@example.com", "pa55")

	t.Run("correct password", func(t *testing.T) {
		res, err := s.Login(ctx, "carol@example.com", "pa55")
		require.NoError(t, err)
		assert.True(t, res.OK)
		assert.Equal(t, MsgLoginOK, res.Message)
		require.NotNil(t, res.User)
		assert.Equal(t, u.ID, res.User.ID)

		claims, err := issuer.Parse(res.Token)
		require.NoError(t, err)
		assert.Equal(t, u.ID, claims.UserID)
		assert.Equal(t, "partenaire", claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		res, err := s.Login(ctx, "carol@example.com", "nope")
		require.NoError(t, err)
		assert.False(t, res.OK)
		assert.Nil(t, res.User)
		assert.Empty(t, res.Token)
		assert.Equal(t, MsgWrongPassword, res.Message)
	})

	t.Run("unknown email", func(t *testing.T) {
		res, err := s.Login(ctx, "nobody@example.com", "pa55")
		require.NoError(t, err)
		assert.False(t, res.OK)
		assert.Equal(t, MsgUnknownUser, res.Message)
	})
}

func TestLoginAcceptsLegacyClearPassword(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)
	u := createUser(t, s, "legacy@example.com", "")
	require.NoError(t, s.db.Model(u).UpdateColumn("mot_de_passe", "plain").Error)

	res, err := s.Login(ctx, "legacy@example.com", "plain")
	require.NoError(t, err)
	assert.True(t, res.OK)
}

func TestLoginRefreshesLastLogin(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)
	createUser(t, s, "dave@example.com", "pw")

	later := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return later }

	res, err := s.Login(ctx, "dave@example.com", "pw")
	require.NoError(t, err)
	require.True(t, res.OK)

	stored, err := s.Get(ctx, res.User.ID)
	require.NoError(t, err)
	assert.True(t, later.Equal(stored.LastLogin), "got %s", stored.LastLogin)
}
