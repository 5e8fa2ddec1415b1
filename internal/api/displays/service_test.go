package displays

import (
	"context"
	"testing"

	"partner-ads/database"
	"partner-ads/database/databasetest"
	"partner-ads/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCreateDefaultsToActive(t *testing.T) {
	ctx := context.Background()
	s := NewService(databasetest.Open(t))

	d, err := s.Create(ctx, CreateInput{Name: "Hall A"})
	require.NoError(t, err)
	assert.True(t, d.Active)

	off, err := s.Create(ctx, CreateInput{Name: "Hall B", Active: ptr(false)})
	require.NoError(t, err)
	assert.False(t, off.Active)

	stored, err := s.Get(ctx, off.ID)
	require.NoError(t, err)
	assert.False(t, stored.Active)
}

func TestUpdateOnlySuppliedFields(t *testing.T) {
	ctx := context.Background()
	s := NewService(databasetest.Open(t))
	d, err := s.Create(ctx, CreateInput{Name: "Hall A", Location: ptr("Paris")})
	require.NoError(t, err)

	got, err := s.Update(ctx, d.ID, Patch{Active: ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, "Hall A", got.Name)
	assert.Equal(t, "Paris", *got.Location)
	assert.False(t, got.Active)

	_, err = s.Update(ctx, 77, Patch{Name: ptr("x")})
	assert.ErrorIs(t, err, database.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, 77), database.ErrNotFound)
}

func TestOwnerDeletionCascades(t *testing.T) {
	ctx := context.Background()
	db := databasetest.Open(t)
	s := NewService(db)

	owner := users.User{LastName: "P", FirstName: "Q", Email: "p@q.r", Role: users.RolePartner, Permissions: map[string]any{}, Active: true}
	require.NoError(t, db.Create(&owner).Error)
	_, err := s.Create(ctx, CreateInput{Name: "Hall A", OwnerID: &owner.ID})
	require.NoError(t, err)

	require.NoError(t, db.Delete(&users.User{}, owner.ID).Error)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
