package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/jobtrack/internal/domain"
	"github.com/alexanderramin/jobtrack/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_CreateDefaultsToMember(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	svc := NewUserService(r.users)

	u := &domain.User{Name: " Lee ", Email: "lee@example.com"}
	require.NoError(t, svc.Create(ctx, u))
	assert.Equal(t, "Lee", u.Name)
	assert.Equal(t, domain.UserMember, u.Type)

	got, err := svc.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "lee@example.com", got.Email)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUserService_Validation(t *testing.T) {
	r := newRepos(t)
	svc := NewUserService(r.users)

	assert.Error(t, svc.Create(context.Background(), &domain.User{}))
	assert.Error(t, svc.Create(context.Background(), &domain.User{Name: "X", Type: "Boss"}))
}

func TestUserService_Delete(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	svc := NewUserService(r.users)
	u := &domain.User{Name: "Temp"}
	require.NoError(t, svc.Create(ctx, u))

	require.NoError(t, svc.Delete(ctx, u.ID))
	_, err := svc.GetByID(ctx, u.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
