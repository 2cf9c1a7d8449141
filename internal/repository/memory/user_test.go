package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/deppfellow/go-eventbooking/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(users []model.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.Name)
	}
	return out
}

func ptr[T any](v T) *T { return &v }

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	first, err := repo.Create(ctx, &model.User{Name: "Dana", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	second, err := repo.Create(ctx, &model.User{Name: "Eli"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	stored, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, *second, *stored)
}

func TestUserRepository_CreateUsesMaxPlusOne(t *testing.T) {
	ctx := context.Background()
	repo := NewSeededUserRepository()

	ok, err := repo.Delete(ctx, 3)
	require.NoError(t, err)
	require.True(t, ok)

	created, err := repo.Create(ctx, &model.User{Name: "Cara"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)

	ok, err = repo.Delete(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)

	created, err = repo.Create(ctx, &model.User{Name: "Dev"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), created.ID)
}

func TestUserRepository_CreateDoesNotAliasInput(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	in := &model.User{Name: "Dana"}
	_, err := repo.Create(ctx, in)
	require.NoError(t, err)

	in.Name = "changed"
	stored, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Dana", stored.Name)
}

func TestUserRepository_GetAllKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewSeededUserRepository()

	users, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ian", "Alice", "Brian"}, names(users))
	assert.Equal(t, int64(1), users[0].ID)
	assert.Equal(t, int64(3), users[2].ID)
}

func TestUserRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewSeededUserRepository()

	tests := []struct {
		name     string
		id       int64
		wantName string
	}{
		{name: "present", id: 2, wantName: "Alice"},
		{name: "absent", id: 42},
		{name: "zero", id: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := repo.GetByID(ctx, tt.id)
			require.NoError(t, err)
			if tt.wantName == "" {
				assert.Nil(t, u)
				return
			}
			require.NotNil(t, u)
			assert.Equal(t, tt.wantName, u.Name)
		})
	}
}

func TestUserRepository_Search(t *testing.T) {
	ctx := context.Background()
	repo := NewSeededUserRepository()

	tests := []struct {
		query string
		want  []string
	}{
		{query: "ian", want: []string{"Ian", "Brian"}},
		{query: "IAN", want: []string{"Ian", "Brian"}},
		{query: "al", want: []string{"Alice"}},
		{query: "zzz", want: []string{}},
		{query: "", want: []string{"Ian", "Alice", "Brian"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			users, err := repo.Search(ctx, tt.query)
			require.NoError(t, err)
			require.NotNil(t, users)
			assert.Equal(t, tt.want, names(users))
		})
	}
}

func TestUserRepository_GetByStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewSeededUserRepository()

	active, err := repo.GetByStatus(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ian", "Brian"}, names(active))

	inactive, err := repo.GetByStatus(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice"}, names(inactive))
}

func TestUserRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("absent id leaves collection unchanged", func(t *testing.T) {
		repo := NewSeededUserRepository()
		before, _ := repo.GetAll(ctx)

		ok, err := repo.Update(ctx, 99, model.UserPatch{Name: ptr("Nobody")})
		require.NoError(t, err)
		assert.False(t, ok)

		after, _ := repo.GetAll(ctx)
		assert.Equal(t, before, after)
	})

	t.Run("overwrites only specified fields", func(t *testing.T) {
		repo := NewSeededUserRepository()

		ok, err := repo.Update(ctx, 2, model.UserPatch{IsActive: ptr(true)})
		require.NoError(t, err)
		assert.True(t, ok)

		u, _ := repo.GetByID(ctx, 2)
		assert.Equal(t, model.User{ID: 2, Name: "Alice", IsActive: true}, *u)

		ok, err = repo.Update(ctx, 2, model.UserPatch{Name: ptr("Alicia")})
		require.NoError(t, err)
		assert.True(t, ok)

		u, _ = repo.GetByID(ctx, 2)
		assert.Equal(t, model.User{ID: 2, Name: "Alicia", IsActive: true}, *u)
	})
}

func TestUserRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("absent id leaves collection unchanged", func(t *testing.T) {
		repo := NewSeededUserRepository()

		ok, err := repo.Delete(ctx, 99)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 3, repo.users.len())
	})

	t.Run("removes exactly one", func(t *testing.T) {
		repo := NewSeededUserRepository()

		ok, err := repo.Delete(ctx, 2)
		require.NoError(t, err)
		assert.True(t, ok)

		users, _ := repo.GetAll(ctx)
		assert.Equal(t, []string{"Ian", "Brian"}, names(users))

		ok, err = repo.Delete(ctx, 2)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestUserRepository_ConcurrentCreateAssignsDistinctIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	const n = 100
	ids := make(chan int64, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			u, err := repo.Create(ctx, &model.User{Name: "racer"})
			if err == nil {
				ids <- u.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	for id := int64(1); id <= n; id++ {
		assert.True(t, seen[id])
	}
}
