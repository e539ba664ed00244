package store

import (
	"context"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"patient-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }
func strPtr(v string) *string { return &v }

func input(name, email string, age int) models.PatientInput {
	return models.PatientInput{Name: strPtr(name), Email: email, Age: intPtr(age)}
}

// tickingClock advances one second on every call.
func tickingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	current := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Second)
		return current
	}
}

// newStoreFunc builds an empty backend whose created_at stamps come from now.
type newStoreFunc func(t *testing.T, now func() time.Time) PatientStore

// runPatientStoreContract checks the behaviour every backend must share.
func runPatientStoreContract(t *testing.T, newStore newStoreFunc) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("create and get", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t, tickingClock(base))

		created, err := s.Create(ctx, input("Jane", "jane@x.com", 40))
		require.NoError(t, err)
		assert.Equal(t, 1, created.ID)
		assert.True(t, base.Add(time.Second).Equal(created.CreatedAt))
		assert.Nil(t, created.Diagnosis)

		got, err := s.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "Jane", got.Name)
		assert.Equal(t, "jane@x.com", got.Email)
		assert.Equal(t, 40, got.Age)
		assert.Nil(t, got.Diagnosis)
		assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("empty name is stored", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t, nil)

		created, err := s.Create(ctx, input("", "anon@x.com", 30))
		require.NoError(t, err)
		got, err := s.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "", got.Name)
	})

	t.Run("sequential ids", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t, nil)
		for want := 1; want <= 3; want++ {
			p, err := s.Create(ctx, input("p", "p@x.com", 1))
			require.NoError(t, err)
			assert.Equal(t, want, p.ID)
		}
	})

	t.Run("get missing", func(t *testing.T) {
		s := newStore(t, nil)
		_, err := s.Get(context.Background(), 42)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update preserves created_at", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t, tickingClock(base))

		in := input("Jane", "jane@x.com", 40)
		in.Diagnosis = strPtr("flu")
		orig, err := s.Create(ctx, in)
		require.NoError(t, err)

		updated, err := s.Update(ctx, orig.ID, input("Jane Doe", "doe@x.com", 41))
		require.NoError(t, err)
		assert.Equal(t, orig.ID, updated.ID)
		assert.True(t, orig.CreatedAt.Equal(updated.CreatedAt))
		assert.Equal(t, "Jane Doe", updated.Name)
		assert.Equal(t, "doe@x.com", updated.Email)
		assert.Equal(t, 41, updated.Age)
		assert.Nil(t, updated.Diagnosis, "diagnosis is replaced, not merged")

		got, err := s.Get(ctx, orig.ID)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", got.Name)
		assert.Nil(t, got.Diagnosis)
		assert.True(t, orig.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("update missing", func(t *testing.T) {
		s := newStore(t, nil)
		_, err := s.Update(context.Background(), 7, input("x", "x@x.com", 1))
		assert.ErrorIs(t, err, ErrNotFound)

		list, err := s.List(context.Background(), 0, 10)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("list", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t, nil)
		for i := 1; i <= 15; i++ {
			_, err := s.Create(ctx, input(fmt.Sprintf("patient %d", i), fmt.Sprintf("p%d@x.com", i), i))
			require.NoError(t, err)
		}

		tests := []struct {
			name        string
			skip, limit int
			wantIDs     []int
		}{
			{name: "first page", skip: 0, limit: 10, wantIDs: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
			{name: "second page", skip: 10, limit: 10, wantIDs: []int{11, 12, 13, 14, 15}},
			{name: "past end", skip: 20, limit: 10, wantIDs: []int{}},
			{name: "zero limit", skip: 0, limit: 0, wantIDs: []int{}},
			{name: "middle", skip: 3, limit: 2, wantIDs: []int{4, 5}},
			{name: "max limit", skip: 3, limit: math.MaxInt, wantIDs: []int{4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := s.List(ctx, tt.skip, tt.limit)
				require.NoError(t, err)
				ids := make([]int, 0, len(got))
				for _, p := range got {
					ids = append(ids, p.ID)
				}
				assert.Equal(t, tt.wantIDs, ids)
			})
		}
	})
}
