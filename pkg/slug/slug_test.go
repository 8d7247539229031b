package slug

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"punctuation collapses", "Top 10: beaches, bars & bays!", "top-10-beaches-bars-bays"},
		{"accents transliterate", "Café à Séville", "cafe-a-seville"},
		{"leading trailing junk", "  --Hello--  ", "hello"},
		{"already clean", "tbilisi-old-town", "tbilisi-old-town"},
		{"all punctuation", "!!! ???", ""},
		{"empty", "", ""},
		{"uppercase mixed", "BAKU City Guide", "baku-city-guide"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.title))
		})
	}
}

func TestNormalize_CapsLength(t *testing.T) {
	long := ""
	for i := 0; i < 40; i++ {
		long += "word "
	}

	got := Normalize(long)

	assert.LessOrEqual(t, len(got), 100)
	assert.NotEqual(t, byte('-'), got[len(got)-1])
}

func TestAssign_FirstCandidateFree(t *testing.T) {
	a := NewAssigner(rand.New(rand.NewSource(1)))
	calls := 0

	got, err := a.Assign(context.Background(), "My First Trip", func(ctx context.Context, c string) (bool, error) {
		calls++
		return false, nil
	})

	require.NoError(t, err)
	assert.Equal(t, "my-first-trip", got)
	assert.Equal(t, 1, calls)
}

func TestAssign_RetriesWithSuffixOnCollision(t *testing.T) {
	// same seed on both sides predicts the suffixes the assigner will draw
	seed := int64(42)
	predict := rand.New(rand.NewSource(seed))
	_ = predict.Intn(1000) // first suffixed candidate, reported taken below
	want := fmt.Sprintf("my-trip-%d", predict.Intn(1000))

	a := NewAssigner(rand.New(rand.NewSource(seed)))
	calls := 0

	got, err := a.Assign(context.Background(), "My Trip", func(ctx context.Context, c string) (bool, error) {
		calls++
		return calls <= 2, nil // first two candidates taken, third free
	})

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 3, calls)
}

func TestAssign_Exhausted(t *testing.T) {
	a := NewAssigner(rand.New(rand.NewSource(7)))
	calls := 0

	_, err := a.Assign(context.Background(), "My Trip", func(ctx context.Context, c string) (bool, error) {
		calls++
		return true, nil
	})

	require.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 3, calls, "must stop after exactly 3 attempts")
}

func TestAssign_InvalidTitleFailsFast(t *testing.T) {
	a := NewAssigner(rand.New(rand.NewSource(1)))
	calls := 0

	_, err := a.Assign(context.Background(), "!!!", func(ctx context.Context, c string) (bool, error) {
		calls++
		return false, nil
	})

	require.ErrorIs(t, err, ErrInvalidTitle)
	assert.Zero(t, calls, "existence check must not run for an empty slug")
}

func TestAssign_PropagatesCheckError(t *testing.T) {
	a := NewAssigner(rand.New(rand.NewSource(1)))
	boom := errors.New("connection refused")

	_, err := a.Assign(context.Background(), "My Trip", func(ctx context.Context, c string) (bool, error) {
		return false, boom
	})

	require.ErrorIs(t, err, boom)
}
