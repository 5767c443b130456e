package reviews

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog map[string]bool

func (f fakeCatalog) Exists(isbn string) bool { return f[isbn] }

var books = fakeCatalog{"111": true, "222": true}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"upsert", PolicyUpsertOne, false},
		{"capped", PolicyCappedAppend, false},
		{"unlimited", PolicyUnlimited, false},
		{"", "", true},
		{"one-per-user", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePolicy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLedger_AddOrUpdate_UnknownBook(t *testing.T) {
	l := NewLedger(books, PolicyUnlimited, 0)

	_, err := l.AddOrUpdate("00000", "alice", "nope")
	assert.ErrorIs(t, err, ErrBookNotFound)

	_, err = l.List("00000")
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestLedger_UpsertPolicy_OverwritesExisting(t *testing.T) {
	l := NewLedger(books, PolicyUpsertOne, 0)

	first, err := l.AddOrUpdate("111", "alice", "Great book")
	require.NoError(t, err)

	second, err := l.AddOrUpdate("111", "alice", "Changed my mind")
	require.NoError(t, err)

	// Same review, updated in place.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Changed my mind", second.Text)

	list, err := l.List("111")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Changed my mind", list[0].Text)

	// Another user gets their own entry.
	_, err = l.AddOrUpdate("111", "bob", "Fine")
	require.NoError(t, err)
	list, err = l.List("111")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestLedger_CappedPolicy_EnforcesCap(t *testing.T) {
	l := NewLedger(books, PolicyCappedAppend, 3)

	for i := 0; i < 3; i++ {
		_, err := l.AddOrUpdate("111", "alice", "take")
		require.NoError(t, err)
	}

	_, err := l.AddOrUpdate("111", "alice", "one too many")
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	list, err := l.List("111")
	require.NoError(t, err)
	assert.Len(t, list, 3, "count must stay at the cap after a rejected submission")

	// The cap is per user per book: other users and other books are open.
	_, err = l.AddOrUpdate("111", "bob", "fresh")
	assert.NoError(t, err)
	_, err = l.AddOrUpdate("222", "alice", "different book")
	assert.NoError(t, err)
}

func TestLedger_CappedPolicy_DefaultCap(t *testing.T) {
	l := NewLedger(books, PolicyCappedAppend, 0)

	for i := 0; i < DefaultCap; i++ {
		_, err := l.AddOrUpdate("111", "alice", "take")
		require.NoError(t, err)
	}
	_, err := l.AddOrUpdate("111", "alice", "over")
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestLedger_UnlimitedPolicy(t *testing.T) {
	l := NewLedger(books, PolicyUnlimited, 0)

	for i := 0; i < 10; i++ {
		_, err := l.AddOrUpdate("111", "alice", "again")
		require.NoError(t, err)
	}
	list, err := l.List("111")
	require.NoError(t, err)
	assert.Len(t, list, 10)
}

func TestLedger_Update_OwnershipAndRefs(t *testing.T) {
	l := NewLedger(books, PolicyUnlimited, 0)

	r, err := l.AddOrUpdate("111", "bob", "original")
	require.NoError(t, err)

	// Alice holds a valid token but does not own Bob's review.
	_, err = l.Update("111", r.ID, "alice", "hijacked")
	assert.ErrorIs(t, err, ErrNotOwner)

	// The review is unchanged after the rejected attempt.
	list, err := l.List("111")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "original", list[0].Text)

	_, err = l.Update("111", "no-such-id", "bob", "text")
	assert.ErrorIs(t, err, ErrReviewNotFound)

	_, err = l.Update("00000", r.ID, "bob", "text")
	assert.ErrorIs(t, err, ErrBookNotFound)

	updated, err := l.Update("111", r.ID, "bob", "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Text)
	assert.Equal(t, r.ID, updated.ID)
}

func TestLedger_Delete_OwnershipAndRefs(t *testing.T) {
	l := NewLedger(books, PolicyUnlimited, 0)

	r, err := l.AddOrUpdate("111", "bob", "keep me")
	require.NoError(t, err)

	assert.ErrorIs(t, l.Delete("111", r.ID, "alice"), ErrNotOwner)
	assert.ErrorIs(t, l.Delete("111", "no-such-id", "bob"), ErrReviewNotFound)
	assert.ErrorIs(t, l.Delete("00000", r.ID, "bob"), ErrBookNotFound)

	require.NoError(t, l.Delete("111", r.ID, "bob"))
	list, err := l.List("111")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestLedger_IDsStableAcrossDeletes(t *testing.T) {
	l := NewLedger(books, PolicyUnlimited, 0)

	first, err := l.AddOrUpdate("111", "alice", "first")
	require.NoError(t, err)
	second, err := l.AddOrUpdate("111", "alice", "second")
	require.NoError(t, err)

	// Deleting the first entry must not invalidate the second's id.
	require.NoError(t, l.Delete("111", first.ID, "alice"))
	updated, err := l.Update("111", second.ID, "alice", "still addressable")
	require.NoError(t, err)
	assert.Equal(t, second.ID, updated.ID)
}

func TestLedger_DeleteByUser(t *testing.T) {
	l := NewLedger(books, PolicyUnlimited, 0)

	for i := 0; i < 3; i++ {
		_, err := l.AddOrUpdate("111", "alice", "mine")
		require.NoError(t, err)
	}
	_, err := l.AddOrUpdate("111", "bob", "his")
	require.NoError(t, err)

	removed, err := l.DeleteByUser("111", "alice")
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	list, err := l.List("111")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "bob", list[0].Username)

	removed, err = l.DeleteByUser("111", "nobody")
	require.NoError(t, err)
	assert.Zero(t, removed)

	_, err = l.DeleteByUser("00000", "alice")
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestLedger_Count(t *testing.T) {
	l := NewLedger(books, PolicyUnlimited, 0)
	assert.Zero(t, l.Count())

	_, err := l.AddOrUpdate("111", "alice", "a")
	require.NoError(t, err)
	_, err = l.AddOrUpdate("222", "bob", "b")
	require.NoError(t, err)

	assert.Equal(t, 2, l.Count())
}
