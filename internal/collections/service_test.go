package collections

import (
	"testing"
	"time"

	"github.com/mmcdole/cineflix/internal/domain"
	"github.com/mmcdole/cineflix/internal/log"
	"github.com/mmcdole/cineflix/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *time.Time) {
	t.Helper()
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	svc := NewService(storage.NewJSON(storage.NewMemoryStore(), log.NullLogger()), log.NullLogger())
	svc.now = func() time.Time { return now }
	return svc, &now
}

func TestCreateAndList(t *testing.T) {
	svc, now := newTestService(t)

	assert.Empty(t, svc.List())

	col, err := svc.Create("  Friday Night  ", "popcorn picks", true)
	require.NoError(t, err)
	assert.NotEmpty(t, col.ID)
	assert.Equal(t, "Friday Night", col.Name)
	assert.Equal(t, "popcorn picks", col.Description)
	assert.True(t, col.IsPublic)
	assert.NotNil(t, col.Items)
	assert.Equal(t, *now, col.CreatedAt)
	assert.Equal(t, *now, col.UpdatedAt)

	second, err := svc.Create("Docs", "", false)
	require.NoError(t, err)
	assert.NotEqual(t, col.ID, second.ID)

	cols := svc.List()
	require.Len(t, cols, 2)
	assert.Equal(t, "Friday Night", cols[0].Name)
	assert.Equal(t, "Docs", cols[1].Name)

	got, ok := svc.Get(second.ID)
	require.True(t, ok)
	assert.Equal(t, "Docs", got.Name)

	_, ok = svc.Get("missing")
	assert.False(t, ok)
}

func TestCreateRequiresName(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create("   ", "", false)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Empty(t, svc.List())
}

func TestUpdate(t *testing.T) {
	svc, now := newTestService(t)
	col, _ := svc.Create("Old", "", false)

	*now = now.Add(time.Hour)
	name, public := "New", true
	got, err := svc.Update(col.ID, &Update{Name: &name, IsPublic: &public})
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
	assert.True(t, got.IsPublic)
	assert.Equal(t, *now, got.UpdatedAt)
	assert.Equal(t, col.CreatedAt, got.CreatedAt)

	blank := " "
	_, err = svc.Update(col.ID, &Update{Name: &blank})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = svc.Update(col.ID, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = svc.Update("missing", &Update{Name: &name})
	assert.ErrorIs(t, err, domain.ErrCollectionNotFound)
}

func TestDelete(t *testing.T) {
	svc, _ := newTestService(t)
	a, _ := svc.Create("A", "", false)
	b, _ := svc.Create("B", "", false)

	require.NoError(t, svc.Delete(a.ID))
	require.NoError(t, svc.Delete("missing"))
	assert.ErrorIs(t, svc.Delete(""), domain.ErrInvalidArgument)

	cols := svc.List()
	require.Len(t, cols, 1)
	assert.Equal(t, b.ID, cols[0].ID)
}

func TestItems(t *testing.T) {
	svc, _ := newTestService(t)
	col, _ := svc.Create("Mixed", "", false)

	got, err := svc.AddItem(col.ID, 10, domain.ContentTypeMovie)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)

	got, err = svc.AddItem(col.ID, 10, domain.ContentTypeMovie)
	require.NoError(t, err)
	assert.Len(t, got.Items, 1, "adding twice is a no-op")

	got, err = svc.AddItem(col.ID, 10, domain.ContentTypeTV)
	require.NoError(t, err)
	assert.Len(t, got.Items, 2)

	other, _ := svc.Create("Other", "", false)
	_, _ = svc.AddItem(other.ID, 10, domain.ContentTypeTV)

	containing := svc.CollectionsContaining(10, domain.ContentTypeTV)
	require.Len(t, containing, 2)
	assert.Len(t, svc.CollectionsContaining(10, domain.ContentTypeMovie), 1)
	assert.Empty(t, svc.CollectionsContaining(99, domain.ContentTypeMovie))

	got, err = svc.RemoveItem(col.ID, 10, domain.ContentTypeMovie)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, domain.ContentTypeTV, got.Items[0].ContentType)

	_, err = svc.AddItem("missing", 1, domain.ContentTypeMovie)
	assert.ErrorIs(t, err, domain.ErrCollectionNotFound)

	_, err = svc.AddItem(col.ID, 0, domain.ContentTypeMovie)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = svc.RemoveItem(col.ID, 1, "book")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestListSurvivesMalformedStorage(t *testing.T) {
	kv := storage.NewMemoryStore()
	require.NoError(t, kv.Set(domain.KeyCollections, []byte(`{"broken"`)))
	svc := NewService(storage.NewJSON(kv, log.NullLogger()), log.NullLogger())

	assert.Empty(t, svc.List())
	_, err := svc.Create("Fresh", "", false)
	require.NoError(t, err)
	assert.Len(t, svc.List(), 1)
}
