package cart

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doceencanto/internal/models"
	"doceencanto/internal/storage"
)

func openTestStorage(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "cart.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRepositoryRoundTrip(t *testing.T) {
	store := openTestStorage(t)
	repo := NewStorageRepository(store)

	items := []models.CartItem{
		{Key: "k1", ProductID: "brig-tradicional", Name: "Brigadeiro", Price: decimal.NewFromFloat(4.5), Quantity: 2, Observation: "sem açúcar"},
		{Key: "k2", ProductID: "brownie-nutella", Name: "Brownie de Nutella", Price: decimal.NewFromFloat(14), Quantity: 1},
	}
	require.NoError(t, repo.Save("s1", items))

	loaded := repo.Load("s1")
	require.Len(t, loaded, 2)
	assert.Equal(t, "k1", loaded[0].Key)
	assert.Equal(t, "sem açúcar", loaded[0].Observation)
	assert.True(t, loaded[0].Price.Equal(decimal.NewFromFloat(4.5)))
	assert.Equal(t, 1, loaded[1].Quantity)
}

func TestRepositoryMissingSessionIsEmpty(t *testing.T) {
	repo := NewStorageRepository(openTestStorage(t))
	assert.Empty(t, repo.Load("never-seen"))
}

func TestRepositoryCorruptPayloadIsEmpty(t *testing.T) {
	store := openTestStorage(t)
	require.NoError(t, store.Put("s1", storage.CartKey, "{not json"))

	repo := NewStorageRepository(store)
	assert.Empty(t, repo.Load("s1"), "corrupt payload must degrade to an empty cart")
}

func TestStoreSurvivesReload(t *testing.T) {
	store := openTestStorage(t)
	repo := NewStorageRepository(store)

	first := NewStore(repo, "s1")
	line := first.AddItem(models.CartItem{ProductID: "trufa-maracuja", Name: "Trufa de Maracujá", Price: decimal.NewFromFloat(6)})
	first.UpdateQuantity(line.Key, 3)

	// a new store for the same session adopts the persisted lines
	second := NewStore(repo, "s1")
	assert.Equal(t, 3, second.TotalItems())
	assert.True(t, second.TotalPrice().Equal(decimal.NewFromFloat(18)))
}
