package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testCategoriesJSON = `[
	{"id": "Carpas", "name": "Carpas", "slug": "carpas", "featured": true},
	{"id": "Pistas de Baile", "name": "Pistas de Baile", "slug": "pistas-de-baile"}
]`

const testWeddingJSON = `{
	"venue": {"name": "Quinta El Refugio", "basePrice": 20000, "basePax": 150, "pricePerExtraPax": 50},
	"packages": [{"id": "esencial", "name": "Esencial", "basePrice": {"150": 25000}}],
	"addOns": [{"id": "faroles", "name": "Faroles", "price": 7500}],
	"guestCountOptions": [150, 200]
}`

const testCarpasJSON = `[
	{"id": "carpa transparente", "name": "Carpa Transparente", "category": "Carpas"},
	{"id": "carpa alemana", "name": "Carpa Alemana", "category": "Carpas"}
]`

func writeContentDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func TestStoreLoad(t *testing.T) {
	dir := writeContentDir(t, map[string]string{
		"categories.json": testCategoriesJSON,
		"bodas.json":      testWeddingJSON,
		"carpas.json":     testCarpasJSON,
	})

	store := NewStore(dir, nil)
	snap, err := store.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Categories, 2)
	require.Equal(t, "Carpas", snap.Categories[0].ID)
	require.True(t, snap.Categories[0].Featured)

	require.Equal(t, "Quinta El Refugio", snap.Wedding.Venue.Name)
	require.Equal(t, []int{150, 200}, snap.Wedding.GuestCountOptions)

	carpas := snap.Products("carpas")
	require.Len(t, carpas, 2)
	require.Equal(t, "carpa transparente", carpas[0].ID)
}

func TestStoreLoadMissingProductFileDegrades(t *testing.T) {
	dir := writeContentDir(t, map[string]string{
		"categories.json": testCategoriesJSON,
		"bodas.json":      testWeddingJSON,
	})

	store := NewStore(dir, nil)
	snap, err := store.Load(context.Background())
	require.NoError(t, err)

	for _, key := range StorageKeys {
		require.Empty(t, snap.Products(key), "key %s", key)
	}
}

func TestStoreLoadMissingCategoriesFails(t *testing.T) {
	dir := writeContentDir(t, map[string]string{
		"bodas.json": testWeddingJSON,
	})

	_, err := NewStore(dir, nil).Load(context.Background())
	require.Error(t, err)
}

func TestStoreLoadMissingWeddingDataFails(t *testing.T) {
	dir := writeContentDir(t, map[string]string{
		"categories.json": testCategoriesJSON,
	})

	_, err := NewStore(dir, nil).Load(context.Background())
	require.Error(t, err)
}

func TestStoreLoadCaches(t *testing.T) {
	dir := writeContentDir(t, map[string]string{
		"categories.json": testCategoriesJSON,
		"bodas.json":      testWeddingJSON,
	})

	store := NewStore(dir, nil)
	first, err := store.Load(context.Background())
	require.NoError(t, err)

	// A second load returns the cached snapshot even if the directory
	// disappears underneath us.
	require.NoError(t, os.RemoveAll(dir))
	second, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Same(t, first, second)
}

func TestStorePing(t *testing.T) {
	dir := writeContentDir(t, map[string]string{
		"categories.json": testCategoriesJSON,
		"bodas.json":      testWeddingJSON,
	})

	store := NewStore(dir, nil)
	require.NoError(t, store.Ping(context.Background()))

	missing := NewStore(filepath.Join(dir, "nope"), nil)
	require.Error(t, missing.Ping(context.Background()))
}

func TestAllProductsIterationOrder(t *testing.T) {
	snap, err := NewSnapshot(
		[]Category{{ID: "Carpas", Name: "Carpas", Slug: "carpas"}},
		map[string][]Product{
			"pistas": {{ID: "pista charol negro"}},
			"carpas": {{ID: "carpa transparente"}, {ID: "carpa alemana"}},
		},
		WeddingPackageData{},
	)
	require.NoError(t, err)

	all := snap.AllProducts()
	require.Equal(t, []string{"carpa transparente", "carpa alemana", "pista charol negro"}, []string{
		all[0].ID, all[1].ID, all[2].ID,
	})
}

func TestLookupStorageKeyIsLiteral(t *testing.T) {
	key, ok := LookupStorageKey("Graderías")
	require.False(t, ok, "lookup must not normalize, got %q", key)

	key, ok = LookupStorageKey("graderías")
	require.True(t, ok)
	require.Equal(t, "graderias", key)
}
