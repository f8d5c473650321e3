package storage

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/manav03panchal/commandkit/internal/errors"
	"github.com/manav03panchal/commandkit/internal/model"
)

// Helper to create an in-memory database for testing
func setupTestDB(t *testing.T) *DB {
	db, err := Open(Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// =============================================================================
// DB Tests
// =============================================================================

func TestOpenClose(t *testing.T) {
	t.Run("in_memory", func(t *testing.T) {
		db, err := Open(Options{InMemory: true})
		require.NoError(t, err)
		assert.NotNil(t, db.Badger())
		assert.Equal(t, "", db.Path())
		assert.NoError(t, db.Close())
	})

	t.Run("empty_path_uses_in_memory", func(t *testing.T) {
		db, err := Open(Options{Path: ""})
		require.NoError(t, err)
		assert.Equal(t, "", db.Path())
		db.Close()
	})

	t.Run("on_disk", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "db")
		db, err := Open(Options{Path: dir})
		require.NoError(t, err)
		assert.Equal(t, dir, db.Path())
		assert.NoError(t, db.Close())
	})
}

func TestDefaultPath(t *testing.T) {
	path := DefaultPath()
	assert.Contains(t, path, "commandkit")
	assert.Contains(t, path, "db")
}

// =============================================================================
// CRUD Tests
// =============================================================================

func TestCRUD(t *testing.T) {
	db := setupTestDB(t)

	obj := model.NewObject("crate")
	require.NoError(t, db.Set(obj))

	exists, err := db.Exists(obj.Key)
	require.NoError(t, err)
	assert.True(t, exists)

	loaded := &model.Object{}
	require.NoError(t, db.Get(obj.Key, loaded))
	assert.Equal(t, "crate", loaded.Name)
	assert.Equal(t, obj.Key, loaded.Key)

	require.NoError(t, db.Delete(obj.Key))
	err = db.Get(obj.Key, loaded)
	assert.True(t, IsErrKeyNotFound(err))

	exists, err = db.Exists(obj.Key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestListByPrefix(t *testing.T) {
	db := setupTestDB(t)
	for _, name := range []string{"b", "a", "c"} {
		require.NoError(t, db.Set(model.NewObject(name)))
	}

	keys, err := db.ListByPrefix(model.PrefixObject + ":")
	require.NoError(t, err)
	assert.Equal(t, []string{"object:a", "object:b", "object:c"}, keys)
}

func TestDBGetOrCreate(t *testing.T) {
	db := setupTestDB(t)
	key := model.GenerateObjectKey("crate")

	first, created, err := db.GetOrCreate(key, &model.Object{}, func() model.Model {
		return model.NewObject("crate")
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, key, first.GetKey())

	_, created, err = db.GetOrCreate(key, &model.Object{}, func() model.Model {
		t.Fatal("create must not run for an existing key")
		return nil
	})
	require.NoError(t, err)
	assert.False(t, created)
}

// =============================================================================
// ObjectRepo Tests
// =============================================================================

func TestObjectRepoCreate(t *testing.T) {
	repo := NewObjectRepo(setupTestDB(t))

	obj := &model.Object{Name: "crate"}
	require.NoError(t, repo.Create(obj))
	assert.Equal(t, "object:crate", obj.Key)

	err := repo.Create(&model.Object{Name: "crate"})
	assert.ErrorIs(t, err, errs.ErrObjectExists)
	assert.True(t, errs.IsUserError(err))
}

func TestObjectRepoGet(t *testing.T) {
	repo := NewObjectRepo(setupTestDB(t))

	obj := model.NewObject("crate")
	obj.Position = model.Vector{X: 1, Z: 2}
	obj.Label = "heavy"
	require.NoError(t, repo.Create(obj))

	loaded, err := repo.Get("crate")
	require.NoError(t, err)
	assert.Equal(t, model.Vector{X: 1, Z: 2}, loaded.Position)
	assert.Equal(t, "heavy", loaded.Label)
}

func TestObjectRepoGetNotFound(t *testing.T) {
	repo := NewObjectRepo(setupTestDB(t))

	_, err := repo.Get("nonexistent")
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestObjectRepoGetOrCreate(t *testing.T) {
	repo := NewObjectRepo(setupTestDB(t))

	obj, created, err := repo.GetOrCreate("crate")
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, obj.Position.IsZero())

	obj.Position = model.North
	require.NoError(t, repo.Update(obj))

	again, created, err := repo.GetOrCreate("crate")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, model.North, again.Position)
}

func TestObjectRepoUpdate(t *testing.T) {
	repo := NewObjectRepo(setupTestDB(t))
	obj := model.NewObject("crate")
	require.NoError(t, repo.Create(obj))
	created := obj.UpdatedAt

	obj.Position = model.East.Scale(3)
	require.NoError(t, repo.Update(obj))

	loaded, err := repo.Get("crate")
	require.NoError(t, err)
	assert.Equal(t, model.Vector{X: 3}, loaded.Position)
	assert.False(t, loaded.UpdatedAt.Before(created))
}

func TestObjectRepoDelete(t *testing.T) {
	repo := NewObjectRepo(setupTestDB(t))
	require.NoError(t, repo.Create(model.NewObject("crate")))

	require.NoError(t, repo.Delete("crate"))

	exists, err := repo.Exists("crate")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.ErrorIs(t, repo.Delete("crate"), errs.ErrObjectNotFound)
}

func TestObjectRepoList(t *testing.T) {
	repo := NewObjectRepo(setupTestDB(t))

	objs, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, objs)

	for _, name := range []string{"player", "crate"} {
		require.NoError(t, repo.Create(model.NewObject(name)))
	}

	objs, err = repo.List()
	require.NoError(t, err)
	require.Len(t, objs, 2)
	assert.Equal(t, "crate", objs[0].Name)
	assert.Equal(t, "player", objs[1].Name)
}

// =============================================================================
// Open Failure Tests
// =============================================================================

func TestOpenLocked(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")

	first, err := Open(Options{Path: dir})
	require.NoError(t, err)
	defer first.Close()

	_, err = Open(Options{Path: dir})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDatabaseLocked)
	assert.True(t, errs.IsSystemError(err))
}

// =============================================================================
// Disk Space Tests
// =============================================================================

func TestCheckDiskSpace(t *testing.T) {
	dir := t.TempDir()

	t.Run("no_minimum", func(t *testing.T) {
		assert.NoError(t, CheckDiskSpace(dir, 0))
	})

	t.Run("missing_directory_uses_parent", func(t *testing.T) {
		assert.NoError(t, CheckDiskSpace(filepath.Join(dir, "a", "b"), 0))
	})

	t.Run("impossible_minimum", func(t *testing.T) {
		err := CheckDiskSpace(dir, math.MaxUint64)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrDiskFull)
		assert.True(t, errs.IsSystemError(err))
	})
}

func TestGetDiskSpace(t *testing.T) {
	info, err := GetDiskSpace(t.TempDir())
	require.NoError(t, err)
	assert.Greater(t, info.TotalBytes, uint64(0))
	assert.Equal(t, info.TotalBytes-info.FreeBytes, info.UsedBytes)
	assert.GreaterOrEqual(t, info.FreePercent(), 0.0)
	assert.LessOrEqual(t, info.FreePercent(), 100.0)
}

func TestFreePercent(t *testing.T) {
	assert.Equal(t, 0.0, (&DiskSpaceInfo{}).FreePercent())
	assert.Equal(t, 25.0, (&DiskSpaceInfo{TotalBytes: 400, FreeBytes: 100}).FreePercent())
}

func TestIsDiskFullError(t *testing.T) {
	assert.False(t, IsDiskFullError(nil))
	assert.False(t, IsDiskFullError(errs.ErrDatabase))
	assert.False(t, IsDiskFullError(fmt.Errorf("write: %w", os.ErrPermission)))
}
