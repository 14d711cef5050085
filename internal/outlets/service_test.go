package outlets

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	pkgerrors "github.com/crustcraft/crustcraft-backend/pkg/errors"
	"github.com/crustcraft/crustcraft-backend/pkg/types"
)

func setupOutletsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS outlets (
  id TEXT PRIMARY KEY,
  key TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  phone TEXT NOT NULL,
  address TEXT,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func newOutletsService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Repo: NewRepository(setupOutletsTestDB(t))})
	require.NoError(t, err)
	return svc
}

func TestCreateAndListActive(t *testing.T) {
	svc := newOutletsService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateParams{
		Key:   "sector17",
		Name:  "CrustCraft Sector 17",
		Phone: "+919876500017",
		Address: types.Address{
			Line1: "SCO 42, Inner Market",
			City:  "Chandigarh",
		},
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.True(t, created.IsActive)

	list, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "sector17", list[0].Key)
}

func TestCreateRejectsDuplicateKey(t *testing.T) {
	svc := newOutletsService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateParams{Key: "sector17", Name: "A", Phone: "1"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateParams{Key: "sector17", Name: "B", Phone: "2"})
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeConflict, appErr.Code())
}

func TestCreateValidation(t *testing.T) {
	svc := newOutletsService(t)

	_, err := svc.Create(context.Background(), CreateParams{Key: " ", Name: "", Phone: ""})
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestUpdateDeactivatesOutlet(t *testing.T) {
	svc := newOutletsService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateParams{Key: "mohali", Name: "CrustCraft Mohali", Phone: "+919876500070"})
	require.NoError(t, err)

	inactive := false
	updated, err := svc.Update(ctx, created.ID, UpdateParams{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpdateNotFound(t *testing.T) {
	svc := newOutletsService(t)

	name := "Renamed"
	_, err := svc.Update(context.Background(), uuid.New(), UpdateParams{Name: &name})
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestDirectoryOnlyIncludesActiveOutlets(t *testing.T) {
	svc := newOutletsService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateParams{
		Key:     "sector17",
		Name:    "CrustCraft Sector 17",
		Phone:   "+919876500017",
		Address: types.Address{Line1: "SCO 42", City: "Chandigarh"},
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateParams{Key: "panchkula", Name: "CrustCraft Panchkula", Phone: "+919876500020"})
	require.NoError(t, err)

	inactive := false
	_, err = svc.Update(ctx, first.ID, UpdateParams{IsActive: &inactive})
	require.NoError(t, err)

	dir, err := svc.Directory(ctx)
	require.NoError(t, err)
	require.Len(t, dir, 1)

	entry, ok := dir["panchkula"]
	require.True(t, ok)
	assert.Equal(t, "CrustCraft Panchkula", entry.Name)
	assert.Equal(t, "+919876500020", entry.Phone)
}
