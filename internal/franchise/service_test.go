package franchise

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/crustcraft/crustcraft-backend/pkg/enums"
	pkgerrors "github.com/crustcraft/crustcraft-backend/pkg/errors"
	"github.com/crustcraft/crustcraft-backend/pkg/logger"
)

func setupFranchiseTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS franchise_applications (
  id TEXT PRIMARY KEY,
  full_name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone TEXT NOT NULL,
  city TEXT NOT NULL,
  investment_range TEXT,
  message TEXT,
  status TEXT NOT NULL DEFAULT 'new',
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func newFranchiseService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Repo:   NewRepository(setupFranchiseTestDB(t)),
		Logger: logger.New(logger.Options{Output: io.Discard}),
	})
	require.NoError(t, err)
	return svc
}

func TestSubmitNormalizesFields(t *testing.T) {
	svc := newFranchiseService(t)

	application, err := svc.Submit(context.Background(), SubmitParams{
		FullName: "  Harpreet Kaur  ",
		Email:    " Harpreet@Example.IN ",
		Phone:    "+91 98765 12345",
		City:     "Zirakpur",
	})
	require.NoError(t, err)
	assert.Equal(t, "Harpreet Kaur", application.FullName)
	assert.Equal(t, "harpreet@example.in", application.Email)
	assert.Equal(t, enums.FranchiseStatusNew, application.Status)
}

func TestSubmitValidation(t *testing.T) {
	svc := newFranchiseService(t)

	_, err := svc.Submit(context.Background(), SubmitParams{FullName: "X", Email: "", Phone: "1", City: "Y"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestListFiltersByStatus(t *testing.T) {
	svc := newFranchiseService(t)
	ctx := context.Background()

	first, err := svc.Submit(ctx, SubmitParams{FullName: "A", Email: "a@x.in", Phone: "1", City: "Ambala"})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, SubmitParams{FullName: "B", Email: "b@x.in", Phone: "2", City: "Patiala"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, first.ID, enums.FranchiseStatusContacted)
	require.NoError(t, err)

	contacted, err := svc.List(ctx, "contacted")
	require.NoError(t, err)
	require.Len(t, contacted, 1)
	assert.Equal(t, first.ID, contacted[0].ID)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.List(ctx, "archived")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestUpdateStatus(t *testing.T) {
	svc := newFranchiseService(t)
	ctx := context.Background()

	application, err := svc.Submit(ctx, SubmitParams{FullName: "A", Email: "a@x.in", Phone: "1", City: "Ambala"})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, application.ID, enums.FranchiseStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, enums.FranchiseStatusApproved, updated.Status)

	_, err = svc.UpdateStatus(ctx, application.ID, enums.FranchiseStatus("archived"))
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	_, err = svc.UpdateStatus(ctx, uuid.New(), enums.FranchiseStatusRejected)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}
