package auth

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	pkgauth "github.com/crustcraft/crustcraft-backend/pkg/auth"
	"github.com/crustcraft/crustcraft-backend/pkg/config"
	pkgerrors "github.com/crustcraft/crustcraft-backend/pkg/errors"
	"github.com/crustcraft/crustcraft-backend/pkg/logger"
)

func setupAuthTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS admin_users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func testAuthConfig() (config.JWTConfig, config.PasswordConfig) {
	jwt := config.JWTConfig{Secret: "test-secret", Issuer: "crustcraft-test", ExpirationMinutes: 30}
	// Low-cost parameters keep the argon2id hashing fast in tests.
	password := config.PasswordConfig{
		ArgonMemoryKB:    8192,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
	return jwt, password
}

func newAuthService(t *testing.T) *Service {
	t.Helper()

	jwt, password := testAuthConfig()
	svc, err := NewService(ServiceParams{
		Repo:     NewRepository(setupAuthTestDB(t)),
		Logger:   logger.New(logger.Options{Output: io.Discard}),
		JWT:      jwt,
		Password: password,
	})
	require.NoError(t, err)
	return svc
}

func TestCreateAdminAndLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	admin, err := svc.CreateAdmin(ctx, " Ops@CrustCraft.IN ", "pizza-time-17")
	require.NoError(t, err)
	assert.Equal(t, "ops@crustcraft.in", admin.Email)
	assert.NotEqual(t, uuid.Nil, admin.ID)

	result, err := svc.Login(ctx, "ops@crustcraft.in", "pizza-time-17")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, result.AdminID)
	assert.NotEmpty(t, result.AccessToken)

	jwt, _ := testAuthConfig()
	claims, err := pkgauth.ParseAccessToken(jwt, result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.AdminID)
	assert.Equal(t, "ops@crustcraft.in", claims.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.CreateAdmin(ctx, "ops@crustcraft.in", "pizza-time-17")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "ops@crustcraft.in", "wrong-password")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeUnauthorized, pkgerrors.As(err).Code())

	_, err = svc.Login(ctx, "nobody@crustcraft.in", "pizza-time-17")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeUnauthorized, pkgerrors.As(err).Code())

	_, err = svc.Login(ctx, "", "")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestCreateAdminValidation(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.CreateAdmin(ctx, "not-an-email", "long-enough-pass")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	_, err = svc.CreateAdmin(ctx, "ops@crustcraft.in", "short")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	_, err = svc.CreateAdmin(ctx, "ops@crustcraft.in", "pizza-time-17")
	require.NoError(t, err)
	_, err = svc.CreateAdmin(ctx, "ops@crustcraft.in", "pizza-time-18")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeConflict, pkgerrors.As(err).Code())
}

func TestChangePassword(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	admin, err := svc.CreateAdmin(ctx, "ops@crustcraft.in", "pizza-time-17")
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, admin.ID, "wrong", "another-password")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeUnauthorized, pkgerrors.As(err).Code())

	require.NoError(t, svc.ChangePassword(ctx, admin.ID, "pizza-time-17", "another-password"))

	_, err = svc.Login(ctx, "ops@crustcraft.in", "another-password")
	require.NoError(t, err)
}
