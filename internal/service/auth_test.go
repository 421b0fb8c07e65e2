package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mpetrov/recipebox/backend/internal/database"
	"github.com/mpetrov/recipebox/backend/internal/middleware"
)

func setupServiceDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func TestTokenRoundTrip(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewAuthService(db, "test-secret")

	user, token, err := svc.Register(context.Background(), "Ada", "ada@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	db := setupServiceDB(t)
	issuer := NewAuthService(db, "secret-one")
	verifier := NewAuthService(db, "secret-two")

	_, token, err := issuer.Register(context.Background(), "Ada", "ada@example.com", "secret123")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.ValidateToken("not-a-jwt")
	assert.Error(t, err)
}

func TestValidateTokenUnconfiguredVerifier(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewAuthService(db, "")

	_, err := svc.ValidateToken("anything")
	assert.ErrorIs(t, err, middleware.ErrVerifierUnavailable)
}

func TestLoginChecksPassword(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewAuthService(db, "test-secret")

	_, _, err := svc.Register(context.Background(), "Ada", "ada@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	user, token, err := svc.Login(context.Background(), "ada@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Ada", user.Name)
}

func TestRegisterDuplicate(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewAuthService(db, "test-secret")

	_, _, err := svc.Register(context.Background(), "Ada", "ada@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), "Other", "ada@example.com", "secret456")
	assert.ErrorIs(t, err, ErrEmailTaken)
}
