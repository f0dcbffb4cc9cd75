package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/markethub-api/internal/config"
	"github.com/markethub-api/internal/models"
	"github.com/markethub-api/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func setupUserAuthServiceTest(t *testing.T) (*UserAuthService, repository.UserRepository) {
	t.Helper()
	db := openServiceTestDB(t, &models.User{})
	cfg := &config.Config{
		Auth: config.AuthConfig{
			BcryptCost:             bcrypt.MinCost,
			AllowPlaintextFallback: true,
		},
		JWT: config.JWTConfig{
			SecretKey:   "unit-test-secret",
			ExpireHours: 1,
		},
	}
	userRepo := repository.NewUserRepository(db)
	return NewUserAuthService(cfg, userRepo), userRepo
}

func TestRegisterHashesPasswordAndNormalizesEmail(t *testing.T) {
	svc, userRepo := setupUserAuthServiceTest(t)

	user, err := svc.Register(RegisterInput{
		Username:  "alice",
		Email:     "  Alice@Example.COM ",
		Password:  "s3cret-pass",
		FirstName: "Alice",
		LastName:  "Smith",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email want alice@example.com got %s", user.Email)
	}

	stored, err := userRepo.GetByEmail("alice@example.com")
	if err != nil {
		t.Fatalf("fetch stored user failed: %v", err)
	}
	if stored == nil {
		t.Fatalf("stored user missing")
	}
	if !strings.HasPrefix(stored.Password, "$2") {
		t.Fatalf("stored password should be a bcrypt hash, got %q", stored.Password)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret-pass")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestRegisterRejectsDuplicateEmailAndUsername(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	input := RegisterInput{Username: "bob", Email: "bob@example.com", Password: "pw123456"}
	if _, err := svc.Register(input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	dupEmail := input
	dupEmail.Username = "bob2"
	if _, err := svc.Register(dupEmail); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("duplicate email want ErrEmailTaken got %v", err)
	}

	dupUsername := input
	dupUsername.Email = "bob2@example.com"
	if _, err := svc.Register(dupUsername); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("duplicate username want ErrUsernameTaken got %v", err)
	}
}

func TestLoginIssuesTokenAndRejectsBadCredentials(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	if _, err := svc.Register(RegisterInput{Username: "carol", Email: "carol@example.com", Password: "pw123456"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login("carol@example.com", "pw123456")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("login should issue a token")
	}
	claims, err := svc.ParseUserJWT(result.Token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.Email != "carol@example.com" {
		t.Fatalf("claims email want carol@example.com got %s", claims.Email)
	}

	if _, err := svc.Login("carol@example.com", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password want ErrInvalidCredentials got %v", err)
	}
	if _, err := svc.Login("nobody@example.com", "pw123456"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email want ErrInvalidCredentials got %v", err)
	}
	if _, err := svc.Login("", ""); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("empty credentials want ErrMissingCredentials got %v", err)
	}
}

func TestLoginPlaintextFallbackIsGated(t *testing.T) {
	svc, userRepo := setupUserAuthServiceTest(t)

	// Mirrors the seeded demo account, whose password is stored unhashed.
	if err := userRepo.Create(&models.User{
		Username: "legacy",
		Email:    "legacy@example.com",
		Password: "password123",
	}); err != nil {
		t.Fatalf("create legacy user failed: %v", err)
	}

	if _, err := svc.Login("legacy@example.com", "password123"); err != nil {
		t.Fatalf("fallback login failed: %v", err)
	}

	svc.cfg.Auth.AllowPlaintextFallback = false
	if _, err := svc.Login("legacy@example.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("disabled fallback want ErrInvalidCredentials got %v", err)
	}
}
