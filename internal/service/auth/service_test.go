package auth

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/chargehub/chargehub/internal/domain"
	"github.com/chargehub/chargehub/internal/mocks"
	"github.com/chargehub/chargehub/internal/ports"
)

func newTestService() (ports.AuthService, *mocks.MockUserRepository) {
	users := map[string]*domain.User{}
	repo := &mocks.MockUserRepository{
		SaveFunc: func(ctx context.Context, user *domain.User) error {
			stored := *user
			users[user.ID] = &stored
			return nil
		},
		FindByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			if user, ok := users[id]; ok {
				copied := *user
				return &copied, nil
			}
			return nil, ports.ErrNotFound
		},
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			for _, user := range users {
				if user.Email == email {
					copied := *user
					return &copied, nil
				}
			}
			return nil, ports.ErrNotFound
		},
	}
	svc := NewService(Config{Secret: "test-secret", TokenDuration: time.Hour}, repo, zap.NewNop())
	return svc, repo
}

func TestSignUpAndSignIn(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	user, err := svc.SignUp(ctx, "user@example.com", "hunter22", "Test User")
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}
	if user.Password == "hunter22" {
		t.Fatal("Password must not be stored in plain text")
	}

	token, signedIn, err := svc.SignIn(ctx, "user@example.com", "hunter22")
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	if token == "" {
		t.Error("Expected a session token")
	}
	if signedIn.ID != user.ID {
		t.Error("SignIn returned a different user")
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.SignUp(ctx, "user@example.com", "hunter22", "First"); err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}
	if _, err := svc.SignUp(ctx, "user@example.com", "other", "Second"); err != ErrEmailTaken {
		t.Errorf("Expected ErrEmailTaken, got %v", err)
	}
}

func TestSignInWrongPassword(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.SignUp(ctx, "user@example.com", "hunter22", "Test User"); err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	if _, _, err := svc.SignIn(ctx, "user@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Errorf("Expected ErrInvalidCredentials for a wrong password, got %v", err)
	}
	if _, _, err := svc.SignIn(ctx, "nobody@example.com", "hunter22"); err != ErrInvalidCredentials {
		t.Errorf("Expected ErrInvalidCredentials for an unknown email, got %v", err)
	}
}

func TestValidateToken(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	user, err := svc.SignUp(ctx, "user@example.com", "hunter22", "Test User")
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}
	token, _, err := svc.SignIn(ctx, "user@example.com", "hunter22")
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}

	resolved, err := svc.ValidateToken(ctx, token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if resolved.ID != user.ID {
		t.Error("Token resolved to a different user")
	}

	if _, err := svc.ValidateToken(ctx, "not-a-token"); err == nil {
		t.Error("Expected an error for a malformed token")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	ctx := context.Background()

	issuer, _ := newTestService()
	if _, err := issuer.SignUp(ctx, "user@example.com", "hunter22", "Test User"); err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}
	token, _, err := issuer.SignIn(ctx, "user@example.com", "hunter22")
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}

	verifier := NewService(Config{Secret: "other-secret", TokenDuration: time.Hour}, &mocks.MockUserRepository{}, zap.NewNop())
	if _, err := verifier.ValidateToken(ctx, token); err == nil {
		t.Error("Expected a token signed with a different secret to be rejected")
	}
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	user, err := svc.SignUp(ctx, "user@example.com", "hunter22", "Old Name")
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	updated, err := svc.UpdateProfile(ctx, user.ID, "New Name", "new@example.com")
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if updated.Name != "New Name" || updated.Email != "new@example.com" {
		t.Errorf("Expected updated fields, got %q / %q", updated.Name, updated.Email)
	}

	// Empty fields leave the current values in place.
	kept, err := svc.UpdateProfile(ctx, user.ID, "", "")
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if kept.Name != "New Name" || kept.Email != "new@example.com" {
		t.Error("Empty fields must not overwrite the profile")
	}

	if _, err := svc.UpdateProfile(ctx, "no-such-user", "Name", ""); err != ErrUserNotFound {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateProfileEmailCollision(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.SignUp(ctx, "first@example.com", "hunter22", "First"); err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}
	second, err := svc.SignUp(ctx, "second@example.com", "hunter22", "Second")
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	if _, err := svc.UpdateProfile(ctx, second.ID, "", "first@example.com"); err != ErrEmailTaken {
		t.Errorf("Expected ErrEmailTaken, got %v", err)
	}
}
