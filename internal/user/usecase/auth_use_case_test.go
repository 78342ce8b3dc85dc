package usecase

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"orientalgroup/internal/domain"
	"orientalgroup/internal/dto"
	apperrors "orientalgroup/internal/errors"
)

type mockUserRepository struct {
	InsertFunc      func(ctx context.Context, user domain.User) (uint, error)
	FindByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc    func(ctx context.Context, id uint) (*domain.User, error)
	ListFunc        func(ctx context.Context) ([]domain.User, error)
	UpdateRoleFunc  func(ctx context.Context, id uint, role string) error
	DeleteFunc      func(ctx context.Context, id uint) error
}

func (m *mockUserRepository) Insert(ctx context.Context, user domain.User) (uint, error) {
	return m.InsertFunc(ctx, user)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.FindByEmailFunc(ctx, email)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	return m.ListFunc(ctx)
}

func (m *mockUserRepository) UpdateRole(ctx context.Context, id uint, role string) error {
	return m.UpdateRoleFunc(ctx, id, role)
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

type stubTokenIssuer struct{}

func (stubTokenIssuer) Issue(user *domain.User) (string, error) {
	return "token-" + user.Email, nil
}

func TestSignup_HashesPasswordAndDefaultsRole(t *testing.T) {
	var inserted domain.User
	repo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, apperrors.NewNotFoundError("user not found")
		},
		InsertFunc: func(ctx context.Context, user domain.User) (uint, error) {
			inserted = user
			return 3, nil
		},
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.User, error) {
			return &domain.User{ID: id, Name: inserted.Name, Email: inserted.Email, Role: inserted.Role, CreatedAt: time.Now()}, nil
		},
	}

	uc := NewAuthUseCase(repo, stubTokenIssuer{}, zap.NewNop())

	resp, err := uc.Signup(context.Background(), dto.SignupRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "s3cret99",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if inserted.PasswordHash == "s3cret99" {
		t.Fatal("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(inserted.PasswordHash), []byte("s3cret99")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
	if inserted.Role != domain.RoleUser {
		t.Errorf("expected default role %q, got %q", domain.RoleUser, inserted.Role)
	}
	if resp.Token == "" {
		t.Error("expected a token in the response")
	}
}

func TestSignup_DuplicateEmailConflicts(t *testing.T) {
	repo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 1, Email: email}, nil
		},
		InsertFunc: func(ctx context.Context, user domain.User) (uint, error) {
			t.Fatal("insert must not run for a duplicate email")
			return 0, nil
		},
	}

	uc := NewAuthUseCase(repo, stubTokenIssuer{}, zap.NewNop())

	_, err := uc.Signup(context.Background(), dto.SignupRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "s3cret99",
	})
	if _, ok := apperrors.IsConflictError(err); !ok {
		t.Errorf("expected ConflictError, got %v", err)
	}
}

func TestSignup_RacingDuplicateInsertConflicts(t *testing.T) {
	// A concurrent signup can land between the lookup and the insert; the
	// repository reports the unique-key hit as a conflict and it must
	// surface unchanged.
	repo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, apperrors.NewNotFoundError("user not found")
		},
		InsertFunc: func(ctx context.Context, user domain.User) (uint, error) {
			return 0, apperrors.NewConflictError("an account with this email already exists")
		},
	}

	uc := NewAuthUseCase(repo, stubTokenIssuer{}, zap.NewNop())

	_, err := uc.Signup(context.Background(), dto.SignupRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "s3cret99",
	})
	if _, ok := apperrors.IsConflictError(err); !ok {
		t.Errorf("expected ConflictError, got %v", err)
	}
}

func TestLogin_UnknownEmailAndWrongPasswordLookIdentical(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	unknown := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, apperrors.NewNotFoundError("user not found")
		},
	}
	wrongPassword := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 1, Email: email, PasswordHash: string(hash)}, nil
		},
	}

	var messages []string
	for _, repo := range []*mockUserRepository{unknown, wrongPassword} {
		uc := NewAuthUseCase(repo, stubTokenIssuer{}, zap.NewNop())
		_, err := uc.Login(context.Background(), dto.LoginRequest{
			Email:    "jane@example.com",
			Password: "wrong-password",
		})
		ue, ok := apperrors.IsUnauthorizedError(err)
		if !ok {
			t.Fatalf("expected UnauthorizedError, got %v", err)
		}
		messages = append(messages, ue.Message)
	}

	if messages[0] != messages[1] {
		t.Errorf("login failures must be indistinguishable: %q vs %q", messages[0], messages[1])
	}
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	repo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 1, Name: "Jane", Email: email, PasswordHash: string(hash), Role: domain.RoleAdmin}, nil
		},
	}

	uc := NewAuthUseCase(repo, stubTokenIssuer{}, zap.NewNop())

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "correct-password",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.User.Role != domain.RoleAdmin {
		t.Errorf("expected admin role, got %q", resp.User.Role)
	}
	if resp.Token != "token-jane@example.com" {
		t.Errorf("unexpected token: %q", resp.Token)
	}
}
