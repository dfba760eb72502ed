package usecase

import (
	"context"
	"testing"
	"time"

	"jobtrack/internal/domain/user"
	"jobtrack/internal/pkg/jwt"
	ucauth "jobtrack/internal/usecase/auth"

	"github.com/google/uuid"
)

type memUserRepo struct {
	users map[uuid.UUID]user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[uuid.UUID]user.User{}}
}

func (m *memUserRepo) Create(_ context.Context, u user.User) error {
	for _, e := range m.users {
		if e.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	m.users[u.ID] = u
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *memUserRepo) Update(_ context.Context, u user.User) error {
	if _, ok := m.users[u.ID]; !ok {
		return user.ErrNotFound
	}
	m.users[u.ID] = u
	return nil
}

func TestRegisterTokenCarriesIdentity(t *testing.T) {
	jwtSvc := jwt.NewHMACService("test-secret", time.Hour)
	uc := NewAuthUsecase(ucauth.NewService(newMemUserRepo()), jwtSvc)

	usr, token, err := uc.Register(context.Background(), ucauth.RegisterInput{
		Name:     "alan",
		Email:    "alan@example.com",
		Password: "sekret",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	claims, err := jwtSvc.Verify(token)
	if err != nil {
		t.Fatalf("token issued at registration must verify: %v", err)
	}
	if claims.UserID != usr.ID {
		t.Fatalf("token user id %s does not match created user %s", claims.UserID, usr.ID)
	}
	if claims.Name != usr.Name {
		t.Fatalf("token name %q does not match user name %q", claims.Name, usr.Name)
	}
}

func TestUpdateProfileReissuesTokenWithNewName(t *testing.T) {
	jwtSvc := jwt.NewHMACService("test-secret", time.Hour)
	uc := NewAuthUsecase(ucauth.NewService(newMemUserRepo()), jwtSvc)

	usr, _, err := uc.Register(context.Background(), ucauth.RegisterInput{
		Name:     "alan",
		Email:    "alan@example.com",
		Password: "sekret",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, token, err := uc.UpdateProfile(context.Background(), usr.ID, ucauth.UpdateProfileInput{
		Email:    "alan@example.com",
		Name:     "alan turing",
		LastName: "turing",
		Location: "cambridge",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	claims, err := jwtSvc.Verify(token)
	if err != nil {
		t.Fatalf("reissued token must verify: %v", err)
	}
	if claims.Name != "alan turing" {
		t.Fatalf("reissued token must carry the new name, got %q", claims.Name)
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	jwtSvc := jwt.NewHMACService("test-secret", time.Hour)
	uc := NewAuthUsecase(ucauth.NewService(newMemUserRepo()), jwtSvc)

	usr, _, err := uc.Register(context.Background(), ucauth.RegisterInput{
		Name:     "alan",
		Email:    "alan@example.com",
		Password: "sekret",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, token, err := uc.Login(context.Background(), ucauth.LoginInput{Email: "alan@example.com", Password: "sekret"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	claims, err := jwtSvc.Verify(token)
	if err != nil {
		t.Fatalf("login token must verify: %v", err)
	}
	if claims.UserID != usr.ID {
		t.Fatalf("login token identifies the wrong user")
	}
}
