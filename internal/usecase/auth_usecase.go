package usecase

import (
	"context"
	"errors"

	"jobtrack/internal/domain/user"
	"jobtrack/internal/pkg/jwt"
	ucauth "jobtrack/internal/usecase/auth"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// AuthUsecase pairs the credential/profile service with token issuance. A
// fresh token is issued on every successful call because the name claim may
// change on profile update.
type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (user.User, string, error)
	Login(ctx context.Context, in ucauth.LoginInput) (user.User, string, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in ucauth.UpdateProfileInput) (user.User, string, error)
}

type Auth struct {
	authSvc *ucauth.Service
	jwt     jwt.Service
}

func NewAuthUsecase(authSvc *ucauth.Service, jwtSvc jwt.Service) *Auth {
	return &Auth{authSvc: authSvc, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (user.User, string, error) {
	usr, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return user.User{}, "", err
	}
	return u.withToken(usr)
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (user.User, string, error) {
	usr, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return user.User{}, "", err
	}
	return u.withToken(usr)
}

func (u *Auth) UpdateProfile(ctx context.Context, userID uuid.UUID, in ucauth.UpdateProfileInput) (user.User, string, error) {
	usr, err := u.authSvc.UpdateProfile(ctx, userID, in)
	if err != nil {
		return user.User{}, "", err
	}
	return u.withToken(usr)
}

func (u *Auth) withToken(usr user.User) (user.User, string, error) {
	token, err := u.jwt.Issue(usr.ID, usr.Name)
	if err != nil {
		return user.User{}, "", ErrInternal
	}
	return usr, token, nil
}
