package auth

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobtrack/internal/domain/user"
	"jobtrack/internal/pkg/password"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrMissingCredentials = errors.New("missing credentials")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("missing fields")
	ErrInternal           = errors.New("internal error")
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[a-zA-Z]{2,}$`)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	LastName string
	Location string
}

type LoginInput struct {
	Email    string
	Password string
}

type UpdateProfileInput struct {
	Email    string
	Name     string
	LastName string
	Location string
}

type Service struct {
	users user.Repository
	now   func() time.Time
}

func NewService(users user.Repository) *Service {
	return &Service{users: users, now: time.Now}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	name := strings.TrimSpace(in.Name)
	if !isValidName(name) {
		return user.User{}, ErrInvalidInput
	}

	email := normalizeEmail(in.Email)
	if !emailRe.MatchString(email) {
		return user.User{}, ErrInvalidInput
	}

	// The raw password, not a trimmed copy, is what gets hashed.
	if len(in.Password) < 6 {
		return user.User{}, ErrInvalidInput
	}

	lastName, ok := optionalField(in.LastName, user.DefaultLastName)
	if !ok {
		return user.User{}, ErrInvalidInput
	}
	location, ok := optionalField(in.Location, user.DefaultLocation)
	if !ok {
		return user.User{}, ErrInvalidInput
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return user.User{}, ErrInternal
	}

	now := s.now().UTC()
	u := user.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		LastName:     lastName,
		Location:     location,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return user.User{}, user.ErrEmailTaken
		}
		return user.User{}, ErrInternal
	}

	return sanitizeUser(u), nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, ErrMissingCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, ErrInternal
	}

	if !password.Verify(in.Password, u.PasswordHash) {
		return user.User{}, ErrInvalidCredentials
	}

	return sanitizeUser(u), nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	lastName := strings.TrimSpace(in.LastName)
	location := strings.TrimSpace(in.Location)

	if email == "" || name == "" || lastName == "" || location == "" {
		return user.User{}, ErrMissingFields
	}
	if !isValidName(name) || !emailRe.MatchString(email) {
		return user.User{}, ErrInvalidInput
	}
	if len(lastName) > 20 || len(location) > 20 {
		return user.User{}, ErrInvalidInput
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, ErrInternal
	}

	u.Email = email
	u.Name = name
	u.LastName = lastName
	u.Location = location
	u.UpdatedAt = s.now().UTC()

	if err := s.users.Update(ctx, u); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return user.User{}, user.ErrEmailTaken
		}
		return user.User{}, ErrInternal
	}

	return sanitizeUser(u), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidName(name string) bool {
	return len(name) >= 3 && len(name) <= 50
}

// optionalField trims and applies the default for empty values; a value over
// 20 characters is rejected.
func optionalField(v, def string) (string, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return def, true
	}
	if len(v) > 20 {
		return "", false
	}
	return v, true
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
