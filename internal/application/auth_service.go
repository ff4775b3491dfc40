// internal/application/auth_service.go
package application

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/mahabubulhasibshawon/delivery-hub/internal/domain"
	"github.com/mahabubulhasibshawon/delivery-hub/internal/ports"
	"github.com/mahabubulhasibshawon/delivery-hub/pkg/auth"
)

// RegisterInput is what a new account supplies. Role defaults to sender.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Role     string
}

type AuthService struct {
	repo       ports.UserRepositoryPort
	tokens     *auth.Manager
	bcryptCost int
	logger     *log.Entry
	now        func() time.Time
}

func NewAuthService(repo ports.UserRepositoryPort, tokens *auth.Manager, bcryptCost int, logger *log.Entry) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	if logger == nil {
		logger = log.WithField("component", "auth")
	}
	return &AuthService{repo: repo, tokens: tokens, bcryptCost: bcryptCost, logger: logger, now: time.Now}
}

// Register creates the account and returns it together with a fresh token.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, string, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || in.Password == "" || strings.TrimSpace(in.Name) == "" {
		return nil, "", domain.ErrMissingFields
	}
	role := domain.Role(in.Role)
	if role == "" {
		role = domain.RoleSender
	}
	if !role.IsValid() {
		return nil, "", fmt.Errorf("%w: %q", domain.ErrInvalidRole, in.Role)
	}

	existing, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", domain.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	user := &domain.User{
		ID:           newUserID(now),
		Email:        email,
		PasswordHash: string(hashed),
		Name:         strings.TrimSpace(in.Name),
		Phone:        strings.TrimSpace(in.Phone),
		Role:         role,
		CreatedAt:    now.UTC(),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, user.Role.String())
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	s.logger.WithFields(log.Fields{"user_id": user.ID, "user_type": user.Role}).Info("user registered")
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, "", domain.ErrMissingFields
	}
	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}
	token, err := s.tokens.GenerateToken(user.ID, user.Email, user.Role.String())
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, userID)
	}
	return user, nil
}

// UpdateProfile changes the only mutable identity fields, name and phone.
func (s *AuthService) UpdateProfile(ctx context.Context, userID, name, phone string) (*domain.User, error) {
	name, phone = strings.TrimSpace(name), strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return nil, domain.ErrMissingFields
	}
	if err := s.repo.UpdateUserProfile(ctx, userID, name, phone); err != nil {
		return nil, err
	}
	return s.Profile(ctx, userID)
}

// newUserID returns "USR", five upper-case alphanumerics and the unix
// millisecond timestamp.
func newUserID(now time.Time) string {
	random := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:5]
	return "USR" + random + strconv.FormatInt(now.UnixMilli(), 10)
}
