// internal/application/auth_service_test.go
package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/mahabubulhasibshawon/delivery-hub/internal/domain"
	"github.com/mahabubulhasibshawon/delivery-hub/internal/ports"
	"github.com/mahabubulhasibshawon/delivery-hub/pkg/auth"
)

func newTestAuthService(repo ports.UserRepositoryPort) (*AuthService, *auth.Manager) {
	tokens := auth.NewManager("test-secret", time.Hour)
	return NewAuthService(repo, tokens, bcrypt.MinCost, nil), tokens
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := ports.NewMockUserRepositoryPort(ctrl)
	svc, tokens := newTestAuthService(mockRepo)

	tests := []struct {
		name      string
		input     RegisterInput
		mockSetup func()
		wantErr   error
		wantRole  domain.Role
	}{
		{
			name:  "Successful signup defaults to sender",
			input: RegisterInput{Email: "Test@Example.com", Password: "password123", Name: "Test User", Phone: "1234567890"},
			mockSetup: func() {
				mockRepo.EXPECT().FindUserByEmail(gomock.Any(), "test@example.com").Return(nil, nil)
				mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantRole: domain.RoleSender,
		},
		{
			name:  "Successful partner signup",
			input: RegisterInput{Email: "rider@example.com", Password: "password123", Name: "Rider", Role: "delivery_partner"},
			mockSetup: func() {
				mockRepo.EXPECT().FindUserByEmail(gomock.Any(), "rider@example.com").Return(nil, nil)
				mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantRole: domain.RoleDeliveryPartner,
		},
		{
			name:      "Missing name",
			input:     RegisterInput{Email: "a@example.com", Password: "password123"},
			mockSetup: func() {},
			wantErr:   domain.ErrMissingFields,
		},
		{
			name:      "Unknown user type",
			input:     RegisterInput{Email: "a@example.com", Password: "password123", Name: "A", Role: "admin"},
			mockSetup: func() {},
			wantErr:   domain.ErrInvalidRole,
		},
		{
			name:  "Email already exists",
			input: RegisterInput{Email: "a@example.com", Password: "password123", Name: "A"},
			mockSetup: func() {
				mockRepo.EXPECT().FindUserByEmail(gomock.Any(), "a@example.com").Return(&domain.User{ID: "USR1"}, nil)
			},
			wantErr: domain.ErrEmailTaken,
		},
		{
			name:  "Repository error",
			input: RegisterInput{Email: "a@example.com", Password: "password123", Name: "A"},
			mockSetup: func() {
				mockRepo.EXPECT().FindUserByEmail(gomock.Any(), "a@example.com").Return(nil, nil)
				mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(domain.ErrEmailTaken)
			},
			wantErr: domain.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user, token, err := svc.Register(context.Background(), tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Register() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Register() unexpected error: %v", err)
			}
			if user.Role != tt.wantRole {
				t.Errorf("Register() role = %s, want %s", user.Role, tt.wantRole)
			}
			if !strings.HasPrefix(user.ID, "USR") || len(user.ID) != len("USR")+5+13 {
				t.Errorf("Register() id = %q, want USR + 5 chars + millis", user.ID)
			}
			if user.PasswordHash == tt.input.Password {
				t.Error("Register() stored the plain password")
			}
			if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.input.Password)); err != nil {
				t.Errorf("Register() hash does not match password: %v", err)
			}
			claims, err := tokens.ValidateToken(token)
			if err != nil {
				t.Fatalf("Register() token invalid: %v", err)
			}
			if claims.UserID != user.ID || claims.UserType != string(tt.wantRole) {
				t.Errorf("Register() claims = %+v, want id %s type %s", claims, user.ID, tt.wantRole)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := ports.NewMockUserRepositoryPort(ctrl)
	svc, _ := newTestAuthService(mockRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("securepass"), bcrypt.MinCost)
	stored := &domain.User{ID: "USR1", Email: "testuser@example.com", PasswordHash: string(hashed), Role: domain.RoleSender}

	tests := []struct {
		name      string
		email     string
		password  string
		mockSetup func()
		wantErr   error
	}{
		{
			name:     "Successful login",
			email:    "testuser@example.com",
			password: "securepass",
			mockSetup: func() {
				mockRepo.EXPECT().FindUserByEmail(gomock.Any(), "testuser@example.com").Return(stored, nil)
			},
		},
		{
			name:     "Invalid credentials",
			email:    "testuser@example.com",
			password: "wrongpass",
			mockSetup: func() {
				mockRepo.EXPECT().FindUserByEmail(gomock.Any(), "testuser@example.com").Return(stored, nil)
			},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name:     "User not found",
			email:    "nobody@example.com",
			password: "securepass",
			mockSetup: func() {
				mockRepo.EXPECT().FindUserByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)
			},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name:      "Missing password",
			email:     "testuser@example.com",
			mockSetup: func() {},
			wantErr:   domain.ErrMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user, token, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Login() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login() unexpected error: %v", err)
			}
			if user == nil || user.ID != "USR1" || token == "" {
				t.Errorf("Login() user = %v, token = %q", user, token)
			}
		})
	}
}

func TestAuthService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := ports.NewMockUserRepositoryPort(ctrl)
	svc, _ := newTestAuthService(mockRepo)

	gomock.InOrder(
		mockRepo.EXPECT().UpdateUserProfile(gomock.Any(), "USR1", "New Name", "555").Return(nil),
		mockRepo.EXPECT().FindUserByID(gomock.Any(), "USR1").Return(&domain.User{ID: "USR1", Name: "New Name", Phone: "555"}, nil),
	)

	user, err := svc.UpdateProfile(context.Background(), "USR1", " New Name ", "555")
	if err != nil {
		t.Fatalf("UpdateProfile() unexpected error: %v", err)
	}
	if user.Name != "New Name" || user.Phone != "555" {
		t.Errorf("UpdateProfile() = %+v", user)
	}

	if _, err := svc.UpdateProfile(context.Background(), "USR1", "", "555"); !errors.Is(err, domain.ErrMissingFields) {
		t.Errorf("UpdateProfile() error = %v, want ErrMissingFields", err)
	}
}

func TestAuthService_ProfileNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := ports.NewMockUserRepositoryPort(ctrl)
	svc, _ := newTestAuthService(mockRepo)

	mockRepo.EXPECT().FindUserByID(gomock.Any(), "USRGONE").Return(nil, nil)
	if _, err := svc.Profile(context.Background(), "USRGONE"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Profile() error = %v, want ErrNotFound", err)
	}
}
