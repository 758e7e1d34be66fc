package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	customjwt "github.com/curioapp/curio-backend/internal/lib/jwt"
	"github.com/curioapp/curio-backend/internal/lib/password"
	"github.com/curioapp/curio-backend/internal/models"
	services "github.com/curioapp/curio-backend/internal/services/auth"
	"github.com/curioapp/curio-backend/internal/storage/repository"
)

// Мок для UserRepository
type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) CreateUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *UserRepoMock) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// Мок для jwt.Maker
type JwtMakerMock struct {
	mock.Mock
}

func (m *JwtMakerMock) GenerateToken(useruid, username string) (string, error) {
	args := m.Called(useruid, username)
	return args.String(0), args.Error(1)
}

func (m *JwtMakerMock) ParseToken(token string) (*customjwt.CustomClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customjwt.CustomClaims), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name       string
		data       services.RegisterData
		setupMocks func(r *UserRepoMock)
		wantErr    error
	}{
		{
			name: "successful registration with defaults",
			data: services.RegisterData{
				Username: "alice",
				Email:    "a@x.com",
				Password: "p1secret",
			},
			setupMocks: func(r *UserRepoMock) {
				r.On("CreateUser", mock.Anything, mock.MatchedBy(func(user models.User) bool {
					return user.Username == "alice" &&
						user.Email == "a@x.com" &&
						user.Fullname == "Anonymous" &&
						user.Gender == "unspecified" &&
						user.DOB == nil &&
						!user.IsAdmin &&
						user.AccStatus == 0 &&
						user.UID != "" &&
						password.CompareHash(user.PasswordHash, "p1secret") == nil
				})).Return("new-uid", nil).Once()
			},
		},
		{
			name: "explicit fields are kept",
			data: services.RegisterData{
				Fullname: "Alice Liddell",
				Username: "alice",
				DOB:      "1990-05-20",
				Gender:   "female",
				Email:    "a@x.com",
				Password: "p1secret",
			},
			setupMocks: func(r *UserRepoMock) {
				r.On("CreateUser", mock.Anything, mock.MatchedBy(func(user models.User) bool {
					return user.Fullname == "Alice Liddell" &&
						user.Gender == "female" &&
						user.DOB != nil &&
						user.DOB.Equal(time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC))
				})).Return("new-uid", nil).Once()
			},
		},
		{
			name: "duplicate username or email",
			data: services.RegisterData{
				Username: "alice",
				Email:    "a@x.com",
				Password: "p1secret",
			},
			setupMocks: func(r *UserRepoMock) {
				r.On("CreateUser", mock.Anything, mock.Anything).
					Return("", repository.ErrAlreadyExists).Once()
			},
			wantErr: services.ErrUserExists,
		},
		{
			name: "repository error",
			data: services.RegisterData{
				Username: "alice",
				Email:    "a@x.com",
				Password: "p1secret",
			},
			setupMocks: func(r *UserRepoMock) {
				r.On("CreateUser", mock.Anything, mock.Anything).
					Return("", errors.New("db error")).Once()
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			jwtMock := new(JwtMakerMock)
			tt.setupMocks(repo)
			svc := services.NewAuthService(repo, jwtMock, 5*time.Second)

			uid, err := svc.Register(context.Background(), tt.data)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				assert.Empty(t, uid)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "new-uid", uid)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := password.GetHash("p1secret")
	require.NoError(t, err)

	storedUser := &models.User{
		UID:          "user-uid-1",
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: hash,
	}

	tests := []struct {
		name       string
		email      string
		password   string
		setupMocks func(r *UserRepoMock, j *JwtMakerMock)
		wantToken  string
		wantErr    error
	}{
		{
			name:     "successful login",
			email:    "a@x.com",
			password: "p1secret",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "a@x.com").Return(storedUser, nil).Once()
				j.On("GenerateToken", "user-uid-1", "alice").Return("signed-token", nil).Once()
			},
			wantToken: "signed-token",
		},
		{
			name:     "wrong password",
			email:    "a@x.com",
			password: "wrong",
			setupMocks: func(r *UserRepoMock, _ *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "a@x.com").Return(storedUser, nil).Once()
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "nobody@x.com",
			password: "p1secret",
			setupMocks: func(r *UserRepoMock, _ *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "nobody@x.com").
					Return(nil, repository.ErrNotFound).Once()
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "repository error",
			email:    "a@x.com",
			password: "p1secret",
			setupMocks: func(r *UserRepoMock, _ *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "a@x.com").
					Return(nil, errors.New("db error")).Once()
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			jwtMock := new(JwtMakerMock)
			tt.setupMocks(repo, jwtMock)
			svc := services.NewAuthService(repo, jwtMock, 5*time.Second)

			username, token, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "alice", username)
				assert.Equal(t, tt.wantToken, token)
			}
			repo.AssertExpectations(t)
			jwtMock.AssertExpectations(t)
		})
	}
}
