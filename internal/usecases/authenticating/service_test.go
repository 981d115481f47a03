package authenticating

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/estate-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/estate-dashboard-api/internal/config"
	"github.com/vfg2006/estate-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{Secret: "segredo-de-teste"},
	}
}

func TestService_RegisterUser(t *testing.T) {
	tests := []struct {
		name     string
		request  *domain.RegisterUserRequest
		setup    func(userRepo *mocks.MockUserRepository)
		validate func(t *testing.T, user *domain.User, err error)
	}{
		{
			name: "Cadastro sem role vira comprador",
			request: &domain.RegisterUserRequest{
				Name:     "Ana",
				Email:    "Ana@Example.com",
				Password: "senha123",
			},
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("ana@example.com").Return(nil, nil)
				userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(
					func(user *domain.User) (*domain.User, error) {
						user.ID = 1
						return user, nil
					})
			},
			validate: func(t *testing.T, user *domain.User, err error) {
				require.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, domain.RoleBuyer, user.Role)
				// Email normalizado para minúsculas
				assert.Equal(t, "ana@example.com", user.Email)
				// O hash de senha nunca sai na resposta
				assert.Empty(t, user.PasswordHash)
			},
		},
		{
			name: "Role desconhecido é rejeitado na borda",
			request: &domain.RegisterUserRequest{
				Name:     "Bruno",
				Email:    "bruno@example.com",
				Password: "senha123",
				Role:     "supervisor",
			},
			setup: func(userRepo *mocks.MockUserRepository) {},
			validate: func(t *testing.T, user *domain.User, err error) {
				require.Error(t, err)
				assert.Nil(t, user)
				assert.True(t, errors.Is(err, ErrInvalidRole))
			},
		},
		{
			name: "Email já cadastrado",
			request: &domain.RegisterUserRequest{
				Name:     "Carla",
				Email:    "carla@example.com",
				Password: "senha123",
				Role:     "seller",
			},
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("carla@example.com").
					Return(&domain.User{ID: 7, Email: "carla@example.com"}, nil)
			},
			validate: func(t *testing.T, user *domain.User, err error) {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUserAlreadyExists))
			},
		},
		{
			name: "Campos obrigatórios ausentes",
			request: &domain.RegisterUserRequest{
				Email: "sem-nome@example.com",
			},
			setup: func(userRepo *mocks.MockUserRepository) {},
			validate: func(t *testing.T, user *domain.User, err error) {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMissingRequiredData))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUserRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(mockUserRepo)

			service := NewService(mockUserRepo, testConfig())

			user, err := service.RegisterUser(tt.request)
			tt.validate(t, user, err)
		})
	}
}

func TestService_LoginUser(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	activeUser := &domain.User{
		ID:           1,
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: string(hashed),
		Role:         domain.RoleBuyer,
		Active:       true,
	}

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(userRepo *mocks.MockUserRepository)
		validate func(t *testing.T, token string, err error)
	}{
		{
			name:     "Login válido emite token com claims do usuário",
			email:    "ana@example.com",
			password: "senha123",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("ana@example.com").Return(activeUser, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				require.NoError(t, err)
				require.NotEmpty(t, token)

				service := NewService(nil, testConfig())
				claims, err := service.ValidateToken(token)
				require.NoError(t, err)
				assert.Equal(t, 1, claims.UserID)
				assert.Equal(t, "Ana", claims.UserName)
				assert.Equal(t, "ana@example.com", claims.UserEmail)
				assert.Equal(t, domain.RoleBuyer, claims.UserRole)
			},
		},
		{
			name:     "Senha incorreta",
			email:    "ana@example.com",
			password: "senha-errada",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("ana@example.com").Return(activeUser, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidCredentials))
				assert.Empty(t, token)
			},
		},
		{
			name:     "Usuário não encontrado",
			email:    "ninguem@example.com",
			password: "senha123",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("ninguem@example.com").Return(nil, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUserNotFound))
			},
		},
		{
			name:     "Conta desativada",
			email:    "ana@example.com",
			password: "senha123",
			setup: func(userRepo *mocks.MockUserRepository) {
				disabled := *activeUser
				disabled.Active = false
				userRepo.EXPECT().GetUserByEmail("ana@example.com").Return(&disabled, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUserDisabled))
			},
		},
		{
			name:     "Credenciais ausentes",
			email:    "",
			password: "",
			setup:    func(userRepo *mocks.MockUserRepository) {},
			validate: func(t *testing.T, token string, err error) {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMissingRequiredData))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUserRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(mockUserRepo)

			service := NewService(mockUserRepo, testConfig())

			token, err := service.LoginUser(tt.email, tt.password)
			tt.validate(t, token, err)
		})
	}
}

func TestService_ValidateToken_InvalidSignature(t *testing.T) {
	serviceA := NewService(nil, testConfig())
	serviceB := NewService(nil, &config.Config{Auth: config.Auth{Secret: "outro-segredo"}})

	hashed, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockUserRepo.EXPECT().GetUserByEmail("ana@example.com").Return(&domain.User{
		ID:           1,
		Email:        "ana@example.com",
		PasswordHash: string(hashed),
		Role:         domain.RoleBuyer,
		Active:       true,
	}, nil)

	token, err := NewService(mockUserRepo, testConfig()).LoginUser("ana@example.com", "senha123")
	require.NoError(t, err)

	_, err = serviceA.ValidateToken(token)
	assert.NoError(t, err)

	_, err = serviceB.ValidateToken(token)
	assert.Error(t, err)
}

func TestService_ListUsers_StripsPasswordHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockUserRepo.EXPECT().ListUsers().Return([]*domain.User{
		{ID: 1, Email: "ana@example.com", PasswordHash: "hash-1"},
		{ID: 2, Email: "bruno@example.com", PasswordHash: "hash-2"},
	}, nil)

	service := NewService(mockUserRepo, testConfig())

	users, err := service.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)

	for _, user := range users {
		assert.Empty(t, user.PasswordHash)
	}
}
