package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tukangku/server/internal/pkg/apperr"
	"github.com/tukangku/server/internal/pkg/models"
	"github.com/tukangku/server/services/users/mocks"
)

func testConfig() *models.Config {
	cfg := &models.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiration = 60
	cfg.JWT.Issuer = "tukangku-test"
	return cfg
}

func TestUserUC_Register_Customer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	userID := uuid.New()
	req := &models.RegisterRequest{
		Name:     "Budi Santoso",
		Email:    "Budi@Example.com",
		Password: "supersecret",
		Role:     models.RoleCustomer,
	}

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "budi@example.com").
		Return(nil, apperr.NotFound("user_not_found", "user not found"))

	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, user *models.User) error {
			assert.Equal(t, "budi@example.com", user.Email)
			assert.Equal(t, models.RoleCustomer, user.Role)
			assert.False(t, user.Availability)
			assert.Empty(t, user.Catalog)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("supersecret")))
			user.ID = userID
			return nil
		})

	resp, err := uc.Register(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, userID, resp.UserID)
	assert.Equal(t, models.RoleCustomer, resp.Role)
	assert.NotEmpty(t, resp.Token)
	assert.Greater(t, resp.ExpiresAt, int64(0))
}

func TestUserUC_Register_ProviderCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	req := &models.RegisterRequest{
		Name:     "Siti Provider",
		Email:    "siti@example.com",
		Password: "supersecret",
		Role:     models.RoleProvider,
		Services: []string{"Plumbing", " Electrical "},
		Pricing:  []float64{150, 200},
	}

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "siti@example.com").
		Return(nil, apperr.NotFound("user_not_found", "user not found"))

	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, user *models.User) error {
			assert.True(t, user.Availability)
			require.Len(t, user.Catalog, 2)
			assert.Equal(t, models.ServicePair{Position: 0, Name: "plumbing", Price: 150}, user.Catalog[0])
			assert.Equal(t, models.ServicePair{Position: 1, Name: "electrical", Price: 200}, user.Catalog[1])
			user.ID = uuid.New()
			return nil
		})

	_, err := uc.Register(context.Background(), req)
	require.NoError(t, err)
}

func TestUserUC_Register_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	testCases := []struct {
		name string
		req  *models.RegisterRequest
		code string
	}{
		{
			name: "missing name",
			req:  &models.RegisterRequest{Email: "a@b.c", Password: "supersecret", Role: "customer"},
			code: "missing_name",
		},
		{
			name: "invalid email",
			req:  &models.RegisterRequest{Name: "A", Email: "not-an-email", Password: "supersecret", Role: "customer"},
			code: "invalid_email",
		},
		{
			name: "weak password",
			req:  &models.RegisterRequest{Name: "A", Email: "a@b.c", Password: "short", Role: "customer"},
			code: "weak_password",
		},
		{
			name: "invalid role",
			req:  &models.RegisterRequest{Name: "A", Email: "a@b.c", Password: "supersecret", Role: "admin"},
			code: "invalid_role",
		},
		{
			name: "provider without services",
			req:  &models.RegisterRequest{Name: "A", Email: "a@b.c", Password: "supersecret", Role: "provider"},
			code: "missing_services",
		},
		{
			name: "catalog mismatch",
			req: &models.RegisterRequest{
				Name: "A", Email: "a@b.c", Password: "supersecret", Role: "provider",
				Services: []string{"x", "y"}, Pricing: []float64{10},
			},
			code: "catalog_mismatch",
		},
		{
			name: "non-positive price",
			req: &models.RegisterRequest{
				Name: "A", Email: "a@b.c", Password: "supersecret", Role: "provider",
				Services: []string{"x"}, Pricing: []float64{0},
			},
			code: "invalid_price",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := uc.Register(context.Background(), tc.req)
			assert.Nil(t, resp)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
			assert.Equal(t, tc.code, apperr.CodeOf(err))
		})
	}
}

func TestUserUC_Register_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "taken@example.com").
		Return(&models.User{ID: uuid.New(), Email: "taken@example.com"}, nil)

	resp, err := uc.Register(context.Background(), &models.RegisterRequest{
		Name:     "A",
		Email:    "taken@example.com",
		Password: "supersecret",
		Role:     models.RoleCustomer,
	})

	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Equal(t, "email_taken", apperr.CodeOf(err))
}

func TestUserUC_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	require.NoError(t, err)

	userID := uuid.New()
	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "budi@example.com").
		Return(&models.User{
			ID:           userID,
			Email:        "budi@example.com",
			PasswordHash: string(hash),
			Role:         models.RoleCustomer,
		}, nil)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    " Budi@Example.com ",
		Password: "supersecret",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, resp.UserID)
	assert.NotEmpty(t, resp.Token)
}

func TestUserUC_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	require.NoError(t, err)

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "budi@example.com").
		Return(&models.User{ID: uuid.New(), PasswordHash: string(hash)}, nil)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "budi@example.com",
		Password: "wrong-password",
	})

	assert.Nil(t, resp)
	assert.Equal(t, "invalid_credentials", apperr.CodeOf(err))
}

func TestUserUC_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "ghost@example.com").
		Return(nil, apperr.NotFound("user_not_found", "user not found"))

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "supersecret",
	})

	// a missing account reports the same error as a wrong password
	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Equal(t, "invalid_credentials", apperr.CodeOf(err))
}

func TestUserUC_SubmitContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	req := &models.ContactRequest{Name: "Budi", Email: "budi@example.com", Message: "hello"}
	mockGW.EXPECT().PublishEmailNotification(gomock.Any(), req).Return(nil)

	assert.NoError(t, uc.SubmitContact(context.Background(), req))

	err := uc.SubmitContact(context.Background(), &models.ContactRequest{Email: "budi@example.com"})
	assert.Equal(t, "missing_fields", apperr.CodeOf(err))
}
