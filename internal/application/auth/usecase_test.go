package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakwerk/magazijn-api/internal/application/dto"
	"github.com/pakwerk/magazijn-api/internal/domain"
	"github.com/pakwerk/magazijn-api/internal/domain/entity"
	"github.com/pakwerk/magazijn-api/pkg/jwt"
)

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	if _, ok := r.users[user.Email]; ok {
		return domain.ErrDuplicate
	}
	r.users[user.Email] = user
	return nil
}

func (r *memUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.users[email], nil
}

func testUseCase() *AuthUseCase {
	return NewAuthUseCase(newMemUserRepo(), JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "magazijn-api-test",
	})
}

func TestRegisterAndLogin(t *testing.T) {
	uc := testUseCase()
	ctx := context.Background()

	user, err := uc.RegisterUser(ctx, dto.RegisterRequest{
		Email:    "jan@pakwerk.be",
		Password: "geheim123",
		Name:     "Jan",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleMagazijn, user.Role, "default role")
	assert.NotEmpty(t, user.ID)

	resp, err := uc.Login(ctx, dto.LoginRequest{Email: "jan@pakwerk.be", Password: "geheim123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "jan@pakwerk.be", resp.User.Email)

	userID, role, err := jwt.Parse("test-secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, entity.RoleMagazijn, role)
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	uc := testUseCase()
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "jan@pakwerk.be", Password: "x12345"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "jan@pakwerk.be", Password: "y12345"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_Validation(t *testing.T) {
	uc := testUseCase()
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "a@b.c", Password: "x", Role: "superuser"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc := testUseCase()
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "jan@pakwerk.be", Password: "goed"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "jan@pakwerk.be", Password: "fout"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownUser(t *testing.T) {
	uc := testUseCase()

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "niemand@pakwerk.be", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
