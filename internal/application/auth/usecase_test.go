package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-industrial/internal/application/auth"
	"github.com/jhoicas/catalogo-industrial/internal/application/dto"
	"github.com/jhoicas/catalogo-industrial/internal/domain"
	"github.com/jhoicas/catalogo-industrial/internal/domain/entity"
	pkgjwt "github.com/jhoicas/catalogo-industrial/pkg/jwt"
)

const (
	testSecret    = "test-secret-key-for-unit-tests"
	testCompanyID = "00000000-0000-0000-0000-000000000002"
)

type memUserRepo struct {
	users map[string]*entity.User
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmailAndCompany(_ context.Context, email, companyID string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.CompanyID == companyID {
			return u, nil
		}
	}
	return nil, nil
}

func newUseCase() (*auth.AuthUseCase, *memUserRepo) {
	repo := &memUserRepo{users: map[string]*entity.User{}}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "catalogo-test"}), repo
}

func TestRegisterYLogin(t *testing.T) {
	uc, repo := newUseCase()
	ctx := context.Background()

	user, err := uc.RegisterUser(ctx, dto.RegisterRequest{
		Email: " Compras@Example.com ", Password: "secreto123", CompanyID: testCompanyID, Role: entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, "compras@example.com", user.Email)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.NotEqual(t, "secreto123", repo.users[user.ID].PasswordHash)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "compras@example.com", Password: "secreto123"})
	require.NoError(t, err)
	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, testCompanyID, claims.CompanyID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestRegister_RolPorDefectoYDuplicado(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()
	in := dto.RegisterRequest{Email: "v@example.com", Password: "secreto123", CompanyID: testCompanyID}

	user, err := uc.RegisterUser(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendedor, user.Role)

	_, err = uc.RegisterUser(ctx, in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_EntradaInvalida(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "a@example.com", Password: "corta", CompanyID: testCompanyID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "a@example.com", Password: "secreto123", CompanyID: testCompanyID, Role: "root"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_Errores(t *testing.T) {
	uc, repo := newUseCase()
	ctx := context.Background()
	user, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "b@example.com", Password: "secreto123", CompanyID: testCompanyID})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@example.com", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "b@example.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	repo.users[user.ID].Status = "inactive"
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "b@example.com", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
