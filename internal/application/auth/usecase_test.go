package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/farmacia-api/internal/application/auth"
	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/farmacia-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newAuthFixture() (*auth.AuthUseCase, *memory.UserRepo) {
	users := memory.NewUserRepo()
	uc := auth.NewAuthUseCase(users, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "farmacia-api-test",
	})
	return uc, users
}

// Registro: rol por defecto seller y el hash almacenado nunca es el password plano.
func TestRegister_HasheaPasswordYAsignaRolPorDefecto(t *testing.T) {
	uc, users := newAuthFixture()

	out, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "secreta123"})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "maria", out.Username)
	assert.Equal(t, entity.RoleSeller, out.Role)
	assert.NotEmpty(t, out.ID)

	stored, err := users.GetByUsername("maria")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash,
		"el hash nunca debe ser igual al password plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta123")),
		"el hash debe verificar contra el password original")
}

// Registro duplicado: el segundo intento devuelve ErrUsernameTaken.
func TestRegister_UsernameDuplicado(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "secreta123"})
	require.NoError(t, err)

	out, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "otra456"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

// Login correcto: devuelve resumen del usuario y un token verificable.
func TestLogin_Exitoso(t *testing.T) {
	uc, _ := newAuthFixture()
	registered, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "secreta123", Role: entity.RoleAdmin})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "secreta123"})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, registered.ID, out.User.ID)
	assert.Equal(t, "maria", out.User.Username)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
	require.NotEmpty(t, out.Token)

	userID, username, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
	assert.Equal(t, "maria", username)
	assert.Equal(t, entity.RoleAdmin, role)
}

// Usuario desconocido y password incorrecto devuelven exactamente el mismo error:
// el caller no puede distinguir los casos.
func TestLogin_FallaGenericaSinDistinguirCausa(t *testing.T) {
	uc, _ := newAuthFixture()
	_, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "secreta123"})
	require.NoError(t, err)

	_, errWrongPass := uc.Login(dto.LoginRequest{Username: "maria", Password: "incorrecta"})
	_, errUnknown := uc.Login(dto.LoginRequest{Username: "nadie", Password: "loquesea"})

	assert.ErrorIs(t, errWrongPass, domain.ErrUnauthorized)
	assert.ErrorIs(t, errUnknown, domain.ErrUnauthorized)
	assert.Equal(t, errWrongPass.Error(), errUnknown.Error(),
		"ambas fallas deben producir el mismo mensaje")
}

// Me: devuelve el usuario del token o ErrUserNotFound.
func TestMe(t *testing.T) {
	uc, _ := newAuthFixture()
	registered, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "secreta123"})
	require.NoError(t, err)

	out, err := uc.Me(registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "maria", out.Username)

	_, err = uc.Me("00000000-0000-0000-0000-000000000099")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
