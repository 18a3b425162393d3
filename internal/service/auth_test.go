package service_test

import (
	"context"
	"testing"

	"github.com/brunosousa09/sigh-hospital/internal/config"
	"github.com/brunosousa09/sigh-hospital/internal/dto"
	"github.com/brunosousa09/sigh-hospital/internal/model"
	"github.com/brunosousa09/sigh-hospital/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuth(t *testing.T) (service.AuthService, *stubUsuarioRepo) {
	t.Helper()
	repo := newStubUsuarioRepo()
	cfg := &config.Config{
		JWTSecret:          "segredo-de-teste",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
	}
	return service.NewAuthService(repo, cfg), repo
}

func criarViaDev(t *testing.T, svc service.AuthService, username string) *dto.UsuarioResponse {
	t.Helper()
	resp, err := svc.CriarUsuario(context.Background(), model.RolDev, dto.CriarUsuarioRequest{
		Username: username,
		Nome:     "Teste",
		Password: "senha1234",
	})
	require.NoError(t, err)
	return resp
}

func TestCriarUsuario_RolDerivadoDoSufixo(t *testing.T) {
	svc, _ := setupAuth(t)

	casos := map[string]string{
		"ana.dev":     model.RolDev,
		"joao.gestor": model.RolGestor,
		"bia.view":    model.RolView,
	}
	for username, rol := range casos {
		resp := criarViaDev(t, svc, username)
		assert.Equal(t, rol, resp.Rol, username)
	}
}

func TestCriarUsuario_SufixoObrigatorio(t *testing.T) {
	svc, _ := setupAuth(t)

	for _, username := range []string{"semponto", "ana.admin", "ana."} {
		_, err := svc.CriarUsuario(context.Background(), model.RolDev, dto.CriarUsuarioRequest{
			Username: username,
			Nome:     "Teste",
			Password: "senha1234",
		})
		assert.ErrorIs(t, err, service.ErrSufixoInvalido, username)
	}
}

func TestCriarUsuario_Hierarquia(t *testing.T) {
	svc, _ := setupAuth(t)

	// gestor only creates .view users.
	_, err := svc.CriarUsuario(context.Background(), model.RolGestor, dto.CriarUsuarioRequest{
		Username: "novo.gestor", Nome: "N", Password: "senha1234",
	})
	assert.ErrorIs(t, err, service.ErrSemPermissaoCriar)

	_, err = svc.CriarUsuario(context.Background(), model.RolGestor, dto.CriarUsuarioRequest{
		Username: "novo.view", Nome: "N", Password: "senha1234",
	})
	assert.NoError(t, err)

	// view creates nobody.
	_, err = svc.CriarUsuario(context.Background(), model.RolView, dto.CriarUsuarioRequest{
		Username: "outro.view", Nome: "N", Password: "senha1234",
	})
	assert.ErrorIs(t, err, service.ErrSemPermissaoCriar)
}

func TestCriarUsuario_UsernameEmUso(t *testing.T) {
	svc, _ := setupAuth(t)

	criarViaDev(t, svc, "ana.dev")
	_, err := svc.CriarUsuario(context.Background(), model.RolDev, dto.CriarUsuarioRequest{
		Username: "Ana.Dev", Nome: "Outra", Password: "senha1234",
	})
	assert.ErrorIs(t, err, service.ErrUsernameEmUso)
}

func TestLogin_EmiteClaimsComRol(t *testing.T) {
	svc, _ := setupAuth(t)
	criarViaDev(t, svc, "joao.gestor")

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "joao.gestor",
		Password: "senha1234",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, model.RolGestor, resp.User.Rol)

	claims, err := svc.ValidarToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "joao.gestor", claims.Username)
	assert.Equal(t, model.RolGestor, claims.Rol)
	assert.Equal(t, "access", claims.Tipo)
	assert.Equal(t, resp.User.ID, claims.Subject)
}

func TestLogin_CredenciaisInvalidas(t *testing.T) {
	svc, _ := setupAuth(t)
	criarViaDev(t, svc, "joao.gestor")

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "joao.gestor",
		Password: "errada",
	})
	assert.ErrorIs(t, err, service.ErrCredenciaisInvalidas)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Username: "nao.existe",
		Password: "senha1234",
	})
	assert.ErrorIs(t, err, service.ErrCredenciaisInvalidas)
}

func TestRefresh(t *testing.T) {
	svc, _ := setupAuth(t)
	criarViaDev(t, svc, "ana.dev")

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "ana.dev",
		Password: "senha1234",
	})
	require.NoError(t, err)

	renovado, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, login.User.ID, renovado.User.ID)

	// An access token is not accepted as a refresh token.
	_, err = svc.Refresh(context.Background(), login.AccessToken)
	assert.ErrorIs(t, err, service.ErrTokenInvalido)
}

func TestRefresh_UsuarioDesativado(t *testing.T) {
	svc, repo := setupAuth(t)
	criado := criarViaDev(t, svc, "ana.dev")

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "ana.dev",
		Password: "senha1234",
	})
	require.NoError(t, err)

	require.NoError(t, repo.SoftDelete(context.Background(), mustUUID(t, criado.ID)))

	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, service.ErrTokenInvalido)
}
