package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pierrepaulo/stock-control/internal/application/auth"
	"github.com/pierrepaulo/stock-control/internal/domain/entity"
	apphttp "github.com/pierrepaulo/stock-control/internal/interfaces/http"
	"github.com/pierrepaulo/stock-control/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testUserID = "00000000-0000-0000-0000-000000000001"
	testToken  = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
)

// fakeUserRepo resolve tokens em memória; só implementa o que o middleware e
// o login usam.
type fakeUserRepo struct {
	user *entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) error { return nil }

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.user != nil && f.user.Email == email {
		return f.user, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByToken(ctx context.Context, token string) (*entity.User, error) {
	if f.user != nil && f.user.Token != nil && *f.user.Token == token {
		return f.user, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) List(ctx context.Context, offset, limit int) ([]entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *entity.User) error { return nil }

func (f *fakeUserRepo) SetToken(ctx context.Context, id string, token *string) error {
	if f.user != nil && f.user.ID == id {
		f.user.Token = token
	}
	return nil
}

func (f *fakeUserRepo) ClearToken(ctx context.Context, token string) error { return nil }

func (f *fakeUserRepo) SoftDelete(ctx context.Context, id string) (bool, error) {
	return false, nil
}

func testUser(t *testing.T) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo123"), bcrypt.MinCost)
	require.NoError(t, err)
	token := testToken
	return &entity.User{
		ID:           testUserID,
		Name:         "Pierre",
		Email:        "pierre@example.com",
		PasswordHash: string(hash),
		Token:        &token,
	}
}

// buildTestApp monta uma aplicação Fiber mínima com o ErrorHandler central e
// uma rota protegida que devolve o usuário autenticado.
func buildTestApp(repo *fakeUserRepo) *fiber.App {
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.NewErrorHandler(log)})
	app.Get("/protected", apphttp.AuthMiddleware(repo), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userId": apphttp.GetUser(c).ID, "token": apphttp.GetToken(c)})
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) apphttp.Envelope {
	t.Helper()
	var env apphttp.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_TokenValidoCarregaUsuario(t *testing.T) {
	app := buildTestApp(&fakeUserRepo{user: testUser(t)})
	resp := doRequest(t, app, "Bearer "+testToken)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["userId"])
	assert.Equal(t, testToken, body["token"])
}

func TestAuthMiddleware_SemHeader401(t *testing.T) {
	app := buildTestApp(&fakeUserRepo{user: testUser(t)})
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Não autorizado", *env.Error)
	assert.Nil(t, env.Data)
}

func TestAuthMiddleware_TokenDesconhecido401(t *testing.T) {
	app := buildTestApp(&fakeUserRepo{user: testUser(t)})
	resp := doRequest(t, app, "Bearer "+strings.Repeat("f", 64))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalido401(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"sem esquema Bearer", testToken},
		{"esquema errado", "Basic " + testToken},
		{"token vazio", "Bearer "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := buildTestApp(&fakeUserRepo{user: testUser(t)})
			resp := doRequest(t, app, tc.header)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Envelope {error, data}
// ──────────────────────────────────────────────────────────────────────────────

// Sucesso do login: error null, data com token e usuário sem campos sensíveis.
func TestLoginHandler_EnvelopeDeSucesso(t *testing.T) {
	repo := &fakeUserRepo{user: testUser(t)}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.NewErrorHandler(log)})
	handler := apphttp.NewAuthHandler(auth.NewAuthUseCase(repo))
	app.Post("/login", handler.Login)

	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"pierre@example.com","password":"segredo123"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var env struct {
		Error *string `json:"error"`
		Data  struct {
			Token string `json:"token"`
			User  map[string]any `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Nil(t, env.Error)
	assert.Len(t, env.Data.Token, 64)
	assert.Equal(t, testUserID, env.Data.User["id"])
	assert.NotContains(t, env.Data.User, "password", "a senha não deve sair na resposta")
	assert.NotContains(t, env.Data.User, "token", "o token não deve sair dentro do usuário")
}

// Corpo inválido: 400 com mensagens de validação concatenadas no envelope.
func TestLoginHandler_ValidacaoConcatenada400(t *testing.T) {
	repo := &fakeUserRepo{user: testUser(t)}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.NewErrorHandler(log)})
	handler := apphttp.NewAuthHandler(auth.NewAuthUseCase(repo))
	app.Post("/login", handler.Login)

	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"nao-e-email","password":"123"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	require.NotNil(t, env.Error)
	assert.Contains(t, *env.Error, "email")
	assert.Contains(t, *env.Error, "password")
	assert.Nil(t, env.Data)
}

// Credenciais inválidas: 401 no envelope.
func TestLoginHandler_CredenciaisInvalidas401(t *testing.T) {
	repo := &fakeUserRepo{user: testUser(t)}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.NewErrorHandler(log)})
	handler := apphttp.NewAuthHandler(auth.NewAuthUseCase(repo))
	app.Post("/login", handler.Login)

	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"pierre@example.com","password":"senha-errada"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Credenciais inválidas", *env.Error)
}
