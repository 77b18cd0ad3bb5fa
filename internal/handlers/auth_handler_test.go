package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "propfund/internal/errors"
	"propfund/internal/models"
)

func setupAuthRouter(handler *AuthHandler) *gin.Engine {
	r := gin.New()
	r.POST("/auth/register", handler.Register)
	r.POST("/auth/login", handler.Login)
	r.GET("/profile", injectUser("user-1", testAddress), handler.GetProfile)
	return r
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		audit := &mockAuditService{}
		userSvc := &mockUserService{
			createUserFn: func(email, _, address, firstName, lastName string) (*models.User, error) {
				return &models.User{
					Base:      models.Base{ID: "user-1"},
					Email:     email,
					Address:   address,
					FirstName: firstName,
					LastName:  lastName,
				}, nil
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc, audit))

		rec := doRequest(r, "POST", "/auth/register",
			`{"email":"ada@example.com","password":"password123","address":"0xabc123","first_name":"Ada"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["token"] == "" || result["token"] == nil {
			t.Error("expected token in response")
		}
		user := result["user"].(map[string]interface{})
		if user["address"] != "0xabc123" {
			t.Errorf("expected address 0xabc123, got %v", user["address"])
		}
		if got := audit.actions(); len(got) != 1 || got[0] != "REGISTER" {
			t.Errorf("expected REGISTER audit entry, got %v", got)
		}
	})

	t.Run("returns 400 on invalid address", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockUserService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/auth/register",
			`{"email":"ada@example.com","password":"password123","address":"not an address"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on short password", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockUserService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/auth/register",
			`{"email":"ada@example.com","password":"short","address":"0xabc123"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 409 on duplicate address", func(t *testing.T) {
		userSvc := &mockUserService{
			createUserFn: func(_, _, _, _, _ string) (*models.User, error) {
				return nil, apperrors.ErrDuplicateAddress
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/auth/register",
			`{"email":"ada@example.com","password":"password123","address":"0xabc123"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_ADDRESS")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns 200 with token", func(t *testing.T) {
		userSvc := &mockUserService{
			attemptLoginFn: func(email, _ string) (*models.User, error) {
				return &models.User{Base: models.Base{ID: "user-1"}, Email: email, Address: "0xabc123"}, nil
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/auth/login", `{"email":"ada@example.com","password":"password123"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if parseJSON(t, rec)["token"] == nil {
			t.Error("expected token in response")
		}
	})

	t.Run("returns 401 on invalid credentials", func(t *testing.T) {
		userSvc := &mockUserService{
			attemptLoginFn: func(_, _ string) (*models.User, error) {
				return nil, apperrors.ErrInvalidCredentials
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/auth/login", `{"email":"ada@example.com","password":"wrong-password"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CREDENTIALS")
	})

	t.Run("returns 423 when account locked", func(t *testing.T) {
		userSvc := &mockUserService{
			attemptLoginFn: func(_, _ string) (*models.User, error) {
				return nil, apperrors.ErrAccountLocked
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/auth/login", `{"email":"ada@example.com","password":"password123"}`)

		if rec.Code != http.StatusLocked {
			t.Fatalf("expected 423, got %d", rec.Code)
		}
	})
}

func TestAuthHandler_GetProfile(t *testing.T) {
	t.Run("returns the authenticated user", func(t *testing.T) {
		userSvc := &mockUserService{
			getUserByIDFn: func(id string) (*models.User, error) {
				return &models.User{Base: models.Base{ID: id}, Email: "ada@example.com", Address: testAddress}, nil
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/profile", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		user := parseJSON(t, rec)["user"].(map[string]interface{})
		if user["id"] != "user-1" {
			t.Errorf("expected id user-1, got %v", user["id"])
		}
	})

	t.Run("returns 401 without a user in context", func(t *testing.T) {
		r := gin.New()
		r.GET("/profile", NewAuthHandler(&mockUserService{}, &mockAuditService{}).GetProfile)

		rec := doRequest(r, "GET", "/profile", "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}
