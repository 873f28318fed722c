package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/rafabene/feedbackboard-backend/internal/domain/entities"
)

const testSecret = "test-secret"

// resolveIdentity roda o middleware e captura a identidade resolvida
func resolveIdentity(t *testing.T, authorization string) (string, entities.Role) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	var actorID string
	var actorRole entities.Role

	router := gin.New()
	router.Use(NewIdentityMiddleware(testSecret).Resolve())
	router.GET("/", func(c *gin.Context) {
		actorID = ActorID(c)
		actorRole = ActorRole(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	router.ServeHTTP(httptest.NewRecorder(), req)

	return actorID, actorRole
}

// signToken gera um JWT HS256 com os claims informados
func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("falha ao assinar token: %v", err)
	}
	return token
}

func TestIdentityMiddleware_Resolve(t *testing.T) {
	t.Run("sem token usa o usuário placeholder", func(t *testing.T) {
		actorID, actorRole := resolveIdentity(t, "")

		if actorID != PlaceholderUserID {
			t.Errorf("esperava '%s', obteve '%s'", PlaceholderUserID, actorID)
		}
		if actorRole != entities.RoleUser {
			t.Errorf("esperava role USER, obteve '%s'", actorRole)
		}
	})

	t.Run("token válido resolve sub e role", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub":  "user-42",
			"role": "ADMIN",
			"exp":  time.Now().Add(time.Hour).Unix(),
		})

		actorID, actorRole := resolveIdentity(t, "Bearer "+token)

		if actorID != "user-42" {
			t.Errorf("esperava 'user-42', obteve '%s'", actorID)
		}
		if actorRole != entities.RoleAdmin {
			t.Errorf("esperava role ADMIN, obteve '%s'", actorRole)
		}
	})

	t.Run("role ausente no token resolve como USER", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub": "user-42",
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		_, actorRole := resolveIdentity(t, "Bearer "+token)
		if actorRole != entities.RoleUser {
			t.Errorf("esperava role USER, obteve '%s'", actorRole)
		}
	})

	t.Run("assinatura inválida degrada para o placeholder", func(t *testing.T) {
		token := signToken(t, "outro-segredo", jwt.MapClaims{
			"sub": "user-42",
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		actorID, _ := resolveIdentity(t, "Bearer "+token)
		if actorID != PlaceholderUserID {
			t.Errorf("esperava '%s', obteve '%s'", PlaceholderUserID, actorID)
		}
	})

	t.Run("token expirado degrada para o placeholder", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub": "user-42",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})

		actorID, _ := resolveIdentity(t, "Bearer "+token)
		if actorID != PlaceholderUserID {
			t.Errorf("esperava '%s', obteve '%s'", PlaceholderUserID, actorID)
		}
	})

	t.Run("token sem sub degrada para o placeholder", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"role": "ADMIN",
			"exp":  time.Now().Add(time.Hour).Unix(),
		})

		actorID, actorRole := resolveIdentity(t, "Bearer "+token)
		if actorID != PlaceholderUserID {
			t.Errorf("esperava '%s', obteve '%s'", PlaceholderUserID, actorID)
		}
		if actorRole != entities.RoleUser {
			t.Errorf("esperava role USER, obteve '%s'", actorRole)
		}
	})

	t.Run("header sem prefixo Bearer é ignorado", func(t *testing.T) {
		actorID, _ := resolveIdentity(t, "Basic abc123")
		if actorID != PlaceholderUserID {
			t.Errorf("esperava '%s', obteve '%s'", PlaceholderUserID, actorID)
		}
	})
}

func TestAdminActorID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("admin autenticado é o próprio ator", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(ActorIDContextKey, "admin-7")
		c.Set(ActorRoleContextKey, string(entities.RoleAdmin))

		if got := AdminActorID(c); got != "admin-7" {
			t.Errorf("esperava 'admin-7', obteve '%s'", got)
		}
	})

	t.Run("usuário comum registra contra o admin placeholder", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(ActorIDContextKey, "user-1")
		c.Set(ActorRoleContextKey, string(entities.RoleUser))

		if got := AdminActorID(c); got != PlaceholderAdminID {
			t.Errorf("esperava '%s', obteve '%s'", PlaceholderAdminID, got)
		}
	})
}
