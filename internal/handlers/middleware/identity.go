package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/rafabene/feedbackboard-backend/internal/domain/entities"
)

const (
	// ActorIDContextKey é a chave do usuário atuante no contexto do Gin
	ActorIDContextKey = "actor_id"
	// ActorRoleContextKey é a chave do role do usuário atuante
	ActorRoleContextKey = "actor_role"

	// Identidades placeholder usadas quando nenhum token é apresentado.
	// São os usuários fixos criados pelo seed; o colaborador real de
	// autenticação substitui isso no futuro.
	PlaceholderUserID  = "placeholder-user"
	PlaceholderAdminID = "placeholder-admin"
)

// IdentityMiddleware resolve o usuário atuante de cada requisição
// Bearer JWT (HS256, claims sub e role) quando presente e válido;
// identidade placeholder caso contrário. Nenhum handler ou service
// conhece constante global de identidade.
type IdentityMiddleware struct {
	secret []byte
}

// NewIdentityMiddleware cria um novo middleware de identidade
func NewIdentityMiddleware(secret string) *IdentityMiddleware {
	return &IdentityMiddleware{secret: []byte(secret)}
}

// Resolve determina o usuário atuante e o grava no contexto
func (m *IdentityMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := PlaceholderUserID
		actorRole := entities.RoleUser

		if token := bearerToken(c.GetHeader("Authorization")); token != "" && len(m.secret) > 0 {
			if sub, role, ok := m.parseToken(token); ok {
				actorID = sub
				actorRole = role
			}
		}

		c.Set(ActorIDContextKey, actorID)
		c.Set(ActorRoleContextKey, string(actorRole))

		c.Next()
	}
}

// parseToken valida o JWT e extrai sub e role
// Token inválido não derruba a requisição: a identidade degrada para o
// placeholder, já que autorização real está fora do escopo.
func (m *IdentityMiddleware) parseToken(token string) (string, entities.Role, bool) {
	claims := jwt.MapClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", "", false
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", "", false
	}

	role := entities.RoleUser
	if r, ok := claims["role"].(string); ok && entities.Role(r).IsValid() {
		role = entities.Role(r)
	}

	return sub, role, true
}

// bearerToken extrai o token do header Authorization
func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// ActorID retorna o usuário atuante resolvido para a requisição
func ActorID(c *gin.Context) string {
	if id := c.GetString(ActorIDContextKey); id != "" {
		return id
	}
	return PlaceholderUserID
}

// ActorRole retorna o role do usuário atuante
func ActorRole(c *gin.Context) entities.Role {
	if role := entities.Role(c.GetString(ActorRoleContextKey)); role.IsValid() {
		return role
	}
	return entities.RoleUser
}

// AdminActorID retorna o usuário atuante para operações administrativas
// Sem um admin autenticado, a transição de status é registrada contra o
// admin placeholder, preservando a trilha de auditoria.
func AdminActorID(c *gin.Context) string {
	if ActorRole(c) == entities.RoleAdmin {
		return ActorID(c)
	}
	return PlaceholderAdminID
}
