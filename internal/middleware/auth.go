package middleware

import (
	"net/http"
	"strings"

	"github.com/brunosousa09/sigh-hospital/internal/apierror"
	"github.com/brunosousa09/sigh-hospital/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const ClaimsKey = "claims"

// JWTAuth validates the Bearer token on every protected route and enforces
// the inactivity timeout: a valid JWT whose session key has expired is still
// rejected, and every accepted request slides the session TTL forward.
func JWTAuth(auth service.AuthService, sessoes service.SessaoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticação necessária"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims, err := auth.ValidarToken(tokenStr)
		if err != nil || claims.Tipo != "access" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token inválido ou expirado"))
			return
		}

		ativa, err := sessoes.Ativa(c.Request.Context(), claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New("Erro interno do servidor"))
			return
		}
		if !ativa {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Sessão expirada por inatividade"))
			return
		}
		if err := sessoes.Tocar(c.Request.Context(), claims.Subject); err != nil {
			log.Warn().Err(err).Str("user_id", claims.Subject).Msg("falha ao renovar sessão")
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireRole rejects requests whose JWT role is not in the allowed list.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		claims, ok := c.MustGet(ClaimsKey).(*service.Claims)
		if !ok || !allowed[claims.Rol] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Permissões insuficientes"))
			return
		}
		c.Next()
	}
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
func GetClaims(c *gin.Context) *service.Claims {
	claims, _ := c.MustGet(ClaimsKey).(*service.Claims)
	return claims
}
