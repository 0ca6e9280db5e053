package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/sibaq/festival-api/internal/api/handler/v1/response"
	"github.com/sibaq/festival-api/internal/domain"
	"github.com/sibaq/festival-api/internal/pkg/jwthelper"
)

// CookieName is the cookie carrying the signed admin credential.
const CookieName = "auth_token"

const principalKey = "authPrincipal"

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// RequireAdmin gates admin routes. The three failure modes stay
// distinguishable: no cookie (401 not authenticated), bad token (401
// invalid), wrong role (403).
func (a *Authenticator) RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(CookieName)
		if err != nil || token == "" {
			response.RenderErr(ctx, response.ErrNotAuthenticated())
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, token)
		if err != nil {
			response.RenderErr(ctx, response.ErrInvalidToken())
			return
		}

		if claims.Role != domain.RoleAdmin {
			response.RenderErr(ctx, response.ErrPermissionDenied())
			return
		}

		ctx.Set(principalKey, claims)
		ctx.Next()
	}
}

// Principal returns the authenticated admin descriptor set by RequireAdmin.
func Principal(ctx *gin.Context) (*jwthelper.Claims, bool) {
	value, exists := ctx.Get(principalKey)
	if !exists {
		return nil, false
	}

	claims, ok := value.(*jwthelper.Claims)

	return claims, ok
}
