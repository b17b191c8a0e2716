// Package router wires the HTTP routes onto a gin engine.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "shop_backend/internal/feature/auth/transport/handler"
	"shop_backend/internal/platform/http/handler"
	jwtmw "shop_backend/internal/platform/jwt"
)

// NewRouter builds the gin engine with every route of the service.
// The refresh endpoint sits behind the access-token middleware: the
// request must already carry a valid access token before the refresh
// token in the body is even looked at.
func NewRouter(authHandler *authhandler.AuthHandler, jwtSecret string) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", handler.Health)

	api := r.Group("/api")
	auth := api.Group("/auth")

	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	protected := auth.Group("/")
	protected.Use(jwtmw.AuthRequired(jwtSecret))
	{
		protected.POST("/login/access-token", authHandler.GetNewToken)
	}

	return r
}
