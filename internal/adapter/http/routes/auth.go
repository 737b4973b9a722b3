package routes

import (
	"serviceos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAuth = "/auth"

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/signup", authHandler.SignUp)
		auth.POST("/signin", authHandler.SignIn)
		auth.POST("/signout", authHandler.SignOut)
		auth.POST("/reset-password", authHandler.ResetPassword)
		auth.GET("/session", authHandler.GetSession)
		auth.GET("/me", authHandler.Me)
	}
}
