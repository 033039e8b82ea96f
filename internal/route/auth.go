package route

import (
	"github.com/gin-gonic/gin"
	"github.com/nis6tech/certify/internal/controller"
)

func V1_Auth(r *gin.RouterGroup, authController *controller.AuthController) {
	v1 := r.Group("/v1/auth")
	{
		v1.POST("/login", authController.Login)
		v1.POST("/logout", authController.Logout)
		v1.POST("/jwt/refresh", authController.RefreshAccessToken)
		v1.POST("/jwt/access/verify/:token", authController.VerifyJwtAccessToken)
	}
}
