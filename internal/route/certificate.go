package route

import (
	"github.com/gin-gonic/gin"
	"github.com/nis6tech/certify/internal/controller"
	"github.com/nis6tech/certify/internal/middleware"
)

func V1_Certificates(r *gin.RouterGroup, cc *controller.CertificateController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/certificates")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", cc.List)
		v1.POST("", cc.Create)
		v1.GET("/:certificateId", cc.GetById)
		v1.PATCH("/:certificateId", cc.Update)
		v1.DELETE("/:certificateId", cc.Revoke)
		v1.POST("/:certificateId/notify", cc.Notify)
		v1.POST("/:certificateId/badge", cc.UploadBadge)
	}
}
