package route

import (
	"github.com/gin-gonic/gin"
	"github.com/nis6tech/certify/internal/controller"
)

func V1_Verify(r *gin.RouterGroup, verifyController *controller.VerifyController) {
	v1 := r.Group("/v1/verify")
	{
		v1.GET("/:certificateId", verifyController.Verify)
		v1.GET("/:certificateId/qrcode", verifyController.QRCode)
		v1.GET("/:certificateId/pdf", verifyController.PDF)
		v1.GET("/:certificateId/badge", verifyController.Badge)
	}
}
