package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/kamalakar25/BeautyBliss-project-main/booking"
	"github.com/kamalakar25/BeautyBliss-project-main/controllers"
	"github.com/kamalakar25/BeautyBliss-project-main/payment"
)

// PaymentRoutes wires the booking/payment surface onto a gin engine.
func PaymentRoutes(ledger *booking.Ledger, orch *payment.Orchestrator, rec *payment.Reconciler, verifier *payment.Verifier, cache *redis.Client) *gin.Engine {
	//creates a new Gin engine instance with default configurations
	r := gin.Default()

	pay := r.Group("/payment")
	{
		pay.POST("/order", controllers.CreateOrder(ledger, orch))
		pay.POST("/order/validate", controllers.ValidatePayment(rec))
		pay.GET("/verify", controllers.VerifyOrder(verifier, cache))
		pay.POST("/remaining-order", controllers.RemainingOrder(orch))
		pay.GET("/receipt", controllers.DownloadReceipt(ledger))
	}

	return r
}
