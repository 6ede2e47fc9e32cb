package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/kamalakar25/BeautyBliss-project-main/booking"
	"github.com/kamalakar25/BeautyBliss-project-main/gateway"
	"github.com/kamalakar25/BeautyBliss-project-main/models"
	"github.com/kamalakar25/BeautyBliss-project-main/payment"
)

// How long a verification projection stays cached before the next lookup
// goes back to the database and gateway.
const verifyCacheTTL = time.Minute

// CreateOrder handles the initial booking + deposit order request. The
// booking row is written first; a crash before the order bind leaves it
// PENDING with no order, which is recoverable and accepted.
func CreateOrder(ledger *booking.Ledger, orch *payment.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req booking.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}

		b, err := ledger.CreateBooking(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}

		order, err := orch.CreateInitialOrder(c.Request.Context(), b)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"order":     order,
			"bookingId": b.BookingID,
			"booking":   b,
		})
	}
}

// ValidatePayment reconciles a gateway payment callback onto the booking.
func ValidatePayment(rec *payment.Reconciler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Pin           string `json:"pin"`
			OrderID       string `json:"orderId"`
			PaymentID     string `json:"paymentId"`
			Signature     string `json:"signature"`
			UserEmail     string `json:"userEmail"`
			BookingID     string `json:"bookingId"`
			PaymentType   string `json:"paymentType"`
			FailureReason string `json:"failureReason"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}
		if req.Pin == "" || req.OrderID == "" || req.PaymentID == "" || req.UserEmail == "" || req.BookingID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}

		result, err := rec.Reconcile(c.Request.Context(), payment.Callback{
			Pin:           req.Pin,
			OrderID:       req.OrderID,
			PaymentID:     req.PaymentID,
			Signature:     req.Signature,
			OwnerEmail:    req.UserEmail,
			BookingID:     req.BookingID,
			PaymentType:   req.PaymentType,
			FailureReason: req.FailureReason,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		message := "Payment failed"
		if result.Status == models.PaymentPaid {
			message = "Payment verified successfully"
		}
		c.JSON(http.StatusOK, gin.H{
			"message":       message,
			"orderId":       req.OrderID,
			"paymentId":     req.PaymentID,
			"bookingId":     req.BookingID,
			"paymentStatus": result.Status,
			"paymentMethod": result.Method,
			"failureReason": result.FailureReason,
		})
	}
}

// VerifyOrder returns the denormalized booking view for a gateway order id.
// Responses are cached briefly in redis keyed by the order id.
func VerifyOrder(verifier *payment.Verifier, cache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Query("order_id")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order ID is required"})
			return
		}

		cacheKey := "verify:" + orderID
		if cache != nil {
			if cached, err := cache.Get(c.Request.Context(), cacheKey).Result(); err == nil {
				c.Data(http.StatusOK, "application/json", []byte(cached))
				return
			}
		}

		view, err := verifier.Verify(c.Request.Context(), orderID)
		if err != nil {
			respondError(c, err)
			return
		}

		body, err := json.Marshal(gin.H{"data": view})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if cache != nil {
			if err := cache.Set(c.Request.Context(), cacheKey, body, verifyCacheTTL).Err(); err != nil {
				log.Println("Failed to cache verify response:", err)
			}
		}
		c.Data(http.StatusOK, "application/json", body)
	}
}

// RemainingOrder creates a gateway order for the outstanding balance of an
// existing booking.
func RemainingOrder(orch *payment.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserEmail string  `json:"userEmail"`
			BookingID string  `json:"bookingId"`
			Amount    float64 `json:"amount"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userEmail, bookingId, and amount are required"})
			return
		}
		if req.UserEmail == "" || req.BookingID == "" || req.Amount == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userEmail, bookingId, and amount are required"})
			return
		}
		if req.Amount < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
			return
		}

		order, b, err := orch.CreateRemainingOrder(c.Request.Context(), req.UserEmail, req.BookingID, req.Amount)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"order":     order,
			"bookingId": b.BookingID,
			"booking":   b,
		})
	}
}

// respondError translates the error taxonomy into HTTP responses. Reason
// strings are stable; anything unrecognized stays a generic 500 so internals
// never leak to callers.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrValidation),
		errors.Is(err, booking.ErrSlotUnavailable),
		errors.Is(err, payment.ErrAmountMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrOwnerNotFound),
		errors.Is(err, booking.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, gateway.ErrGateway):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
	default:
		log.Println("Internal error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
