package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"

	"github.com/kamalakar25/BeautyBliss-project-main/booking"
	"github.com/kamalakar25/BeautyBliss-project-main/models"
)

// DownloadReceipt renders a PDF receipt for the booking bound to a gateway
// order id. Only reconciled PAID bookings get one.
func DownloadReceipt(ledger *booking.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Query("order_id")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order ID is required"})
			return
		}

		b, err := ledger.FindBookingByOrderID(c.Request.Context(), orderID)
		if err != nil {
			respondError(c, err)
			return
		}
		if b.PaymentStatus != models.PaymentPaid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Receipt is only available for paid bookings"})
			return
		}

		receipt, err := generateReceiptPDF(b)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF receipt"})
			return
		}

		c.Header("Content-Disposition", `attachment; filename="receipt.pdf"`)
		c.Data(http.StatusOK, "application/pdf", receipt)
	}
}

// generateReceiptPDF builds the booking receipt document.
func generateReceiptPDF(b *models.Booking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(128, 0, 128)
	pdf.CellFormat(0, 10, "BeautyBliss - Service Booking", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Payment Receipt", "1", 1, "C", false, 0, "")
	addReceiptDetail(pdf, "Booking ID", b.BookingID, true)
	addReceiptDetail(pdf, "Parlor", b.ParlorName, true)
	addReceiptDetail(pdf, "Customer", b.Name, true)
	addReceiptDetail(pdf, "Service", b.Service, true)
	if len(b.RelatedServices) > 0 {
		addReceiptDetail(pdf, "Add-ons", strings.Join(b.RelatedServices, ", "), true)
	}
	addReceiptDetail(pdf, "Employee", b.FavoriteEmployee, true)
	addReceiptDetail(pdf, "Date", b.Date.Format("2006-01-02"), true)
	addReceiptDetail(pdf, "Time Slot", b.Time, true)
	addReceiptDetail(pdf, "Duration", fmt.Sprintf("%d minutes", b.Duration), true)

	pdf.CellFormat(0, 10, "Payment Details", "1", 1, "C", false, 0, "")
	addReceiptDetail(pdf, "Order ID", b.OrderID, false)
	addReceiptDetail(pdf, "Transaction ID", b.TransactionID, false)
	addReceiptDetail(pdf, "Payment Mode", b.PaymentMode, false)
	pdf.SetFont("Arial", "B", 13)
	addReceiptDetail(pdf, "Total Amount", fmt.Sprintf("%.2f", b.TotalAmount), true)
	pdf.SetTextColor(139, 128, 0)
	addReceiptDetail(pdf, "Amount Paid", fmt.Sprintf("%.2f", b.Amount), true)
	pdf.SetTextColor(0, 0, 0)

	balance := b.TotalAmount - b.Amount
	if balance > 0 {
		pdf.MultiCell(0, 5, fmt.Sprintf("Remaining balance of %.2f is due at the parlor.", balance), "", "L", false)
	} else {
		pdf.MultiCell(0, 5, "Thank you for using our service.", "", "L", false)
	}

	pdf.SetY(pdf.GetY() + 12)
	pdf.CellFormat(0, 10, "This is a computer generated receipt", "", 1, "R", false, 0, "")

	var pdfBuffer bytes.Buffer
	if err := pdf.Output(&pdfBuffer); err != nil {
		return nil, err
	}
	return pdfBuffer.Bytes(), nil
}

// addReceiptDetail adds a detail line to the PDF.
func addReceiptDetail(pdf *gofpdf.Fpdf, label, value string, isHeader bool) {
	if isHeader {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetFillColor(255, 255, 255)
	} else {
		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
	}
	pdf.CellFormat(45, 10, label, "1", 0, "", false, 0, "")
	pdf.CellFormat(0, 10, value, "1", 1, "", false, 0, "")
}
