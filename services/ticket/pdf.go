package ticket

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"
)

// RenderTicket renders the e-ticket as an A5 portrait PDF with the QR code
// centered below the booking details.
func (r *PDFRenderer) RenderTicket(details TicketDetails, qrPNG []byte) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()

	// Background and border
	pdf.SetFillColor(230, 240, 255)
	pdf.Rect(0, 0, pageW, pageH, "F")
	pdf.SetDrawColor(94, 53, 177)
	pdf.SetLineWidth(0.5)
	pdf.Rect(5, 5, pageW-10, pageH-10, "D")

	// Header band
	pdf.SetFillColor(94, 53, 177)
	pdf.Rect(0, 0, pageW, 25, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 20)
	pdf.SetXY(0, 8)
	pdf.CellFormat(pageW, 10, "EVENT TICKET", "", 1, "C", false, 0, "")

	// Booking details
	pdf.SetTextColor(94, 53, 177)
	pdf.SetFont("Arial", "B", 16)
	pdf.SetXY(10, 35)
	pdf.CellFormat(pageW-20, 10, details.EventName, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	pdf.SetX(10)
	pdf.CellFormat(pageW-20, 8, fmt.Sprintf("Attendee: %s", details.UserName), "", 1, "C", false, 0, "")
	pdf.SetX(10)
	pdf.CellFormat(pageW-20, 8, fmt.Sprintf("Date: %s", details.EventDate), "", 1, "C", false, 0, "")
	pdf.SetX(10)
	pdf.CellFormat(pageW-20, 8, fmt.Sprintf("Ticket Quantity: %d", details.Quantity), "", 1, "C", false, 0, "")
	pdf.SetX(10)
	// Core PDF fonts cannot encode the rupee sign.
	amount := strings.ReplaceAll(details.TotalAmount, "₹", "Rs. ")
	pdf.CellFormat(pageW-20, 8, fmt.Sprintf("Total Amount: %s", amount), "", 1, "C", false, 0, "")

	// QR code
	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", pageW/2-25, 90, 50, 50, false, imgOpts, 0, "")

	// Footer
	pdf.SetFont("Arial", "", 10)
	pdf.SetXY(10, 150)
	pdf.CellFormat(pageW-20, 6, "Please present this ticket at the venue entrance", "", 1, "C", false, 0, "")
	pdf.SetX(10)
	pdf.CellFormat(pageW-20, 6, "Powered by InfiBot", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render ticket PDF: %w", err)
	}
	return buf.Bytes(), nil
}
