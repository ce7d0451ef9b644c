package ticket

// TicketDetails carries everything printed on a rendered ticket.
type TicketDetails struct {
	EventName   string
	UserName    string
	EventDate   string
	Quantity    int
	TotalAmount string
}

// Renderer produces the scannable QR payload and the ticket document. This
// is the one collaborator whose failure is user-visible: a booking attempt
// without a rendered ticket is aborted.
type Renderer interface {
	QRPayload(bookingID string) string
	GenerateQR(payload string) ([]byte, error)
	RenderTicket(details TicketDetails, qrPNG []byte) ([]byte, error)
}

// PDFRenderer renders A5 PDF tickets with an embedded QR code. QR payloads
// are HMAC-signed so scanners can verify them offline.
type PDFRenderer struct {
	SigningKey string
}

func NewPDFRenderer(signingKey string) *PDFRenderer {
	return &PDFRenderer{SigningKey: signingKey}
}
