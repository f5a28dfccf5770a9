package service

import (
	"strings"
	"time"

	"github.com/sumashijiru045-dot/pos-app/internal/domain/entity"
	"github.com/sumashijiru045-dot/pos-app/internal/domain/enum"
	"github.com/sumashijiru045-dot/pos-app/pkg/apperror"
	"github.com/sumashijiru045-dot/pos-app/pkg/money"
	"github.com/sumashijiru045-dot/pos-app/pkg/printer"
)

// receiptWidth is the character width of the 58mm thermal paper the counter
// printer takes.
const receiptWidth = 32

// PrinterService renders receipts into ESC/POS jobs and sends them to the
// counter printer.
type PrinterService struct {
	printer     printer.Printer
	checkout    *CheckoutService
	printerType string
}

// NewPrinterService creates a new printer service
func NewPrinterService(p printer.Printer, checkout *CheckoutService, printerType string) *PrinterService {
	return &PrinterService{printer: p, checkout: checkout, printerType: printerType}
}

// PrinterStatus reports the printer configuration and reachability.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a sample receipt so the operator can verify paper and
// alignment. The rendered receipt is returned either way.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		ShopName:      "PRINTER TEST",
		OrderID:       "TEST-001",
		IssuedAt:      time.Now(),
		Items:         []entity.ReceiptItem{{Name: "Test item", Qty: 2, UnitPrice: 5000, Total: 10000}},
		Subtotal:      10000,
		Total:         10000,
		PaymentMethod: "Cash",
		CashReceived:  10000,
	}
	if err := s.printer.Print(RenderReceipt(receipt)); err != nil {
		return receipt, apperror.NewValidationError("Test print failed: " + err.Error())
	}
	return receipt, nil
}

// PrintOrderReceipt re-issues the receipt of a Closed order and prints it.
func (s *PrinterService) PrintOrderReceipt(orderID string) (*entity.Receipt, error) {
	order, err := s.checkout.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != enum.OrderStatusClosed {
		return nil, apperror.NewValidationError("Only closed orders have receipts")
	}
	receipt := entity.NewReceipt(s.checkout.shopName, &order)
	if err := s.printer.Print(RenderReceipt(receipt)); err != nil {
		return receipt, apperror.NewValidationError("Print failed: " + err.Error())
	}
	return receipt, nil
}

// RenderReceipt lays a receipt out for 58mm thermal paper.
func RenderReceipt(r *entity.Receipt) []byte {
	d := printer.NewDocument(receiptWidth)

	d.Align(printer.AlignCenter).
		Size(printer.FontDouble).Line(r.ShopName).
		Size(printer.FontNormal).
		Line(r.IssuedAt.Format("2006-01-02 15:04")).
		Line("Order " + r.OrderID).
		Align(printer.AlignLeft).
		Rule('-')

	for _, item := range r.Items {
		d.Item(item.Qty, item.Name, printAmount(item.Total))
	}
	d.Rule('-')

	d.Pair("Subtotal", printAmount(r.Subtotal))
	if r.DiscountAmount > 0 {
		name := r.DiscountName
		if name == "" {
			name = "Discount"
		}
		d.Pair(name, "-"+printAmount(r.DiscountAmount))
	}
	d.Bold(true).Pair("TOTAL", printAmount(r.Total)).Bold(false)

	if r.PaymentMethod != "" {
		d.Pair("Paid by", r.PaymentMethod)
	}
	if r.PaymentMethod == "Cash" {
		d.Pair("Received", printAmount(r.CashReceived))
		d.Pair("Change", printAmount(r.Change))
	}
	if r.Note != "" {
		d.Rule('-').Line("Note: " + r.Note)
	}

	d.Align(printer.AlignCenter).
		Feed(1).
		Line("Thank you!").
		Feed(3).
		Cut()
	return d.Bytes()
}

// printAmount renders Kip for fixed-width paper. The currency sign is
// multi-byte and breaks column math, so the job uses a plain K suffix.
func printAmount(v int64) string {
	return strings.TrimSuffix(money.FormatKip(v), "₭") + " K"
}
