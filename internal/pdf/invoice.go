package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"storefront/internal/models"
)

// Generator is the invoice rendering interface (easy to mock in tests).
type Generator interface {
	GenerateInvoice(order *models.Order, customerEmail string) (string, error)
}

type InvoiceGenerator struct {
	RootDir string // storage root, e.g. "./files"
}

func NewInvoiceGenerator(rootDir string) *InvoiceGenerator {
	return &InvoiceGenerator{RootDir: filepath.Clean(rootDir)}
}

// GenerateInvoice renders the order as an A4 invoice and returns the
// relative URL path of the written file.
func (g *InvoiceGenerator) GenerateInvoice(order *models.Order, customerEmail string) (string, error) {
	filename := fmt.Sprintf("invoice_%s.pdf", order.OrderNumber)
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice %s", order.OrderNumber), false)
	pdf.SetAuthor("Storefront", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// ===== Header
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "INVOICE", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	sub := fmt.Sprintf("%s  /  %s", order.OrderNumber, order.CreatedAt.Format("02.01.2006"))
	pdf.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(3)

	// ===== Parties
	g.sectionTitle(pdf, "Customer")
	g.kvLine(pdf, "Email", customerEmail)
	g.kvLine(pdf, "Order status", order.Status)
	g.kvLine(pdf, "Payment", order.PaymentStatus)
	if order.PaymentMethod != "" {
		g.kvLine(pdf, "Payment method", order.PaymentMethod)
	}
	pdf.Ln(2)
	g.hr(pdf)

	// ===== Items table
	g.sectionTitle(pdf, "Items")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(80, 7, "Product", "B", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "SKU", "B", 0, "L", false, 0, "")
	pdf.CellFormat(15, 7, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(22, 7, "Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(23, 7, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range order.Items {
		pdf.CellFormat(80, 7, item.ProductName, "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, item.ProductSKU, "", 0, "L", false, 0, "")
		pdf.CellFormat(15, 7, fmt.Sprintf("%d", item.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(22, 7, fmt.Sprintf("%.2f", item.Price), "", 0, "R", false, 0, "")
		pdf.CellFormat(23, 7, fmt.Sprintf("%.2f", item.TotalPrice), "", 1, "R", false, 0, "")
	}
	pdf.Ln(2)
	g.hr(pdf)

	// ===== Totals
	g.sectionTitle(pdf, "Totals")
	g.kvLine(pdf, "Shipping fee", fmt.Sprintf("%.2f", order.ShippingFee))
	g.kvLine(pdf, "Total amount", fmt.Sprintf("%.2f", order.TotalAmount))

	// ===== Page numbers
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 10,
			fmt.Sprintf("Page %d/{nb}", pdf.PageNo()),
			"", 0, "C", false, 0, "",
		)
	})

	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", err
	}
	return "/" + filepath.ToSlash(filepath.Base(absPath)), nil
}

// ===== helpers =====

func (g *InvoiceGenerator) sectionTitle(pdf *gofpdf.Fpdf, s string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, s, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
}

func (g *InvoiceGenerator) kvLine(pdf *gofpdf.Fpdf, key, val string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(45, 6, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, val, "", 1, "L", false, 0, "")
}

func (g *InvoiceGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(20, y, 190, y)
	pdf.SetY(y + 2)
}

func (g *InvoiceGenerator) ensureTarget(filename string) (string, error) {
	if err := os.MkdirAll(g.RootDir, 0o755); err != nil {
		return "", fmt.Errorf("create files dir: %w", err)
	}
	filename = filepath.Base(filename)
	return filepath.Join(g.RootDir, filename), nil
}
