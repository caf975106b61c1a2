// Package invoicedoc turns an invoice into the fixed-layout tax invoice document
// and renders it as a downloadable PDF or an on-screen HTML preview.
package invoicedoc

import (
	"fmt"
	"strconv"
	"time"

	"github.com/samandr77/microservices/portal/internal/entity"
	"github.com/samandr77/microservices/portal/pkg/money"
)

type Issuer struct {
	Name    string
	Address string
	TaxID   string
}

type Field struct {
	Label string
	Value string
}

func (f Field) String() string {
	return f.Label + " " + f.Value
}

type BillTo struct {
	Name       string
	CustomerID string
}

type Line struct {
	Description string
	ReturnType  string
	Amount      string
}

type Totals struct {
	Subtotal    string
	PlatformFee string
	Total       string
	InWords     string
}

// Document is the complete content of one rendered invoice. Both renderers
// print exactly these strings.
type Document struct {
	InvoiceID int64
	IssuedAt  time.Time
	Title     string
	Issuer    Issuer
	Header    []Field
	BillTo    BillTo
	Lines     []Line
	Totals    Totals
	Bank      []Field
	Notes     string
}

const (
	title        = "TAX INVOICE"
	notesText    = "Thank you for your continued trust in our services."
	paymentTerms = "Immediate"
	acceptedBy   = "ACH & Fedwire"

	labelBillTo         = "Bill to:"
	labelCustomerID     = "Customer ID:"
	labelServiceDetails = "Service Details:"
	labelSubtotal       = "Subtotal"
	labelPlatformFee    = "Payment Platform Fee"
	labelTotal          = "Total"
	labelInWords        = "Total in words:"
	labelBankDetails    = "Bank Details:"
	labelNotes          = "Notes:"
)

var (
	issuer = Issuer{
		Name:    "Invertio Solutions",
		Address: "5 Penn Plaza, 14th Floor, New York, NY 10001, US",
		TaxID:   "36AAHCJ2304M1ZK",
	}

	bankDetails = []Field{
		{Label: "Bank Name:", Value: "Community Federal Savings Bank"},
		{Label: "Account Holder:", Value: "INVERTIO SOLUTIONS PRIVATE LIMITED"},
		{Label: "Account Number:", Value: "8331054346"},
		{Label: "ACH Routing Number:", Value: "026073150"},
		{Label: "Fedwire Routing Number:", Value: "026073008"},
		{Label: "Address:", Value: "5 Penn Plaza, 14th Floor, New York, NY 10001, US"},
	}

	tableHeader = [3]string{"Description", "Return Type", "Amount (USD)"}
)

// Filename is the name a downloaded invoice is saved under.
func Filename(invoiceID int64) string {
	return fmt.Sprintf("invoice-%d.pdf", invoiceID)
}

// Build lays out inv. It never touches the network; everything it prints is
// either on the invoice or a compile-time constant.
func Build(inv entity.Invoice) (Document, error) {
	err := validate(inv)
	if err != nil {
		return Document{}, err
	}

	totals := inv.Totals()
	amount := money.FormatCurrency(totals.Subtotal)

	return Document{
		InvoiceID: inv.ID,
		IssuedAt:  inv.CreatedAt,
		Title:     title,
		Issuer:    issuer,
		Header: []Field{
			{Label: "Invoice #:", Value: strconv.FormatInt(inv.ID, 10)},
			{Label: "Invoice Date:", Value: money.FormatTime(inv.CreatedAt)},
			{Label: "Due Date:", Value: money.FormatTime(inv.DueDate)},
			{Label: "Payment terms:", Value: paymentTerms},
			{Label: "Accepted Methods:", Value: acceptedBy},
		},
		BillTo: BillTo{
			Name:       inv.CustomerName,
			CustomerID: inv.CustomerID,
		},
		// The service line is printed twice with type and name swapped.
		// Kept as is until product confirms whether it is two billable items.
		Lines: []Line{
			{Description: inv.ReturnType, ReturnType: inv.ReturnName, Amount: amount},
			{Description: inv.ReturnName, ReturnType: inv.ReturnType, Amount: amount},
		},
		Totals: Totals{
			Subtotal:    amount,
			PlatformFee: money.FormatCurrency(totals.PlatformFee),
			Total:       money.FormatCurrency(totals.Total),
			InWords:     money.AmountInWords(totals.Total),
		},
		Bank:  bankDetails,
		Notes: notesText,
	}, nil
}

func validate(inv entity.Invoice) error {
	var missing []string

	if inv.ID == 0 {
		missing = append(missing, "id")
	}

	if inv.CustomerID == "" {
		missing = append(missing, "customer id")
	}

	if inv.CustomerName == "" {
		missing = append(missing, "customer name")
	}

	if inv.ReturnName == "" {
		missing = append(missing, "return name")
	}

	if inv.ReturnType == "" {
		missing = append(missing, "return type")
	}

	if inv.CreatedAt.IsZero() {
		missing = append(missing, "created at")
	}

	if inv.DueDate.IsZero() {
		missing = append(missing, "due date")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: invoice %d is missing %v", entity.ErrRender, inv.ID, missing)
	}

	if inv.Amount.IsNegative() {
		return fmt.Errorf("%w: invoice %d has negative amount %s", entity.ErrRender, inv.ID, inv.Amount)
	}

	return nil
}

// TaxIDLine is the issuer tax id as printed under the address.
func (d Document) TaxIDLine() string {
	return "GSTIN: " + d.Issuer.TaxID
}

// InWordsLine is the full words row of the totals table.
func (d Document) InWordsLine() string {
	return labelInWords + " " + d.Totals.InWords
}

// Texts lists every printed string in reading order.
func (d Document) Texts() []string {
	texts := []string{d.Issuer.Name, d.Issuer.Address, d.TaxIDLine(), d.Title}

	for _, f := range d.Header {
		texts = append(texts, f.String())
	}

	texts = append(texts, labelBillTo, d.BillTo.Name, labelCustomerID+" "+d.BillTo.CustomerID, labelServiceDetails)
	texts = append(texts, tableHeader[:]...)

	for _, l := range d.Lines {
		texts = append(texts, l.Description, l.ReturnType, l.Amount)
	}

	texts = append(texts,
		labelSubtotal, d.Totals.Subtotal,
		labelPlatformFee, d.Totals.PlatformFee,
		labelTotal, d.Totals.Total,
		d.InWordsLine(),
		labelBankDetails,
	)

	for _, f := range d.Bank {
		texts = append(texts, f.String())
	}

	return append(texts, labelNotes, d.Notes)
}
