package invoicedoc

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/samandr77/microservices/portal/internal/entity"
)

const (
	pageMargin   = 15.0
	contentWidth = 180.0
	lineHeight   = 5.0
	rowHeight    = 8.0
	boxPadding   = 4.0

	coreFamily = "Helvetica"
	fontFamily = "InvoiceBody"
)

type rgb struct{ r, g, b int }

var (
	colorTitle    = rgb{31, 41, 55}
	colorText     = rgb{55, 65, 81}
	colorMuted    = rgb{107, 114, 128}
	colorRule     = rgb{229, 231, 235}
	colorPanel    = rgb{248, 249, 250}
	colorTotalRow = rgb{227, 242, 253}
	colorAccent   = rgb{59, 130, 246}
	colorBankMark = rgb{220, 38, 38}
)

type Renderer struct {
	fontFile string
	compress bool
}

type Option func(*Renderer)

// WithFontFile makes the renderer embed a UTF-8 TrueType font instead of core Helvetica.
func WithFontFile(path string) Option {
	return func(r *Renderer) {
		r.fontFile = path
	}
}

func WithCompression(compress bool) Option {
	return func(r *Renderer) {
		r.compress = compress
	}
}

func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{compress: true}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// WritePDF renders d as a single A4 page. Nothing is written to w unless the
// whole document rendered successfully.
func (r *Renderer) WritePDF(w io.Writer, d Document) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", entity.ErrRender, p)
		}
	}()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(d.IssuedAt)
	pdf.SetModificationDate(d.IssuedAt)
	pdf.SetTitle("Invoice "+Filename(d.InvoiceID), true)
	pdf.SetAuthor(d.Issuer.Name, true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)

	family := coreFamily
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if r.fontFile != "" {
		pdf.AddUTF8Font(fontFamily, "", r.fontFile)
		pdf.AddUTF8Font(fontFamily, "B", r.fontFile)

		if pdf.Err() {
			return fmt.Errorf("%w: load font %s: %w", entity.ErrRender, r.fontFile, pdf.Error())
		}

		family = fontFamily
		tr = func(s string) string { return s }
	}

	p := &page{pdf: pdf, family: family, tr: tr}

	pdf.AddPage()
	p.header(d)
	p.billTo(d)
	p.serviceTable(d)
	p.bankDetails(d)
	p.notes(d)

	var buf bytes.Buffer

	err = pdf.Output(&buf)
	if err != nil {
		return fmt.Errorf("%w: %w", entity.ErrRender, err)
	}

	_, err = io.Copy(w, &buf)
	if err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}

	return nil
}

type page struct {
	pdf    *fpdf.Fpdf
	family string
	tr     func(string) string
}

func (p *page) font(style string, size float64, c rgb) {
	p.pdf.SetFont(p.family, style, size)
	p.pdf.SetTextColor(c.r, c.g, c.b)
}

func (p *page) cell(w, h float64, text string, ln int, align string, fill bool) {
	p.pdf.CellFormat(w, h, p.tr(text), "", ln, align, fill, 0, "")
}

func (p *page) rule(y float64, c rgb, width float64) {
	p.pdf.SetDrawColor(c.r, c.g, c.b)
	p.pdf.SetLineWidth(width)
	p.pdf.Line(pageMargin, y, pageMargin+contentWidth, y)
}

func (p *page) header(d Document) {
	const (
		leftWidth  = 110.0
		rightWidth = contentWidth - leftWidth
	)

	top := p.pdf.GetY()

	p.font("B", 16, colorTitle)
	p.cell(leftWidth, rowHeight, d.Issuer.Name, 2, "L", false)
	p.font("", 9, colorText)
	p.cell(leftWidth, lineHeight, d.Issuer.Address, 2, "L", false)
	p.cell(leftWidth, lineHeight, d.TaxIDLine(), 2, "L", false)

	leftBottom := p.pdf.GetY()

	p.pdf.SetXY(pageMargin+leftWidth, top)
	p.font("B", 16, colorTitle)
	p.cell(rightWidth, rowHeight, d.Title, 2, "R", false)
	p.font("", 9, colorText)

	for _, f := range d.Header {
		p.cell(rightWidth, lineHeight, f.String(), 2, "R", false)
	}

	y := max(leftBottom, p.pdf.GetY()) + 3
	p.rule(y, colorRule, 0.7)
	p.pdf.SetY(y + 6)
}

func (p *page) billTo(d Document) {
	p.font("", 10, colorMuted)
	p.cell(0, lineHeight, labelBillTo, 1, "L", false)
	p.font("B", 11, colorTitle)
	p.cell(0, 6, d.BillTo.Name, 1, "L", false)
	p.font("", 9, colorText)
	p.cell(0, lineHeight, labelCustomerID+" "+d.BillTo.CustomerID, 1, "L", false)
	p.pdf.Ln(6)
}

func (p *page) serviceTable(d Document) {
	colWidth := contentWidth / 3

	p.font("", 10, colorMuted)
	p.cell(0, lineHeight, labelServiceDetails, 1, "L", false)
	p.pdf.Ln(2)

	p.pdf.SetFillColor(colorPanel.r, colorPanel.g, colorPanel.b)
	p.font("B", 9, colorTitle)

	for i, h := range tableHeader {
		ln := 0
		if i == len(tableHeader)-1 {
			ln = 1
		}

		p.cell(colWidth, rowHeight, h, ln, "L", true)
	}

	p.font("", 9, colorText)

	for _, l := range d.Lines {
		p.cell(colWidth, rowHeight, l.Description, 0, "L", false)
		p.cell(colWidth, rowHeight, l.ReturnType, 0, "L", false)
		p.cell(colWidth, rowHeight, l.Amount, 1, "L", false)
		p.rule(p.pdf.GetY(), colorRule, 0.2)
	}

	p.summaryRow(colWidth, labelSubtotal, d.Totals.Subtotal, false)
	p.summaryRow(colWidth, labelPlatformFee, d.Totals.PlatformFee, false)

	p.pdf.SetFillColor(colorTotalRow.r, colorTotalRow.g, colorTotalRow.b)
	p.font("B", 10, colorTitle)
	p.summaryRow(colWidth, labelTotal, d.Totals.Total, true)

	p.font("B", 9, colorText)
	p.cell(contentWidth, rowHeight, d.InWordsLine(), 1, "C", false)
	p.rule(p.pdf.GetY(), colorRule, 0.2)
	p.pdf.Ln(6)
}

func (p *page) summaryRow(colWidth float64, label, amount string, fill bool) {
	p.cell(colWidth, rowHeight, "", 0, "L", fill)
	p.cell(colWidth, rowHeight, label, 0, "R", fill)
	p.cell(colWidth, rowHeight, amount, 1, "L", fill)
	p.rule(p.pdf.GetY(), colorRule, 0.2)
}

func (p *page) bankDetails(d Document) {
	const (
		markRadius = 8.0
		textX      = pageMargin + boxPadding + 2*markRadius + 6
	)

	top := p.pdf.GetY()
	height := float64(len(d.Bank)+1)*lineHeight + 2*boxPadding

	p.pdf.SetFillColor(colorPanel.r, colorPanel.g, colorPanel.b)
	p.pdf.Rect(pageMargin, top, contentWidth, height, "F")

	cx := pageMargin + boxPadding + markRadius
	cy := top + height/2

	p.pdf.SetDrawColor(colorBankMark.r, colorBankMark.g, colorBankMark.b)
	p.pdf.SetLineWidth(0.8)
	p.pdf.Circle(cx, cy, markRadius, "D")
	p.pdf.SetXY(cx-markRadius, cy-lineHeight)
	p.font("B", 9, colorBankMark)
	p.cell(2*markRadius, lineHeight, "CF", 2, "C", false)
	p.font("B", 9, colorMuted)
	p.cell(2*markRadius, lineHeight, "SB", 2, "C", false)

	p.pdf.SetXY(textX, top+boxPadding)
	p.font("B", 10, colorTitle)
	p.cell(0, lineHeight, labelBankDetails, 1, "L", false)
	p.font("", 9, colorText)

	for _, f := range d.Bank {
		p.pdf.SetX(textX)
		p.cell(0, lineHeight, f.String(), 1, "L", false)
	}

	p.pdf.SetY(top + height + 6)
}

func (p *page) notes(d Document) {
	const accentWidth = 1.4

	top := p.pdf.GetY()
	height := 2*lineHeight + 2*boxPadding

	p.pdf.SetFillColor(colorPanel.r, colorPanel.g, colorPanel.b)
	p.pdf.Rect(pageMargin, top, contentWidth, height, "F")
	p.pdf.SetFillColor(colorAccent.r, colorAccent.g, colorAccent.b)
	p.pdf.Rect(pageMargin, top, accentWidth, height, "F")

	p.pdf.SetXY(pageMargin+boxPadding+accentWidth, top+boxPadding)
	p.font("B", 10, colorTitle)
	p.cell(0, lineHeight, labelNotes, 1, "L", false)
	p.pdf.SetX(pageMargin + boxPadding + accentWidth)
	p.font("", 9, colorText)
	p.cell(0, lineHeight, d.Notes, 1, "L", false)
}
