package invoicedoc

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/samandr77/microservices/portal/internal/entity"
)

//go:embed templates/preview.html
var templates embed.FS

var previewTmpl = template.Must(template.New("preview.html").Funcs(template.FuncMap{
	"filename": Filename,
}).ParseFS(templates, "templates/preview.html"))

// WriteHTML renders the on-screen preview of d. It prints the same strings as WritePDF.
func (r *Renderer) WriteHTML(w io.Writer, d Document) error {
	var buf bytes.Buffer

	err := previewTmpl.Execute(&buf, struct {
		Document
		TableHeader [3]string
		Labels      map[string]string
	}{
		Document:    d,
		TableHeader: tableHeader,
		Labels: map[string]string{
			"BillTo":         labelBillTo,
			"CustomerID":     labelCustomerID,
			"ServiceDetails": labelServiceDetails,
			"Subtotal":       labelSubtotal,
			"PlatformFee":    labelPlatformFee,
			"Total":          labelTotal,
			"BankDetails":    labelBankDetails,
			"Notes":          labelNotes,
		},
	})
	if err != nil {
		return fmt.Errorf("%w: preview: %w", entity.ErrRender, err)
	}

	_, err = io.Copy(w, &buf)
	if err != nil {
		return fmt.Errorf("write preview: %w", err)
	}

	return nil
}
