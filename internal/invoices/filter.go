package invoices

import (
	"strconv"
	"strings"

	"github.com/samandr77/microservices/portal/internal/entity"
)

// StatusAll disables status filtering.
const StatusAll = "all"

type Filter struct {
	Status string
	Search string
}

func (f Filter) normalized() Filter {
	f.Status = strings.ToLower(strings.TrimSpace(f.Status))
	if f.Status == StatusAll {
		f.Status = ""
	}

	f.Search = strings.TrimSpace(f.Search)

	return f
}

// Apply returns the invoices matching both the status and the search term.
// The input slice is never modified.
func (f Filter) Apply(invoices []entity.Invoice) []entity.Invoice {
	f = f.normalized()

	return ApplySearch(ApplyStatus(invoices, f.Status), f.Search)
}

// ApplyStatus keeps invoices whose status equals status ignoring case.
// An empty status or "all" keeps everything.
func ApplyStatus(invoices []entity.Invoice, status string) []entity.Invoice {
	if status == "" || strings.EqualFold(status, StatusAll) {
		return clone(invoices)
	}

	out := make([]entity.Invoice, 0, len(invoices))

	for _, inv := range invoices {
		if strings.EqualFold(inv.Status.String(), status) {
			out = append(out, inv)
		}
	}

	return out
}

// ApplySearch keeps invoices where search occurs, ignoring case, in the
// customer name, return name, return type, status or id.
func ApplySearch(invoices []entity.Invoice, search string) []entity.Invoice {
	if search == "" {
		return clone(invoices)
	}

	needle := strings.ToLower(search)
	out := make([]entity.Invoice, 0, len(invoices))

	for _, inv := range invoices {
		if matches(inv, needle) {
			out = append(out, inv)
		}
	}

	return out
}

func matches(inv entity.Invoice, needle string) bool {
	for _, hay := range []string{
		inv.CustomerName,
		inv.ReturnName,
		inv.ReturnType,
		inv.Status.String(),
		strconv.FormatInt(inv.ID, 10),
	} {
		if strings.Contains(strings.ToLower(hay), needle) {
			return true
		}
	}

	return false
}

func clone(invoices []entity.Invoice) []entity.Invoice {
	return append(make([]entity.Invoice, 0, len(invoices)), invoices...)
}
