package printers

import (
	"encoding/json"
	"io"
)

// printRaw prints data as JSON indented with two spaces.
func printRaw(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(data)
}

// jsonOnlyPrinter prints assets that have no declared fields.
type jsonOnlyPrinter struct{}

// NewJSONOnlyPrinter creates a printer that always prints raw JSON.
func NewJSONOnlyPrinter() Printer {
	return &jsonOnlyPrinter{}
}

// PrintList prints items as JSON whatever raw says.
func (p *jsonOnlyPrinter) PrintList(w io.Writer, items []Item, _ bool) error {
	if items == nil {
		items = []Item{}
	}
	return printRaw(w, items)
}

// PrintSingle prints item as JSON whatever raw and expand say.
func (p *jsonOnlyPrinter) PrintSingle(w io.Writer, item Item, _, _ bool) error {
	return printRaw(w, item)
}
