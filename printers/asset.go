package printers

import (
	"bytes"
	"fmt"
	"io"
)

// Hint is a message followed by the command line it suggests.
type Hint struct {
	Message string
	Command string
}

// HintFunc builds an extra hint for the item with the given key.
type HintFunc func(key string) Hint

// Descriptor declares how one asset kind is printed.
type Descriptor struct {
	// AssetName is the name used in suggested commands
	AssetName string
	// KeyField is always printed first
	KeyField Field
	// ListFields are printed after the key in list view
	ListFields []Field
	// SingleFields are printed after the key in single view
	SingleFields []Field
	// DownloadMessage introduces the download command, if any
	DownloadMessage string
	// HasDescription enables the describe command hint
	HasDescription bool
	// ExtraHints are printed after the download and describe hints
	ExtraHints []HintFunc
}

func (d *Descriptor) listFields() []Field {
	return append([]Field{d.KeyField}, d.ListFields...)
}

func (d *Descriptor) singleFields() []Field {
	return append([]Field{d.KeyField}, d.SingleFields...)
}

// Hints returns the hints printed below the single view of item.
func (d *Descriptor) Hints(item Item) []Hint {
	key := formatValue(d.KeyField.Value(item, false))

	var hints []Hint
	if d.DownloadMessage != "" {
		hints = append(hints, Hint{
			Message: d.DownloadMessage,
			Command: fmt.Sprintf("substra download %s %s", d.AssetName, key),
		})
	}
	if d.HasDescription {
		hints = append(hints, Hint{
			Message: fmt.Sprintf("Display this %s's description:", d.AssetName),
			Command: fmt.Sprintf("substra describe %s %s", d.AssetName, key),
		})
	}
	for _, extra := range d.ExtraHints {
		hints = append(hints, extra(key))
	}
	return hints
}

// assetPrinter prints an asset kind according to its descriptor.
type assetPrinter struct {
	descriptor Descriptor
}

// NewAssetPrinter creates a printer for the asset kind described by d.
func NewAssetPrinter(d Descriptor) Printer {
	return &assetPrinter{descriptor: d}
}

// PrintList prints items as a table of the key and list fields.
func (p *assetPrinter) PrintList(w io.Writer, items []Item, raw bool) error {
	if raw {
		if items == nil {
			items = []Item{}
		}
		return printRaw(w, items)
	}
	return printTable(w, items, p.descriptor.listFields())
}

// PrintSingle prints item as a detail block followed by its hints.
func (p *assetPrinter) PrintSingle(w io.Writer, item Item, raw, expand bool) error {
	if raw {
		return printRaw(w, item)
	}

	if err := printDetails(w, item, p.descriptor.singleFields(), expand); err != nil {
		return err
	}
	return printHints(w, p.descriptor.Hints(item))
}

func printHints(w io.Writer, hints []Hint) error {
	var buf bytes.Buffer
	for _, hint := range hints {
		fmt.Fprintf(&buf, "\n%s\n\t%s\n", hint.Message, hint.Command)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
