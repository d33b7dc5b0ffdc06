// Package printers renders platform assets for the substra CLI.
// Assets are printed either as a table (list view), as a detail block
// (single view) or as raw indented JSON.
package printers

import (
	"io"
)

// Item is one asset as decoded from the platform API.
type Item = map[string]interface{}

// Printer knows how to print assets of one kind.
type Printer interface {
	// PrintList prints the given items, as a table unless raw is set
	PrintList(w io.Writer, items []Item, raw bool) error
	// PrintSingle prints one item, as a detail block unless raw is set.
	// expand disables the summarizing of collection-valued fields.
	PrintSingle(w io.Writer, item Item, raw, expand bool) error
}
