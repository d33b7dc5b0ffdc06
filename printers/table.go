package printers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// printTable prints one column per field and one row per item. Each column
// is as wide as its longest cell plus padding, rounded up to a multiple of 4.
func printTable(w io.Writer, items []Item, fields []Field) error {
	columns := getColumns(items, fields)
	widths := getColumnWidths(columns)

	var buf bytes.Buffer
	for row := 0; row < len(items)+1; row++ {
		for col, column := range columns {
			buf.WriteString(padRight(column[row], widths[col]))
		}
		buf.WriteByte('\n')
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// getColumns returns, per field, the header followed by the cell of every item.
func getColumns(items []Item, fields []Field) [][]string {
	columns := make([][]string, 0, len(fields))
	for _, field := range fields {
		column := make([]string, 0, len(items)+1)
		column = append(column, field.Header())
		for _, item := range items {
			column = append(column, formatValue(field.Value(item, false)))
		}
		columns = append(columns, column)
	}
	return columns
}

func getColumnWidths(columns [][]string) []int {
	widths := make([]int, 0, len(columns))
	for _, column := range columns {
		longest := 0
		for _, cell := range column {
			if n := utf8.RuneCountInString(cell); n > longest {
				longest = n
			}
		}
		widths = append(widths, paddedWidth(longest))
	}
	return widths
}

// printDetails prints one "NAME<padding>value" line per field. List values
// span one line per element, the name column left blank after the first.
func printDetails(w io.Writer, item Item, fields []Field, expand bool) error {
	width := getFieldNameWidth(fields)
	padding := strings.Repeat(" ", width)

	var buf bytes.Buffer
	for _, field := range fields {
		name := padRight(field.Header(), width)
		value := field.Value(item, expand)

		list, ok := asList(value)
		switch {
		case !ok:
			fmt.Fprintf(&buf, "%s%s\n", name, formatValue(value))
		case len(list) == 0:
			fmt.Fprintf(&buf, "%s%s\n", name, noneValue)
		default:
			for i, v := range list {
				prefix := padding
				if i == 0 {
					prefix = name
				}
				fmt.Fprintf(&buf, "%s- %s\n", prefix, formatValue(v))
			}
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func getFieldNameWidth(fields []Field) int {
	longest := 0
	for _, field := range fields {
		if n := utf8.RuneCountInString(field.Name); n > longest {
			longest = n
		}
	}
	return paddedWidth(longest)
}

// paddedWidth returns the smallest multiple of 4 that leaves at least one
// blank after n characters.
func paddedWidth(n int) int {
	return (n/4 + 1) * 4
}

func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// formatValue renders a value for a table cell or a detail line.
func formatValue(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return noneValue
	case string:
		return value
	case json.Number:
		return value.String()
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(value), 'f', -1, 32)
	case map[string]interface{}:
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprint(value)
		}
		return string(data)
	}

	if list, ok := asList(v); ok {
		parts := make([]string, len(list))
		for i, elem := range list {
			parts[i] = formatValue(elem)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}

	return fmt.Sprint(v)
}
