package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/MKhiriev/go-library-keeper/internal/service"
	"github.com/MKhiriev/go-library-keeper/internal/utils"
	"github.com/MKhiriev/go-library-keeper/models"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warnColor    = color.New(color.FgYellow, color.Bold)
	headerColor  = color.New(color.FgCyan, color.Bold)
	labelColor   = color.New(color.FgCyan)
)

// table renders rows with columns padded to the widest cell.
type table struct {
	headers []string
	rows    [][]string
}

func (t *table) addRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) render(w io.Writer) {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], utf8.RuneCountInString(cell))
			}
		}
	}

	for i, h := range t.headers {
		headerColor.Fprint(w, pad(h, widths[i]))
		if i < len(t.headers)-1 {
			fmt.Fprint(w, "  ")
		}
	}
	fmt.Fprintln(w)

	for _, row := range t.rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = pad(cell, widths[i])
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " "))
	}
}

func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func printItems(w io.Writer, items []models.Metadata) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No items")
		return
	}

	t := &table{headers: []string{"ID", "TITLE", "TYPE", "PLATFORM", "TAGS", "ARCHIVE", "DEPLOYED"}}
	for _, item := range items {
		size := "-"
		if item.ArchiveSize != nil {
			size = utils.FormatBytes(*item.ArchiveSize)
		}
		deployed := "no"
		if !item.DeployInfo.IsUnset() {
			deployed = "yes"
		}
		t.addRow(
			item.ID,
			utils.Truncate(item.Title, 40),
			string(item.ContentType),
			item.Platform.Label(),
			utils.Truncate(strings.Join(item.Tags, ","), 30),
			size,
			deployed,
		)
	}
	t.render(w)
}

func printItem(w io.Writer, item models.Metadata) {
	line := func(label, value string) {
		labelColor.Fprint(w, pad(label+":", 14))
		fmt.Fprintln(w, value)
	}

	line("ID", item.ID)
	line("Title", item.Title)
	line("Alias", joinOrDash(item.Alias))
	line("Tags", joinOrDash(item.Tags))
	line("Type", string(item.ContentType))
	line("Platform", item.Platform.Label())
	line("Developer", derefOrDash(item.Developer))
	line("Publisher", derefOrDash(item.Publisher))
	line("Version", derefOrDash(item.Version))
	if item.ArchiveInfo.IsUnset() {
		line("Archive", "-")
	} else {
		line("Archive", fmt.Sprintf("%s %s", item.ArchiveInfo.Kind(), item.ArchiveInfo.Path()))
	}
	if item.ArchiveSize != nil {
		line("Archive size", utils.FormatBytes(*item.ArchiveSize))
	}
	if item.DeployInfo.IsUnset() {
		line("Deploy", "-")
	} else {
		line("Deploy", fmt.Sprintf("%s %s", item.DeployInfo.Kind(), item.DeployInfo.Path()))
	}
	if item.Description != nil && *item.Description != "" {
		line("Description", *item.Description)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// report prints the outcome of a mutation. A write whose refetch failed is
// reported as a warning and is not a command failure.
func report(w io.Writer, err error, success string) error {
	if service.IsResync(err) {
		warnColor.Fprintf(w, "! %s, but the library could not be refreshed: %v\n", success, err)
		return nil
	}
	if err != nil {
		return err
	}
	successColor.Fprintf(w, "✓ %s\n", success)
	return nil
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}

func derefOrDash(p *string) string {
	if p == nil || *p == "" {
		return "-"
	}
	return *p
}
