// Package command provides the static command table behind the help listing.
package command

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// NameColumnWidth is the fixed width of the command name column in the listing.
const NameColumnWidth = 25

// Descriptor describes one command entry point.
// Entries are defined once at startup and never mutated.
type Descriptor struct {
	// Name is the command name as typed on the command line
	Name string
	// Group is the section title the entry is listed under
	Group string
	// Help is the one-line description shown in the listing.
	// Entries with an empty Help are hidden from the listing.
	Help string
}

// Table is an immutable, ordered collection of command descriptors.
// Listing order matches declaration order.
type Table struct {
	entries []Descriptor
}

// NewTable builds a Table from descriptors in declaration order.
func NewTable(entries ...Descriptor) *Table {
	copied := make([]Descriptor, len(entries))
	copy(copied, entries)
	return &Table{entries: copied}
}

// Entries returns a copy of the descriptors in declaration order.
func (t *Table) Entries() []Descriptor {
	copied := make([]Descriptor, len(t.entries))
	copy(copied, t.entries)
	return copied
}

// Len returns the number of descriptors, including hidden ones.
func (t *Table) Len() int {
	return len(t.entries)
}

// Render writes the two-column listing to w.
// Each annotated entry produces exactly one line with the name left-aligned
// in a NameColumnWidth column. Whenever the group changes, a blank line and
// the emphasized group title precede the entries. Entries without help text
// are skipped. An empty table renders nothing.
func (t *Table) Render(w io.Writer) {
	title := color.New(color.Bold)
	name := color.New(color.FgCyan)

	var lastGroup string
	for _, e := range t.entries {
		if e.Help == "" {
			continue
		}
		if e.Group != "" && e.Group != lastGroup {
			fmt.Fprintf(w, "\n%s\n", title.Sprint(e.Group))
			lastGroup = e.Group
		}
		fmt.Fprintf(w, "  %s %s\n", name.Sprintf("%-*s", NameColumnWidth, e.Name), e.Help)
	}
}
