package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"
)

// PlainFormatter formats output as a simple tab-separated table followed by
// a summary block. It produces plain text output suitable for scripting and
// piping. No colors or styling are applied.
type PlainFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PlainFormatter) Format(w *bytes.Buffer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)

	if _, err := tw.Write([]byte("KIND\tSIZE\tPATH\n")); err != nil {
		return err
	}

	for i := range r.Items {
		item := &r.Items[i]
		row := item.Kind() + "\t" + item.SizeHuman + "\t" + item.Path + "\n"
		if _, err := tw.Write([]byte(row)); err != nil {
			return err
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nfiles deleted: %d\n", r.Summary.FilesDeleted)
	fmt.Fprintf(w, "directories deleted: %d\n", r.Summary.DirsDeleted)
	fmt.Fprintf(w, "space freed: %s\n", r.Summary.SpaceFreedHuman)
	fmt.Fprintf(w, "elapsed: %s\n", r.Summary.Elapsed)

	for _, warning := range r.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}

	return nil
}

func init() {
	Register("plain", func() Formatter {
		return &PlainFormatter{}
	})
}

// Ensure PlainFormatter implements Formatter.
var _ Formatter = (*PlainFormatter)(nil)
