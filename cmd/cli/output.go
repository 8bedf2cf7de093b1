package main

import (
	"encoding/json"
	"fmt"
	"io"

	"blog-apps/internal/report"
)

const (
	formatText     = "text"
	formatMarkdown = "markdown"
	formatJSON     = "json"
)

func checkFormat(f string) error {
	switch f {
	case formatText, formatMarkdown, formatJSON:
		return nil
	default:
		return fmt.Errorf("unknown --format %q (want text, markdown or json)", f)
	}
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeMarkdown renders md for the terminal; style "notty" keeps it plain.
func writeMarkdown(out io.Writer, md, style string) error {
	rendered, err := report.Render(md, style)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, rendered)
	return err
}
