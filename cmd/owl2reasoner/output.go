package main

import (
	"encoding/json"
	"os"
)

// writeResult serializes result as JSON to output, or stdout if output is
// empty.
func writeResult(result any, output string, pretty bool) error {
	w := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	enc.SetEscapeHTML(false)
	return enc.Encode(result)
}
