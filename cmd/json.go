package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

var OutFilePerm = os.FileMode(0o755)

// writeJSON writes value as indented JSON to the given path,
// or to stdout when the path is empty or "-".
func writeJSON(outPath string, value any) error {
	var out io.Writer = os.Stdout
	if outPath != "" && outPath != "-" {
		f, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, OutFilePerm)
		if err != nil {
			return fmt.Errorf("failed to open output file %q: %w", outPath, err)
		}
		defer f.Close()
		out = f
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
