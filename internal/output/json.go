package output

import (
	"encoding/json"
	"io"
	"os"
)

// PrintJSON outputs any value as indented JSON to stdout.
func PrintJSON(v any) error {
	return FprintJSON(os.Stdout, v)
}

// FprintJSON outputs any value as indented JSON to w.
func FprintJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// JSONString returns formatted JSON as a string.
func JSONString(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
