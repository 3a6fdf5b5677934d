package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// PrintYAML outputs any value as YAML to stdout.
func PrintYAML(v any) error {
	return FprintYAML(os.Stdout, v)
}

// FprintYAML outputs any value as YAML to w. The value is round-tripped
// through its JSON representation first so the YAML keys match the API's
// wire names instead of Go field names.
func FprintYAML(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}

	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(generic)
}
