package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// writeModel writes the JSON encoding of v to w, indented, or converted to YAML.
// Models are encoded through their MarshalJSON, so that unknown keys are written back.
func writeModel(w io.Writer, v any, format string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode result: %v", err)
	}

	switch format {
	case formatJSON:
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case formatYAML:
		// JSON is YAML: decoding to a node keeps the key order of the encoding.
		var n yaml.Node
		if err := yaml.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("could not convert result to YAML: %v", err)
		}
		blockStyle(&n)
		out, err := yaml.Marshal(&n)
		if err != nil {
			return fmt.Errorf("could not encode result as YAML: %v", err)
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// blockStyle drops the flow and quoting styles read from JSON.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
