package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
)

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printQuery evaluates the JSONPath expression path on the JSON form of v
// and writes the result: one line per value for a list, scalars as plain
// text and objects as JSON.
func printQuery(w io.Writer, v any, path string) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	res, err := jsonpath.Get(path, doc)
	if err != nil {
		return fmt.Errorf("query %q: %w", path, err)
	}
	if list, ok := res.([]any); ok {
		for _, item := range list {
			if err := printValue(w, item); err != nil {
				return err
			}
		}
		return nil
	}
	return printValue(w, res)
}

func printValue(w io.Writer, v any) error {
	switch v := v.(type) {
	case string:
		_, err := fmt.Fprintln(w, v)
		return err
	case float64:
		_, err := fmt.Fprintln(w, strconv.FormatFloat(v, 'f', -1, 64))
		return err
	case bool:
		_, err := fmt.Fprintln(w, v)
		return err
	case nil:
		_, err := fmt.Fprintln(w, "null")
		return err
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}
}
