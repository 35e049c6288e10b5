// Package sysfacts reports hardware facts: product, board, BIOS, CPU, memory,
// storage and network devices.
package sysfacts

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// field picks one key out of a struct decoded by describe and says how to
// print it.
type field struct {
	key    string
	format string
}

func f(key string) field { return field{key: key, format: "%v"} }

func ff(key, format string) field { return field{key: key, format: format} }

// describe flattens v's non-empty json-tagged fields and joins the requested
// ones, in order, with spaces. It returns "" when none are set.
func describe(v interface{}, fields ...field) (string, error) {
	m := make(map[string]interface{})
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &m,
	})
	if err != nil {
		return "", err
	}
	if err := d.Decode(v); err != nil {
		return "", fmt.Errorf("sysfacts: decode %T: %w", v, err)
	}

	var parts []string
	for _, fl := range fields {
		val, ok := m[fl.key]
		if !ok {
			continue
		}
		s := strings.TrimSpace(fmt.Sprintf(fl.format, val))
		if s == "" || s == "0" {
			continue
		}
		parts = append(parts, s)
	}
	return strings.TrimSuffix(strings.Join(parts, " "), ","), nil
}
