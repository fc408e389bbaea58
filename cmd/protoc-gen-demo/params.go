package main

import (
	"fmt"
	"strings"
)

// pluginParams holds the recognized keys from the CodeGeneratorRequest
// parameter grammar: `key[=value](,key[=value])*`.
type pluginParams struct {
	CrateName   string
	NoJSON      bool
	PubFields   bool
	CheckedSize bool
}

// parsePluginParams parses the comma-separated parameter string. An
// unrecognized key is an error.
func parsePluginParams(s string) (pluginParams, error) {
	var p pluginParams
	if s == "" {
		return p, nil
	}
	for _, entry := range strings.Split(s, ",") {
		if entry == "" {
			continue
		}
		key, value, hasValue := strings.Cut(entry, "=")
		switch key {
		case "crate_name":
			if !hasValue {
				return p, fmt.Errorf("protoc-gen-demo: crate_name requires a value")
			}
			p.CrateName = value
		case "no_json":
			p.NoJSON = true
		case "pub_fields":
			p.PubFields = true
		case "checked_size":
			p.CheckedSize = true
		default:
			return p, fmt.Errorf("protoc-gen-demo: unrecognized parameter key %q", key)
		}
	}
	return p, nil
}
