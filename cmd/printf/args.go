package main

import (
	"gopkg.in/yaml.v3"
)

// decodeArgs turns command-line words into format arguments. Under raw every
// word stays a string.
func decodeArgs(words []string, raw bool) []any {
	args := make([]any, len(words))
	for i, w := range words {
		if raw {
			args[i] = w
			continue
		}
		args[i] = decodeArg(w)
	}
	return args
}

// decodeArg parses w as a single YAML value. Words that fail to parse, or
// parse to null, are kept as the original string.
func decodeArg(w string) any {
	var v any
	if err := yaml.Unmarshal([]byte(w), &v); err != nil || v == nil {
		return w
	}
	return v
}
