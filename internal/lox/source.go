package lox

import "os"

// ReadSource eagerly loads the entire contents of name into a single string
// buffer, the only resource this pipeline acquires outside its in-memory
// arena (spec §5). There is no template set, no sandboxing, no relative
// path resolution: a single file is read once and the handle is released
// before lexing begins.
func ReadSource(name string) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
