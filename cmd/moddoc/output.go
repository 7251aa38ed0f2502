package main

import (
	"encoding/json"
	"errors"
	"os"
	"syscall"
)

// writeJSONToStdout writes v as indented JSON followed by a newline.
func writeJSONToStdout(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return writeToStdoutIgnoreSigpipe(append(data, '\n'))
}

// writeToStdoutIgnoreSigpipe writes bytes to stdout, treating a broken pipe
// as success so `moddoc ... | head` terminates silently.
func writeToStdoutIgnoreSigpipe(data []byte) error {
	_, err := os.Stdout.Write(data)
	if err != nil && errors.Is(err, syscall.EPIPE) {
		return nil
	}
	return err
}
