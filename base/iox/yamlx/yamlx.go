// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx reads and writes YAML files using gopkg.in/yaml.v3.
package yamlx

import (
	"io"

	"cogentcore.org/pheatmap/base/iox"
	"gopkg.in/yaml.v3"
)

// NewDecoder returns a new [iox.Decoder]
func NewDecoder(r io.Reader) iox.Decoder { return yaml.NewDecoder(r) }

// Open reads the given object from the given filename using YAML encoding
func Open(v any, filename string) error {
	return iox.Open(v, filename, NewDecoder)
}

// Read reads the given object from the given reader,
// using YAML encoding
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, NewDecoder)
}

// ReadBytes reads the given object from the given bytes,
// using YAML encoding
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, NewDecoder)
}

// encoder closes the underlying yaml encoder after each document
// so that the output is flushed.
type encoder struct {
	*yaml.Encoder
}

func (e encoder) Encode(v any) error {
	if err := e.Encoder.Encode(v); err != nil {
		return err
	}
	return e.Encoder.Close()
}

// NewEncoder returns a new [iox.Encoder] that writes a single document
func NewEncoder(w io.Writer) iox.Encoder {
	e := yaml.NewEncoder(w)
	e.SetIndent(2)
	return encoder{e}
}

// Save writes the given object to the given filename using YAML encoding
func Save(v any, filename string) error {
	return iox.Save(v, filename, NewEncoder)
}

// Write writes the given object using YAML encoding
func Write(v any, writer io.Writer) error {
	return iox.Write(v, writer, NewEncoder)
}

// WriteBytes writes the given object, returning bytes of the encoding,
// using YAML encoding
func WriteBytes(v any) ([]byte, error) {
	return iox.WriteBytes(v, NewEncoder)
}
