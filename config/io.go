// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Open reads the shape file at the given path, which may start
// with ~ for the home directory, in the format given by its extension.
func Open(path string) (*File, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	fm, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	f, err := Read(fh, fm)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return f, nil
}

// Read reads a shape file in the given format from r.
// Unknown fields are an error.
func Read(r io.Reader, fm Formats) (*File, error) {
	f := &File{}
	var err error
	switch fm {
	case TOML:
		err = toml.NewDecoder(r).DisallowUnknownFields().Decode(f)
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(f)
		if err == io.EOF {
			err = nil
		}
	default:
		err = fmt.Errorf("config: unknown format %v", fm)
	}
	if err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Write writes the file to w in the given format.
func (f *File) Write(w io.Writer, fm Formats) error {
	switch fm {
	case TOML:
		return toml.NewEncoder(w).Encode(f)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("config: unknown format %v", fm)
}

// Save writes the file to the given path, which may start
// with ~ for the home directory, in the format given by its extension.
func (f *File) Save(path string) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	fm, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.Write(fh, fm); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}
