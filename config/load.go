package config

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads, validates and normalizes the profile at path.
func Load(path string) (p *Profile, err error) {
	inf, err := os.Open(path)
	if err != nil {
		err = &ErrProfile{Path: path, Err: err}
		return
	}
	defer inf.Close()

	p, err = Parse(inf)
	if err != nil {
		err = &ErrProfile{Path: path, Err: err}
		p = nil
		return
	}

	return
}

// Parse decodes a YAML profile, validates and normalizes it.
// Unknown keys are rejected. An empty document is the default profile.
func Parse(r io.Reader) (p *Profile, err error) {
	p = &Profile{}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err = dec.Decode(p)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		return
	}

	err = Validate(p)
	if err != nil {
		return
	}

	Normalize(p)

	return
}
