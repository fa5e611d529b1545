// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Dump pipeline driver: Dump for one-shot encoding, Dumper for writing a
// stream of documents to an io.Writer.

package libyaml

import (
	"bytes"
	"errors"
	"io"
	"reflect"
)

// A Dumper writes YAML documents to an output stream. It drives the dump
// pipeline: the representer turns Go values into tagged node trees, the
// desolver strips tags the resolver can re-infer, and the serializer turns
// the trees into events for the emitter.
type Dumper struct {
	representer *Representer
	desolver    *Desolver
	serializer  *Serializer
	options     *Options
}

// NewDumper returns a Dumper writing to w. Close must be called to flush
// the stream.
func NewDumper(w io.Writer, opts ...Option) (*Dumper, error) {
	o, err := ApplyOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &Dumper{
		representer: NewRepresenter(*o),
		desolver:    NewDesolver(o),
		serializer:  NewSerializer(w, *o),
		options:     o,
	}, nil
}

// Dump encodes in as a YAML document and returns the bytes.
//
// With WithAllDocuments, in must be a slice and each element becomes one
// document of a multi-document stream:
//
//	docs := []Config{config1, config2, config3}
//	yaml.Dump(docs, yaml.WithAllDocuments())
//
// See the documentation of Load for the format of struct field tags.
func Dump(in any, opts ...Option) (out []byte, err error) {
	defer handleErr(&err)

	o, err := ApplyOptions(opts...)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	d, err := NewDumper(&buf, func(opts *Options) error {
		*opts = *o
		return nil
	})
	if err != nil {
		return nil, err
	}

	if o.AllDocuments {
		inVal := reflect.ValueOf(in)
		if inVal.Kind() != reflect.Slice {
			return nil, errors.New("yaml: WithAllDocuments requires a slice input")
		}
		for i := 0; i < inVal.Len(); i++ {
			if err := d.Dump(inVal.Index(i).Interface()); err != nil {
				return nil, err
			}
		}
	} else if err := d.Dump(in); err != nil {
		return nil, err
	}

	if err := d.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Dump writes the YAML encoding of v to the stream. The second and later
// documents are preceded by a "---" separator.
func (d *Dumper) Dump(v any) (err error) {
	defer handleErr(&err)

	node := d.representer.Represent("", reflect.ValueOf(v))
	d.desolver.Desolve(node)

	d.ensureOpen()
	d.serializer.Serialize(node)
	return nil
}

// Close flushes the stream. It does not write the "..." stream terminator.
func (d *Dumper) Close() (err error) {
	defer handleErr(&err)
	d.ensureOpen()
	d.serializer.Close()
	return nil
}

func (d *Dumper) ensureOpen() {
	if !d.serializer.opened {
		d.serializer.Open()
	}
}

// SetIndent changes the indentation used when encoding. Used by the legacy
// Encoder.SetIndent method.
func (d *Dumper) SetIndent(spaces int) {
	if spaces < 0 {
		panic("yaml: cannot indent to a negative number of spaces")
	}
	d.serializer.Emitter.BestIndent = spaces
}

// SetCompactSeqIndent controls whether '- ' counts as part of the
// indentation. Used by the legacy Encoder methods.
func (d *Dumper) SetCompactSeqIndent(compact bool) {
	d.serializer.Emitter.CompactSequenceIndent = compact
}
