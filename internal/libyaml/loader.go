// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Load pipeline driver: Load for one-shot decoding of a byte slice, Loader
// for reading a stream of documents from an io.Reader.

package libyaml

import (
	"bytes"
	"errors"
	"io"
	"reflect"
)

// Load decodes YAML from in into out.
//
// By default the input must hold exactly one document; zero or several
// documents are an error. With WithAllDocuments, out must be a pointer to
// a slice and every document is loaded into a new element of its element
// type, with zero documents yielding an empty slice.
//
// Maps and pointers (to a struct, string, int, and so on) are accepted as
// out values; nil internal pointers are initialized as needed, but out
// itself must not be nil. Values that cannot be converted are skipped and
// reported together in a *LoadErrors while the rest of the document still
// loads.
//
// Struct fields load from their lowercased name unless the "yaml" field
// tag names another key; the part before the first comma is the key and
// the comma-separated rest are behavior flags:
//
//	type T struct {
//	    F int `yaml:"a,omitempty"`
//	    B int
//	}
//	var t T
//	yaml.Load([]byte("a: 1\nb: 2"), &t)
//
// See the documentation of Dump for the list of supported tag options.
func Load(in []byte, out any, opts ...Option) error {
	o, err := ApplyOptions(opts...)
	if err != nil {
		return err
	}
	if o.AllDocuments {
		return loadAll(in, out, o)
	}
	return loadSingle(in, out, o)
}

// LoadAny decodes YAML into generic Go structures (map[string]any, []any,
// scalars). Convenient when the shape is unknown at compile time.
func LoadAny(data []byte) (any, error) {
	var result any
	if err := Load(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func loadConstructError(msg string) error {
	return &LoadErrors{Errors: []*ConstructError{{Err: errors.New(msg)}}}
}

func newByteLoader(in []byte, opts *Options) (*Loader, error) {
	return NewLoader(bytes.NewReader(in), func(o *Options) error {
		*o = *opts
		return nil
	})
}

func loadAll(in []byte, out any, opts *Options) error {
	outVal := reflect.ValueOf(out)
	if outVal.Kind() != reflect.Pointer || outVal.IsNil() {
		return loadConstructError("yaml: WithAllDocuments requires a non-nil pointer to a slice")
	}
	sliceVal := outVal.Elem()
	if sliceVal.Kind() != reflect.Slice {
		return loadConstructError("yaml: WithAllDocuments requires a pointer to a slice")
	}

	// Preset slice content is discarded, not merged into.
	sliceVal.Set(reflect.MakeSlice(sliceVal.Type(), 0, 0))

	l, err := newByteLoader(in, opts)
	if err != nil {
		return err
	}
	elemType := sliceVal.Type().Elem()
	for {
		elemPtr := reflect.New(elemType)
		err := l.Load(elemPtr.Interface())
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		sliceVal.Set(reflect.Append(sliceVal, elemPtr.Elem()))
	}
}

func loadSingle(in []byte, out any, opts *Options) error {
	l, err := newByteLoader(in, opts)
	if err != nil {
		return err
	}

	err = l.Load(out)
	if err == io.EOF {
		return loadConstructError("yaml: no documents in stream")
	}
	if err != nil {
		return err
	}

	// Legacy Unmarshal ignores trailing documents.
	if opts.FromLegacy {
		return nil
	}

	var dummy any
	switch err := l.Load(&dummy); err {
	case io.EOF:
		return nil
	case nil:
		return loadConstructError("yaml: expected single document, found multiple")
	default:
		return err
	}
}

// A Loader reads YAML documents from an input stream. It drives the load
// pipeline: the composer builds node trees from parser events, the
// resolver assigns implicit tags, and the constructor produces Go values.
type Loader struct {
	composer    *Composer
	resolver    *Resolver
	constructor *Constructor
	options     *Options
	docCount    int
}

// NewLoader returns a Loader reading from r. The Loader buffers its input
// and may read past the values requested so far.
func NewLoader(r io.Reader, opts ...Option) (*Loader, error) {
	o, err := ApplyOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &Loader{
		composer:    NewComposerFromReader(r, o),
		resolver:    NewResolver(o),
		constructor: NewConstructor(o),
		options:     o,
	}, nil
}

// SetKnownFields enables strict field checking for subsequent Load calls.
// Used by the legacy Decoder.KnownFields method.
func (l *Loader) SetKnownFields(enable bool) {
	l.constructor.KnownFields = enable
}

// ComposeAndResolve composes and resolves the next document from the input
// and returns the node without constructing Go values.
//
// Returns io.EOF when there are no more documents to read.
func (l *Loader) ComposeAndResolve() (node *Node, err error) {
	defer handleErr(&err)
	if l.options.SingleDocument && l.docCount > 0 {
		return nil, io.EOF
	}

	node = l.nextNode()
	if node == nil {
		return nil, io.EOF
	}
	l.docCount++

	l.resolver.Resolve(node)
	return node, nil
}

// nextNode composes the next document, or the whole stream as a single
// StreamNode when WithStreamNodes was requested.
func (l *Loader) nextNode() *Node {
	if l.options.StreamNodes {
		if l.docCount > 0 {
			return nil
		}
		return l.composer.ComposeStream()
	}
	return l.composer.Compose()
}

// Load reads the next document from the input and stores it in the value
// pointed to by v, which must not be nil.
//
// Load returns io.EOF once the stream is exhausted, and also after the
// first document when WithSingleDocument was set. The accepted v values
// and struct tag handling match the package-level Load function.
func (l *Loader) Load(v any) (err error) {
	defer handleErr(&err)
	if l.options.SingleDocument && l.docCount > 0 {
		return io.EOF
	}

	node := l.nextNode()
	if node == nil {
		return io.EOF
	}
	l.docCount++

	l.resolver.Resolve(node)

	out := reflect.ValueOf(v)
	if out.Kind() == reflect.Pointer && !out.IsNil() {
		out = out.Elem()
	}
	l.constructor.Construct(node, out)
	if len(l.constructor.TypeErrors) > 0 {
		typeErrors := l.constructor.TypeErrors
		l.constructor.TypeErrors = nil
		return &LoadErrors{Errors: typeErrors}
	}
	return nil
}
