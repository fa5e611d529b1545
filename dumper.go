// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yaml

import "bytes"

// DumpAll encodes each value in turn as one document of a multi-document
// YAML stream, applying the same options to all of them. The single-document
// Dump and the streaming Dumper live in yaml.go.
func DumpAll(in []any, opts ...Option) (out []byte, err error) {
	defer handleErr(&err)

	var buf bytes.Buffer
	d, err := NewDumper(&buf, opts...)
	if err != nil {
		return nil, err
	}
	for _, v := range in {
		if err := d.Dump(v); err != nil {
			return nil, err
		}
	}
	if err := d.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
