package yaml_test

import (
	"strings"
	"testing"

	"github.com/yaml/pyyaml"
	"github.com/yaml/pyyaml/internal/testutil/assert"
)

func TestOptsYAML(t *testing.T) {
	valid := []struct {
		name    string
		yamlStr string
	}{
		{"subset of options", "indent: 4\nknown-fields: true"},
		{"every option", `
indent: 2
compact-seq-indent: true
line-width: 80
unicode: true
canonical: false
line-break: ln
explicit-start: true
explicit-end: false
flow-simple-coll: true
known-fields: true
single-document: true
unique-keys: true
`},
	}
	for _, tt := range valid {
		t.Run(tt.name, func(t *testing.T) {
			opt, err := yaml.OptsYAML(tt.yamlStr)
			assert.NoError(t, err)
			assert.NotNil(t, opt)
		})
	}

	invalid := []struct {
		name     string
		yamlStr  string
		errMatch string
	}{
		{"typo in field name", "knnown-fields: true", "knnown-fields not found"},
		{"another typo", "indnt: 2", "indnt not found"},
		{"one typo among valid options", "indent: 2\nunicoode: true", "unicoode not found"},
		{"bad line-break value", "line-break: lf", "invalid line-break value"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := yaml.OptsYAML(tt.yamlStr)
			assert.NotNilf(t, err, "expected error")
			assert.Truef(t, strings.Contains(err.Error(), tt.errMatch),
				"expected error to contain %q, got: %v", tt.errMatch, err)
		})
	}
}

func TestOptsYAMLAppliesToDump(t *testing.T) {
	opt, err := yaml.OptsYAML("indent: 4\ncompact-seq-indent: false")
	assert.NoError(t, err)

	out, err := yaml.Dump(map[string][]int{"a": {1, 2}}, opt)
	assert.NoError(t, err)
	assert.Equal(t, "a:\n    - 1\n    - 2\n", string(out))
}
