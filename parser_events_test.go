package yaml_test

import (
	"testing"

	"github.com/yaml/pyyaml"
	"github.com/yaml/pyyaml/internal/testutil/assert"
)

func TestParserGetEvents(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want string
	}{
		{
			name: "implicit document",
			in:   "a: b",
			want: "+STR\n+DOC\n+MAP\n=VAL :a\n=VAL :b\n-MAP\n-DOC\n-STR",
		},
		{
			name: "explicit document markers",
			in:   "---\na: b\n...\n",
			want: "+STR\n+DOC ---\n+MAP\n=VAL :a\n=VAL :b\n-MAP\n-DOC ...\n-STR",
		},
		{
			name: "block sequence",
			in:   "- x\n- y\n",
			want: "+STR\n+DOC\n+SEQ\n=VAL :x\n=VAL :y\n-SEQ\n-DOC\n-STR",
		},
		{
			name: "flow sequence",
			in:   "[x, y]",
			want: "+STR\n+DOC\n+SEQ []\n=VAL :x\n=VAL :y\n-SEQ\n-DOC\n-STR",
		},
		{
			name: "anchor and alias",
			in:   "a: &v 1\nb: *v\n",
			want: "+STR\n+DOC\n+MAP\n=VAL :a\n=VAL &v :1\n=VAL :b\n=ALI *v\n-MAP\n-DOC\n-STR",
		},
		{
			name: "quoted scalar styles",
			in:   "a: 'one'\nb: \"two\"\n",
			want: "+STR\n+DOC\n+MAP\n=VAL :a\n=VAL 'one\n=VAL :b\n=VAL \"two\n-MAP\n-DOC\n-STR",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			events, err := yaml.ParserGetEvents([]byte(tc.in))
			assert.NoError(t, err)
			assert.Equal(t, tc.want, events)
		})
	}
}
