// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Resolver stage: Determines tags for nodes without explicit tags.
// Implicit resolution inspects the scalar text and assigns the standard
// YAML 1.1 tags for booleans, integers, floats, nulls, and timestamps.

package libyaml

import (
	"encoding/base64"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const longTagPrefix = "tag:yaml.org,2002:"

const (
	nullTag      = "!!null"
	boolTag      = "!!bool"
	strTag       = "!!str"
	intTag       = "!!int"
	floatTag     = "!!float"
	timestampTag = "!!timestamp"
	seqTag       = "!!seq"
	mapTag       = "!!map"
	binaryTag    = "!!binary"
	mergeTag     = "!!merge"
)

// shortTag converts a long form tag into its short form, so that
// "tag:yaml.org,2002:str" becomes "!!str". Other tags pass through.
func shortTag(tag string) string {
	if strings.HasPrefix(tag, longTagPrefix) {
		return "!!" + tag[len(longTagPrefix):]
	}
	return tag
}

// longTag converts a short form tag into its long form. Other tags pass
// through.
func longTag(tag string) string {
	if strings.HasPrefix(tag, "!!") {
		return longTagPrefix + tag[2:]
	}
	return tag
}

func resolvableTag(tag string) bool {
	switch tag {
	case "", strTag, boolTag, intTag, floatTag, nullTag, timestampTag:
		return true
	}
	return false
}

// implicitRule ties a tag to the pattern a plain scalar must match to
// receive that tag implicitly. The patterns follow the YAML 1.1 types.
type implicitRule struct {
	tag   string
	match *regexp.Regexp
}

// implicitRules in resolution order. A scalar is classified by the first
// rule whose pattern matches. The first characters listed alongside each
// rule index it into implicitTable so most lookups touch few patterns.
var implicitRules = []struct {
	rule  implicitRule
	first string
}{
	{implicitRule{boolTag, regexp.MustCompile(`^(?:yes|Yes|YES|no|No|NO|true|True|TRUE|false|False|FALSE|on|On|ON|off|Off|OFF)$`)}, "yYnNtTfFoO"},
	{implicitRule{floatTag, regexp.MustCompile(`^(?:[-+]?(?:[0-9][0-9_]*)\.[0-9_]*(?:[eE][-+]?[0-9]+)?|\.[0-9_]+(?:[eE][-+][0-9]+)?|[-+]?[0-9][0-9_]*(?::[0-5]?[0-9])+\.[0-9_]*|[-+]?\.(?:inf|Inf|INF)|\.(?:nan|NaN|NAN))$`)}, "-+0123456789."},
	{implicitRule{intTag, regexp.MustCompile(`^(?:[-+]?0b[0-1_]+|[-+]?0[0-7_]+|[-+]?(?:0|[1-9][0-9_]*)|[-+]?0x[0-9a-fA-F_]+|[-+]?[1-9][0-9_]*(?::[0-5]?[0-9])+)$`)}, "-+0123456789"},
	{implicitRule{mergeTag, regexp.MustCompile(`^(?:<<)$`)}, "<"},
	{implicitRule{nullTag, regexp.MustCompile(`^(?:~|null|Null|NULL)$`)}, "~nN"},
	// Minute and second fields may be single digits, matching the formats
	// parseTimestamp accepts.
	{implicitRule{timestampTag, regexp.MustCompile(`^(?:[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]|[0-9][0-9][0-9][0-9]-[0-9][0-9]?-[0-9][0-9]?(?:[Tt]|[ \t]+)[0-9][0-9]?:[0-9][0-9]?:[0-9][0-9]?(?:\.[0-9]*)?(?:[ \t]*(?:Z|[-+][0-9][0-9]?(?::[0-9][0-9])?))?)$`)}, "0123456789"},
}

var implicitTable = make(map[byte][]implicitRule)

func init() {
	for _, entry := range implicitRules {
		for i := 0; i < len(entry.first); i++ {
			c := entry.first[i]
			implicitTable[c] = append(implicitTable[c], entry.rule)
		}
	}
}

// resolve determines the tag and the Go value for a scalar. An empty or
// "!" tag resolves implicitly from the text. A concrete tag is verified
// against the text and resolve fails when the two disagree, except for
// !!str and !!binary which accept any value.
func resolve(tag string, in string) (rtag string, out any) {
	tag = shortTag(tag)
	if !resolvableTag(tag) {
		return tag, in
	}
	defer func() {
		switch tag {
		case "", rtag, strTag, binaryTag:
			return
		}
		failf("cannot decode %s `%s` as a %s", shortTag(rtag), in, shortTag(tag))
	}()
	if in == "" {
		rtag = nullTag
		return
	}
	if tag == strTag || tag == binaryTag {
		return tag, in
	}
	for _, rule := range implicitTable[in[0]] {
		if !rule.match.MatchString(in) {
			continue
		}
		switch rule.tag {
		case boolTag:
			switch in {
			case "yes", "Yes", "YES", "true", "True", "TRUE", "on", "On", "ON":
				return boolTag, true
			}
			return boolTag, false
		case nullTag:
			return nullTag, nil
		case mergeTag:
			return mergeTag, in
		case intTag:
			plain := strings.ReplaceAll(in, "_", "")
			if strings.Contains(plain, ":") {
				if intv, ok := parseSexagesimalInt(plain); ok {
					if intv == int64(int(intv)) {
						return intTag, int(intv)
					}
					return intTag, intv
				}
				return strTag, in
			}
			intv, err := strconv.ParseInt(plain, 0, 64)
			if err == nil {
				if intv == int64(int(intv)) {
					return intTag, int(intv)
				}
				return intTag, intv
			}
			uintv, err := strconv.ParseUint(plain, 0, 64)
			if err == nil {
				return intTag, uintv
			}
			// Out of range for both; the value still reads fine as
			// a float.
			floatv, err := strconv.ParseFloat(plain, 64)
			if err == nil {
				return floatTag, floatv
			}
			return strTag, in
		case floatTag:
			plain := strings.ReplaceAll(in, "_", "")
			switch plain {
			case ".nan", ".NaN", ".NAN":
				return floatTag, math.NaN()
			case ".inf", "+.inf", ".Inf", "+.Inf", ".INF", "+.INF":
				return floatTag, math.Inf(+1)
			case "-.inf", "-.Inf", "-.INF":
				return floatTag, math.Inf(-1)
			}
			if strings.Contains(plain, ":") {
				if floatv, ok := parseSexagesimalFloat(plain); ok {
					return floatTag, floatv
				}
				return strTag, in
			}
			floatv, err := strconv.ParseFloat(plain, 64)
			if err == nil {
				return floatTag, floatv
			}
			return strTag, in
		case timestampTag:
			// Only try values as a timestamp if the value is unquoted
			// or there's an explicit !!timestamp tag.
			if tag == "" || tag == timestampTag {
				t, ok := parseTimestamp(in)
				if ok {
					return timestampTag, t
				}
			}
		}
	}
	return strTag, in
}

// parseSexagesimalInt parses base 60 integers such as "3:25:45".
func parseSexagesimalInt(plain string) (int64, bool) {
	sign := int64(1)
	switch plain[0] {
	case '-':
		sign = -1
		plain = plain[1:]
	case '+':
		plain = plain[1:]
	}
	var total int64
	for _, part := range strings.Split(plain, ":") {
		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return 0, false
		}
		total = total*60 + n
	}
	return sign * total, true
}

// parseSexagesimalFloat parses base 60 floats such as "190:20:30.15".
func parseSexagesimalFloat(plain string) (float64, bool) {
	sign := float64(1)
	switch plain[0] {
	case '-':
		sign = -1
		plain = plain[1:]
	case '+':
		plain = plain[1:]
	}
	var total float64
	parts := strings.Split(plain, ":")
	for _, part := range parts[:len(parts)-1] {
		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return 0, false
		}
		total = total*60 + float64(n)
	}
	last, err := strconv.ParseFloat(parts[len(parts)-1], 64)
	if err != nil {
		return 0, false
	}
	return sign * (total*60 + last), true
}

// This is a subset of the formats allowed by the regular expression
// defined at http://yaml.org/type/timestamp.html.
var allowedTimestampFormats = []string{
	"2006-1-2T15:4:5.999999999Z07:00", // RFC3339Nano with short date fields.
	"2006-1-2t15:4:5.999999999Z07:00", // RFC3339Nano with short date fields and lower-case "t".
	"2006-1-2 15:4:5.999999999",       // space separated with no time zone
	"2006-1-2",                        // date only
	// Notable exception: time.Parse cannot handle: "2001-12-14 21:59:43.10 -5"
	// from the set of examples.
}

// parseTimestamp parses s as a timestamp string and
// returns the timestamp and reports whether it succeeded.
// Timestamp formats are defined at http://yaml.org/type/timestamp.html
func parseTimestamp(s string) (time.Time, bool) {
	// Quick check: all date formats start with YYYY-.
	i := 0
	for ; i < len(s); i++ {
		if c := s[i]; c < '0' || c > '9' {
			break
		}
	}
	if i != 4 || i == len(s) || s[i] != '-' {
		return time.Time{}, false
	}
	for _, format := range allowedTimestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// encodeBase64 encodes s as base64 that is broken up into multiple lines
// as appropriate for the resulting length.
func encodeBase64(s string) string {
	const lineLen = 70
	encLen := base64.StdEncoding.EncodedLen(len(s))
	lines := encLen/lineLen + 1
	buf := make([]byte, encLen*2+lines)
	in := buf[0:encLen]
	out := buf[encLen:encLen]
	base64.StdEncoding.Encode(in, []byte(s))
	for i := 0; i < encLen; i += lineLen {
		j := i + lineLen
		if j > encLen {
			j = encLen
		}
		out = append(out, in[i:j]...)
		out = append(out, '\n')
	}
	// Multi-line output keeps the final break so the emitter renders it as
	// a clean literal block without a chomping indicator.
	if encLen <= lineLen {
		out = out[:len(out)-1]
	}
	return string(out)
}

// Resolver assigns resolved tags to composed nodes. The composer runs one
// over every document so that nodes reaching the constructor always carry
// a concrete tag.
type Resolver struct {
	options *Options
}

// NewResolver creates a Resolver. A nil opts uses DefaultOptions.
func NewResolver(opts *Options) *Resolver {
	if opts == nil {
		o := DefaultOptions
		opts = &o
	}
	return &Resolver{options: opts}
}

// Resolve fills in the resolved tag for node and its children. Nodes that
// already carry an explicit tag keep it. When a ResolveNode hook is set,
// the hook is called for every node before the implicit rules; nodes the
// hook leaves untagged resolve normally.
func (r *Resolver) Resolve(node *Node) {
	if hook := r.options.ResolveNode; hook != nil {
		r.resolveWithHook(node, []string{"root"}, nil, node, hook)
		return
	}
	switch node.Kind {
	case StreamNode, DocumentNode:
		for _, child := range node.Content {
			r.Resolve(child)
		}
	case MappingNode:
		if node.Tag == "" || node.Tag == "!" {
			node.Tag = mapTag
		}
		for _, child := range node.Content {
			r.Resolve(child)
		}
	case SequenceNode:
		if node.Tag == "" || node.Tag == "!" {
			node.Tag = seqTag
		}
		for _, child := range node.Content {
			r.Resolve(child)
		}
	case ScalarNode:
		if node.Tag != "" && node.Tag != "!" {
			return
		}
		node.Tag = r.resolveTag(node.Value, node.Style&(SingleQuotedStyle|DoubleQuotedStyle|LiteralStyle|FoldedStyle) == 0)
	}
}

// resolveWithHook walks the node tree calling the ResolveNode hook on each
// node, then resolves any tag the hook did not set. Mapping keys extend
// the path with their scalar value and sequence entries with their index.
// The path slice handed to the hook is private to the call.
func (r *Resolver) resolveWithHook(node *Node, path []string, parent, root *Node, hook func(*Node, []string, *Node, *Node) error) {
	switch node.Kind {
	case StreamNode, DocumentNode:
		for _, child := range node.Content {
			r.resolveWithHook(child, path, node, root, hook)
		}
		return
	case AliasNode:
		// Alias targets are resolved where they are anchored.
		return
	}
	if err := hook(node, path, parent, root); err != nil {
		Fail(err)
	}
	switch node.Kind {
	case MappingNode:
		if node.Tag == "" || node.Tag == "!" {
			node.Tag = mapTag
		}
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			r.resolveWithHook(key, path, node, root, hook)
			childPath := append(append([]string(nil), path...), key.Value)
			r.resolveWithHook(value, childPath, node, root, hook)
		}
	case SequenceNode:
		if node.Tag == "" || node.Tag == "!" {
			node.Tag = seqTag
		}
		for i, child := range node.Content {
			childPath := append(append([]string(nil), path...), strconv.Itoa(i))
			r.resolveWithHook(child, childPath, node, root, hook)
		}
	case ScalarNode:
		if node.Tag == "" || node.Tag == "!" {
			node.Tag = r.resolveTag(node.Value, node.Style&(SingleQuotedStyle|DoubleQuotedStyle|LiteralStyle|FoldedStyle) == 0)
		}
	}
}

// resolveTag reports the tag a scalar value receives when it carries no
// explicit tag. When implicit is false the value is treated as quoted and
// always resolves to a string.
func (r *Resolver) resolveTag(value string, implicit bool) string {
	if !implicit {
		return strTag
	}
	rtag, _ := resolve("", value)
	return rtag
}
