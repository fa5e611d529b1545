package yaml

import "github.com/yaml/pyyaml/internal/libyaml"

// The node tree types live in internal/libyaml so the engine packages can
// share them; they are aliased here to keep the public surface in one place.

// Node is an element of the YAML document tree produced by loading into a
// *Node and consumed when dumping one.
type Node = libyaml.Node

// Kind classifies a Node as a document, sequence, mapping, scalar, or alias.
type Kind = libyaml.Kind

// Style selects the presentation of a node when it is rendered.
type Style = libyaml.Style

// Marshaler lets a type substitute its own value when being dumped.
type Marshaler = libyaml.Marshaler

// IsZeroer lets a type decide what "zero" means for the omitempty flag.
type IsZeroer = libyaml.IsZeroer

// Unmarshaler is the interface implemented by types
// that can unmarshal a YAML description of themselves.
type Unmarshaler interface {
	UnmarshalYAML(node *Node) error
}

// Node kinds.
const (
	DocumentNode = libyaml.DocumentNode
	SequenceNode = libyaml.SequenceNode
	MappingNode  = libyaml.MappingNode
	ScalarNode   = libyaml.ScalarNode
	AliasNode    = libyaml.AliasNode
	StreamNode   = libyaml.StreamNode
)

// Node styles.
const (
	TaggedStyle       = libyaml.TaggedStyle
	DoubleQuotedStyle = libyaml.DoubleQuotedStyle
	SingleQuotedStyle = libyaml.SingleQuotedStyle
	LiteralStyle      = libyaml.LiteralStyle
	FoldedStyle       = libyaml.FoldedStyle
	FlowStyle         = libyaml.FlowStyle
)
