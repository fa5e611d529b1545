//
// Copyright (c) 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0
//

package yaml

import (
	"errors"

	"github.com/yaml/pyyaml/internal/libyaml"
)

// Plugin is the interface that all YAML plugins must implement.
type Plugin interface {
	// Kind returns the plugin type (e.g., "resolver").
	// Used as the key in the plugins map.
	Kind() string
}

// ResolverPlugin handles tag resolution during YAML processing.
//
// This plugin type is called during the Resolve stage to assign tags
// to nodes in the representation tree. The plugin is called for every
// node in the tree (depth-first) before the implicit rules run; nodes
// it leaves untagged resolve through the implicit rules as usual.
type ResolverPlugin interface {
	Plugin

	// ResolveNode is called for each node in the tree during resolution.
	//
	// The plugin may set node.Tag to an appropriate tag based on the
	// node's Kind, Value, and context. The plugin may also normalize
	// node.Value (string to string transformation). Leaving the tag
	// empty hands the node to the implicit resolution rules.
	ResolveNode(node *Node, ctx *ResolverContext) error
}

// ResolverContext provides context to ResolverPlugin implementations.
//
// This type provides information about the node's position in the tree
// to enable context-aware tag resolution.
type ResolverContext struct {
	// Path is the path from the root to the current node.
	// For mappings, keys are included as path elements.
	// For sequences, indices are included as string representations.
	// Example: ["root", "key1", "0", "nested"]
	Path []string

	// Parent is the parent node of the current node, or nil for root.
	Parent *Node

	// Root is the root node of the document.
	Root *Node
}

// WithPlugin installs a plugin for the loading or dumping operation it is
// passed to. The supported plugin types are:
//
//   - ResolverPlugin: customizes implicit tag resolution per node.
//
// Passing a value that implements none of the plugin interfaces results
// in an error.
func WithPlugin(p any) Option {
	return func(o *libyaml.Options) error {
		if rp, ok := p.(ResolverPlugin); ok {
			o.ResolveNode = func(node *Node, path []string, parent, root *Node) error {
				return rp.ResolveNode(node, &ResolverContext{
					Path:   path,
					Parent: parent,
					Root:   root,
				})
			}
			return nil
		}
		return errors.New("yaml: unsupported plugin type")
	}
}
