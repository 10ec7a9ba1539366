// Package document provides domain entities for rich-text documents
// as delivered by the headless CMS, already decoded from the wire format.
package document

// NodeType identifies one of the closed set of node kinds in a rich-text tree.
type NodeType string

const (
	NodeDocument            NodeType = "document"
	NodeParagraph           NodeType = "paragraph"
	NodeHeading1            NodeType = "heading-1"
	NodeHeading2            NodeType = "heading-2"
	NodeHeading3            NodeType = "heading-3"
	NodeHeading4            NodeType = "heading-4"
	NodeHeading5            NodeType = "heading-5"
	NodeHeading6            NodeType = "heading-6"
	NodeBlockquote          NodeType = "blockquote"
	NodeOrderedList         NodeType = "ordered-list"
	NodeUnorderedList       NodeType = "unordered-list"
	NodeListItem            NodeType = "list-item"
	NodeHR                  NodeType = "hr"
	NodeEmbeddedAssetBlock  NodeType = "embedded-asset-block"
	NodeEmbeddedEntryBlock  NodeType = "embedded-entry-block"
	NodeEmbeddedAssetInline NodeType = "embedded-asset-inline"
	NodeEmbeddedEntryInline NodeType = "embedded-entry-inline"
	NodeHyperlink           NodeType = "hyperlink"
	NodeEntryHyperlink      NodeType = "entry-hyperlink"
	NodeAssetHyperlink      NodeType = "asset-hyperlink"
	NodeText                NodeType = "text"
)

// MarkType identifies a text decoration applied to a text node.
type MarkType string

const (
	MarkBold      MarkType = "bold"
	MarkItalic    MarkType = "italic"
	MarkUnderline MarkType = "underline"
	MarkCode      MarkType = "code"
)

// Mark is a single decoration on a text run.
type Mark struct {
	Type MarkType `json:"type"`
}

// Node is one element of the rich-text tree. Content is empty for leaves;
// Value and Marks are only populated on text nodes; Data carries the
// node-specific payload (link URI, referenced asset or entry).
type Node struct {
	NodeType NodeType  `json:"nodeType"`
	Content  []*Node   `json:"content,omitempty"`
	Data     *NodeData `json:"data,omitempty"`
	Value    string    `json:"value,omitempty"`
	Marks    []Mark    `json:"marks,omitempty"`
}

// NodeData carries node-specific payload for hyperlinks and embeds.
type NodeData struct {
	URI    string  `json:"uri,omitempty"`
	Target *Target `json:"target,omitempty"`
}

// Target is the resolved reference of an embed or hyperlink node. Exactly
// one of Asset or Entry is set on a well-formed node; both may be nil on
// malformed input and renderers must tolerate that.
type Target struct {
	Asset *Asset `json:"asset,omitempty"`
	Entry *Entry `json:"entry,omitempty"`
}

// Children returns the node's content, tolerating nil receivers.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	return n.Content
}

// TargetAsset returns the referenced asset, or nil when the reference
// chain is missing at any link.
func (n *Node) TargetAsset() *Asset {
	if n == nil || n.Data == nil || n.Data.Target == nil {
		return nil
	}
	return n.Data.Target.Asset
}

// TargetEntry returns the referenced entry, or nil when the reference
// chain is missing at any link.
func (n *Node) TargetEntry() *Entry {
	if n == nil || n.Data == nil || n.Data.Target == nil {
		return nil
	}
	return n.Data.Target.Entry
}

// IsHeading reports whether the node renders as a heading element.
func (n *Node) IsHeading() bool {
	switch n.NodeType {
	case NodeHeading1, NodeHeading2, NodeHeading3, NodeHeading4, NodeHeading5, NodeHeading6:
		return true
	}
	return false
}
