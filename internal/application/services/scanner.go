// Package services provides the application layer: tree scanning,
// spreadsheet materialization, and render orchestration.
package services

import (
	"github.com/oakfieldmedia/richtext-go/internal/domain/entities/document"
)

// CollectAssetBlocks walks the document depth-first (pre-order, left to
// right) and returns every embedded-asset-block node in visitation order.
// Missing content arrays simply stop the descent.
func CollectAssetBlocks(root *document.Node) []*document.Node {
	var assets []*document.Node
	walk(root, func(n *document.Node) {
		if n.NodeType == document.NodeEmbeddedAssetBlock {
			assets = append(assets, n)
		}
	})
	return assets
}

// CollectInlineEntries walks the document depth-first and returns the
// entries referenced by embedded-entry-inline nodes whose content type
// matches. Repeats are preserved in traversal order; nodes with a broken
// reference chain are skipped.
func CollectInlineEntries(root *document.Node, contentType string) []*document.Entry {
	var entries []*document.Entry
	walk(root, func(n *document.Node) {
		if n.NodeType != document.NodeEmbeddedEntryInline {
			return
		}
		if entry := n.TargetEntry(); entry != nil && entry.ContentType == contentType {
			entries = append(entries, entry)
		}
	})
	return entries
}

func walk(node *document.Node, visit func(*document.Node)) {
	if node == nil {
		return
	}
	visit(node)
	for _, child := range node.Content {
		walk(child, visit)
	}
}
