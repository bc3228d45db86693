package vdom

import (
	"fmt"
	"sync"
)

// HIDGenerator generates unique surface addresses for elements.
type HIDGenerator struct {
	prefix  string
	counter uint32
	mu      sync.Mutex
}

// NewHIDGenerator creates a new HIDGenerator. The prefix keeps addresses of
// independent widgets on the same page apart.
func NewHIDGenerator(prefix string) *HIDGenerator {
	if prefix == "" {
		prefix = "h"
	}
	return &HIDGenerator{prefix: prefix}
}

// Next returns the next ID (e.g., "h1", "h2", ...).
func (g *HIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("%s%d", g.prefix, g.counter)
}

// AssignMissingHIDs gives every addressable node (elements, text and raw
// nodes) without an HID a fresh one. Diff copies HIDs from the previous tree
// onto matched nodes, so only inserted nodes receive new addresses.
func AssignMissingHIDs(node *VNode, gen *HIDGenerator) {
	if node == nil {
		return
	}
	if node.Kind != KindFragment && node.HID == "" {
		node.HID = gen.Next()
	}
	for _, child := range node.Children {
		AssignMissingHIDs(child, gen)
	}
}

// CollectHIDs returns a map of HID to VNode for all addressed nodes.
func CollectHIDs(node *VNode) map[string]*VNode {
	out := make(map[string]*VNode)
	var walk func(*VNode)
	walk = func(n *VNode) {
		if n == nil {
			return
		}
		if n.HID != "" {
			out[n.HID] = n
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(node)
	return out
}
