package vdom

import (
	"fmt"
	"reflect"
	"strconv"
)

// Diff compares two VNode trees and returns the patches needed to transform
// prev into next. Matched nodes in next inherit their HID from prev.
func Diff(prev, next *VNode) []Patch {
	var patches []Patch
	diff(prev, next, "", &patches)
	return patches
}

// diff recursively compares nodes and appends patches.
// parentHID is the HID of the parent element, used for text patches.
func diff(prev, next *VNode, parentHID string, patches *[]Patch) {
	if prev == nil && next == nil {
		return
	}

	// Node added (handled by parent via InsertNode)
	if prev == nil {
		return
	}

	if next == nil {
		*patches = append(*patches, Patch{
			Op:  PatchRemoveNode,
			HID: prev.HID,
		})
		return
	}

	if prev.Kind != next.Kind {
		*patches = append(*patches, Patch{
			Op:   PatchReplaceNode,
			HID:  targetHID(prev, parentHID),
			Node: next,
		})
		return
	}

	switch prev.Kind {
	case KindText:
		next.HID = prev.HID
		if prev.Text != next.Text {
			*patches = append(*patches, Patch{
				Op:    PatchSetText,
				HID:   targetHID(prev, parentHID),
				Value: next.Text,
			})
		}
	case KindRaw:
		next.HID = prev.HID
		if prev.Text != next.Text {
			*patches = append(*patches, Patch{
				Op:   PatchReplaceNode,
				HID:  targetHID(prev, parentHID),
				Node: next,
			})
		}
	case KindElement:
		diffElement(prev, next, patches)
	case KindFragment:
		next.HID = prev.HID
		diffChildren(prev, next, parentHID, patches)
	}
}

// targetHID falls back to the parent's address for nodes without their own.
func targetHID(n *VNode, parentHID string) string {
	if n.HID != "" {
		return n.HID
	}
	return parentHID
}

// diffElement compares element nodes.
func diffElement(prev, next *VNode, patches *[]Patch) {
	if prev.Tag != next.Tag {
		*patches = append(*patches, Patch{
			Op:   PatchReplaceNode,
			HID:  prev.HID,
			Node: next,
		})
		return
	}

	next.HID = prev.HID
	diffProps(prev, next, patches)
	diffChildren(prev, next, prev.HID, patches)
}

// diffProps compares and patches attributes. Removals are emitted before
// additions; within each group the order follows map iteration and is not
// significant to surfaces.
func diffProps(prev, next *VNode, patches *[]Patch) {
	for key, prevVal := range prev.Props {
		nextVal, exists := next.Props[key]
		if !exists {
			*patches = append(*patches, Patch{
				Op:  PatchRemoveAttr,
				HID: prev.HID,
				Key: key,
			})
		} else if !propsEqual(prevVal, nextVal) {
			*patches = append(*patches, Patch{
				Op:    PatchSetAttr,
				HID:   prev.HID,
				Key:   key,
				Value: PropToString(nextVal),
			})
		}
	}

	for key, nextVal := range next.Props {
		if _, exists := prev.Props[key]; !exists {
			*patches = append(*patches, Patch{
				Op:    PatchSetAttr,
				HID:   prev.HID,
				Key:   key,
				Value: PropToString(nextVal),
			})
		}
	}
}

// diffChildren compares and patches child nodes.
func diffChildren(prev, next *VNode, parentHID string, patches *[]Patch) {
	if hasKeys(prev.Children) || hasKeys(next.Children) {
		diffKeyedChildren(parentHID, prev.Children, next.Children, patches)
	} else {
		diffUnkeyedChildren(parentHID, prev.Children, next.Children, patches)
	}
}

// diffUnkeyedChildren handles children without keys using positional matching.
func diffUnkeyedChildren(parentHID string, prev, next []*VNode, patches *[]Patch) {
	maxLen := len(prev)
	if len(next) > maxLen {
		maxLen = len(next)
	}

	for i := 0; i < maxLen; i++ {
		var prevChild, nextChild *VNode
		if i < len(prev) {
			prevChild = prev[i]
		}
		if i < len(next) {
			nextChild = next[i]
		}

		switch {
		case prevChild == nil && nextChild != nil:
			*patches = append(*patches, Patch{
				Op:       PatchInsertNode,
				ParentID: parentHID,
				Index:    i,
				Node:     nextChild,
			})
		case prevChild != nil && nextChild == nil:
			*patches = append(*patches, Patch{
				Op:  PatchRemoveNode,
				HID: targetHID(prevChild, parentHID),
			})
		default:
			diff(prevChild, nextChild, parentHID, patches)
		}
	}
}

// diffKeyedChildren handles children with keys. Removals are emitted first,
// then inserts and moves in next order; a simulated child list keeps moves
// to the ones a surface actually needs, so prepending a keyed child costs a
// single insert.
func diffKeyedChildren(parentHID string, prev, next []*VNode, patches *[]Patch) {
	nextKeys := make(map[string]bool, len(next))
	for _, child := range next {
		if key := getKey(child); key != "" {
			nextKeys[key] = true
		}
	}

	prevByKey := make(map[string]*VNode, len(prev))
	current := make([]string, 0, len(prev))
	for _, prevChild := range prev {
		key := getKey(prevChild)
		if key == "" || !nextKeys[key] {
			*patches = append(*patches, Patch{
				Op:  PatchRemoveNode,
				HID: prevChild.HID,
			})
			continue
		}
		if _, dup := prevByKey[key]; dup {
			*patches = append(*patches, Patch{
				Op:  PatchRemoveNode,
				HID: prevChild.HID,
			})
			continue
		}
		prevByKey[key] = prevChild
		current = append(current, key)
	}

	for nextIdx, nextChild := range next {
		key := getKey(nextChild)
		prevChild, exists := prevByKey[key]
		if key == "" || !exists {
			*patches = append(*patches, Patch{
				Op:       PatchInsertNode,
				ParentID: parentHID,
				Index:    nextIdx,
				Node:     nextChild,
			})
			current = insertAt(current, nextIdx, "")
			continue
		}
		delete(prevByKey, key)

		if pos := indexOf(current, key); pos != nextIdx {
			*patches = append(*patches, Patch{
				Op:       PatchMoveNode,
				HID:      prevChild.HID,
				ParentID: parentHID,
				Index:    nextIdx,
			})
			current = insertAt(append(current[:pos], current[pos+1:]...), nextIdx, key)
		}
		diff(prevChild, nextChild, parentHID, patches)
	}
}

func indexOf(keys []string, key string) int {
	for i, k := range keys {
		if k == key {
			return i
		}
	}
	return -1
}

func insertAt(keys []string, i int, key string) []string {
	if i >= len(keys) {
		return append(keys, key)
	}
	keys = append(keys, "")
	copy(keys[i+1:], keys[i:])
	keys[i] = key
	return keys
}

// getKey extracts the key from a node.
func getKey(node *VNode) string {
	if node == nil {
		return ""
	}
	return node.Key
}

// hasKeys returns true if any child has a key.
func hasKeys(children []*VNode) bool {
	for _, child := range children {
		if getKey(child) != "" {
			return true
		}
	}
	return false
}

// propsEqual compares two prop values for equality.
func propsEqual(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	}
	return reflect.DeepEqual(a, b)
}

// PropToString converts a prop value to its attribute string form.
func PropToString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
