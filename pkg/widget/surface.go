package widget

import (
	"fmt"
	"sync"

	"github.com/vango-dev/litkit/pkg/render"
	"github.com/vango-dev/litkit/pkg/vdom"
)

// Surface is the host a widget renders into: a browser element reached
// through a patch stream, a server-rendered page, or an in-memory tree.
type Surface interface {
	// Replace installs a complete tree, discarding what was there.
	Replace(root *vdom.VNode) error

	// Apply applies patches produced by vdom.Diff in order.
	Apply(patches []vdom.Patch) error

	// Clear detaches the rendered tree.
	Clear() error
}

// MemorySurface is a Surface that keeps the rendered tree in memory and
// applies patches to it. The gallery renders pages from it and tests
// inspect it.
type MemorySurface struct {
	mu      sync.Mutex
	root    *vdom.VNode
	nodes   map[string]*vdom.VNode
	parents map[string]*vdom.VNode

	replaces int
	applies  int
	patches  int
}

// NewMemorySurface creates an empty MemorySurface.
func NewMemorySurface() *MemorySurface {
	return &MemorySurface{
		nodes:   make(map[string]*vdom.VNode),
		parents: make(map[string]*vdom.VNode),
	}
}

// Replace implements Surface.
func (s *MemorySurface) Replace(root *vdom.VNode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.root = cloneNode(root)
	s.reindex()
	s.replaces++
	return nil
}

// Apply implements Surface. Patches are applied in order; the first
// unresolvable patch aborts the batch with an error.
func (s *MemorySurface) Apply(patches []vdom.Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.root == nil {
		return fmt.Errorf("surface: apply before replace")
	}
	for _, p := range patches {
		if err := s.apply(p); err != nil {
			return err
		}
		s.patches++
	}
	s.applies++
	return nil
}

// Clear implements Surface.
func (s *MemorySurface) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.root = nil
	s.reindex()
	return nil
}

// Root returns a copy of the current tree, or nil when cleared.
func (s *MemorySurface) Root() *vdom.VNode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneNode(s.root)
}

// HTML renders the current tree.
func (s *MemorySurface) HTML() string {
	root := s.Root()
	if root == nil {
		return ""
	}
	out, _ := render.NewRenderer(render.RendererConfig{}).RenderToString(root)
	return out
}

// Stats reports how often the surface was written: full replaces, patch
// batches, and individual patches.
func (s *MemorySurface) Stats() (replaces, applies, patches int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaces, s.applies, s.patches
}

func (s *MemorySurface) apply(p vdom.Patch) error {
	switch p.Op {
	case vdom.PatchSetText:
		n, err := s.lookup(p.HID)
		if err != nil {
			return err
		}
		if n.Kind == vdom.KindText {
			n.Text = p.Value
			return nil
		}
		for _, c := range n.Children {
			if c.Kind == vdom.KindText {
				c.Text = p.Value
				return nil
			}
		}
		n.Children = append(n.Children, vdom.Text(p.Value))
		return nil

	case vdom.PatchSetAttr:
		n, err := s.lookup(p.HID)
		if err != nil {
			return err
		}
		if n.Props == nil {
			n.Props = make(vdom.Props)
		}
		if render.IsBooleanAttr(p.Key) {
			n.Props[p.Key] = p.Value == "true"
		} else {
			n.Props[p.Key] = p.Value
		}
		return nil

	case vdom.PatchRemoveAttr:
		n, err := s.lookup(p.HID)
		if err != nil {
			return err
		}
		delete(n.Props, p.Key)
		return nil

	case vdom.PatchInsertNode:
		parent, err := s.lookup(p.ParentID)
		if err != nil {
			return err
		}
		child := cloneNode(p.Node)
		parent.Children = insertChild(parent.Children, p.Index, child)
		s.index(child, parent)
		return nil

	case vdom.PatchRemoveNode:
		n, err := s.lookup(p.HID)
		if err != nil {
			return err
		}
		parent := s.parents[p.HID]
		if parent == nil {
			s.root = nil
			s.reindex()
			return nil
		}
		parent.Children = removeChild(parent.Children, n)
		s.unindex(n)
		return nil

	case vdom.PatchMoveNode:
		n, err := s.lookup(p.HID)
		if err != nil {
			return err
		}
		parent := s.parents[p.HID]
		if parent == nil {
			return fmt.Errorf("surface: cannot move root %q", p.HID)
		}
		parent.Children = insertChild(removeChild(parent.Children, n), p.Index, n)
		return nil

	case vdom.PatchReplaceNode:
		old, err := s.lookup(p.HID)
		if err != nil {
			return err
		}
		repl := cloneNode(p.Node)
		parent := s.parents[p.HID]
		s.unindex(old)
		if parent == nil {
			s.root = repl
			s.index(repl, nil)
			return nil
		}
		for i, c := range parent.Children {
			if c == old {
				parent.Children[i] = repl
				break
			}
		}
		s.index(repl, parent)
		return nil
	}
	return fmt.Errorf("surface: unsupported patch op %s", p.Op)
}

func (s *MemorySurface) lookup(hid string) (*vdom.VNode, error) {
	n, ok := s.nodes[hid]
	if !ok {
		return nil, fmt.Errorf("surface: unknown node %q", hid)
	}
	return n, nil
}

func (s *MemorySurface) reindex() {
	s.nodes = make(map[string]*vdom.VNode)
	s.parents = make(map[string]*vdom.VNode)
	s.index(s.root, nil)
}

func (s *MemorySurface) index(n, parent *vdom.VNode) {
	if n == nil {
		return
	}
	if n.HID != "" {
		s.nodes[n.HID] = n
		if parent != nil {
			s.parents[n.HID] = parent
		}
	}
	// Fragment children belong to the fragment's element parent.
	next := n
	if n.Kind == vdom.KindFragment {
		next = parent
	}
	for _, c := range n.Children {
		s.index(c, next)
	}
}

func (s *MemorySurface) unindex(n *vdom.VNode) {
	if n == nil {
		return
	}
	if n.HID != "" {
		delete(s.nodes, n.HID)
		delete(s.parents, n.HID)
	}
	for _, c := range n.Children {
		s.unindex(c)
	}
}

func insertChild(children []*vdom.VNode, i int, n *vdom.VNode) []*vdom.VNode {
	if i < 0 {
		i = 0
	}
	if i >= len(children) {
		return append(children, n)
	}
	children = append(children, nil)
	copy(children[i+1:], children[i:])
	children[i] = n
	return children
}

func removeChild(children []*vdom.VNode, n *vdom.VNode) []*vdom.VNode {
	for i, c := range children {
		if c == n {
			return append(children[:i], children[i+1:]...)
		}
	}
	return children
}

// cloneNode deep-copies a tree so surfaces never share nodes with widgets.
func cloneNode(n *vdom.VNode) *vdom.VNode {
	if n == nil {
		return nil
	}
	c := *n
	if n.Props != nil {
		c.Props = make(vdom.Props, len(n.Props))
		for k, v := range n.Props {
			c.Props[k] = v
		}
	}
	if n.Children != nil {
		c.Children = make([]*vdom.VNode, len(n.Children))
		for i, ch := range n.Children {
			c.Children[i] = cloneNode(ch)
		}
	}
	return &c
}
