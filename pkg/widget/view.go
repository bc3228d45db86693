package widget

import (
	"sync"

	"github.com/vango-dev/litkit/internal/errors"
	"github.com/vango-dev/litkit/pkg/vdom"
)

// View keeps the last tree rendered to a surface and forwards only the
// difference on every render.
type View struct {
	mu      sync.Mutex
	surface Surface
	gen     *vdom.HIDGenerator
	prev    *vdom.VNode
}

// NewView creates a View rendering into surface. prefix namespaces node
// addresses so several widgets can share one page.
func NewView(surface Surface, prefix string) *View {
	return &View{
		surface: surface,
		gen:     vdom.NewHIDGenerator(prefix),
	}
}

// Render brings the surface up to date with next. It reports whether the
// surface was touched; an unchanged tree is a no-op.
func (v *View) Render(next *vdom.VNode) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.surface == nil {
		return false, errors.New("E002")
	}

	if v.prev == nil {
		vdom.AssignMissingHIDs(next, v.gen)
		if err := v.surface.Replace(next); err != nil {
			return false, errors.New("E040").Wrap(err)
		}
		v.prev = next
		return true, nil
	}

	patches := vdom.Diff(v.prev, next)
	if len(patches) == 0 {
		return false, nil
	}
	vdom.AssignMissingHIDs(next, v.gen)
	if err := v.surface.Apply(patches); err != nil {
		return false, errors.New("E040").Wrap(err)
	}
	v.prev = next
	return true, nil
}

// Current returns the last tree handed to the surface.
func (v *View) Current() *vdom.VNode {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.prev
}

// Clear detaches the tree from the surface. The next Render starts over
// with a full replace.
func (v *View) Clear() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.surface == nil || v.prev == nil {
		return nil
	}
	v.prev = nil
	if err := v.surface.Clear(); err != nil {
		return errors.New("E040").Wrap(err)
	}
	return nil
}
