package toast

import (
	"github.com/vango-dev/litkit/pkg/vdom"
	"github.com/vango-dev/litkit/pkg/widget"
)

const (
	successPath = "M10 20C15.5228 20 20 15.5228 20 10C20 4.47715 15.5228 0 10 0C4.47715 0 0 4.47715 0 10C0 15.5228 4.47715 20 10 20ZM14.0711 7.29289C14.4616 6.90237 15.0948 6.90237 15.4853 7.29289C15.8758 7.68342 15.8758 8.31658 15.4853 8.70711L9.57107 14.6213C9.18055 15.0118 8.54738 15.0118 8.15686 14.6213L4.51472 10.9792C4.1242 10.5886 4.1242 9.95543 4.51472 9.5649C4.90525 9.17438 5.53841 9.17438 5.92893 9.5649L8.86396 12.4999L14.0711 7.29289Z"
	errorPath   = "M10 20C15.5228 20 20 15.5228 20 10C20 4.47715 15.5228 0 10 0C4.47715 0 0 4.47715 0 10C0 15.5228 4.47715 20 10 20ZM8.70711 7.29289C8.31658 6.90237 7.68342 6.90237 7.29289 7.29289C6.90237 7.68342 6.90237 8.31658 7.29289 8.70711L8.58579 10L7.29289 11.2929C6.90237 11.6834 6.90237 12.3166 7.29289 12.7071C7.68342 13.0976 8.31658 13.0976 8.70711 12.7071L10 11.4142L11.2929 12.7071C11.6834 13.0976 12.3166 13.0976 12.7071 12.7071C13.0976 12.3166 13.0976 11.6834 12.7071 11.2929L11.4142 10L12.7071 8.70711C13.0976 8.31658 13.0976 7.68342 12.7071 7.29289C12.3166 6.90237 11.6834 6.90237 11.2929 7.29289L10 8.58579L8.70711 7.29289Z"
)

// Tree returns the rendered container, or nil before the first toast.
func (m *Manager) Tree() *vdom.VNode {
	m.renderMu.Lock()
	defer m.renderMu.Unlock()
	if m.view == nil {
		return nil
	}
	return m.view.Current()
}

// render brings the surface up to date. The view is created on first use.
func (m *Manager) render() {
	m.renderMu.Lock()
	defer m.renderMu.Unlock()

	if m.view == nil {
		m.view = widget.NewView(m.surface, "toast")
	}

	m.mu.Lock()
	tree := m.container()
	m.mu.Unlock()

	if _, err := m.view.Render(tree); err != nil {
		m.logger.Warn("toast render failed", "error", err)
	}
}

// container builds the root tree. Caller holds m.mu.
func (m *Manager) container() *vdom.VNode {
	children := make([]*vdom.VNode, 0, len(m.entries))
	for _, e := range m.entries {
		children = append(children, toastNode(e.toast))
	}
	return vdom.Div(
		vdom.ID(ContainerID),
		vdom.Class("toast-manager-container"),
		vdom.AriaLive("polite"),
		children,
	)
}

func toastNode(t *Toast) *vdom.VNode {
	visible := ""
	if t.Visible() {
		visible = "is-visible"
	}
	return vdom.Div(
		vdom.Key(t.ID),
		vdom.Class("toast", "toast--"+string(t.Type), visible),
		vdom.Data("toast-id", t.ID),
		vdom.Role("status"),
		vdom.Div(vdom.Class("toast__icon-wrapper"), icon(t.Type)),
		vdom.Div(vdom.Class("toast__message"), vdom.Text(t.Message)),
		vdom.Button(
			vdom.Class("toast__close-button"),
			vdom.Type("button"),
			vdom.AriaLabel("Close notification"),
			vdom.Data("toast-dismiss", t.ID),
			vdom.Text("×"),
		),
	)
}

func icon(t Type) *vdom.VNode {
	var path, fill string
	switch t {
	case TypeSuccess:
		path, fill = successPath, "#25BA3B"
	case TypeError:
		path, fill = errorPath, "#F25A5A"
	default:
		return nil
	}
	return vdom.Svg(
		vdom.Width("20"), vdom.Height("20"), vdom.ViewBox("0 0 20 20"), vdom.Fill("none"),
		vdom.Path(vdom.FillRule("evenodd"), vdom.D(path), vdom.Fill(fill)),
	)
}
