package gallery

import (
	"io"

	"github.com/vango-dev/litkit"
	"github.com/vango-dev/litkit/internal/config"
	"github.com/vango-dev/litkit/pkg/autosize"
	"github.com/vango-dev/litkit/pkg/dialog"
	"github.com/vango-dev/litkit/pkg/popup"
	"github.com/vango-dev/litkit/pkg/render"
	"github.com/vango-dev/litkit/pkg/vdom"
	"github.com/vango-dev/litkit/pkg/widget"
)

// ViewType is the view type the gallery switches the app to.
const ViewType litkit.ViewType = "gallery"

// Widget IDs used on the page.
const (
	DialogID = "gallery-dialog"
	NotesID  = "gallery-notes"
)

const sampleNotes = "Autosizing text input.\nIt grows with its content and stops at the configured maximum height."

// popupAnchor is where the demo popup is anchored on the page.
var popupAnchor = widget.StaticElement{X: 40, Y: 120, Width: 160, Height: 32}

// Page is a mounted gallery.
type Page struct {
	Dialog *dialog.Dialog
	Popup  *popup.Popup
	Notes  *autosize.Input

	app *litkit.App
	cfg *config.Config
}

// New mounts the demo widgets on app. A nil cfg uses config defaults.
func New(app *litkit.App, cfg *config.Config) (*Page, error) {
	if cfg == nil {
		cfg = config.New()
	}
	p := &Page{app: app, cfg: cfg}

	p.Dialog = app.NewDialog(dialog.NewMemoryModal(), dialog.WithID(DialogID))
	dialogProps := dialog.Props{
		Title:  cfg.Dialog.Title,
		Body:   vdom.P(vdom.Text("Dialogs open and close through their open property. Escape and backdrop clicks respect closable.")),
		Footer: vdom.Button(vdom.Type("button"), vdom.Text("Got it")),
	}
	if cfg.Dialog.Width != "" {
		dialogProps.Width = widget.String(cfg.Dialog.Width)
	}
	if err := p.Dialog.Mount(dialogProps); err != nil {
		return nil, err
	}

	var popupOpts []popup.Option
	if cfg.Popup.Gap > 0 {
		popupOpts = append(popupOpts, popup.WithGap(cfg.Popup.Gap))
	}
	if cfg.Popup.Margin > 0 {
		popupOpts = append(popupOpts, popup.WithMargin(cfg.Popup.Margin))
	}
	p.Popup = app.NewPopup(popupOpts...)
	err := p.Popup.Mount(popup.Props{
		Open:    true,
		Anchor:  popupAnchor,
		Class:   "gallery-popup",
		Size:    widget.Size{Width: 240, Height: 96},
		Content: vdom.P(vdom.Text("Anchored below the trigger, flipped above when there is no room.")),
	})
	if err != nil {
		return nil, err
	}

	p.Notes = app.NewTextInput(autosize.WithID(NotesID))
	err = p.Notes.Mount(autosize.Props{
		Value:       sampleNotes,
		AutoResize:  true,
		Placeholder: "Write something",
		AriaLabel:   "Notes",
		Style: autosize.Style{
			Width:         360,
			PaddingTop:    8,
			PaddingBottom: 8,
			PaddingLeft:   8,
			PaddingRight:  8,
			BorderTop:     1,
			BorderBottom:  1,
			BorderBox:     true,
			LineHeight:    cfg.Autosize.LineHeight,
			MinHeight:     cfg.Autosize.MinHeight,
			MaxHeight:     cfg.Autosize.MaxHeight,
		},
	})
	if err != nil {
		return nil, err
	}

	app.ViewTypes.SetViewType(ViewType)
	app.Toasts.Success("Welcome to the litkit gallery")
	app.Toasts.Info("Toasts dismiss themselves after three seconds")
	app.Ready.MarkReady()

	return p, nil
}

// Tree builds the page body.
func (p *Page) Tree() *vdom.VNode {
	return vdom.Main(vdom.Class("gallery"),
		vdom.Header(
			vdom.H1(vdom.Text(p.cfg.Render.Title)),
			vdom.P(vdom.Textf("litkit %s", litkit.Version)),
		),
		section("Toasts", p.app.Toasts.Tree()),
		section("Dialog", p.Dialog.Tree()),
		section("Popup",
			vdom.Button(vdom.Type("button"), vdom.Text("Trigger")),
			p.Popup.Tree(),
		),
		section("Autosizing text input", p.Notes.Tree()),
	)
}

// Render writes the page as a complete HTML document.
func (p *Page) Render(w io.Writer) error {
	r := render.NewRenderer(render.RendererConfig{
		Pretty:   p.cfg.Render.Pretty,
		OmitHIDs: true,
	})
	return r.RenderPage(w, render.PageData{
		Title:       p.cfg.Render.Title,
		Description: "Live examples of the litkit widgets",
		Styles:      []string{Stylesheet},
		Body:        p.Tree(),
	})
}

// Unmount tears down the widgets. Toasts and listeners belong to the app.
func (p *Page) Unmount() {
	p.Dialog.Unmount()
	p.Popup.Unmount()
	p.Notes.Unmount()
}

func section(title string, children ...*vdom.VNode) *vdom.VNode {
	return vdom.Section(vdom.H2(vdom.Text(title)), children)
}
