package tui

import (
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/mvelders/baedeker/internal/core/styles"
	"github.com/mvelders/baedeker/internal/guide"
)

const activityDialogChrome = 8 // border, padding, title and help rows

// ActivityDialog shows one guide activity rendered from markdown, with
// its own scrolling independent of the page behind it.
type ActivityDialog struct {
	dialogState
	title string
	vp    viewport.Model
}

func NewActivityDialog() *ActivityDialog {
	return &ActivityDialog{
		vp: viewport.New(viewport.WithWidth(dialogMaxWidth), viewport.WithHeight(10)),
	}
}

// SetActivity renders the activity into the dialog. On a render failure
// the raw markdown is shown so the dialog never opens empty.
func (d *ActivityDialog) SetActivity(a guide.Activity, screenWidth, screenHeight int) error {
	d.title = a.Title
	inner := dialogInnerWidth(screenWidth)
	d.vp.SetWidth(inner)
	d.vp.SetHeight(max(screenHeight-activityDialogChrome, 4))
	d.vp.SetYOffset(0)

	rendered, err := a.Render(inner)
	if err != nil {
		d.vp.SetContent(a.Markdown)
		return err
	}
	d.vp.SetContent(rendered)
	return nil
}

// HandleKeyMsg scrolls the activity body.
func (d *ActivityDialog) HandleKeyMsg(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "j", "down":
		d.vp.ScrollDown(1)
		return nil, true
	case "k", "up":
		d.vp.ScrollUp(1)
		return nil, true
	}
	return nil, false
}

func (d *ActivityDialog) View(width, _ int) string {
	body := d.vp.View()
	if d.busy {
		body = styles.DialogBusyStyle.Render("Loading...")
	}
	return renderDialog(styles.IconCompass, d.title, body, "j/k scroll · esc close", width)
}
