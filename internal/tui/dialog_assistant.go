package tui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/mvelders/baedeker/internal/core/styles"
)

// AssistantDialog is the trip-assistant chat. Replies arrive
// asynchronously; the loading guard keeps the dialog marked busy while
// one is pending.
type AssistantDialog struct {
	dialogState
	input      textinput.Model
	transcript []string
}

func NewAssistantDialog() *AssistantDialog {
	ti := textinput.New()
	ti.Placeholder = "Ask about the trip..."
	ti.Focus()
	return &AssistantDialog{input: ti}
}

// Greet seeds the transcript on first open.
func (d *AssistantDialog) Greet(greeting string) {
	if len(d.transcript) == 0 {
		d.transcript = append(d.transcript, greeting)
	}
}

// Submit takes the pending prompt out of the input. Returns false when
// the input is empty or a reply is still outstanding.
func (d *AssistantDialog) Submit() (string, bool) {
	prompt := strings.TrimSpace(d.input.Value())
	if prompt == "" || d.busy {
		return "", false
	}
	d.transcript = append(d.transcript, "You: "+prompt)
	d.input.Reset()
	return prompt, true
}

// AddReply appends the assistant's answer to the transcript.
func (d *AssistantDialog) AddReply(reply string) {
	d.transcript = append(d.transcript, reply)
}

// HandleKeyMsg forwards typing to the input field. Enter is handled by
// the model so the reply can run as a command.
func (d *AssistantDialog) HandleKeyMsg(msg tea.KeyMsg) (tea.Cmd, bool) {
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return cmd, true
}

func (d *AssistantDialog) View(width, _ int) string {
	inner := dialogInnerWidth(width)
	d.input.SetWidth(inner)

	var b strings.Builder
	start := max(len(d.transcript)-6, 0) // keep the tail visible
	for _, line := range d.transcript[start:] {
		b.WriteString(line + "\n")
	}
	if d.busy {
		b.WriteString(styles.DialogBusyStyle.Render("Thinking...") + "\n")
	}
	b.WriteString("\n" + d.input.View())
	return renderDialog(styles.IconChat, "Trip assistant", strings.TrimRight(b.String(), "\n"), "enter send · esc close", width)
}
