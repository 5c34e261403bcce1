package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dollcode/go-dollcode/dollcode"
)

// debounceDelay matches the feel of the original converter: fast enough
// to read as live, slow enough to skip intermediate keystrokes.
const debounceDelay = 150 * time.Millisecond

// copyFlashDelay is how long the "copied" confirmation stays visible.
const copyFlashDelay = 1500 * time.Millisecond

// debounceMsg fires after the debounce window. Seq ties it to the edit
// that scheduled it; a stale sequence number means more keystrokes
// arrived and the message is dropped.
type debounceMsg struct {
	seq int
}

// copyFlashMsg clears the clipboard confirmation.
type copyFlashMsg struct {
	seq int
}

// Model is the interactive converter state. One conversion is in
// flight at most; the codec itself is synchronous and stateless, so
// "in flight" only means a pending debounce tick.
type Model struct {
	input textinput.Model

	result    dollcode.Result
	convErr   error
	hasResult bool

	debounceSeq int
	copySeq     int
	copied      bool
	copyErr     error

	width int
}

// New constructs the initial model with focus on the input.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "number, 0x hex, text, or dollcode"
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.Focus()

	return Model{input: ti, width: 72}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key events, debounce ticks, and clipboard feedback.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlY:
			return m.copyResult()
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() == before {
			return m, cmd
		}
		return m, tea.Batch(cmd, m.scheduleConvert())

	case debounceMsg:
		if msg.seq != m.debounceSeq {
			return m, nil
		}
		m.convert()
		return m, nil

	case copyFlashMsg:
		if msg.seq == m.copySeq {
			m.copied = false
			m.copyErr = nil
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// scheduleConvert restarts the debounce window for the current edit.
func (m *Model) scheduleConvert() tea.Cmd {
	m.debounceSeq++
	seq := m.debounceSeq
	return tea.Tick(debounceDelay, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}

// convert runs the codec against the current input value.
func (m *Model) convert() {
	value := m.input.Value()
	if value == "" {
		m.hasResult = false
		m.convErr = nil
		return
	}
	res, err := dollcode.Convert(value)
	m.result = res
	m.convErr = err
	m.hasResult = err == nil
}

// copyResult puts the current output on the system clipboard and arms
// the confirmation flash.
func (m Model) copyResult() (tea.Model, tea.Cmd) {
	if !m.hasResult {
		return m, nil
	}
	m.copyErr = clipboard.WriteAll(m.result.Output)
	m.copied = m.copyErr == nil
	m.copySeq++
	seq := m.copySeq
	return m, tea.Tick(copyFlashDelay, func(time.Time) tea.Msg {
		return copyFlashMsg{seq: seq}
	})
}

// View renders the converter.
func (m Model) View() string {
	s := TitleStyle.Render("dollcode") + " " + ModeStyle.Render("▖ ▘ ▌") + "\n\n"
	s += m.input.View() + "\n\n"

	switch {
	case m.convErr != nil:
		s += ErrorStyle.Render(friendlyError(m.convErr)) + "\n"
	case m.hasResult:
		s += ResultBoxStyle.Render(ResultStyle.Render(resultLine(m.result))) + "\n"
		s += ModeStyle.Render("detected: "+m.result.Mode.String()) + "\n"
	default:
		s += HelpStyle.Render("type to convert") + "\n"
	}

	help := "ctrl+y copy · esc quit"
	if m.copied {
		help = CopiedStyle.Render("copied to clipboard") + "  " + help
	} else if m.copyErr != nil {
		help = ErrorStyle.Render("clipboard unavailable") + "  " + help
	}
	s += "\n" + HelpStyle.Render(help) + "\n"
	return s
}

// resultLine renders the primary output; numeric dollcode input shows
// decimal and hex together.
func resultLine(res dollcode.Result) string {
	if res.Numeric {
		return fmt.Sprintf("d:%s h:%s", res.Output, dollcode.FormatHex(res.Value))
	}
	return res.Output
}

// friendlyError keeps the live view terse; the full typed error detail
// is available from the one-shot CLI.
func friendlyError(err error) string {
	return "✗ " + err.Error()
}

// Run starts the interactive converter and blocks until exit.
func Run() error {
	_, err := tea.NewProgram(New()).Run()
	return err
}
