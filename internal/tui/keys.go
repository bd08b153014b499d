package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit        key.Binding
	ForceQuit   key.Binding
	Archives    key.Binding
	Scriptorium key.Binding
	Lexicon     key.Binding
	NextTab     key.Binding
	UILanguage  key.Binding
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Back        key.Binding

	// archives
	NewEntry      key.Binding
	Delete        key.Binding
	Confirm       key.Binding
	Cancel        key.Binding
	CycleCategory key.Binding
	ConsultMuse   key.Binding
	FileEntry     key.Binding
	SwitchField   key.Binding

	// scriptorium
	EditPrompt   key.Binding
	Generate     key.Binding
	StoryLang    key.Binding
	LearningMode key.Binding
	Select       key.Binding
	AddToLexicon key.Binding
	Save         key.Binding

	// lexicon
	Flip key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
		Archives:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "archives")),
		Scriptorium: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "scriptorium")),
		Lexicon:     key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "lexicon")),
		NextTab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		UILanguage:  key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "language")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:        key.NewBinding(key.WithKeys("left", "["), key.WithHelp("←/[", "previous")),
		Right:       key.NewBinding(key.WithKeys("right", "]"), key.WithHelp("→/]", "next")),
		Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),

		NewEntry:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new entry")),
		Delete:        key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "burn entry")),
		Confirm:       key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "confirm")),
		Cancel:        key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancel")),
		CycleCategory: key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "category")),
		ConsultMuse:   key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "consult muse")),
		FileEntry:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "archive")),
		SwitchField:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "field")),

		EditPrompt:   key.NewBinding(key.WithKeys("e", "i"), key.WithHelp("e", "write prompt")),
		Generate:     key.NewBinding(key.WithKeys("g", "ctrl+g"), key.WithHelp("g", "inscribe")),
		StoryLang:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "story language")),
		LearningMode: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "learning mode")),
		Select:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "reveal")),
		AddToLexicon: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add to lexicon")),
		Save:         key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),

		Flip: key.NewBinding(key.WithKeys(" ", "space", "enter", "f"), key.WithHelp("space", "flip")),
	}
}
