package console

import (
	"fmt"
	"strings"
)

// ErrMsgInvalidOption is printed for a number that names no menu item.
const ErrMsgInvalidOption = "Invalid option."

// Action runs one menu item. Domain errors are reported and the menu
// carries on; any other error ends the session.
type Action func() error

type menuEntry struct {
	choice int
	label  string
	action Action
	exit   bool
}

// Menu dispatches numeric choices to actions.
//
// Items are listed in registration order. Each item takes the number
// after the highest one already registered, so an item added after the
// exit item is numbered past it.
//
// Example:
//
//	menu := NewMenu("--- Seller Menu ---").
//	    On("View Products", c.viewProducts).
//	    On("Add Product", c.addProduct).
//	    Exit("Logout")
type Menu struct {
	title   string
	entries []menuEntry
	exit    int
}

// NewMenu creates a menu. An empty title prints no heading.
func NewMenu(title string) *Menu {
	return &Menu{title: title, exit: -1}
}

// On registers the next numbered item.
func (m *Menu) On(label string, action Action) *Menu {
	m.entries = append(m.entries, menuEntry{choice: m.next(), label: label, action: action})
	return m
}

// Exit registers the leaving item under the next number.
func (m *Menu) Exit(label string) *Menu {
	return m.ExitAt(m.next(), label)
}

// ExitAt registers the leaving item under an explicit choice.
func (m *Menu) ExitAt(choice int, label string) *Menu {
	m.exit = choice
	m.entries = append(m.entries, menuEntry{choice: choice, label: label, exit: true})
	return m
}

// Prompt renders the heading, the items and the "Choice: " prompt.
func (m *Menu) Prompt() string {
	var b strings.Builder
	b.WriteString("\n")
	if m.title != "" {
		b.WriteString(m.title)
		b.WriteString("\n")
	}
	for _, e := range m.entries {
		fmt.Fprintf(&b, "%d. %s\n", e.choice, e.label)
	}
	b.WriteString("Choice: ")
	return b.String()
}

func (m *Menu) next() int {
	highest := 0
	for _, e := range m.entries {
		highest = max(highest, e.choice)
	}
	return highest + 1
}

// IsExit reports whether choice leaves the menu.
func (m *Menu) IsExit(choice int) bool {
	return m.exit >= 0 && choice == m.exit
}

// Lookup returns the action registered for choice.
func (m *Menu) Lookup(choice int) (Action, bool) {
	for _, e := range m.entries {
		if !e.exit && e.choice == choice {
			return e.action, true
		}
	}
	return nil, false
}
