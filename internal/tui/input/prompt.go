// Package input holds the go-to-date prompt's suggestion logic.
package input

import (
	"strings"
	"time"
)

// PromptCommand describes a suggestion entry.
type PromptCommand struct {
	Name        string
	Description string
}

var fixedDateCommands = []PromptCommand{
	{Name: "today", Description: "Jump to today"},
	{Name: "tomorrow", Description: "One day ahead"},
	{Name: "yesterday", Description: "One day back"},
	{Name: "next-week", Description: "Seven days ahead"},
	{Name: "last-week", Description: "Seven days back"},
}

// DateCommands returns every keyword the go-to-date prompt understands.
// Weekday entries come in plain, next- and last- forms, Monday first.
func DateCommands() []PromptCommand {
	cmds := append([]PromptCommand(nil), fixedDateCommands...)
	for i := 1; i <= 7; i++ {
		day := time.Weekday(i % 7)
		name := strings.ToLower(day.String())
		cmds = append(cmds,
			PromptCommand{Name: name, Description: "Next " + day.String()},
			PromptCommand{Name: "next-" + name, Description: "Next " + day.String()},
			PromptCommand{Name: "last-" + name, Description: "Previous " + day.String()},
		)
	}
	return cmds
}

// PromptMatchingCommands returns commands that start with the trimmed input.
// Empty input and input containing a space match nothing.
func PromptMatchingCommands(input string, commands []PromptCommand) []PromptCommand {
	prefix := strings.ToLower(strings.TrimSpace(input))
	if prefix == "" || strings.Contains(prefix, " ") {
		return nil
	}

	matches := make([]PromptCommand, 0, len(commands))
	for _, cmd := range commands {
		if strings.HasPrefix(strings.ToLower(cmd.Name), prefix) {
			matches = append(matches, cmd)
		}
	}
	return matches
}

// PromptAutocomplete returns the first matching command and whether it exists.
func PromptAutocomplete(input string, commands []PromptCommand) (string, bool) {
	matches := PromptMatchingCommands(input, commands)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Name, true
}
