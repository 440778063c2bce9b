package parser

import (
	"fmt"
	"strings"
)

// MapError takes a raw input and a participle error, and returns a human-friendly guidance message.
func MapError(input string, err error) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("I wasn't able to understand your command")
	}

	parts := strings.Fields(strings.ToLower(input))
	cmd := parts[0]

	switch cmd {
	case "roll":
		return fmt.Errorf("The command roll must be: roll [pins:] <0-10>")
	case "score":
		return fmt.Errorf("The command score takes no arguments")
	case "frames":
		return fmt.Errorf("The command frames takes no arguments")
	case "new", "reset":
		return fmt.Errorf("The command new must be: new [game]")
	}

	return fmt.Errorf("I wasn't able to understand your command")
}
