package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// Labels of the interactive questions
const (
	LabelName           = "Your name"
	LabelFetch          = "How many rows to fetch"
	LabelCommentTrim    = "Ignore comments shorter than this length"
	LabelIncludeReplies = "Include my comments that are replies to other comments"
)

// PromptName shows a free-text prompt for the display name
func PromptName(defaultName string) (string, error) {
	prompt := promptui.Prompt{
		Label:   LabelName,
		Default: defaultName,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("name cannot be empty")
			}
			return nil
		},
	}

	name, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return strings.TrimSpace(name), nil
}

// PromptInt shows a prompt accepting a non-negative integer
func PromptInt(label string, defaultValue int) (int, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Default:  strconv.Itoa(defaultValue),
		Validate: validateNonNegative,
	}

	input, err := prompt.Run()
	if err != nil {
		return 0, fmt.Errorf("prompt failed: %w", err)
	}
	return strconv.Atoi(strings.TrimSpace(input))
}

func validateNonNegative(input string) error {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return errors.New("please enter a number")
	}
	if n < 0 {
		return errors.New("number must not be negative")
	}
	return nil
}

// PromptBool shows a Yes/No selection with the default preselected
func PromptBool(label string, defaultValue bool) (bool, error) {
	items := []string{"Yes", "No"}
	cursor := 0
	if !defaultValue {
		cursor = 1
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     items,
		CursorPos: cursor,
	}

	idx, _, err := prompt.Run()
	if err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return idx == 0, nil
}
