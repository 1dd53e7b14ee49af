package ui

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// AskOne is the prompt used by SelectSuite. Tests replace it.
var AskOne = survey.AskOne

// SelectSuite asks the user which suite to run.
func SelectSuite(suites []string) (string, error) {
	if len(suites) == 0 {
		return "", fmt.Errorf("no suites available")
	}

	var choice string
	prompt := &survey.Select{
		Message: "Which benchmark do you want to run?",
		Options: suites,
		Default: suites[0],
	}
	if err := AskOne(prompt, &choice); err != nil {
		return "", fmt.Errorf("suite selection cancelled: %w", err)
	}
	return choice, nil
}
