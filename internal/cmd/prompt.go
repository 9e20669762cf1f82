package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	oerrors "github.com/act-operator/cli/internal/errors"
	"github.com/act-operator/cli/internal/output"
)

// promptLine asks for a required value on a TTY, re-asking until the user
// supplies something non-blank. In a non-interactive session a missing
// value is an invalid-input error rather than a hang.
func promptLine(in io.Reader, out io.Writer, label, flagName string) (string, error) {
	if !output.IsInputTTY() {
		return "", oerrors.NewInvalidInputError(
			fmt.Sprintf("%s is required", label),
			fmt.Sprintf("pass --%s in non-interactive sessions", flagName))
	}

	reader := bufio.NewReader(in)
	for {
		fmt.Fprintf(out, "%s: ", label)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return "", oerrors.NewInvalidInputError(
				fmt.Sprintf("%s is required", label),
				fmt.Sprintf("pass --%s in non-interactive sessions", flagName))
		}
		if value := strings.TrimSpace(line); value != "" {
			return value, nil
		}
		fmt.Fprintln(out, "A value is required.")
	}
}

// resolveRequired returns the flag value when present, prompting otherwise.
func resolveRequired(in io.Reader, out io.Writer, label, flagName, value string) (string, error) {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value), nil
	}
	return promptLine(in, out, label, flagName)
}
