package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/josephgoksu/todowing/internal/ui"
	"github.com/spf13/viper"
)

// userError pairs a friendly message with the underlying error. Execute prints
// the message, or the technical error with --verbose.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

func (e *userError) Unwrap() error { return e.err }

// newUserError wraps err with a message meant for the terminal.
func newUserError(msg string, err error) error {
	return &userError{msg: msg, err: err}
}

// PrintError prints an error message without exiting, allowing for recovery.
func PrintError(userMsg string, technicalErr error) {
	fmt.Fprintln(os.Stderr, formatError(userMsg, technicalErr, viper.GetBool("verbose"), ui.IsErrorTerminal()))
}

// formatError picks what PrintError shows. A terminal gets the message in a
// red panel; pipes get the bare line.
func formatError(userMsg string, technicalErr error, verbose, tty bool) string {
	if verbose && technicalErr != nil {
		// In verbose mode, print the detailed, underlying technical error.
		return ui.StyleError.Render(fmt.Sprintf("Error: %v", technicalErr))
	}
	if tty {
		return ui.RenderErrorPanel("Error", strings.TrimPrefix(userMsg, "Error: "))
	}
	return userMsg
}
