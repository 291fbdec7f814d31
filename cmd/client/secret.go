package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// importCandidate returns the key to import. Without arguments, or with "-",
// it is read from stdin; a literal argument is accepted only with
// allowArg set.
func importCandidate(cmd *cobra.Command, args []string, allowArg bool) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		if !allowArg {
			return "", errKeyOnCommandLine
		}
		return args[0], nil
	}

	return readSecret(cmd.InOrStdin(), cmd.ErrOrStderr(), "Encryption key: ")
}

// readSecret reads one line from in. When in is a terminal echo is turned
// off and prompt is written to out; piped input is read silently.
func readSecret(in io.Reader, out io.Writer, prompt string) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(out, prompt)
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("read key from terminal: %w", err)
		}
		return strings.TrimSpace(string(secret)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read key from stdin: %w", err)
	}
	return strings.TrimSpace(line), nil
}
