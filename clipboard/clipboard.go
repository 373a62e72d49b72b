// Package clipboard provides clipboard operations via the host's clipboard utilities.
package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	atotto "github.com/atotto/clipboard"
	"github.com/fwojciec/echoquill"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard: no clipboard utility available")

// Compile-time interface verification.
var (
	_ echoquill.Clipboard = (*System)(nil)
	_ echoquill.Clipboard = (*Command)(nil)
)

// System implements Clipboard using the platform clipboard (pbcopy, xclip, xsel,
// wl-copy or the Windows API, whichever is present).
type System struct{}

// NewSystem returns a new System clipboard.
func NewSystem() *System {
	return &System{}
}

// Copy writes content to the system clipboard.
func (s *System) Copy(content string) error {
	if atotto.Unsupported {
		return ErrUnsupported
	}
	return atotto.WriteAll(content)
}

// Command implements Clipboard by piping content into an external program,
// such as "pbcopy", "wl-copy" or "tmux load-buffer -".
type Command struct {
	name string
	args []string
}

// NewCommand returns a Command clipboard that runs name with args.
func NewCommand(name string, args ...string) *Command {
	return &Command{name: name, args: args}
}

// NewPBCopy returns a Command clipboard using macOS pbcopy.
func NewPBCopy() *Command {
	return NewCommand("pbcopy")
}

// Copy writes content to the program's stdin.
func (c *Command) Copy(content string) error {
	cmd := exec.Command(c.name, c.args...)
	cmd.Stdin = strings.NewReader(content)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("clipboard: %s: %w: %s", c.name, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// FromCommandLine returns a Command clipboard for a whitespace-separated
// command line, or the System clipboard when line is blank.
func FromCommandLine(line string) echoquill.Clipboard {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return NewSystem()
	}
	return NewCommand(fields[0], fields[1:]...)
}
