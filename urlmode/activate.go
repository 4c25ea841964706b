package urlmode

import (
	"fmt"
	"os/exec"
	"strings"
	"syscall"

	"github.com/atotto/clipboard"
)

// LaunchConfig is the argv template used for ActionLaunch, with "{url}"
// substituted for the activated URL's text. Dir is the working directory
// the spawned process inherits.
type LaunchConfig struct {
	Argv []string
	Dir  string
}

// Activate runs u's action: ActionCopy puts u.Text on the clipboard,
// ActionLaunch expands cfg.Argv's "{url}" placeholders and spawns the
// result detached from the current process group.
func Activate(u URL, cfg LaunchConfig) error {
	switch u.Action {
	case ActionCopy:
		return clipboard.WriteAll(u.Text)

	case ActionLaunch:
		if len(cfg.Argv) == 0 {
			return fmt.Errorf("urlmode: launch action with empty argv template")
		}
		argv := make([]string, len(cfg.Argv))
		for i, a := range cfg.Argv {
			argv[i] = strings.ReplaceAll(a, "{url}", u.Text)
		}

		cmd := exec.Command(argv[0], argv[1:]...)
		cmd.Dir = cfg.Dir
		cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
		return cmd.Start()

	default:
		return fmt.Errorf("urlmode: unknown action %d", u.Action)
	}
}
