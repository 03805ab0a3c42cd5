package system

import (
	"os"
	"os/exec"
	"runtime"
)

// AppName returns the name the program was started with.
func AppName() string {
	if len(os.Args) == 0 {
		return ""
	}
	return os.Args[0]
}

// AppArgs returns the command line arguments of the program, without the
// program name.
func AppArgs() *List {
	if len(os.Args) < 2 {
		return NewList()
	}
	return StringList(os.Args[1:])
}

// Run executes command through the system shell and returns its standard
// output. If the command can't be started, an empty string is returned.
func Run(command string) string {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/C", command)
	} else {
		cmd = exec.Command("sh", "-c", command)
	}

	out, err := cmd.Output()
	if err != nil {
		logger.Warn("Run: command failed", "command", command, "error", err)
	}

	return string(out)
}
