package launchd

import (
	"fmt"
	"os/exec"

	"finnotify/internal/shared"
)

var lookPath = exec.LookPath

// LocateProgram searches the invoking user's PATH for the named executable
// and returns its absolute path. There are no fallback search locations and
// no version check; a miss is fatal to the install.
func LocateProgram(name string) (string, error) {
	path, err := lookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s", shared.ErrProgramNotFound, name)
	}
	return path, nil
}
