//go:build !windows

package browser

import (
	"context"
	"fmt"
	"os/exec"
)

// cpCopier shells out to cp. On Unix-likes file locks are advisory, so a
// forced re-copy mostly covers transient open errors from the plain path.
type cpCopier struct{}

func newForcedCopier() ForcedCopier {
	return cpCopier{}
}

func (cpCopier) Copy(src, dst string) error {
	c := exec.CommandContext(context.Background(), "cp", "-f", src, dst)
	if out, err := c.CombinedOutput(); err != nil {
		return fmt.Errorf("cp: %w: %s", err, out)
	}
	return nil
}
