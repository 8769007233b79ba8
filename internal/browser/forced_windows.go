//go:build windows

package browser

import (
	"context"
	"fmt"
	"os/exec"
)

// powershellCopier shells out to PowerShell's Copy-Item, which can read
// files held open with a write lock by another process.
type powershellCopier struct{}

func newForcedCopier() ForcedCopier {
	return powershellCopier{}
}

func (powershellCopier) Copy(src, dst string) error {
	cmd := fmt.Sprintf(`Copy-Item -Path "%s" -Destination "%s" -Force`, src, dst)
	c := exec.CommandContext(context.Background(), "powershell", "-NoProfile", "-Command", cmd)
	if out, err := c.CombinedOutput(); err != nil {
		return fmt.Errorf("powershell copy: %w: %s", err, out)
	}
	return nil
}
