package pipeline

import (
	"fmt"
	"path/filepath"

	"lexweave/internal/fileutil"
	"lexweave/internal/logging"
)

// relocate moves the named fragments from one lifecycle area to another.
// Every move is a verified copy followed by source removal. When any move
// fails, the fragments already moved are returned to the source area so the
// set transitions atomically or not at all.
func (p *Pipeline) relocate(names []string, fromDir, toDir string) error {
	moved := make([]string, 0, len(names))
	for _, name := range names {
		src := filepath.Join(fromDir, name)
		dst := filepath.Join(toDir, name)
		if err := fileutil.MoveFileVerified(src, dst); err != nil {
			p.logger.Error("fragment relocation failed, rolling back",
				logging.String(logging.FieldTranche, name),
				logging.Int("already_moved", len(moved)),
				logging.Error(err))
			p.rollback(moved, toDir, fromDir)
			return fmt.Errorf("relocate %s: %w", name, err)
		}
		moved = append(moved, name)
	}
	return nil
}

// rollback returns already-moved fragments to their source area. A fragment
// that cannot be moved back is stranded in the destination and reported; it
// is never deleted.
func (p *Pipeline) rollback(names []string, fromDir, toDir string) {
	for _, name := range names {
		src := filepath.Join(fromDir, name)
		dst := filepath.Join(toDir, name)
		if err := fileutil.MoveFileVerified(src, dst); err != nil {
			p.logger.Error("rollback failed, fragment stranded",
				logging.String(logging.FieldTranche, name),
				logging.String("stranded_in", fromDir),
				logging.Error(err))
		}
	}
}
