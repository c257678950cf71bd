package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/diary/internal/filex"
	"github.com/natefinch/atomic"
)

// Export reloads the list and writes it to path as indented JSON. The file
// is replaced atomically, so a failed export never leaves a partial file.
func (a *App) Export(ctx context.Context, path string) error {
	if err := a.Reload(ctx); err != nil {
		return err
	}
	snap := a.store.Snapshot()

	data, err := json.MarshalIndent(snap.Entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode entries: %w", err)
	}
	data = append(data, '\n')

	if err := filex.EnsureParentDir(path); err != nil {
		return err
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(a.out, "Exported %d entries to %s\n", len(snap.Entries), path)
	return nil
}
