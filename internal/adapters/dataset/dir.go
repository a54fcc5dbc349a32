package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Dir serves datasets from local files: <root>/<name>.json.
type Dir struct{ root string }

func NewDir(root string) *Dir { return &Dir{root: root} }

func (d *Dir) Dataset(_ context.Context, name string, out any) error {
	b, err := os.ReadFile(filepath.Join(d.root, name+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return fmt.Errorf("read dataset %s: %w", name, err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("unmarshal dataset %s: %w", name, err)
	}
	return nil
}
