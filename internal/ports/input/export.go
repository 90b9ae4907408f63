package input

import (
	"context"
	"io"
)

type ExportUseCase interface {
	Collect(ctx context.Context) (map[string]any, error)
	Export(ctx context.Context, w io.Writer) error
}
