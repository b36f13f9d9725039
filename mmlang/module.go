package mmlang

import (
	"context"

	"github.com/reusee/dscope"
	"github.com/reusee/mm/configs"
	"github.com/reusee/mm/logs"
	"github.com/reusee/mm/vars"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}

type BufferCapacity int

func (Module) BufferCapacity(
	loader configs.Loader,
) BufferCapacity {
	return BufferCapacity(vars.FirstNonZero(
		configs.First[int](loader, "buffer_capacity"),
		DefaultCapacity,
	))
}

// ScanFile loads a source file into a buffer and scans it to the end,
// returning the top-level statements in order.
type ScanFile func(ctx context.Context, path string) ([]*Statement, error)

func (Module) ScanFile(
	capacity BufferCapacity,
	logger logs.Logger,
	newSpan logs.NewSpan,
) ScanFile {
	return func(ctx context.Context, path string) ([]*Statement, error) {
		ctx, _ = newSpan(ctx, "")

		buffer, err := OpenFile(path, int(capacity))
		if err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}
		logger.DebugContext(ctx, "source loaded",
			"path", path,
			"bytes", buffer.Len(),
		)

		scanner := NewScanner(NewTokenizer(buffer))
		statements, err := scanner.ScanAll()
		if err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}

		logger.InfoContext(ctx, "scan complete",
			"path", path,
			"bytes", buffer.Len(),
			"statements", len(statements),
		)
		return statements, nil
	}
}
