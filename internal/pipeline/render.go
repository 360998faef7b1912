package pipeline

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-pipeline/internal/synthesis"
	"github.com/jonathan/resume-pipeline/internal/types"
)

// RenderAll synthesizes the block sequence for every requested format
// concurrently. Synthesis never mutates the resume, so the formats share it
// without coordination; the only error source is context cancellation.
func RenderAll(ctx context.Context, resume *types.StructuredResume, formats []synthesis.Format) (map[synthesis.Format][]types.RenderBlock, error) {
	if len(formats) == 0 {
		formats = synthesis.Formats()
	}

	rendered := make(map[synthesis.Format][]types.RenderBlock, len(formats))
	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)
	for _, format := range formats {
		format := format
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			blocks := synthesis.Synthesize(resume, format)
			mu.Lock()
			rendered[format] = blocks
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rendered, nil
}
