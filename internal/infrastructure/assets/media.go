package assets

import (
	"context"
	"io"
)

// MediaWriter creates files relative to the media root.
type MediaWriter interface {
	Create(ctx context.Context, relPath string) (io.WriteCloser, error)
}

func writeMedia(ctx context.Context, media MediaWriter, relPath string, write func(io.Writer) error) error {
	if relPath == "" {
		return ErrEmptyRelativePath
	}
	wc, err := media.Create(ctx, relPath)
	if err != nil {
		return err
	}
	if err := write(wc); err != nil {
		_ = wc.Close()
		return err
	}
	return wc.Close()
}
