package resource

import (
	"context"
	"io"
)

// RateLimitedWriter wraps an io.Writer with the Controller's I/O limit.
type RateLimitedWriter struct {
	w   io.Writer
	rc  *Controller
	ctx context.Context
}

// NewRateLimitedWriter creates a new RateLimitedWriter.
func NewRateLimitedWriter(ctx context.Context, w io.Writer, rc *Controller) *RateLimitedWriter {
	return &RateLimitedWriter{
		w:   w,
		rc:  rc,
		ctx: ctx,
	}
}

func (w *RateLimitedWriter) Write(p []byte) (int, error) {
	total := 0
	for len(p) > 0 {
		chunk := w.rc.chunk(len(p))
		if err := w.rc.AcquireIO(w.ctx, chunk); err != nil {
			return total, err
		}
		n, err := w.w.Write(p[:chunk])
		total += n
		if err != nil {
			return total, err
		}
		p = p[n:]
	}
	return total, nil
}

// RateLimitedReader wraps an io.Reader with the Controller's I/O limit.
type RateLimitedReader struct {
	r   io.Reader
	rc  *Controller
	ctx context.Context
}

// NewRateLimitedReader creates a new RateLimitedReader.
func NewRateLimitedReader(ctx context.Context, r io.Reader, rc *Controller) *RateLimitedReader {
	return &RateLimitedReader{
		r:   r,
		rc:  rc,
		ctx: ctx,
	}
}

// Read waits for tokens covering the requested size, capped at the burst,
// and then reads at most that much.
func (r *RateLimitedReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return r.r.Read(p)
	}
	chunk := r.rc.chunk(len(p))
	if err := r.rc.AcquireIO(r.ctx, chunk); err != nil {
		return 0, err
	}
	return r.r.Read(p[:chunk])
}

func (c *Controller) chunk(n int) int {
	if burst := c.IOBurst(); burst > 0 && n > burst {
		return burst
	}
	return n
}
