// Package brotli registers a brotli compressor with gRPC. Import it for its
// side effect on both servers and clients, then select it per call with
// grpc.UseCompressor(brotli.Name).
package brotli

import (
	"io"
	"sync"

	"github.com/andybalholm/brotli"
	"google.golang.org/grpc/encoding"
)

// Name is the grpc-encoding value for brotli.
const Name = "br"

func init() {
	c := &compressor{}
	c.poolCompressor.New = func() any {
		return &writer{Writer: brotli.NewWriterLevel(nil, brotli.DefaultCompression), pool: &c.poolCompressor}
	}
	encoding.RegisterCompressor(c)
}

type compressor struct {
	poolCompressor   sync.Pool
	poolDecompressor sync.Pool
}

type writer struct {
	*brotli.Writer
	pool *sync.Pool
}

type reader struct {
	*brotli.Reader
	pool *sync.Pool
}

func (c *compressor) Name() string {
	return Name
}

func (c *compressor) Compress(w io.Writer) (io.WriteCloser, error) {
	z := c.poolCompressor.Get().(*writer)
	z.Writer.Reset(w)
	return z, nil
}

func (z *writer) Close() error {
	defer z.pool.Put(z)
	return z.Writer.Close()
}

func (c *compressor) Decompress(r io.Reader) (io.Reader, error) {
	z, inPool := c.poolDecompressor.Get().(*reader)
	if !inPool {
		return &reader{Reader: brotli.NewReader(r), pool: &c.poolDecompressor}, nil
	}
	if err := z.Reader.Reset(r); err != nil {
		c.poolDecompressor.Put(z)
		return nil, err
	}
	return z, nil
}

// Read returns the reader to the pool once the stream is drained.
func (z *reader) Read(p []byte) (n int, err error) {
	n, err = z.Reader.Read(p)
	if err == io.EOF {
		z.pool.Put(z)
	}
	return n, err
}
