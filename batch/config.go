package batch

import (
	"github.com/flatmsg-dev/flatmsg/format"
	"github.com/flatmsg-dev/flatmsg/internal/options"
)

// WriterConfig configures a Writer's container-level behavior.
type WriterConfig struct {
	compression format.CompressionType
}

func newWriterConfig() *WriterConfig {
	return &WriterConfig{compression: format.CompressionNone}
}

func (c *WriterConfig) setCompression(v format.CompressionType) { c.compression = v }

// WriterOption configures a Writer passed to NewWriter.
type WriterOption = options.Option[*WriterConfig]

// WithCompression selects the compression algorithm applied to the
// container's concatenated record payload. Defaults to
// format.CompressionNone.
func WithCompression(c format.CompressionType) WriterOption {
	return options.NoError(func(cfg *WriterConfig) { cfg.setCompression(c) })
}
