package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrijs2005/dropwatch/internal/client/config"
	"github.com/dmitrijs2005/dropwatch/internal/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the logger selected by the log format. Only warnings and
// errors are written so that logs do not interleave with REPL output. The
// returned func flushes buffered entries.
func newLogger(logFormat string, w io.Writer) (logging.Logger, func(), error) {
	switch logFormat {
	case config.LogFormatText:
		return logging.NewTextLogger(w, slog.LevelWarn), func() {}, nil

	case config.LogFormatZap:
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(w),
			zap.WarnLevel,
		)
		z := logging.NewZapLogger(zap.New(core))
		return z, func() { _ = z.Sync() }, nil
	}
	return nil, nil, fmt.Errorf("unknown log format %q", logFormat)
}
