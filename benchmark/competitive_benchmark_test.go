package benchmark

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/tinylog/logger"
)

// ---------------------------------------------------------------------------
// Helpers – plain-text printf-style output to the same sink for every framework
// ---------------------------------------------------------------------------

// newTinylog returns a dispatcher with one stream handler on w.
func newTinylog(b *testing.B, w io.Writer, level logger.Level) *logger.Dispatcher {
	d := logger.New()
	d.Init(level)
	if _, err := d.AddStreamHandler(w); err != nil {
		b.Fatal(err)
	}
	return d
}

// newZapSugar returns a sugared zap logger with a console encoder.
func newZapSugar(w io.Writer, level zapcore.Level) *zap.SugaredLogger {
	enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	return zap.New(core).Sugar()
}

// newSlogLogger returns an slog.Logger with a text handler.
func newSlogLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newLogrusLogger returns a logrus.Logger with a text formatter.
func newLogrusLogger(w io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	l.SetLevel(level)
	return l
}

// newZerologLogger returns a zerolog.Logger with a timestamp.
func newZerologLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger().Level(level)
}

// ---------------------------------------------------------------------------
// Scenario 1 – Info message, constant text
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_InfoConstant(b *testing.B) {
	b.Run("tinylog", func(b *testing.B) {
		d := newTinylog(b, io.Discard, logger.DebugLevel)
		defer d.Reset()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			d.Infof("info message")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapSugar(io.Discard, zap.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("info message")
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger(io.Discard, slog.LevelDebug)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(io.Discard, logrus.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("info message")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(io.Discard, zerolog.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msg("info message")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 2 – Info message with printf arguments
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_InfoFormatted(b *testing.B) {
	b.Run("tinylog", func(b *testing.B) {
		d := newTinylog(b, io.Discard, logger.DebugLevel)
		defer d.Reset()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			d.Infof("request %s took %d ms", "GET /api", 42)
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapSugar(io.Discard, zap.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("request %s took %d ms", "GET /api", 42)
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger(io.Discard, slog.LevelDebug)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("request", "route", "GET /api", "ms", 42)
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(io.Discard, logrus.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("request %s took %d ms", "GET /api", 42)
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(io.Discard, zerolog.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msgf("request %s took %d ms", "GET /api", 42)
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 3 – Disabled level (debug below an info threshold)
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_DisabledLevel(b *testing.B) {
	b.Run("tinylog", func(b *testing.B) {
		d := newTinylog(b, io.Discard, logger.InfoLevel)
		defer d.Reset()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			d.Debugf("debug %d", i)
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapSugar(io.Discard, zap.InfoLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debugf("debug %d", i)
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger(io.Discard, slog.LevelInfo)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug("debug", "i", i)
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(io.Discard, logrus.InfoLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debugf("debug %d", i)
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(io.Discard, zerolog.InfoLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug().Msgf("debug %d", i)
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 4 – Parallel logging
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Parallel(b *testing.B) {
	b.Run("tinylog", func(b *testing.B) {
		d := newTinylog(b, io.Discard, logger.DebugLevel)
		defer d.Reset()
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				d.Infof("parallel log %d", 42)
			}
		})
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapSugar(io.Discard, zap.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Infof("parallel log %d", 42)
			}
		})
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger(io.Discard, slog.LevelDebug)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info("parallel log", "n", 42)
			}
		})
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(io.Discard, logrus.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Infof("parallel log %d", 42)
			}
		})
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(io.Discard, zerolog.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info().Msgf("parallel log %d", 42)
			}
		})
	})
}

// ---------------------------------------------------------------------------
// Scenario 5 – File output (real I/O, equal conditions)
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_FileOutput(b *testing.B) {
	b.Run("tinylog", func(b *testing.B) {
		d := logger.New()
		d.Init(logger.InfoLevel)
		if _, err := d.AddFileHandler(b.TempDir()+"/bench-tinylog.log", false); err != nil {
			b.Fatal(err)
		}
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			d.Infof("file log %s", "value")
		}
		b.StopTimer()
		d.Reset()
	})

	b.Run("zap", func(b *testing.B) {
		f, err := os.CreateTemp(b.TempDir(), "bench-zap-*.log")
		if err != nil {
			b.Fatal(err)
		}
		l := newZapSugar(f, zap.InfoLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("file log %s", "value")
		}
		b.StopTimer()
		l.Sync()
		f.Close()
	})

	b.Run("slog", func(b *testing.B) {
		f, err := os.CreateTemp(b.TempDir(), "bench-slog-*.log")
		if err != nil {
			b.Fatal(err)
		}
		l := newSlogLogger(f, slog.LevelInfo)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("file log", "key", "value")
		}
		b.StopTimer()
		f.Close()
	})

	b.Run("logrus", func(b *testing.B) {
		f, err := os.CreateTemp(b.TempDir(), "bench-logrus-*.log")
		if err != nil {
			b.Fatal(err)
		}
		l := newLogrusLogger(f, logrus.InfoLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("file log %s", "value")
		}
		b.StopTimer()
		f.Close()
	})

	b.Run("zerolog", func(b *testing.B) {
		f, err := os.CreateTemp(b.TempDir(), "bench-zerolog-*.log")
		if err != nil {
			b.Fatal(err)
		}
		l := newZerologLogger(f, zerolog.InfoLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msgf("file log %s", "value")
		}
		b.StopTimer()
		f.Close()
	})
}
