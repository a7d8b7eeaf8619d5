// Package wirebuf persists binary buffers as save files.
//
// The encoding itself lives in the bytebuffer subpackage, which has no
// dependencies on this one. This package adds what an application needs
// around it: configuration, logging and a memory mapped save file that
// stores a buffer's unread bytes on disk and loads them back.
//
// The save file format is owned by the savedump subpackage, which also ships
// a cli to inspect save files.
//
// Some examples on using the API are implemented as executable go programs in
// the `examples` subdirectory.
package wirebuf

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wirekit/wirebuf/bytebuffer"
)

// Version is the last tagged version of the package
const Version = "1.0.0"

var logging bool
var logWriters = []zapcore.WriteSyncer{os.Stdout}
var logger *zap.Logger
var zapEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	EncodeLevel:    zapcore.LowercaseLevelEncoder,
	EncodeTime:     zapcore.ISO8601TimeEncoder,
	EncodeDuration: zapcore.SecondsDurationEncoder,
}

func initLogging() {
	logging = false
	initializeLogger()
}

// EnableLogging enables logging if true is passed and disables it if false
// is passed.
func EnableLogging(enable bool) {
	logging = enable
}

// AddLogWriter adds a new io.Writer as a target for writing
// logs.
func AddLogWriter(writer io.Writer) {
	logWriters = append(logWriters, zapcore.AddSync(writer))
	initializeLogger()
}

// SetLogWriters will set the passed io.Writer instances as targets for
// writing logs.
func SetLogWriters(writers ...io.Writer) {
	writesyncers := make([]zapcore.WriteSyncer, 0, len(writers))
	for _, w := range writers {
		writesyncers = append(writesyncers, zapcore.AddSync(w))
	}

	logWriters = writesyncers
	initializeLogger()
}

func initializeLogger() {
	ws := zap.CombineWriteSyncers(logWriters...)
	logger = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zapEncoderConfig),
		ws, zapcore.InfoLevel,
	))
}

// init maintains a central location of all things that happen when the package is initialized
// instead of everything being scattered in multiple source files
func init() {
	initLogging()

	err := initConfig()
	if err != nil && logging {
		logger.Error("error initializing config, using defaults",
			zap.String("module", "config"),
			zap.Error(err),
		)
	}
}

// NewBuffer returns an empty buffer sized by the configured initial capacity
func NewBuffer() *bytebuffer.ByteBuffer {
	return bytebuffer.NewByteBuffer(Config.InitialCapacity)
}
