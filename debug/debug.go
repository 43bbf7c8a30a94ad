package debug

import (
	"os"
	"strconv"
	"sync"

	"github.com/signadot/fieldmap/encode"
	"github.com/signadot/fieldmap/ir"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type debug struct {
	Encode bool
	Decode bool
	Parse  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Encode = boolEnv("FIELDMAP_DEBUG_ENCODE")
	d.Decode = boolEnv("FIELDMAP_DEBUG_DECODE")
	d.Parse = boolEnv("FIELDMAP_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Encode() bool {
	return d.Encode
}
func Decode() bool {
	return d.Decode
}
func Parse() bool {
	return d.Parse
}

var (
	loggerOnce sync.Once
	logger     *zap.SugaredLogger
)

func sugar() *zap.SugaredLogger {
	loggerOnce.Do(func() {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(cfg),
			zapcore.Lock(os.Stderr),
			zapcore.DebugLevel,
		)
		logger = zap.New(core).Sugar()
	})
	return logger
}

// Logf writes a debug line to stderr. *ir.Node arguments are rendered as
// compact JSON.
func Logf(format string, args ...any) {
	for i, arg := range args {
		node, ok := arg.(*ir.Node)
		if !ok {
			continue
		}
		args[i] = nodeString(node)
	}
	sugar().Debugf(format, args...)
}

func nodeString(node *ir.Node) (s string) {
	if node == nil {
		return "<nil>"
	}
	defer func() {
		if r := recover(); r != nil {
			s = "<unencodable node>"
		}
	}()
	return encode.MustString(node)
}
