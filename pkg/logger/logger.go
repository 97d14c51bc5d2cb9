package logger

import (
	"bytes"
	"io"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger пишет в буфер (для показа логов на странице) и, если задано,
// дополнительно в writer'ы вроде stdout.
type ZapLogger struct {
	log    *zap.Logger
	logBuf *bytes.Buffer
	Logs   []string
}

type Option func(*options)

type options struct {
	level   zapcore.Level
	writers []io.Writer
}

// WithLevel задает минимальный уровень логов (по умолчанию Debug)
func WithLevel(level zapcore.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithWriter дублирует логи в w
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.writers = append(o.writers, w)
	}
}

func New(opts ...Option) *ZapLogger {
	o := options{level: zap.DebugLevel}
	for _, opt := range opts {
		opt(&o)
	}

	logBuf := &bytes.Buffer{}

	config := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    colorLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	encoder := zapcore.NewConsoleEncoder(config)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(logBuf), o.level),
	}
	for _, w := range o.writers {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(w), o.level))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))

	return &ZapLogger{
		log:    logger,
		logBuf: logBuf,
	}
}

// Nop - логгер, который ничего не пишет
func Nop() *ZapLogger {
	return &ZapLogger{
		log:    zap.NewNop(),
		logBuf: &bytes.Buffer{},
	}
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("[2006-01-02 | 15:04:05]"))
}

func colorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(levelColors[level] + level.String() + ansiReset)
}

const ansiReset = "\033[0m"

var levelColors = map[zapcore.Level]string{
	zapcore.DebugLevel: "\033[36m",
	zapcore.InfoLevel:  "\033[32m",
	zapcore.WarnLevel:  "\033[33m",
	zapcore.ErrorLevel: "\033[31m",
	zapcore.FatalLevel: "\033[31m",
}

// ANSI код -> цвет CSS
var colorMap = map[string]string{
	"31": "red",
	"32": "green",
	"33": "yellow",
	"34": "blue",
	"36": "cyan",
}

var ansiRe = regexp.MustCompile(`\033\[(\d+)m`)

// ansiToHTML заменяет ANSI коды цветов на span'ы со стилями
func ansiToHTML(input string) string {
	var result strings.Builder
	var lastIndex int
	open := false

	result.WriteString("<pre>")

	for _, match := range ansiRe.FindAllStringSubmatchIndex(input, -1) {
		start, end := match[0], match[1]
		code := input[match[2]:match[3]]

		if start > lastIndex {
			result.WriteString(escapeHTML(input[lastIndex:start]))
		}
		lastIndex = end

		if open {
			result.WriteString("</span>")
			open = false
		}
		if color, ok := colorMap[code]; ok {
			result.WriteString(`<span style="color: ` + color + `;">`)
			open = true
		}
	}

	if lastIndex < len(input) {
		result.WriteString(escapeHTML(input[lastIndex:]))
	}
	if open {
		result.WriteString("</span>")
	}

	result.WriteString("</pre>")

	return result.String()
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

func (z *ZapLogger) UpdateLogs() {
	z.Logs = []string{ansiToHTML(z.logBuf.String())}
}

// Text - накопленные логи как есть, с ANSI кодами
func (z *ZapLogger) Text() string {
	return z.logBuf.String()
}

func (z *ZapLogger) ClearLogs() {
	z.logBuf.Reset()
	z.Logs = nil
}

func (z *ZapLogger) Sync() error {
	return z.log.Sync()
}

func (z *ZapLogger) Info(wrappedMsg string, fields ...zap.Field) {
	z.log.Info(wrappedMsg, fields...)
	z.UpdateLogs()
}

func (z *ZapLogger) Debug(wrappedMsg string, fields ...zap.Field) {
	z.log.Debug(wrappedMsg, fields...)
	z.UpdateLogs()
}

func (z *ZapLogger) Warn(wrappedMsg string, fields ...zap.Field) {
	z.log.Warn(wrappedMsg, fields...)
	z.UpdateLogs()
}

func (z *ZapLogger) Error(wrappedMsg string, fields ...zap.Field) {
	z.log.Error(wrappedMsg, fields...)
	z.UpdateLogs()
}

func (z *ZapLogger) Fatal(wrappedMsg string, fields ...zap.Field) {
	z.log.Fatal(wrappedMsg, fields...)
	z.UpdateLogs()
}
