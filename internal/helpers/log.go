package helpers

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/rs/zerolog"
)

type Logger interface {
	Println(v ...any)
	Printf(format string, v ...any)
	Print(v ...any)
}

type _defaultLogger struct {
}

func (l *_defaultLogger) Println(v ...any) {
	log.Println(v...)
}
func (l *_defaultLogger) Printf(format string, v ...any) {
	log.Printf(format, v...)
}
func (l *_defaultLogger) Print(v ...any) {
	log.Print(v...)
}

var DefaultLogger = _defaultLogger{}

type _silentLogger struct {
}

func (l *_silentLogger) Println(v ...any) {
}
func (l *_silentLogger) Printf(format string, v ...any) {
}
func (l *_silentLogger) Print(v ...any) {
}

var SilentLogger = _silentLogger{}

type _funcLogger struct {
	f func(string)
}

// FuncLogger forwards every formatted line to f.
func FuncLogger(f func(string)) Logger {
	return &_funcLogger{f}
}

func (l *_funcLogger) Println(v ...any) {
	l.f(fmt.Sprintln(v...))
}
func (l *_funcLogger) Printf(format string, v ...any) {
	l.f(fmt.Sprintf(format, v...))
}
func (l *_funcLogger) Print(v ...any) {
	l.f(fmt.Sprint(v...))
}

// ZerologLogger adapts a zerolog.Logger to Logger. Lines are logged at info
// level with the component attached.
type ZerologLogger struct {
	Logger zerolog.Logger
}

var _ Logger = (*ZerologLogger)(nil)

func NewZerologLogger(w io.Writer, level string, component string) (*ZerologLogger, Error) {
	lvl := zerolog.InfoLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return nil, Wrap(err)
		}
		lvl = parsed
	}

	logger := zerolog.New(w).Level(lvl).With().
		Timestamp().
		Str("component", component).
		Logger()
	return &ZerologLogger{logger}, NilError
}

func (l *ZerologLogger) With(component string) *ZerologLogger {
	return &ZerologLogger{l.Logger.With().Str("component", component).Logger()}
}

func (l *ZerologLogger) Println(v ...any) {
	l.Logger.Info().Msg(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}
func (l *ZerologLogger) Printf(format string, v ...any) {
	l.Logger.Info().Msgf(format, v...)
}
func (l *ZerologLogger) Print(v ...any) {
	l.Logger.Info().Msg(fmt.Sprint(v...))
}
