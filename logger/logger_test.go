package logger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/inputmaster/logger"
	"github.com/jetsetilly/inputmaster/test"
)

type deny struct{}

func (deny) AllowLogging() bool {
	return false
}

func TestLogger(t *testing.T) {
	logger.Clear()

	var b strings.Builder
	logger.Tail(&b, -1)
	test.ExpectEquality(t, b.String(), "")

	logger.Log(logger.Allow, "test", "this is a test")
	b.Reset()
	logger.Tail(&b, -1)
	test.ExpectEquality(t, b.String(), "test: this is a test\n")

	// repeated entries are collapsed
	logger.Log(logger.Allow, "test", "this is a test")
	b.Reset()
	logger.Tail(&b, -1)
	test.ExpectEquality(t, b.String(), "test: this is a test (repeat x2)\n")

	logger.Logf(logger.Allow, "test", "value %d", 10)
	b.Reset()
	logger.Tail(&b, 1)
	test.ExpectEquality(t, b.String(), "test: value 10\n")

	// permission denied
	logger.Log(deny{}, "test", "should not appear")
	test.ExpectEquality(t, len(logger.Copy()), 2)

	logger.Clear()
	test.ExpectEquality(t, len(logger.Copy()), 0)
}

func TestLoggerEcho(t *testing.T) {
	logger.Clear()
	defer logger.SetEcho(nil, false)

	var b strings.Builder
	logger.SetEcho(&b, false)
	logger.Log(logger.Allow, "echo", "hello")
	test.ExpectEquality(t, b.String(), "echo: hello\n")
}

func TestLoggerBounded(t *testing.T) {
	logger.Clear()
	for i := range 300 {
		logger.Logf(logger.Allow, "bound", "%d", i)
	}
	e := logger.Copy()
	test.ExpectEquality(t, len(e), 256)
	test.ExpectEquality(t, e[len(e)-1].Detail, "299")
	logger.Clear()
}
