// Package logger is the central logging facility for the application. Entries
// are kept in a bounded ring and consecutive identical entries are collapsed
// into a single entry with a repeat count.
//
// Logging is gated by a Permission. Use Allow when the entry should always be
// logged. Types that decide at runtime whether logging should happen (for
// example, an execution context that is not in debug mode) implement the
// Permission interface.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Permission decides whether a call to Log() or Logf() results in an entry
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow is the Permission to use when logging should always happen
var Allow Permission = allow{}

// Entry is a single log entry
type Entry struct {
	Timestamp time.Time
	Tag       string
	Detail    string
	Repeated  int
}

func (e Entry) String() string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("%s: %s", e.Tag, e.Detail))
	if e.Repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.Repeated+1))
	}
	return s.String()
}

type logger struct {
	crit sync.Mutex

	maxEntries int
	entries    []Entry

	// if echo is not nil then new entries are also written to it
	echo io.Writer
}

const maxEntries = 256

var central = &logger{
	maxEntries: maxEntries,
}

func (l *logger) log(tag string, detail string) {
	l.crit.Lock()
	defer l.crit.Unlock()

	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", " ")

	var e *Entry
	if len(l.entries) > 0 {
		e = &l.entries[len(l.entries)-1]
	}

	if e != nil && e.Tag == tag && e.Detail == detail {
		e.Repeated++
		e.Timestamp = time.Now()
	} else {
		l.entries = append(l.entries, Entry{Timestamp: time.Now(), Tag: tag, Detail: detail})
		e = &l.entries[len(l.entries)-1]
		if len(l.entries) > l.maxEntries {
			l.entries = l.entries[len(l.entries)-l.maxEntries:]
			e = &l.entries[len(l.entries)-1]
		}
	}

	if l.echo != nil {
		io.WriteString(l.echo, e.String())
		io.WriteString(l.echo, "\n")
	}
}

func (l *logger) tail(output io.Writer, number int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	if number < 0 || number > len(l.entries) {
		number = len(l.entries)
	}
	for _, e := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, e.String())
		io.WriteString(output, "\n")
	}
}

// Log adds an entry to the central log if the Permission allows it
func Log(perm Permission, tag string, detail string) {
	if perm == Allow || (perm != nil && perm.AllowLogging()) {
		central.log(tag, detail)
	}
}

// Logf is the same as Log but with a format string and arguments
func Logf(perm Permission, tag string, detail string, args ...any) {
	if perm == Allow || (perm != nil && perm.AllowLogging()) {
		central.log(tag, fmt.Sprintf(detail, args...))
	}
}

// Clear removes all entries from the central log
func Clear() {
	central.crit.Lock()
	defer central.crit.Unlock()
	central.entries = central.entries[:0]
}

// Write all entries to the io.Writer
func Write(output io.Writer) {
	central.tail(output, -1)
}

// Tail writes the most recent entries to the io.Writer. A negative number
// writes every entry
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// Copy returns a copy of the current entries
func Copy() []Entry {
	central.crit.Lock()
	defer central.crit.Unlock()
	c := make([]Entry, len(central.entries))
	copy(c, central.entries)
	return c
}

// SetEcho sets the io.Writer to which new entries are echoed. A nil writer
// turns echoing off. If writeRecent is true then existing entries are written
// to the new writer immediately
func SetEcho(output io.Writer, writeRecent bool) {
	if output != nil && writeRecent {
		central.tail(output, -1)
	}
	central.crit.Lock()
	defer central.crit.Unlock()
	central.echo = output
}
