package version_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/inputmaster/version"
	"github.com/jetsetilly/inputmaster/test"
)

func TestTitle(t *testing.T) {
	test.ExpectEquality(t, strings.HasPrefix(version.Title(), version.ApplicationName), true)
	ver, _ := version.Version()
	test.ExpectInequality(t, ver, "")
}
