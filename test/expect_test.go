package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/inputmaster/test"
)

func TestExpectations(t *testing.T) {
	test.ExpectEquality(t, 10, 10)
	test.ExpectInequality(t, 10, 11)
	test.ExpectApproximate(t, 0.1+0.2, 0.3, 1e-9)
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, nil)
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test error"))
	test.DemandEquality(t, "abc", "abc")
	test.DemandSuccess(t, true)
}
