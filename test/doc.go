// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions are the most commonly
// used. The ExpectApproximate() function is useful for floating point values
// that are the result of an accumulation.
//
// The ExpectSuccess() and ExpectFailure() functions test for "success" or
// "failure" values. The meaning of those values depends on the type. For a
// boolean, success is true. For an error type, success is nil.
//
// The Demand*() functions are the same as their Expect*() counterparts
// except that a failure ends the test immediately.
package test
