package util

import (
	"errors"
	"reflect"
	"testing"
)

func AssertExpected(t *testing.T, expected, got interface{}) bool {
	t.Helper()
	if !reflect.DeepEqual(expected, got) {
		t.Errorf("error, expected: %v, got: %v\n", expected, got)
		return false
	}
	return true
}

func AssertLen(t *testing.T, expected, got interface{}) bool {
	t.Helper()
	return AssertExpected(t, expected, got)
}

func AssertEqual(t *testing.T, expected, got interface{}) bool {
	t.Helper()
	return AssertExpected(t, expected, got)
}

func AssertTrue(t *testing.T, got interface{}) bool {
	t.Helper()
	return AssertExpected(t, true, got)
}

func AssertFalse(t *testing.T, got interface{}) bool {
	t.Helper()
	return AssertExpected(t, false, got)
}

func AssertNoError(t *testing.T, got error) bool {
	t.Helper()
	if got != nil {
		t.Errorf("error, expected no error, got: %v\n", got)
		return false
	}
	return true
}

// AssertErrorIs checks got matches target anywhere in its chain
func AssertErrorIs(t *testing.T, target, got error) bool {
	t.Helper()
	if !errors.Is(got, target) {
		t.Errorf("error, expected: %v, got: %v\n", target, got)
		return false
	}
	return true
}

// AssertPanics checks fn panics with a value equal to want
func AssertPanics(t *testing.T, want interface{}, fn func()) (ok bool) {
	t.Helper()
	defer func() {
		r := recover()
		ok = AssertExpected(t, want, r)
	}()
	fn()
	return false
}
