// Package assert provides a small set of testify-style assertion
// helpers for table-driven tests: equality, error presence, and
// error-chain matching, each logging via t.Errorf on failure.
package assert

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func Equal(t testing.TB, expected, actual any, msgAndArgs ...any) bool {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		msg := fmt.Sprintf("Not equal: \nexpected: %#v\nactual  : %#v", expected, actual)
		logError(t, msg, msgAndArgs...)
		return false
	}
	return true
}

func NotEqual(t testing.TB, expected, actual any, msgAndArgs ...any) bool {
	t.Helper()
	if reflect.DeepEqual(expected, actual) {
		logError(t, fmt.Sprintf("Should not be equal: %#v", actual), msgAndArgs...)
		return false
	}
	return true
}

func NoError(t testing.TB, err error, msgAndArgs ...any) bool {
	t.Helper()
	if err != nil {
		msg := fmt.Sprintf("Received unexpected error:\n%+v", err)
		logError(t, msg, msgAndArgs...)
		return false
	}
	return true
}

func Error(t testing.TB, err error, msgAndArgs ...any) bool {
	t.Helper()
	if err == nil {
		msg := "An error is expected but got nil."
		logError(t, msg, msgAndArgs...)
		return false
	}
	return true
}

func ErrorIs(t testing.TB, err, target error, msgAndArgs ...any) bool {
	t.Helper()
	if !errors.Is(err, target) {
		msg := fmt.Sprintf("Error expected to be: %v\nbut was: %v", target, err)
		logError(t, msg, msgAndArgs...)
		return false
	}
	return true
}

func logError(t testing.TB, msg string, msgAndArgs ...any) {
	t.Helper()
	if len(msgAndArgs) == 0 {
		t.Error(msg)
		return
	}

	var userMsg string
	if len(msgAndArgs) == 1 {
		userMsg = fmt.Sprint(msgAndArgs[0])
	} else {
		if format, ok := msgAndArgs[0].(string); ok {
			userMsg = fmt.Sprintf(format, msgAndArgs[1:]...)
		} else {
			userMsg = fmt.Sprint(msgAndArgs...)
		}
	}

	t.Errorf("%s\n%s", msg, userMsg)
}
