package errutil

import (
	"os"

	"github.com/sirupsen/logrus"
)

// exit is replaced in tests.
var exit = os.Exit

// Check the supplied error, log and exit if non-nil.
func Check(err error) {
	if err != nil {
		logrus.Debugf("%+v", err)
		logrus.Fatalf("%v", err)
	}
}

// CheckWithContext checks the error and exit if it is not nil. Logs additional context information.
func CheckWithContext(err error, context string) {
	if err != nil {
		logrus.Debugf("%s: %+v", context, err)
		logrus.Fatalf("%s: %v", context, err)
	}
}

// CheckOrSkip exits the process successfully and without output when skippable
// reports true for err. Any other non-nil error is fatal like in Check.
func CheckOrSkip(err error, skippable func(error) bool) {
	if err == nil {
		return
	}
	if skippable(err) {
		logrus.Debugf("nothing to do: %v", err)
		exit(0)
		return
	}
	Check(err)
}
