package errutil

import (
	"bytes"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCheckOrSkip(t *testing.T) {
	Convey("When checking errors that may be skipped", t, func() {
		exitCode := -1
		exit = func(code int) { exitCode = code }
		defer func() { exit = os.Exit }()

		fatalCode := -1
		output := &bytes.Buffer{}
		logger := logrus.StandardLogger()
		logger.ExitFunc = func(code int) { fatalCode = code }
		logger.SetOutput(output)
		defer func() {
			logger.ExitFunc = nil
			logger.SetOutput(os.Stderr)
		}()

		skipped := errors.New("skipped")
		isSkipped := func(err error) bool { return errors.Cause(err) == skipped }

		Convey("Nil error should not exit", func() {
			CheckOrSkip(nil, isSkipped)
			So(exitCode, ShouldEqual, -1)
			So(fatalCode, ShouldEqual, -1)
		})

		Convey("Skippable error should exit with success", func() {
			CheckOrSkip(errors.Wrap(skipped, "context"), isSkipped)
			So(exitCode, ShouldEqual, 0)
			So(fatalCode, ShouldEqual, -1)
			So(output.String(), ShouldNotContainSubstring, "level=fatal")
		})

		Convey("Other error should be fatal", func() {
			CheckOrSkip(errors.New("could not parse"), isSkipped)
			So(exitCode, ShouldEqual, -1)
			So(fatalCode, ShouldEqual, 1)
			So(output.String(), ShouldContainSubstring, "could not parse")
		})
	})
}

func TestCheckWithContext(t *testing.T) {
	Convey("When checking errors with context", t, func() {
		fatalCode := -1
		output := &bytes.Buffer{}
		logger := logrus.StandardLogger()
		logger.ExitFunc = func(code int) { fatalCode = code }
		logger.SetOutput(output)
		defer func() {
			logger.ExitFunc = nil
			logger.SetOutput(os.Stderr)
		}()

		Convey("Nil error should pass", func() {
			CheckWithContext(nil, "cannot parse configuration")
			So(fatalCode, ShouldEqual, -1)
		})

		Convey("Error should be fatal and logged with context", func() {
			CheckWithContext(errors.New("unknown flag"), "cannot parse configuration")
			So(fatalCode, ShouldEqual, 1)
			So(output.String(), ShouldContainSubstring, "cannot parse configuration: unknown flag")
		})
	})
}
