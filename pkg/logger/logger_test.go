package logger

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/sirupsen/logrus"
)

func TestInitialize(t *testing.T) {
	Convey("When logger is initialized", t, func() {
		buffer := &bytes.Buffer{}
		log := initialize(buffer, "search_compare", logrus.InfoLevel)
		defer logrus.SetLevel(logrus.ErrorLevel)

		Convey("Global level should be set", func() {
			So(logrus.GetLevel(), ShouldEqual, logrus.InfoLevel)
		})

		Convey("Entry should carry app name and run ID", func() {
			So(log.Data["app"], ShouldEqual, "search_compare")
			So(log.Data["run"], ShouldHaveLength, 36)
		})

		Convey("Start should be logged with fields", func() {
			So(buffer.String(), ShouldContainSubstring, "msg=Starting")
			So(buffer.String(), ShouldContainSubstring, "app=search_compare")
		})

		Convey("Every run should get other ID", func() {
			other := initialize(buffer, "search_compare", logrus.InfoLevel)
			So(other.Data["run"], ShouldNotEqual, log.Data["run"])
		})
	})
}
