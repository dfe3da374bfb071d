package apierrors

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestExitCode(t *testing.T) {
	Convey("Given errors from each failure category", t, func() {
		Convey("A nil error maps to success", func() {
			So(ExitCode(nil), ShouldEqual, ExitOK)
		})

		Convey("Unavailable metadata and data map to the unavailable code", func() {
			So(ExitCode(pkgerrors.Wrap(ErrMetadataUnavailable, "status 500")), ShouldEqual, ExitUnavailable)
			So(ExitCode(fmt.Errorf("status 503: %w", ErrDataUnavailable)), ShouldEqual, ExitUnavailable)
		})

		Convey("Decode failures map to the decode code", func() {
			So(ExitCode(pkgerrors.Wrap(ErrDecode, "unexpected end of JSON input")), ShouldEqual, ExitDecode)
		})

		Convey("Lookup failures map to the lookup code", func() {
			So(ExitCode(pkgerrors.Wrapf(ErrRegionNotFound, "code %q", "99")), ShouldEqual, ExitLookup)
			So(ExitCode(ErrRegionDimension), ShouldEqual, ExitLookup)
		})

		Convey("Parse failures map to the parse code", func() {
			So(ExitCode(pkgerrors.Wrap(ErrInvalidPercentage, "abc")), ShouldEqual, ExitParse)
		})

		Convey("Anything else is a generic failure", func() {
			So(ExitCode(errors.New("boom")), ShouldEqual, ExitFailure)
		})
	})
}

func TestMessage(t *testing.T) {
	Convey("Unavailable services report only the category", t, func() {
		So(Message(pkgerrors.Wrap(ErrMetadataUnavailable, "received status 502")), ShouldEqual, "could not get metadata")
		So(Message(pkgerrors.Wrap(ErrDataUnavailable, "received status 502")), ShouldEqual, "could not get data")
	})

	Convey("Other errors keep their wrapped context", t, func() {
		err := pkgerrors.Wrapf(ErrRegionNotFound, "row 3 region %q", "0999")
		So(Message(err), ShouldEqual, `row 3 region "0999": region code not found in metadata`)
	})
}
