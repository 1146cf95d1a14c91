package errs

import (
	"github.com/pkg/errors"
	logging "github.com/sirupsen/logrus"
)

// Handle logs err with its stack trace when there is one. With stop set it panics after logging.
func Handle(err error, stop bool) {
	if err == nil {
		return
	}

	var checkErr stackTracer
	if !errors.As(err, &checkErr) {
		if stop {
			logging.Panic(err)
		} else {
			logging.Error(err)
		}
		return
	}

	st := checkErr.StackTrace()
	if stop {
		logging.Panicf("%v\n%+v", err, st)
	} else {
		logging.Errorf("%v\n%+v", err, st)
	}
}
