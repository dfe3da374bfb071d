package steps

import "fmt"

// ErrorFeature collects testify assertion failures so a step can return them
type ErrorFeature struct {
	err error
}

func (f *ErrorFeature) Errorf(format string, args ...interface{}) {
	f.err = fmt.Errorf(format, args...)
}

func (f *ErrorFeature) StepError() error {
	return f.err
}

func (f *ErrorFeature) Reset() {
	f.err = nil
}
