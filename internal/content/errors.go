package content

import "fmt"

// StartupDataError reports that the static content store could not be built.
// It is fatal: hosts must abort initialization rather than render partial data.
type StartupDataError struct {
	Source  string
	Message string
	Cause   error
}

func (e *StartupDataError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("startup data error: %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("startup data error: %s: %s", e.Source, e.Message)
}

func (e *StartupDataError) Unwrap() error {
	return e.Cause
}
