package cli

import "fmt"

type flagError struct {
	flag  string
	value string
	err   error
}

func (e flagError) Error() string {
	return fmt.Sprintf("invalid --%s %q: %v", e.flag, e.value, e.err)
}

func (e flagError) Unwrap() error { return e.err }
