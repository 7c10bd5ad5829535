package jdate

import "fmt"

var (
	ErrInvalidArgument = fmt.Errorf("invalid argument") //Returned for wrong typed, malformed or out of range input. Prior state is kept.
	ErrPrecondition    = fmt.Errorf("no instant set")   //Raised when a JDate that was never given an instant is read
)

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
