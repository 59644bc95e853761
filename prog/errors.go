package prog

import "errors"

var (
	// ErrInvalidInstructionSize is returned when the instruction payload
	// is not exactly InstructionLen bytes.
	ErrInvalidInstructionSize = errors.New("invalid instruction data size")

	// ErrUnauthorizedAccount is returned when the target account is not
	// owned by the executing program.
	ErrUnauthorizedAccount = errors.New("account is not owned by this program")

	// ErrMalformedState is returned when an account buffer cannot be
	// decoded as calculator state.
	ErrMalformedState = errors.New("malformed account state")

	// ErrSubtractionUnderflow is returned when a subtraction is requested
	// with the first operand smaller than the second.
	ErrSubtractionUnderflow = errors.New("subtraction underflow")

	// ErrUnsupportedOperation is returned for operation selectors outside
	// the supported set.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrMissingAccount is returned when the account list does not contain
	// the calculator account.
	ErrMissingAccount = errors.New("missing calculator account")
)
