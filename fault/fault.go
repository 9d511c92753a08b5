package fault

import (
	"fmt"

	"chimp/token"
)

type faultCode string

const (
	UnknownCode faultCode = "unknown"

	// StructuralMismatchCode marks a required token category absent at the
	// peek position of a multi-token construct.
	StructuralMismatchCode faultCode = "structural_mismatch"

	// NoParseRuleCode marks a token with no prefix parse rule starting an
	// expression position.
	NoParseRuleCode faultCode = "no_parse_rule"
)

// TokenMismatchMetadata carries the token categories involved in a
// structural mismatch.
type TokenMismatchMetadata struct {
	Expected token.TokenType
	Got      token.TokenType
}

// Fault is a coded error value. Both parse failure kinds are local and
// recoverable: the parser converts them into diagnostics at the statement
// loop boundary and continues.
type Fault struct {
	code     faultCode
	message  string
	metadata any
	original error
}

func New(code faultCode, message string) Fault {
	return Fault{
		code:    code,
		message: message,
	}
}

func (f Fault) WithMetadata(metadata any) Fault {
	e := f
	e.metadata = metadata
	return e
}

func (f Fault) WithOriginal(original error) Fault {
	e := f
	e.original = original
	return e
}

func (f Fault) Code() faultCode {
	return f.code
}

func (f Fault) Message() string {
	return f.message
}

func (f Fault) Metadata() any {
	return f.metadata
}

func (f Fault) Original() error {
	return f.original
}

func (f Fault) Error() string {
	if f.original != nil {
		return fmt.Sprintf("%s: %v", f.message, f.original)
	}
	return f.message
}
