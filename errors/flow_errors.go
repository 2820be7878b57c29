package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/oruchain/sendtx/jsonx"
)

// Kind classifies every failure the transfer flow can produce. Each kind
// maps to one process exit code so callers can branch without parsing text.
type Kind string

const (
	// KindUsage covers malformed invocations: wrong argument count,
	// unknown flags, conflicting credential flags.
	KindUsage Kind = "usage"

	// KindValidation covers well-formed invocations carrying bad values:
	// non-numeric amounts, unknown denominations, malformed addresses.
	KindValidation Kind = "validation"

	// KindCredential covers failures to load or decode the wallet
	// credential before any network activity.
	KindCredential Kind = "credential"

	// KindConnectivity covers failures to reach or handshake with the
	// chain gateway.
	KindConnectivity Kind = "connectivity"

	// KindQuery covers failed read-only lookups after a connection exists.
	KindQuery Kind = "query"

	// KindBroadcast covers transport-level failures while submitting the
	// signed transaction.
	KindBroadcast Kind = "broadcast"

	// KindLogicalFailure covers transactions the chain accepted for
	// processing but rejected, reported with a non-zero receipt code.
	KindLogicalFailure Kind = "logical_failure"

	// KindInternal is the fallback for errors that escaped classification.
	KindInternal Kind = "internal"
)

// FlowError is the standardized error carried through the transfer flow.
type FlowError struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *FlowError) Error() string {
	view := struct {
		Kind    Kind   `json:"kind"`
		Message string `json:"message"`
		Cause   string `json:"cause,omitempty"`
	}{Kind: e.Kind, Message: e.Message}
	if e.Err != nil {
		view.Cause = e.Err.Error()
	}
	out, _ := jsonx.Marshal(view)
	return string(out)
}

func (e *FlowError) Unwrap() error {
	return e.Err
}

// Error message constants - user-friendly and concise
const (
	ErrMsgInvalidAmount      = "Amount must be a positive whole number"
	ErrMsgUnknownDenom       = "Token denomination is not supported"
	ErrMsgInvalidAddress     = "Destination address is invalid"
	ErrMsgEmptyCredential    = "Wallet credential is empty"
	ErrMsgBadMnemonic        = "Mnemonic phrase failed checksum validation"
	ErrMsgWalletSetup        = "Please follow the steps outlined in the readme.md file"
	ErrMsgGatewayUnreachable = "Chain gateway is unreachable"
	ErrMsgChainMismatch      = "Gateway serves a different chain than requested"
	ErrMsgBalanceQuery       = "Balance lookup failed"
	ErrMsgAccountQuery       = "Account lookup failed"
	ErrMsgBroadcast          = "Transaction broadcast failed"
	ErrMsgRejected           = "Transaction was rejected by the chain"
	ErrMsgPendingTransfer    = "A matching transfer is already pending, re-run with --ignore-pending to resend"
)

// NewError creates a new FlowError and returns it as error interface
func NewError(kind Kind, message string) error {
	return &FlowError{
		Kind:    kind,
		Message: message,
	}
}

// Errorf creates a new FlowError with a formatted message
func Errorf(kind Kind, format string, args ...interface{}) error {
	return &FlowError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap attaches a kind and message to an underlying cause.
func Wrap(kind Kind, message string, err error) error {
	return &FlowError{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// KindOf reports the kind of err, KindInternal for unclassified errors
// and the empty Kind for nil.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var fe *FlowError
	if stderrors.As(err, &fe) {
		return fe.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Exit codes reported by the CLI, one per failure kind.
const (
	ExitSuccess        = 0
	ExitInternal       = 1
	ExitUsage          = 2
	ExitValidation     = 3
	ExitCredential     = 4
	ExitConnectivity   = 5
	ExitQuery          = 6
	ExitBroadcast      = 7
	ExitLogicalFailure = 8
)

// ExitCode maps err to the process exit code for its kind.
func ExitCode(err error) int {
	switch KindOf(err) {
	case "":
		return ExitSuccess
	case KindUsage:
		return ExitUsage
	case KindValidation:
		return ExitValidation
	case KindCredential:
		return ExitCredential
	case KindConnectivity:
		return ExitConnectivity
	case KindQuery:
		return ExitQuery
	case KindBroadcast:
		return ExitBroadcast
	case KindLogicalFailure:
		return ExitLogicalFailure
	default:
		return ExitInternal
	}
}
