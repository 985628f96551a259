package domain

// Error is a recoverable ledger error reported to the caller. Code is a
// stable machine-readable identifier; Message is human readable. Callers
// match errors with errors.Is against the sentinel values below, which
// survive wrapping with fmt.Errorf("%w: ...").
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewError creates a new ledger error.
func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

var (
	ErrInvalidInput      = NewError("INVALID_INPUT", "invalid input")
	ErrNotFound          = NewError("NOT_FOUND", "campaign not found")
	ErrInvalidAmount     = NewError("INVALID_AMOUNT", "amount must be positive")
	ErrCampaignNotActive = NewError("CAMPAIGN_NOT_ACTIVE", "campaign is not active")
	ErrDeadlinePassed    = NewError("DEADLINE_PASSED", "campaign deadline has passed")
	ErrNotOwner          = NewError("NOT_OWNER", "caller is not the campaign owner")
	ErrAlreadyTerminal   = NewError("ALREADY_TERMINAL", "campaign is already closed")
	ErrNotSuccessful     = NewError("NOT_SUCCESSFUL", "campaign has not reached its goal")
	ErrAlreadyWithdrawn  = NewError("ALREADY_WITHDRAWN", "campaign funds were already withdrawn")
	ErrNotRefundEligible = NewError("NOT_REFUND_ELIGIBLE", "campaign is not eligible for refunds")
	ErrNothingToRefund   = NewError("NOTHING_TO_REFUND", "nothing to refund")
)
