package payment

// Kind tags the outcome of a payment attempt. Callers dispatch on the tag
// instead of passing positional success/pending/error callbacks.
type Kind string

const (
	KindSuccess Kind = "success"
	KindPending Kind = "pending"
	KindError   Kind = "error"
)

type Result struct {
	Kind          Kind
	OrderID       string
	TransactionID string
	RawStatus     string
}

// MapTransactionStatus converts a gateway transaction_status into a Result
// kind. Anything unrecognized is treated as an error.
func MapTransactionStatus(status string) Kind {
	switch status {
	case "settlement", "capture":
		return KindSuccess
	case "pending":
		return KindPending
	default:
		return KindError
	}
}
