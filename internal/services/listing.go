package services

// Reasons carried by a failed ListResult
const (
	ReasonEmpty       = "empty"
	ReasonUnavailable = "unavailable"
)

// ListResult is the outcome of a listing read. Callers decide what to show
// when OK is false; the listings that have demonstration data substitute it.
type ListResult[T any] struct {
	OK     bool
	Rows   []T
	Reason string
	Err    error
}

func listOK[T any](rows []T) ListResult[T] {
	if len(rows) == 0 {
		return ListResult[T]{OK: false, Reason: ReasonEmpty}
	}
	return ListResult[T]{OK: true, Rows: rows}
}

func listFailed[T any](err error) ListResult[T] {
	return ListResult[T]{OK: false, Reason: ReasonUnavailable, Err: err}
}
