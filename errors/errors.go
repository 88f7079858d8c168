package errors

import "fmt"

var (
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrRosterUnavailable = fmt.Errorf("roster unavailable")
	ErrTransportFailure  = fmt.Errorf("transport failure")
	ErrEmptyContent      = fmt.Errorf("no content entries have been found")
	ErrGatewayOffline    = fmt.Errorf("gateway connection is not established")
)
