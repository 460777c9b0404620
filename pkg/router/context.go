package router

import "context"

type requestStateKey struct{}

// requestState carries the handler outcome to the closers. It is stored as a
// pointer so closers registered before the handler still observe it.
type requestState struct {
	response any
	err      error
}

func withRequestState(ctx context.Context) context.Context {
	return context.WithValue(ctx, requestStateKey{}, &requestState{})
}

func getRequestState(ctx context.Context) *requestState {
	state, ok := ctx.Value(requestStateKey{}).(*requestState)
	if !ok {
		return &requestState{}
	}
	return state
}

func setResponse(ctx context.Context, resp any) {
	getRequestState(ctx).response = resp
}

func setError(ctx context.Context, err error) {
	getRequestState(ctx).err = err
}

// Response returns the successful handler response, or nil. It only returns a
// non-nil value inside closers.
func Response(ctx context.Context) any {
	return getRequestState(ctx).response
}

// Error returns the error the handler or a middleware failed with, or nil.
func Error(ctx context.Context) error {
	return getRequestState(ctx).err
}
