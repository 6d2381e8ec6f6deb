package store

import (
	"context"
	"time"

	"reststate/internal/state"
)

// AsyncAction wraps one HTTP call as a dispatchable operation. Executing it
// emits the REQUEST action, runs the call, then emits SUCCESS with the
// call's payload or FAILURE with its error message. Then, if set, names a
// follow-up action executed only after a success (the list refresh that
// follows every mutation).
type AsyncAction struct {
	Type state.ActionType
	Call func(ctx context.Context) (any, error)
	Then func() *AsyncAction
}

// Execute runs the async action through the dispatch pipeline. The REQUEST
// action is always observed strictly before its resolution, and a chained
// follow-up starts only after the triggering success, so a mutating
// operation with a list refresh produces exactly four actions.
func (s *Store) Execute(ctx context.Context, aa AsyncAction) (state.EntityState, error) {
	if _, err := s.Dispatch(state.Action{Type: aa.Type.Request()}); err != nil {
		return state.EntityState{}, err
	}

	start := time.Now()
	payload, callErr := aa.Call(ctx)
	s.metrics.AddOperationLatency(string(aa.Type), time.Since(start))

	if callErr != nil {
		s.metrics.IncrementErrors()
		next, err := s.Dispatch(state.Action{Type: aa.Type.Failure(), Message: callErr.Error()})
		if err != nil {
			return next, err
		}
		return next, callErr
	}

	next, err := s.Dispatch(state.Action{Type: aa.Type.Success(), Payload: payload})
	if err != nil {
		return next, err
	}

	if aa.Then != nil {
		if followUp := aa.Then(); followUp != nil {
			return s.Execute(ctx, *followUp)
		}
	}
	return next, nil
}
