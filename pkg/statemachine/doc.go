// Package statemachine implements a small, thread-safe finite state machine.
//
// States and events are identified by name. Transitions are registered at
// construction time and may carry guards (all must pass) and actions (run in
// order before the state changes; an action error aborts the transition).
//
//	const (
//		Idle  = statemachine.StringState("idle")
//		Ready = statemachine.StringState("ready")
//
//		Generated = statemachine.StringEvent("generated")
//	)
//
//	sm := statemachine.MustNew(Idle,
//		statemachine.WithTransition(Idle, Ready, Generated),
//		statemachine.WithTransition(Ready, Ready, Generated),
//	)
//	_ = sm.Fire(ctx, Generated, nil)
//
// Self-transitions are allowed and run their actions like any other.
package statemachine
