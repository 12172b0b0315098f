// Package statemachine provides a small finite-state-machine implementation
// built around two minimal interfaces, State and Event.
//
// Transitions are registered with the functional options pattern and may
// carry Guards, which veto a transition at runtime, and Actions, which run
// side effects before the state change and abort it on error. Ready-made
// StringState and StringEvent types cover the common case of string-named
// states.
//
//	const (
//	    Idle    = statemachine.StringState("idle")
//	    Running = statemachine.StringState("running")
//	    Start   = statemachine.StringEvent("start")
//	)
//
//	m := statemachine.MustNew(Idle,
//	    statemachine.WithTransition(Idle, Running, Start),
//	)
//	_ = m.Fire(ctx, Start, nil)
//
// Typed errors distinguish "no transition defined" (NoTransitionError) from
// "all transitions rejected by guards" (RejectedError); use IsNoTransition
// and IsRejected to branch on them.
package statemachine
