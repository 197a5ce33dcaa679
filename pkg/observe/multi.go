package observe

import "github.com/okranz/ratchet"

// Join composes event handlers into one. Handlers run in order on each
// committed transition; nil entries are skipped.
func Join[S, E comparable](handlers ...func(from, to S, trigger ratchet.Trigger[E])) func(from, to S, trigger ratchet.Trigger[E]) {
	return func(from, to S, trigger ratchet.Trigger[E]) {
		for _, h := range handlers {
			if h != nil {
				h(from, to, trigger)
			}
		}
	}
}

// JoinPlain is Join for event-less machines.
func JoinPlain[S comparable](handlers ...func(from, to S)) func(from, to S) {
	return func(from, to S) {
		for _, h := range handlers {
			if h != nil {
				h(from, to)
			}
		}
	}
}
