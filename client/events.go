package client

// Cross-widget signals: each signal is a typed payload on an explicit
// observer. A nil *Events drops every signal, so optional wiring degrades
// silently.

// SelectionChanged fires when the bulk-selection set changes.
type SelectionChanged struct {
	ShiftIDs []string
}

// StateReloaded fires after a page state replaces the AppState snapshot.
type StateReloaded struct {
	View string
}

// ToastRequested asks the presenting layer to show a transient toast.
type ToastRequested struct {
	Toast Toast
}

// Events is a small observer bus. Subscribers run synchronously, in
// subscription order, on the publishing goroutine.
type Events struct {
	selectionChanged []func(SelectionChanged)
	stateReloaded    []func(StateReloaded)
	toastRequested   []func(ToastRequested)
}

// NewEvents creates an empty bus.
func NewEvents() *Events { return &Events{} }

// OnSelectionChanged subscribes to selection changes.
func (e *Events) OnSelectionChanged(fn func(SelectionChanged)) {
	if e == nil || fn == nil {
		return
	}
	e.selectionChanged = append(e.selectionChanged, fn)
}

// OnStateReloaded subscribes to snapshot reloads.
func (e *Events) OnStateReloaded(fn func(StateReloaded)) {
	if e == nil || fn == nil {
		return
	}
	e.stateReloaded = append(e.stateReloaded, fn)
}

// OnToastRequested subscribes to toast requests.
func (e *Events) OnToastRequested(fn func(ToastRequested)) {
	if e == nil || fn == nil {
		return
	}
	e.toastRequested = append(e.toastRequested, fn)
}

// EmitSelectionChanged publishes a selection change.
func (e *Events) EmitSelectionChanged(ev SelectionChanged) {
	if e == nil {
		return
	}
	for _, fn := range e.selectionChanged {
		fn(ev)
	}
}

// EmitStateReloaded publishes a snapshot reload.
func (e *Events) EmitStateReloaded(ev StateReloaded) {
	if e == nil {
		return
	}
	for _, fn := range e.stateReloaded {
		fn(ev)
	}
}

// EmitToastRequested publishes a toast request.
func (e *Events) EmitToastRequested(ev ToastRequested) {
	if e == nil {
		return
	}
	for _, fn := range e.toastRequested {
		fn(ev)
	}
}
