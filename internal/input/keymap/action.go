package keymap

// Handler is the callback half of an action.
type Handler[S any] interface {
	Invoke(state S)
}

// HandlerFunc adapts an ordinary function to a Handler.
type HandlerFunc[S any] func(state S)

// Invoke calls f(state).
func (f HandlerFunc[S]) Invoke(state S) {
	f(state)
}

// Action is a named, bindable operation on external state S.
// Actions are immutable once registered.
type Action[S any] struct {
	name    string
	handler Handler[S]
}

// Name returns the action's display name.
func (a *Action[S]) Name() string {
	return a.name
}

// Invoke runs the action against state.
func (a *Action[S]) Invoke(state S) {
	if a == nil || a.handler == nil {
		return
	}
	a.handler.Invoke(state)
}

// Registry holds every registered action in registration order.
//
// Names are not checked for uniqueness; when two actions share a name,
// name lookups resolve to the first one registered. Keep names unique.
type Registry[S any] struct {
	actions []*Action[S]
}

// NewRegistry creates an empty registry.
func NewRegistry[S any]() *Registry[S] {
	return &Registry[S]{
		actions: make([]*Action[S], 0),
	}
}

// Register appends a new action and returns it.
func (r *Registry[S]) Register(name string, h Handler[S]) *Action[S] {
	a := &Action[S]{name: name, handler: h}
	r.actions = append(r.actions, a)
	return a
}

// Find returns the first action registered under name, or nil.
func (r *Registry[S]) Find(name string) *Action[S] {
	for _, a := range r.actions {
		if a.name == name {
			return a
		}
	}
	return nil
}

// Len returns the number of registered actions.
func (r *Registry[S]) Len() int {
	return len(r.actions)
}

// At returns the i-th registered action.
func (r *Registry[S]) At(i int) *Action[S] {
	return r.actions[i]
}

// Names returns the action names in registration order.
func (r *Registry[S]) Names() []string {
	names := make([]string, len(r.actions))
	for i, a := range r.actions {
		names[i] = a.name
	}
	return names
}
