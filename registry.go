package eulerbot

// Responder is implemented by anything that reacts to message events. Responders are
// registered for a Category and get every message event of that category, in order of registration
type Responder interface {
	// Name identifies the responder in logs and metrics
	Name() string

	// Update is called for every message event of the category the responder is registered for
	Update(e Event) (err error)
}

// ResponderFunc adapts a function to the Responder interface
type ResponderFunc func(e Event) (err error)

// Name returns a generic name for function responders
func (f ResponderFunc) Name() string {
	return "func"
}

// Update calls f(e)
func (f ResponderFunc) Update(e Event) (err error) {
	return f(e)
}

// Registry holds the responders registered by category. It's built once at startup
// and only ever appended to
type Registry struct {
	responders map[Category][]Responder
}

// NewRegistry returns a new empty Registry
func NewRegistry() (r *Registry) {
	r = new(Registry)
	r.responders = make(map[Category][]Responder)

	return r
}

// Register appends a responder to the ones registered for category c
func (r *Registry) Register(c Category, responder Responder) {
	r.responders[c] = append(r.responders[c], responder)
}

// Get returns the responders registered for category c in registration order. An empty
// slice is returned if nothing is registered for c
func (r *Registry) Get(c Category) (responders []Responder) {
	registered := r.responders[c]
	responders = make([]Responder, len(registered))
	copy(responders, registered)

	return responders
}

// Len returns the total number of registrations over all categories
func (r *Registry) Len() (count int) {
	for _, responders := range r.responders {
		count = count + len(responders)
	}

	return count
}
