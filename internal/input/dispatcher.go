package input

type handler struct {
	id uint32
	fn func(Event)
}

// Dispatcher is a Source that hosts feed with Dispatch.
type Dispatcher struct {
	nextID   uint32
	handlers []handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) Subscribe(fn func(Event)) func() {
	d.nextID++
	id := d.nextID
	d.handlers = append(d.handlers, handler{id: id, fn: fn})
	return func() { d.remove(id) }
}

func (d *Dispatcher) remove(id uint32) {
	for i, h := range d.handlers {
		if h.id == id {
			d.handlers = append(d.handlers[:i], d.handlers[i+1:]...)
			return
		}
	}
}

// Dispatch delivers ev to every handler registered at the time of the call.
func (d *Dispatcher) Dispatch(ev Event) {
	if len(d.handlers) == 0 {
		return
	}
	snapshot := make([]handler, len(d.handlers))
	copy(snapshot, d.handlers)
	for _, h := range snapshot {
		h.fn(ev)
	}
}

// Len reports the number of registered handlers.
func (d *Dispatcher) Len() int { return len(d.handlers) }
