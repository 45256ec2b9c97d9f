package dom

type EventType string

const Click EventType = "click"

type Event struct {
	Type   EventType
	Target *Node
}

type Listener func(Event)

// ListenerID identifies a registration so it can be removed later.
type ListenerID uint64

type registration struct {
	id ListenerID
	fn Listener
}

// Document is the root of a tree plus the document-level listener registry.
// It is not safe for concurrent use; touch it only from its Loop.
type Document struct {
	Root *Node
	Body *Node

	nextID    ListenerID
	listeners map[EventType][]registration
}

func NewDocument() *Document {
	root := NewNode("html")
	body := root.AppendChild(NewNode("body"))
	return &Document{
		Root:      root,
		Body:      body,
		listeners: make(map[EventType][]registration),
	}
}

func (d *Document) AddEventListener(eventType EventType, fn Listener) ListenerID {
	d.nextID++
	d.listeners[eventType] = append(d.listeners[eventType], registration{id: d.nextID, fn: fn})
	return d.nextID
}

// RemoveEventListener drops the registration. Unknown ids are ignored.
func (d *Document) RemoveEventListener(eventType EventType, id ListenerID) {
	regs := d.listeners[eventType]
	for i, reg := range regs {
		if reg.id == id {
			d.listeners[eventType] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

func (d *Document) ListenerCount(eventType EventType) int {
	return len(d.listeners[eventType])
}

// Dispatch calls every listener registered for ev.Type in registration order.
// Listeners removed by an earlier listener during the same dispatch are
// skipped; listeners added during dispatch wait for the next event.
func (d *Document) Dispatch(ev Event) {
	snapshot := append([]registration(nil), d.listeners[ev.Type]...)
	for _, reg := range snapshot {
		if !d.registered(ev.Type, reg.id) {
			continue
		}
		reg.fn(ev)
	}
}

func (d *Document) DispatchClick(target *Node) {
	d.Dispatch(Event{Type: Click, Target: target})
}

func (d *Document) registered(eventType EventType, id ListenerID) bool {
	for _, reg := range d.listeners[eventType] {
		if reg.id == id {
			return true
		}
	}
	return false
}
