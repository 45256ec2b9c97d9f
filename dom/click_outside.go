package dom

// BindingState tracks a click-outside binding through its lifetime.
type BindingState int

const (
	PendingAttach BindingState = iota
	Active
	Detached
)

func (s BindingState) String() string {
	switch s {
	case PendingAttach:
		return "pending-attach"
	case Active:
		return "active"
	default:
		return "detached"
	}
}

// Binding calls its callback for every document click that lands outside its
// node. Create it with ClickOutside and release it with Destroy.
type Binding struct {
	loop     *Loop
	doc      *Document
	node     *Node
	callback func()

	attachTimer *Timer
	listener    ListenerID
	state       BindingState
}

// ClickOutside binds callback to clicks outside node. The document listener
// is installed on the next loop tick, so the click that caused node to mount
// is never reported. Call it from a loop task.
func ClickOutside(loop *Loop, doc *Document, node *Node, callback func()) *Binding {
	b := &Binding{
		loop:     loop,
		doc:      doc,
		node:     node,
		callback: callback,
		state:    PendingAttach,
	}
	b.attachTimer = loop.SetTimeout(0, b.attach)
	return b
}

func (b *Binding) State() BindingState {
	return b.state
}

func (b *Binding) attach() {
	if b.state != PendingAttach {
		return
	}
	b.listener = b.doc.AddEventListener(Click, b.handleClick)
	b.state = Active
}

func (b *Binding) handleClick(ev Event) {
	if !b.node.Contains(ev.Target) {
		b.callback()
	}
}

// Destroy cancels a pending attach or removes the live listener. It is safe
// to call in any state and more than once. Call it from a loop task.
func (b *Binding) Destroy() {
	switch b.state {
	case PendingAttach:
		b.loop.ClearTimeout(b.attachTimer)
	case Active:
		b.doc.RemoveEventListener(Click, b.listener)
	case Detached:
		return
	}
	b.state = Detached
}
