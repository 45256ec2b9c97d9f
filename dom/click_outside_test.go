package dom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	loop    *Loop
	doc     *Document
	menu    *Node
	inside  *Node
	outside *Node
	calls   int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{loop: newStartedLoop(t), doc: NewDocument()}
	f.menu = f.doc.Body.AppendChild(NewNode("menu"))
	f.inside = f.menu.AppendChild(NewNode("button"))
	f.outside = f.doc.Body.AppendChild(NewNode("main"))
	return f
}

func (f *fixture) bind() *Binding {
	var b *Binding
	f.loop.Do(func() {
		b = ClickOutside(f.loop, f.doc, f.menu, func() { f.calls++ })
	})
	return b
}

func (f *fixture) click(target *Node) {
	f.loop.Do(func() { f.doc.DispatchClick(target) })
}

func (f *fixture) listeners() int {
	var n int
	f.loop.Do(func() { n = f.doc.ListenerCount(Click) })
	return n
}

func TestClickOutsideInvokesAfterAttachTick(t *testing.T) {
	f := newFixture(t)
	b := f.bind()

	f.click(f.outside)
	require.Equal(t, 1, f.calls)
	require.Equal(t, Active, b.State())

	f.click(f.outside)
	f.click(f.doc.Body)
	require.Equal(t, 3, f.calls)
}

func TestClickOutsideIgnoresMountingClick(t *testing.T) {
	f := newFixture(t)

	var stateDuringMount BindingState
	var listenersDuringMount int
	f.loop.Do(func() {
		b := ClickOutside(f.loop, f.doc, f.menu, func() { f.calls++ })
		f.doc.DispatchClick(f.outside)
		stateDuringMount = b.State()
		listenersDuringMount = f.doc.ListenerCount(Click)
	})
	require.Zero(t, f.calls)
	require.Equal(t, PendingAttach, stateDuringMount)
	require.Zero(t, listenersDuringMount)

	f.click(f.outside)
	require.Equal(t, 1, f.calls)
}

func TestClickOutsideIgnoresInsideClicks(t *testing.T) {
	f := newFixture(t)
	f.bind()

	f.click(f.inside)
	f.click(f.menu)
	require.Zero(t, f.calls)
}

func TestClickOutsideDestroyStopsCallbacks(t *testing.T) {
	f := newFixture(t)
	b := f.bind()

	f.click(f.outside)
	require.Equal(t, 1, f.calls)

	f.loop.Do(b.Destroy)
	require.Equal(t, Detached, b.State())

	f.click(f.outside)
	require.Equal(t, 1, f.calls)
	require.Zero(t, f.listeners())

	f.loop.Do(b.Destroy)
	require.Equal(t, Detached, b.State())
}

func TestClickOutsideDestroyBeforeAttach(t *testing.T) {
	f := newFixture(t)

	var b *Binding
	f.loop.Do(func() {
		b = ClickOutside(f.loop, f.doc, f.menu, func() { f.calls++ })
		b.Destroy()
	})

	f.click(f.outside)
	require.Zero(t, f.calls)
	require.Equal(t, Detached, b.State())
	require.False(t, b.attachTimer.Fired())
	require.Zero(t, f.listeners())
}

func TestClickOutsideIndependentBindings(t *testing.T) {
	f := newFixture(t)

	var menuCalls, mainCalls int
	var menuBinding, mainBinding *Binding
	f.loop.Do(func() {
		menuBinding = ClickOutside(f.loop, f.doc, f.menu, func() { menuCalls++ })
		mainBinding = ClickOutside(f.loop, f.doc, f.outside, func() { mainCalls++ })
	})

	f.click(f.inside)
	require.Equal(t, 0, menuCalls)
	require.Equal(t, 1, mainCalls)

	f.click(f.outside)
	require.Equal(t, 1, menuCalls)
	require.Equal(t, 1, mainCalls)

	f.loop.Do(menuBinding.Destroy)
	f.click(f.outside)
	f.click(f.inside)
	require.Equal(t, 1, menuCalls)
	require.Equal(t, 2, mainCalls)
	require.Equal(t, Active, mainBinding.State())
}
