package dom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeContains(t *testing.T) {
	doc := NewDocument()
	menu := doc.Body.AppendChild(NewNode("menu"))
	item := menu.AppendChild(NewNode("item"))
	label := item.AppendChild(NewNode("label"))
	other := doc.Body.AppendChild(NewNode("other"))

	require.True(t, menu.Contains(menu))
	require.True(t, menu.Contains(item))
	require.True(t, menu.Contains(label))
	require.False(t, menu.Contains(other))
	require.False(t, menu.Contains(doc.Body))
	require.False(t, menu.Contains(nil))
	require.True(t, doc.Root.Contains(label))
}

func TestNodeReparent(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	child := a.AppendChild(NewNode("child"))

	b.AppendChild(child)
	require.Same(t, b, child.Parent())
	require.Empty(t, a.Children())
	require.False(t, a.Contains(child))
	require.True(t, b.Contains(child))

	b.RemoveChild(child)
	require.Nil(t, child.Parent())
	require.False(t, b.Contains(child))
}

func TestDocumentListeners(t *testing.T) {
	doc := NewDocument()

	var got []string
	first := doc.AddEventListener(Click, func(Event) { got = append(got, "first") })
	doc.AddEventListener(Click, func(Event) { got = append(got, "second") })
	require.Equal(t, 2, doc.ListenerCount(Click))

	doc.DispatchClick(doc.Body)
	require.Equal(t, []string{"first", "second"}, got)

	doc.RemoveEventListener(Click, first)
	doc.RemoveEventListener(Click, first)
	doc.RemoveEventListener(Click, 999)
	require.Equal(t, 1, doc.ListenerCount(Click))

	got = nil
	doc.DispatchClick(doc.Body)
	require.Equal(t, []string{"second"}, got)
}

func TestDocumentRemoveDuringDispatch(t *testing.T) {
	doc := NewDocument()

	var second ListenerID
	calls := 0
	doc.AddEventListener(Click, func(Event) {
		doc.RemoveEventListener(Click, second)
	})
	second = doc.AddEventListener(Click, func(Event) { calls++ })

	doc.DispatchClick(doc.Body)
	require.Zero(t, calls)
}
