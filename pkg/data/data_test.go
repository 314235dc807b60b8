package data

import (
	"testing"

	"github.com/go-drift/anchor/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_CreatesPathOnBothTrees(t *testing.T) {
	root := NewNode()
	tree := NewTree()

	source, subs := Resolve(Request{Path: []string{"a", "b"}, Name: "text", Root: root, Subscribers: tree})

	found, ok := root.Lookup([]string{"a", "b"})
	require.True(t, ok)
	assert.Same(t, found, source)
	assert.Same(t, tree.Child("a").Child("b").List("text"), subs)
}

func TestResolve_SamePathSameList(t *testing.T) {
	root := NewNode()
	tree := NewTree()

	s1, l1 := Resolve(Request{Path: []string{"user"}, Name: "name", Root: root, Subscribers: tree})
	s2, l2 := Resolve(Request{Path: []string{"user"}, Name: "name", Root: root, Subscribers: tree})

	assert.Same(t, s1, s2)
	assert.Same(t, l1, l2)
}

func TestWire_Idempotent(t *testing.T) {
	root := NewNode()
	subs := &Subscribers{}
	calls := 0
	subs.Add(func(any) { calls++ })

	Wire(subs, root, "text")
	Wire(subs, root, "text")
	root.Set("text", "hi")

	assert.Equal(t, 1, root.Wired("text"))
	assert.Equal(t, 1, calls)
}

func TestSet_NotifiesInOrder(t *testing.T) {
	root := NewNode()
	subs := &Subscribers{}
	var got []string
	subs.Add(func(v any) { got = append(got, "first:"+v.(string)) })
	subs.Add(func(v any) { got = append(got, "second:"+v.(string)) })
	Wire(subs, root, "msg")

	root.Set("msg", "hi")

	assert.Equal(t, []string{"first:hi", "second:hi"}, got)
	v, ok := root.Get("msg")
	require.True(t, ok)
	assert.Equal(t, "hi", v)
}

func TestSubscribers_Remove(t *testing.T) {
	subs := &Subscribers{}
	calls := 0
	h := subs.Add(func(any) { calls++ })

	assert.True(t, subs.Remove(h))
	assert.False(t, subs.Remove(h))
	subs.Notify("x")
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, subs.Len())
}

func TestNotify_PanickingSubscriberIsReported(t *testing.T) {
	var panics []*errors.PanicError
	defer errors.SetHandler(errors.SetHandler(&recordingHandler{onPanic: func(p *errors.PanicError) { panics = append(panics, p) }}))

	subs := &Subscribers{}
	reached := false
	subs.Add(func(any) { panic("boom") })
	subs.Add(func(any) { reached = true })

	subs.Notify(1)

	require.Len(t, panics, 1)
	assert.Equal(t, "data.Notify", panics[0].Op)
	assert.True(t, reached, "later subscribers still run")
}

func TestUpdate_Nested(t *testing.T) {
	root := NewNode()
	root.Update(map[string]any{
		"title": "Inbox",
		"user":  map[string]any{"name": "sam", "unread": 3},
	})

	assert.Equal(t, map[string]any{
		"title": "Inbox",
		"user":  map[string]any{"name": "sam", "unread": 3},
	}, root.Snapshot())
}

func TestDecodeYAML(t *testing.T) {
	values, err := DecodeYAML([]byte("user:\n  name: sam\ncount: 2\n"))
	require.NoError(t, err)

	root := NewNode()
	root.Update(values)
	user, ok := root.Lookup([]string{"user"})
	require.True(t, ok)
	name, _ := user.Get("name")
	assert.Equal(t, "sam", name)

	_, err = DecodeYAML([]byte("- not a map"))
	assert.Error(t, err)
}

type recordingHandler struct {
	errors.LogHandler
	onPanic func(*errors.PanicError)
}

func (h *recordingHandler) HandlePanic(err *errors.PanicError) {
	h.onPanic(err)
}
