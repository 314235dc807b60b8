package data

// Request describes a binding to resolve.
type Request struct {
	Path        []string
	Name        string
	Root        *Node
	Subscribers *Tree
}

// Resolve walks Path from Root and from Subscribers in lockstep, creating
// missing nodes on both sides, and returns the data node that owns Name
// together with Name's subscriber list.
func Resolve(r Request) (*Node, *Subscribers) {
	source := r.Root
	tree := r.Subscribers
	for _, seg := range r.Path {
		source = source.Child(seg)
		tree = tree.Child(seg)
	}
	return source, tree.List(r.Name)
}

// Wire connects subs to name on source so that source.Set(name, v) notifies
// it. Wiring the same pair again has no effect.
func Wire(subs *Subscribers, source *Node, name string) {
	for _, s := range source.watchers[name] {
		if s == subs {
			return
		}
	}
	if source.watchers == nil {
		source.watchers = make(map[string][]*Subscribers)
	}
	source.watchers[name] = append(source.watchers[name], subs)
}
