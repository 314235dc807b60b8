package core

import (
	"fmt"

	"github.com/go-drift/anchor/pkg/ast"
	"github.com/go-drift/anchor/pkg/data"
	"github.com/go-drift/anchor/pkg/errors"
	"github.com/go-drift/anchor/pkg/screen"
)

// bindText appends an empty text node that follows the bound data slot.
func (b *Builder) bindText(element *screen.Node, bind ast.Binding, state *State, subscribers *data.Tree) error {
	if bind.Name == "" {
		return &errors.StructureError{Op: "core.Build", Shape: "ast.Binding", Detail: "binding has no name"}
	}
	source, subs := b.resolver.Resolve(data.Request{
		Path:        bind.Path,
		Name:        bind.Name,
		Root:        state.Data(),
		Subscribers: subscribers,
	})
	text := screen.NewText("")
	subs.Add(func(value any) {
		text.SetText(textOf(value))
	})
	b.registrar.Wire(subs, source, bind.Name, state)
	b.tree.Append(element, text)
	return nil
}

func textOf(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
