package jslint

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mpyw/timerpairs/internal/jsast"
	"github.com/mpyw/timerpairs/internal/scope"
)

// site adapts a JavaScript member call to timer.Site. stack is only valid
// for the duration of the walk callback that built the site.
type site struct {
	file  *jsast.File
	call  jsast.MemberCall
	stack []*sitter.Node
}

func (s *site) Method() string {
	return s.call.Property
}

func (s *site) Receiver() (string, bool) {
	return s.call.ObjectName(s.file.Src)
}

func (s *site) NumArgs() int {
	return len(s.call.Args)
}

func (s *site) ArgSource() string {
	return s.file.Text(s.call.Args[0])
}

func (s *site) ArgLiteral() (string, bool) {
	return jsast.StringValue(s.call.Args[0], s.file.Src)
}

func (s *site) Scope(mode scope.Mode) any {
	fn, ok := scope.Resolve(mode, s.stack, jsast.IsFunction)
	if !ok {
		return nil
	}

	return jsast.KeyOf(fn)
}

func (s *site) Node() any {
	return s.call.Node
}
