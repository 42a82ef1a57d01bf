package ast

import "github.com/tova-lang/tova/internal/token"

// JSXAttribute is one `name={expr}` or `name="literal"` attribute.
type JSXAttribute struct {
	Name  string
	Value Expression
	Spread bool // `{...props}`
}

// JSXElement is `<Tag attr={v}>children</Tag>`, appearing inside `client`
// block component bodies (spec.md supplemented feature: component
// declarations need a return-shape to type-check against).
type JSXElement struct {
	Token      token.Token
	Tag        string
	Attributes []JSXAttribute
	Children   []Expression
	SelfClosing bool
}

func (e *JSXElement) Accept(v Visitor)      { v.VisitJSXElement(e) }
func (e *JSXElement) expressionNode()       {}
func (e *JSXElement) GetToken() token.Token { return e.Token }

// JSXFragment is `<>...</>`.
type JSXFragment struct {
	Token    token.Token
	Children []Expression
}

func (e *JSXFragment) Accept(v Visitor)      { v.VisitJSXFragment(e) }
func (e *JSXFragment) expressionNode()       {}
func (e *JSXFragment) GetToken() token.Token { return e.Token }
