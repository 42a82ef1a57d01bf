// Package fixture decodes the JSON-encoded AST fixtures the analyzer's
// thin CLI collaborator (cmd/tova-analyze) and golden tests read, since
// this module deliberately carries no lexer/parser of its own (spec.md
// §1 Non-goals). Grounded on the teacher's own practice of hand-building
// ASTs for tests rather than always going through its parser, generalized
// into a small reusable decoder so fixtures live as data, not Go literals.
//
// The wire format is a plain JSON tree: every node is an object carrying
// a "type" field naming the exact Go struct it decodes to (e.g.
// "BinaryExpression"), a "token" field for its source location, and one
// field per exported struct field using the same name. Arrays and nested
// nodes decode recursively through the same entry point.
package fixture

import (
	"encoding/json"
	"fmt"

	"github.com/tova-lang/tova/internal/ast"
	"github.com/tova-lang/tova/internal/token"
)

// DecodeProgram decodes a whole fixture document into an *ast.Program,
// the only entry point the analyzer needs (spec.md §6 input contract).
func DecodeProgram(data []byte) (*ast.Program, error) {
	var raw struct {
		File       string            `json:"file"`
		Statements []json.RawMessage `json:"statements"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding program: %w", err)
	}
	stmts := make([]ast.Statement, 0, len(raw.Statements))
	for i, r := range raw.Statements {
		s, err := decodeStmt(r)
		if err != nil {
			return nil, fmt.Errorf("decoding top-level statement %d: %w", i, err)
		}
		stmts = append(stmts, s)
	}
	return &ast.Program{File: raw.File, Statements: stmts}, nil
}

func peek(raw json.RawMessage) (string, map[string]json.RawMessage, token.Token, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil, token.Token{}, nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return "", nil, token.Token{}, err
	}
	var typ string
	if t, ok := m["type"]; ok {
		json.Unmarshal(t, &typ)
	}
	var tok token.Token
	if t, ok := m["token"]; ok {
		json.Unmarshal(t, &tok)
	}
	return typ, m, tok, nil
}

func field(m map[string]json.RawMessage, name string) json.RawMessage {
	if m == nil {
		return nil
	}
	return m[name]
}

func str(m map[string]json.RawMessage, name string) string {
	var s string
	if r := field(m, name); r != nil {
		json.Unmarshal(r, &s)
	}
	return s
}

func boolean(m map[string]json.RawMessage, name string) bool {
	var b bool
	if r := field(m, name); r != nil {
		json.Unmarshal(r, &b)
	}
	return b
}

func integer(m map[string]json.RawMessage, name string) int64 {
	var n int64
	if r := field(m, name); r != nil {
		json.Unmarshal(r, &n)
	}
	return n
}

func floatVal(m map[string]json.RawMessage, name string) float64 {
	var n float64
	if r := field(m, name); r != nil {
		json.Unmarshal(r, &n)
	}
	return n
}

func strSlice(m map[string]json.RawMessage, name string) []string {
	var out []string
	if r := field(m, name); r != nil {
		json.Unmarshal(r, &out)
	}
	return out
}

func rawSlice(m map[string]json.RawMessage, name string) []json.RawMessage {
	var out []json.RawMessage
	if r := field(m, name); r != nil {
		json.Unmarshal(r, &out)
	}
	return out
}

func rawMap(m map[string]json.RawMessage, name string) map[string]json.RawMessage {
	var out map[string]json.RawMessage
	if r := field(m, name); r != nil {
		json.Unmarshal(r, &out)
	}
	return out
}

// decodeNode is the single recursive entry point every typed helper below
// funnels through.
func decodeNode(raw json.RawMessage) (ast.Node, error) {
	typ, m, tok, err := peek(raw)
	if err != nil {
		return nil, err
	}
	if typ == "" {
		return nil, nil
	}
	switch typ {
	// Literals and identifiers
	case "Identifier":
		return &ast.Identifier{Token: tok, Value: str(m, "value")}, nil
	case "IntegerLiteral":
		return &ast.IntegerLiteral{Token: tok, Value: integer(m, "value")}, nil
	case "FloatLiteral":
		return &ast.FloatLiteral{Token: tok, Value: floatVal(m, "value")}, nil
	case "StringLiteral":
		return &ast.StringLiteral{Token: tok, Value: str(m, "value")}, nil
	case "BooleanLiteral":
		return &ast.BooleanLiteral{Token: tok, Value: boolean(m, "value")}, nil
	case "NilLiteral":
		return &ast.NilLiteral{Token: tok}, nil
	case "TemplateStringLiteral":
		parts, err := decodeExprList(m, "parts")
		if err != nil {
			return nil, err
		}
		return &ast.TemplateStringLiteral{Token: tok, Parts: parts}, nil
	case "ArrayLiteral":
		elems, err := decodeExprList(m, "elements")
		if err != nil {
			return nil, err
		}
		return &ast.ArrayLiteral{Token: tok, Elements: elems}, nil
	case "ObjectLiteral":
		fields, err := decodeExprMap(m, "fields")
		if err != nil {
			return nil, err
		}
		spread, err := decodeExprField(m, "spread")
		if err != nil {
			return nil, err
		}
		return &ast.ObjectLiteral{Token: tok, Fields: fields, Spread: spread}, nil
	case "TupleExpression":
		elems, err := decodeExprList(m, "elements")
		if err != nil {
			return nil, err
		}
		return &ast.TupleExpression{Token: tok, Elements: elems}, nil

	// Operators
	case "BinaryExpression":
		left, right, err := decodeBinaryPair(m)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpression{Token: tok, Operator: str(m, "operator"), Left: left, Right: right}, nil
	case "UnaryExpression":
		operand, err := decodeExprField(m, "operand")
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpression{Token: tok, Operator: str(m, "operator"), Operand: operand}, nil
	case "LogicalExpression":
		left, right, err := decodeBinaryPair(m)
		if err != nil {
			return nil, err
		}
		return &ast.LogicalExpression{Token: tok, Operator: str(m, "operator"), Left: left, Right: right}, nil
	case "ChainedComparison":
		operands, err := decodeExprList(m, "operands")
		if err != nil {
			return nil, err
		}
		return &ast.ChainedComparison{Token: tok, Operands: operands, Operators: strSlice(m, "operators")}, nil
	case "MembershipExpression":
		elem, err := decodeExprField(m, "element")
		if err != nil {
			return nil, err
		}
		haystack, err := decodeExprField(m, "haystack")
		if err != nil {
			return nil, err
		}
		return &ast.MembershipExpression{Token: tok, Negated: boolean(m, "negated"), Element: elem, Haystack: haystack}, nil

	// Calls and access
	case "CallExpression":
		return decodeCallExpression(tok, m)
	case "MemberExpression":
		obj, err := decodeExprField(m, "object")
		if err != nil {
			return nil, err
		}
		return &ast.MemberExpression{Token: tok, Object: obj, Property: str(m, "property"), Optional: boolean(m, "optional")}, nil
	case "IndexExpression":
		obj, err := decodeExprField(m, "object")
		if err != nil {
			return nil, err
		}
		idx, err := decodeExprField(m, "index")
		if err != nil {
			return nil, err
		}
		return &ast.IndexExpression{Token: tok, Object: obj, Index: idx}, nil
	case "PipeExpression":
		left, right, err := decodeBinaryPair(m)
		if err != nil {
			return nil, err
		}
		return &ast.PipeExpression{Token: tok, Left: left, Right: right}, nil

	// Functions and control-flow expressions
	case "Lambda":
		return decodeLambda(tok, m)
	case "MatchExpression":
		return decodeMatchExpression(tok, m)
	case "IfExpression":
		cond, err := decodeExprField(m, "condition")
		if err != nil {
			return nil, err
		}
		then, err := decodeExprField(m, "then")
		if err != nil {
			return nil, err
		}
		els, err := decodeExprField(m, "else")
		if err != nil {
			return nil, err
		}
		return &ast.IfExpression{Token: tok, Condition: cond, Then: then, Else: els}, nil

	// Collections and comprehensions
	case "ListComprehension":
		result, err := decodeExprField(m, "result")
		if err != nil {
			return nil, err
		}
		pat, err := decodePatternField(m, "pattern")
		if err != nil {
			return nil, err
		}
		iter, err := decodeExprField(m, "iterable")
		if err != nil {
			return nil, err
		}
		conds, err := decodeExprList(m, "conditions")
		if err != nil {
			return nil, err
		}
		return &ast.ListComprehension{Token: tok, Result: result, Pattern: pat, Iterable: iter, Conditions: conds}, nil
	case "DictComprehension":
		key, err := decodeExprField(m, "key")
		if err != nil {
			return nil, err
		}
		val, err := decodeExprField(m, "value")
		if err != nil {
			return nil, err
		}
		pat, err := decodePatternField(m, "pattern")
		if err != nil {
			return nil, err
		}
		iter, err := decodeExprField(m, "iterable")
		if err != nil {
			return nil, err
		}
		conds, err := decodeExprList(m, "conditions")
		if err != nil {
			return nil, err
		}
		return &ast.DictComprehension{Token: tok, Key: key, Value: val, Pattern: pat, Iterable: iter, Conditions: conds}, nil
	case "RangeExpression":
		lo, hi, err := decodeLoHi(m)
		if err != nil {
			return nil, err
		}
		return &ast.RangeExpression{Token: tok, Lo: lo, Hi: hi, Inclusive: boolean(m, "inclusive")}, nil
	case "SliceExpression":
		obj, err := decodeExprField(m, "object")
		if err != nil {
			return nil, err
		}
		lo, hi, err := decodeLoHi(m)
		if err != nil {
			return nil, err
		}
		return &ast.SliceExpression{Token: tok, Object: obj, Lo: lo, Hi: hi}, nil
	case "SpreadExpression":
		operand, err := decodeExprField(m, "operand")
		if err != nil {
			return nil, err
		}
		return &ast.SpreadExpression{Token: tok, Operand: operand}, nil
	case "PropagateExpression":
		operand, err := decodeExprField(m, "operand")
		if err != nil {
			return nil, err
		}
		return &ast.PropagateExpression{Token: tok, Operand: operand}, nil
	case "AwaitExpression":
		operand, err := decodeExprField(m, "operand")
		if err != nil {
			return nil, err
		}
		return &ast.AwaitExpression{Token: tok, Operand: operand}, nil
	case "YieldExpression":
		operand, err := decodeExprField(m, "operand")
		if err != nil {
			return nil, err
		}
		return &ast.YieldExpression{Token: tok, Operand: operand}, nil

	// JSX
	case "JSXElement":
		return decodeJSXElement(tok, m)
	case "JSXFragment":
		children, err := decodeExprList(m, "children")
		if err != nil {
			return nil, err
		}
		return &ast.JSXFragment{Token: tok, Children: children}, nil

	// Data-block column access
	case "ColumnExpression":
		table, err := decodeExprField(m, "table")
		if err != nil {
			return nil, err
		}
		return &ast.ColumnExpression{Token: tok, Table: table, Column: str(m, "column")}, nil
	case "ColumnAssignExpression":
		table, err := decodeExprField(m, "table")
		if err != nil {
			return nil, err
		}
		val, err := decodeExprField(m, "value")
		if err != nil {
			return nil, err
		}
		return &ast.ColumnAssignExpression{Token: tok, Table: table, Column: str(m, "column"), Value: val}, nil

	// Statements and declarations
	case "Assignment":
		target, err := decodeExprField(m, "target")
		if err != nil {
			return nil, err
		}
		val, err := decodeExprField(m, "value")
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{Token: tok, Target: target, Value: val}, nil
	case "CompoundAssignment":
		target, err := decodeExprField(m, "target")
		if err != nil {
			return nil, err
		}
		val, err := decodeExprField(m, "value")
		if err != nil {
			return nil, err
		}
		return &ast.CompoundAssignment{Token: tok, Operator: str(m, "operator"), Target: target, Value: val}, nil
	case "VarDeclaration":
		typeExpr, err := decodeTypeExprField(m, "typeAnnotation")
		if err != nil {
			return nil, err
		}
		val, err := decodeExprField(m, "value")
		if err != nil {
			return nil, err
		}
		return &ast.VarDeclaration{Token: tok, Name: str(m, "name"), TypeAnnotation: typeExpr, Value: val, Mutable: boolean(m, "mutable")}, nil
	case "DestructureDeclaration":
		pat, err := decodePatternField(m, "pattern")
		if err != nil {
			return nil, err
		}
		val, err := decodeExprField(m, "value")
		if err != nil {
			return nil, err
		}
		return &ast.DestructureDeclaration{Token: tok, Pattern: pat, Value: val, Mutable: boolean(m, "mutable")}, nil
	case "FunctionDeclaration":
		return decodeFunctionDeclaration(tok, m)
	case "TypeDeclaration":
		return decodeTypeDeclaration(tok, m)
	case "TypeAliasDeclaration":
		aliased, err := decodeTypeExprField(m, "aliased")
		if err != nil {
			return nil, err
		}
		return &ast.TypeAliasDeclaration{Token: tok, Name: str(m, "name"), TypeParams: strSlice(m, "typeParams"), Aliased: aliased}, nil
	case "InterfaceDeclaration":
		methods, err := decodeMethodSignatures(m, "methods")
		if err != nil {
			return nil, err
		}
		return &ast.InterfaceDeclaration{Token: tok, Name: str(m, "name"), Methods: methods}, nil
	case "TraitDeclaration":
		methods, err := decodeMethodSignatures(m, "methods")
		if err != nil {
			return nil, err
		}
		return &ast.TraitDeclaration{Token: tok, Name: str(m, "name"), Methods: methods}, nil
	case "ImplDeclaration":
		return decodeImplDeclaration(tok, m)
	case "ImportDeclaration":
		return &ast.ImportDeclaration{
			Token:    tok,
			Path:     str(m, "path"),
			Default:  str(m, "default"),
			Named:    strSlice(m, "named"),
			Wildcard: boolean(m, "wildcard"),
			Alias:    str(m, "alias"),
		}, nil
	case "ExternDeclaration":
		typeExpr, err := decodeTypeExprField(m, "typeAnnotation")
		if err != nil {
			return nil, err
		}
		return &ast.ExternDeclaration{Token: tok, Name: str(m, "name"), TypeAnnotation: typeExpr}, nil
	case "IfStatement":
		return decodeIfStatement(tok, m)
	case "ForStatement":
		pat, err := decodePatternField(m, "pattern")
		if err != nil {
			return nil, err
		}
		iter, err := decodeExprField(m, "iterable")
		if err != nil {
			return nil, err
		}
		body, err := decodeBlockField(m, "body")
		if err != nil {
			return nil, err
		}
		return &ast.ForStatement{Token: tok, Pattern: pat, Iterable: iter, Body: body, Label: str(m, "label")}, nil
	case "WhileStatement":
		cond, err := decodeExprField(m, "condition")
		if err != nil {
			return nil, err
		}
		body, err := decodeBlockField(m, "body")
		if err != nil {
			return nil, err
		}
		return &ast.WhileStatement{Token: tok, Condition: cond, Body: body, Label: str(m, "label")}, nil
	case "LoopStatement":
		body, err := decodeBlockField(m, "body")
		if err != nil {
			return nil, err
		}
		return &ast.LoopStatement{Token: tok, Body: body, Label: str(m, "label")}, nil
	case "TryCatchStatement":
		tryBlock, err := decodeBlockField(m, "try")
		if err != nil {
			return nil, err
		}
		catchBlock, err := decodeBlockField(m, "catch")
		if err != nil {
			return nil, err
		}
		return &ast.TryCatchStatement{Token: tok, Try: tryBlock, CatchName: str(m, "catchName"), Catch: catchBlock}, nil
	case "ReturnStatement":
		val, err := decodeExprField(m, "value")
		if err != nil {
			return nil, err
		}
		return &ast.ReturnStatement{Token: tok, Value: val}, nil
	case "ExpressionStatement":
		expr, err := decodeExprField(m, "expression")
		if err != nil {
			return nil, err
		}
		return &ast.ExpressionStatement{Token: tok, Expression: expr}, nil
	case "BlockStatement":
		stmts, err := decodeStmtList(m, "statements")
		if err != nil {
			return nil, err
		}
		return &ast.BlockStatement{Token: tok, Statements: stmts}, nil
	case "BreakStatement":
		return &ast.BreakStatement{Token: tok, Label: str(m, "label")}, nil
	case "ContinueStatement":
		return &ast.ContinueStatement{Token: tok, Label: str(m, "label")}, nil
	case "GuardStatement":
		cond, err := decodeExprField(m, "condition")
		if err != nil {
			return nil, err
		}
		elseBlock, err := decodeBlockField(m, "else")
		if err != nil {
			return nil, err
		}
		return &ast.GuardStatement{Token: tok, Condition: cond, Else: elseBlock}, nil
	case "DeferStatement":
		expr, err := decodeExprField(m, "expression")
		if err != nil {
			return nil, err
		}
		return &ast.DeferStatement{Token: tok, Expression: expr}, nil
	case "ThrowStatement":
		expr, err := decodeExprField(m, "expression")
		if err != nil {
			return nil, err
		}
		return &ast.ThrowStatement{Token: tok, Expression: expr}, nil

	// Block-form family
	case "BlockForm":
		return decodeBlockForm(tok, m)
	case "PluginDeclaration":
		return decodePluginDeclaration(tok, m)

	// Patterns
	case "WildcardPattern":
		return &ast.WildcardPattern{Token: tok}, nil
	case "BindingPattern":
		return &ast.BindingPattern{Token: tok, Name: str(m, "name")}, nil
	case "LiteralPattern":
		val, err := decodeExprField(m, "value")
		if err != nil {
			return nil, err
		}
		return &ast.LiteralPattern{Token: tok, Value: val}, nil
	case "RangePattern":
		lo, hi, err := decodeLoHi(m)
		if err != nil {
			return nil, err
		}
		return &ast.RangePattern{Token: tok, Lo: lo, Hi: hi}, nil
	case "VariantPattern":
		return decodeVariantPattern(tok, m)
	case "TuplePattern":
		elems, err := decodePatternList(m, "elements")
		if err != nil {
			return nil, err
		}
		return &ast.TuplePattern{Token: tok, Elements: elems}, nil
	case "ArrayPattern":
		prefix, err := decodePatternList(m, "prefix")
		if err != nil {
			return nil, err
		}
		return &ast.ArrayPattern{Token: tok, Prefix: prefix, Rest: str(m, "rest"), HasRest: boolean(m, "hasRest")}, nil
	case "OrPattern":
		alts, err := decodePatternList(m, "alternatives")
		if err != nil {
			return nil, err
		}
		return &ast.OrPattern{Token: tok, Alternatives: alts}, nil

	// Type expressions
	case "NamedTypeExpr":
		return &ast.NamedTypeExpr{Token: tok, Name: str(m, "name")}, nil
	case "ArrayTypeExpr":
		elem, err := decodeTypeExprField(m, "elem")
		if err != nil {
			return nil, err
		}
		return &ast.ArrayTypeExpr{Token: tok, Elem: elem}, nil
	case "TupleTypeExpr":
		elems, err := decodeTypeExprList(m, "elems")
		if err != nil {
			return nil, err
		}
		return &ast.TupleTypeExpr{Token: tok, Elems: elems}, nil
	case "FunctionTypeExpr":
		params, err := decodeTypeExprList(m, "params")
		if err != nil {
			return nil, err
		}
		ret, err := decodeTypeExprField(m, "return")
		if err != nil {
			return nil, err
		}
		return &ast.FunctionTypeExpr{Token: tok, Params: params, Return: ret}, nil
	case "GenericTypeExpr":
		args, err := decodeTypeExprList(m, "args")
		if err != nil {
			return nil, err
		}
		return &ast.GenericTypeExpr{Token: tok, Base: str(m, "base"), Args: args}, nil
	case "UnionTypeExpr":
		members, err := decodeTypeExprList(m, "members")
		if err != nil {
			return nil, err
		}
		return &ast.UnionTypeExpr{Token: tok, Members: members}, nil
	case "OptionalTypeExpr":
		inner, err := decodeTypeExprField(m, "inner")
		if err != nil {
			return nil, err
		}
		return &ast.OptionalTypeExpr{Token: tok, Inner: inner}, nil
	case "RefinementTypeExpr":
		base, err := decodeTypeExprField(m, "base")
		if err != nil {
			return nil, err
		}
		pred, err := decodeExprField(m, "predicate")
		if err != nil {
			return nil, err
		}
		return &ast.RefinementTypeExpr{Token: tok, Base: base, Predicate: pred}, nil
	}
	return nil, fmt.Errorf("unknown fixture node type %q", typ)
}

func decodeBinaryPair(m map[string]json.RawMessage) (ast.Expression, ast.Expression, error) {
	left, err := decodeExprField(m, "left")
	if err != nil {
		return nil, nil, err
	}
	right, err := decodeExprField(m, "right")
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

func decodeLoHi(m map[string]json.RawMessage) (ast.Expression, ast.Expression, error) {
	lo, err := decodeExprField(m, "lo")
	if err != nil {
		return nil, nil, err
	}
	hi, err := decodeExprField(m, "hi")
	if err != nil {
		return nil, nil, err
	}
	return lo, hi, nil
}

func decodeExprField(m map[string]json.RawMessage, name string) (ast.Expression, error) {
	raw := field(m, name)
	if raw == nil {
		return nil, nil
	}
	n, err := decodeNode(raw)
	if err != nil || n == nil {
		return nil, err
	}
	e, ok := n.(ast.Expression)
	if !ok {
		return nil, fmt.Errorf("field %q: node is not an Expression", name)
	}
	return e, nil
}

func decodeStmt(raw json.RawMessage) (ast.Statement, error) {
	n, err := decodeNode(raw)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, fmt.Errorf("expected a Statement, got null")
	}
	s, ok := n.(ast.Statement)
	if !ok {
		return nil, fmt.Errorf("node is not a Statement")
	}
	return s, nil
}

func decodePatternField(m map[string]json.RawMessage, name string) (ast.Pattern, error) {
	raw := field(m, name)
	if raw == nil {
		return nil, nil
	}
	n, err := decodeNode(raw)
	if err != nil || n == nil {
		return nil, err
	}
	p, ok := n.(ast.Pattern)
	if !ok {
		return nil, fmt.Errorf("field %q: node is not a Pattern", name)
	}
	return p, nil
}

func decodeTypeExprField(m map[string]json.RawMessage, name string) (ast.TypeExpr, error) {
	t, err := decodeTypeExprRaw(field(m, name))
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", name, err)
	}
	return t, nil
}

func decodeTypeExprRaw(raw json.RawMessage) (ast.TypeExpr, error) {
	if raw == nil {
		return nil, nil
	}
	n, err := decodeNode(raw)
	if err != nil || n == nil {
		return nil, err
	}
	t, ok := n.(ast.TypeExpr)
	if !ok {
		return nil, fmt.Errorf("node is not a TypeExpr")
	}
	return t, nil
}

func decodeBlockField(m map[string]json.RawMessage, name string) (*ast.BlockStatement, error) {
	raw := field(m, name)
	if raw == nil {
		return nil, nil
	}
	n, err := decodeNode(raw)
	if err != nil || n == nil {
		return nil, err
	}
	b, ok := n.(*ast.BlockStatement)
	if !ok {
		return nil, fmt.Errorf("field %q: node is not a BlockStatement", name)
	}
	return b, nil
}

func decodeExprList(m map[string]json.RawMessage, name string) ([]ast.Expression, error) {
	raws := rawSlice(m, name)
	out := make([]ast.Expression, 0, len(raws))
	for i, r := range raws {
		n, err := decodeNode(r)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", name, i, err)
		}
		e, ok := n.(ast.Expression)
		if !ok {
			return nil, fmt.Errorf("%s[%d]: node is not an Expression", name, i)
		}
		out = append(out, e)
	}
	return out, nil
}

func decodeStmtList(m map[string]json.RawMessage, name string) ([]ast.Statement, error) {
	raws := rawSlice(m, name)
	out := make([]ast.Statement, 0, len(raws))
	for i, r := range raws {
		s, err := decodeStmt(r)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", name, i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func decodePatternList(m map[string]json.RawMessage, name string) ([]ast.Pattern, error) {
	raws := rawSlice(m, name)
	out := make([]ast.Pattern, 0, len(raws))
	for i, r := range raws {
		n, err := decodeNode(r)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", name, i, err)
		}
		p, ok := n.(ast.Pattern)
		if !ok {
			return nil, fmt.Errorf("%s[%d]: node is not a Pattern", name, i)
		}
		out = append(out, p)
	}
	return out, nil
}

func decodeTypeExprList(m map[string]json.RawMessage, name string) ([]ast.TypeExpr, error) {
	raws := rawSlice(m, name)
	out := make([]ast.TypeExpr, 0, len(raws))
	for i, r := range raws {
		n, err := decodeNode(r)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", name, i, err)
		}
		t, ok := n.(ast.TypeExpr)
		if !ok {
			return nil, fmt.Errorf("%s[%d]: node is not a TypeExpr", name, i)
		}
		out = append(out, t)
	}
	return out, nil
}

func decodeExprMap(m map[string]json.RawMessage, name string) (map[string]ast.Expression, error) {
	raws := rawMap(m, name)
	if raws == nil {
		return nil, nil
	}
	out := make(map[string]ast.Expression, len(raws))
	for k, r := range raws {
		n, err := decodeNode(r)
		if err != nil {
			return nil, fmt.Errorf("%s[%q]: %w", name, k, err)
		}
		e, ok := n.(ast.Expression)
		if !ok {
			return nil, fmt.Errorf("%s[%q]: node is not an Expression", name, k)
		}
		out[k] = e
	}
	return out, nil
}

func decodeParams(m map[string]json.RawMessage, name string) ([]ast.Param, error) {
	raws := rawSlice(m, name)
	out := make([]ast.Param, 0, len(raws))
	for i, r := range raws {
		var pm map[string]json.RawMessage
		if err := json.Unmarshal(r, &pm); err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", name, i, err)
		}
		var ptok token.Token
		if t := field(pm, "token"); t != nil {
			json.Unmarshal(t, &ptok)
		}
		typeExpr, err := decodeTypeExprField(pm, "typeAnnotation")
		if err != nil {
			return nil, fmt.Errorf("%s[%d].typeAnnotation: %w", name, i, err)
		}
		def, err := decodeExprField(pm, "default")
		if err != nil {
			return nil, fmt.Errorf("%s[%d].default: %w", name, i, err)
		}
		out = append(out, ast.Param{
			Token:          ptok,
			Name:           str(pm, "name"),
			TypeAnnotation: typeExpr,
			Default:        def,
			Variadic:       boolean(pm, "variadic"),
		})
	}
	return out, nil
}

func decodeMethodSignatures(m map[string]json.RawMessage, name string) ([]ast.MethodSignature, error) {
	raws := rawSlice(m, name)
	out := make([]ast.MethodSignature, 0, len(raws))
	for i, r := range raws {
		var sm map[string]json.RawMessage
		if err := json.Unmarshal(r, &sm); err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", name, i, err)
		}
		params, err := decodeTypeExprList(sm, "paramTypes")
		if err != nil {
			return nil, err
		}
		ret, err := decodeTypeExprField(sm, "returnType")
		if err != nil {
			return nil, err
		}
		out = append(out, ast.MethodSignature{Name: str(sm, "name"), ParamTypes: params, ReturnType: ret})
	}
	return out, nil
}

func decodeCallExpression(tok token.Token, m map[string]json.RawMessage) (ast.Node, error) {
	callee, err := decodeExprField(m, "callee")
	if err != nil {
		return nil, err
	}
	args, err := decodeExprList(m, "arguments")
	if err != nil {
		return nil, err
	}
	spread, err := decodeExprField(m, "spreadArg")
	if err != nil {
		return nil, err
	}
	typeArgs, err := decodeTypeExprList(m, "typeArguments")
	if err != nil {
		return nil, err
	}
	var named []ast.NamedArgument
	for i, r := range rawSlice(m, "namedArgs") {
		var nm map[string]json.RawMessage
		if err := json.Unmarshal(r, &nm); err != nil {
			return nil, fmt.Errorf("namedArgs[%d]: %w", i, err)
		}
		val, err := decodeExprField(nm, "value")
		if err != nil {
			return nil, fmt.Errorf("namedArgs[%d].value: %w", i, err)
		}
		named = append(named, ast.NamedArgument{Name: str(nm, "name"), Value: val})
	}
	return &ast.CallExpression{
		Token: tok, Callee: callee, Arguments: args,
		NamedArgs: named, SpreadArg: spread, TypeArguments: typeArgs,
	}, nil
}

func decodeLambda(tok token.Token, m map[string]json.RawMessage) (ast.Node, error) {
	params, err := decodeParams(m, "params")
	if err != nil {
		return nil, err
	}
	ret, err := decodeTypeExprField(m, "returnType")
	if err != nil {
		return nil, err
	}
	body, err := decodeExprField(m, "body")
	if err != nil {
		return nil, err
	}
	blockBody, err := decodeBlockField(m, "blockBody")
	if err != nil {
		return nil, err
	}
	return &ast.Lambda{Token: tok, Params: params, ReturnType: ret, Body: body, BlockBody: blockBody, IsAsync: boolean(m, "isAsync")}, nil
}

func decodeMatchExpression(tok token.Token, m map[string]json.RawMessage) (ast.Node, error) {
	subject, err := decodeExprField(m, "subject")
	if err != nil {
		return nil, err
	}
	var arms []ast.MatchArm
	for i, r := range rawSlice(m, "arms") {
		var am map[string]json.RawMessage
		if err := json.Unmarshal(r, &am); err != nil {
			return nil, fmt.Errorf("arms[%d]: %w", i, err)
		}
		var atok token.Token
		if t := field(am, "token"); t != nil {
			json.Unmarshal(t, &atok)
		}
		pat, err := decodePatternField(am, "pattern")
		if err != nil {
			return nil, fmt.Errorf("arms[%d].pattern: %w", i, err)
		}
		guard, err := decodeExprField(am, "guard")
		if err != nil {
			return nil, fmt.Errorf("arms[%d].guard: %w", i, err)
		}
		body, err := decodeExprField(am, "body")
		if err != nil {
			return nil, fmt.Errorf("arms[%d].body: %w", i, err)
		}
		arms = append(arms, ast.MatchArm{Token: atok, Pattern: pat, Guard: guard, Body: body})
	}
	return &ast.MatchExpression{Token: tok, Subject: subject, Arms: arms}, nil
}

func decodeVariantPattern(tok token.Token, m map[string]json.RawMessage) (ast.Node, error) {
	positional, err := decodePatternList(m, "positional")
	if err != nil {
		return nil, err
	}
	rawFields := rawMap(m, "fields")
	var fields map[string]ast.Pattern
	if rawFields != nil {
		fields = make(map[string]ast.Pattern, len(rawFields))
		for k, r := range rawFields {
			n, err := decodeNode(r)
			if err != nil {
				return nil, fmt.Errorf("fields[%q]: %w", k, err)
			}
			p, ok := n.(ast.Pattern)
			if !ok {
				return nil, fmt.Errorf("fields[%q]: node is not a Pattern", k)
			}
			fields[k] = p
		}
	}
	return &ast.VariantPattern{
		Token: tok, TypeName: str(m, "typeName"), VariantName: str(m, "variantName"),
		Positional: positional, Fields: fields,
	}, nil
}

func decodeJSXElement(tok token.Token, m map[string]json.RawMessage) (ast.Node, error) {
	children, err := decodeExprList(m, "children")
	if err != nil {
		return nil, err
	}
	var attrs []ast.JSXAttribute
	for i, r := range rawSlice(m, "attributes") {
		var am map[string]json.RawMessage
		if err := json.Unmarshal(r, &am); err != nil {
			return nil, fmt.Errorf("attributes[%d]: %w", i, err)
		}
		val, err := decodeExprField(am, "value")
		if err != nil {
			return nil, fmt.Errorf("attributes[%d].value: %w", i, err)
		}
		attrs = append(attrs, ast.JSXAttribute{Name: str(am, "name"), Value: val, Spread: boolean(am, "spread")})
	}
	return &ast.JSXElement{Token: tok, Tag: str(m, "tag"), Attributes: attrs, Children: children, SelfClosing: boolean(m, "selfClosing")}, nil
}

func decodeFunctionDeclaration(tok token.Token, m map[string]json.RawMessage) (ast.Node, error) {
	params, err := decodeParams(m, "params")
	if err != nil {
		return nil, err
	}
	ret, err := decodeTypeExprField(m, "returnType")
	if err != nil {
		return nil, err
	}
	body, err := decodeBlockField(m, "body")
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDeclaration{
		Token: tok, Name: str(m, "name"), TypeParams: strSlice(m, "typeParams"),
		Params: params, ReturnType: ret, Body: body,
		IsAsync: boolean(m, "isAsync"), IsGenerator: boolean(m, "isGenerator"),
		IsPublic: boolean(m, "isPublic"), IsExtern: boolean(m, "isExtern"),
		VariantOf: str(m, "variantOf"),
	}, nil
}

func decodeTypeDeclaration(tok token.Token, m map[string]json.RawMessage) (ast.Node, error) {
	var variants []ast.VariantDef
	for i, r := range rawSlice(m, "variants") {
		var vm map[string]json.RawMessage
		if err := json.Unmarshal(r, &vm); err != nil {
			return nil, fmt.Errorf("variants[%d]: %w", i, err)
		}
		order := strSlice(vm, "order")
		rawFields := rawMap(vm, "fields")
		fields := make(map[string]ast.TypeExpr, len(rawFields))
		for k, fr := range rawFields {
			te, err := decodeTypeExprRaw(fr)
			if err != nil {
				return nil, fmt.Errorf("variants[%d].fields[%q]: %w", i, k, err)
			}
			fields[k] = te
		}
		variants = append(variants, ast.VariantDef{Name: str(vm, "name"), Fields: fields, Order: order})
	}
	return &ast.TypeDeclaration{Token: tok, Name: str(m, "name"), TypeParams: strSlice(m, "typeParams"), Variants: variants}, nil
}

func decodeImplDeclaration(tok token.Token, m map[string]json.RawMessage) (ast.Node, error) {
	var methods []*ast.FunctionDeclaration
	for i, r := range rawSlice(m, "methods") {
		n, err := decodeNode(r)
		if err != nil {
			return nil, fmt.Errorf("methods[%d]: %w", i, err)
		}
		fd, ok := n.(*ast.FunctionDeclaration)
		if !ok {
			return nil, fmt.Errorf("methods[%d]: node is not a FunctionDeclaration", i)
		}
		methods = append(methods, fd)
	}
	return &ast.ImplDeclaration{Token: tok, TraitName: str(m, "traitName"), TypeName: str(m, "typeName"), Methods: methods}, nil
}

func decodeIfStatement(tok token.Token, m map[string]json.RawMessage) (ast.Node, error) {
	cond, err := decodeExprField(m, "condition")
	if err != nil {
		return nil, err
	}
	consequent, err := decodeBlockField(m, "consequent")
	if err != nil {
		return nil, err
	}
	alternate, err := decodeBlockField(m, "alternate")
	if err != nil {
		return nil, err
	}
	var elifs []ast.ElifClause
	for i, r := range rawSlice(m, "elifs") {
		var em map[string]json.RawMessage
		if err := json.Unmarshal(r, &em); err != nil {
			return nil, fmt.Errorf("elifs[%d]: %w", i, err)
		}
		econd, err := decodeExprField(em, "condition")
		if err != nil {
			return nil, fmt.Errorf("elifs[%d].condition: %w", i, err)
		}
		ebody, err := decodeBlockField(em, "body")
		if err != nil {
			return nil, fmt.Errorf("elifs[%d].body: %w", i, err)
		}
		elifs = append(elifs, ast.ElifClause{Condition: econd, Body: ebody})
	}
	return &ast.IfStatement{Token: tok, Condition: cond, Consequent: consequent, Elifs: elifs, Alternate: alternate}, nil
}

func decodeBlockForm(tok token.Token, m map[string]json.RawMessage) (ast.Node, error) {
	stmts, err := decodeStmtList(m, "statements")
	if err != nil {
		return nil, err
	}
	kind, err := decodeBlockKind(str(m, "kind"))
	if err != nil {
		return nil, err
	}
	return &ast.BlockForm{Token: tok, Kind: kind, Name: str(m, "name"), Statements: stmts}, nil
}

func decodeBlockKind(s string) (ast.BlockKind, error) {
	switch s {
	case "server":
		return ast.BlockServer, nil
	case "client":
		return ast.BlockClient, nil
	case "shared":
		return ast.BlockShared, nil
	case "data":
		return ast.BlockData, nil
	case "test":
		return ast.BlockTest, nil
	case "bench":
		return ast.BlockBench, nil
	default:
		return 0, fmt.Errorf("unknown block kind %q", s)
	}
}

func decodePluginDeclaration(tok token.Token, m map[string]json.RawMessage) (ast.Node, error) {
	params, err := decodeParams(m, "params")
	if err != nil {
		return nil, err
	}
	ret, err := decodeTypeExprField(m, "returnType")
	if err != nil {
		return nil, err
	}
	body, err := decodeBlockField(m, "body")
	if err != nil {
		return nil, err
	}
	init, err := decodeExprField(m, "init")
	if err != nil {
		return nil, err
	}
	props, err := decodeParams(m, "props")
	if err != nil {
		return nil, err
	}
	bodyExpr, err := decodeExprField(m, "bodyExpr")
	if err != nil {
		return nil, err
	}
	config, err := decodeExprMap(m, "config")
	if err != nil {
		return nil, err
	}
	var columns []ast.ColumnDef
	for i, r := range rawSlice(m, "columns") {
		var cm map[string]json.RawMessage
		if err := json.Unmarshal(r, &cm); err != nil {
			return nil, fmt.Errorf("columns[%d]: %w", i, err)
		}
		ct, err := decodeTypeExprField(cm, "type")
		if err != nil {
			return nil, fmt.Errorf("columns[%d].type: %w", i, err)
		}
		columns = append(columns, ast.ColumnDef{Name: str(cm, "name"), Type: ct})
	}
	return &ast.PluginDeclaration{
		Token: tok, Kind: ast.PluginKind(str(m, "kind")), Name: str(m, "name"),
		Method: str(m, "method"), Path: str(m, "path"), Params: params, ReturnType: ret, Body: body,
		Init: init, Props: props, BodyExpr: bodyExpr, Columns: columns, Config: config,
	}, nil
}
