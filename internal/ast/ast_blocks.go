package ast

import "github.com/tova-lang/tova/internal/token"

// BlockKind is one of the fixed outer declaration frames spec.md's
// GLOSSARY names: "a fixed set of outer declaration frames (server,
// client, shared, data, test, bench) inside which only specific
// declarations are legal."
type BlockKind int

const (
	BlockServer BlockKind = iota
	BlockClient
	BlockShared
	BlockData
	BlockTest
	BlockBench
)

func (k BlockKind) String() string {
	switch k {
	case BlockServer:
		return "server"
	case BlockClient:
		return "client"
	case BlockShared:
		return "shared"
	case BlockData:
		return "data"
	case BlockTest:
		return "test"
	case BlockBench:
		return "bench"
	default:
		return "unknown"
	}
}

// BlockForm is a top-level `server { ... }` / `client NameBlock { ... }`
// / `data Schema { ... }` declaration. Name is "" for an anonymous block
// (legal for client/shared; a named server block participates in
// cross-block RPC validation per spec.md §4.7).
type BlockForm struct {
	Token      token.Token
	Kind       BlockKind
	Name       string
	Statements []Statement
}

func (s *BlockForm) Accept(v Visitor)      { v.VisitBlockForm(s) }
func (s *BlockForm) statementNode()        {}
func (s *BlockForm) GetToken() token.Token { return s.Token }

// PluginKind identifies one of the extensible declaration forms legal
// only inside specific block kinds (spec.md §4.7): route/ws/rate_limit
// inside server, state/component inside client, db inside data. The set
// is open — new kinds register with the block-plugin registry
// (internal/analyzer/plugins.go) rather than requiring a new AST node.
type PluginKind string

const (
	PluginRoute     PluginKind = "route"
	PluginState     PluginKind = "state"
	PluginComponent PluginKind = "component"
	PluginWS        PluginKind = "ws"
	PluginDB        PluginKind = "db"
	PluginRateLimit PluginKind = "rate_limit"
)

// PluginDeclaration is one extensible nested declaration inside a block
// form: `route GET "/users" (req) { ... }`, `state count = 0`,
// `component Card(props) { <div/> }`, `ws Chat(conn) { ... }`,
// `db Users { id: Int, name: String }`, `rate_limit Api { rps: 10 }`.
//
// All shapes are folded into one node with kind-specific optional fields
// rather than one Go type per plugin kind, mirroring how the block
// plugin registry dispatches on a kind tag instead of a node type switch
// (spec.md §9 redesign flag: "typed trait ... registered in a static map
// at startup").
type PluginDeclaration struct {
	Token token.Token
	Kind  PluginKind
	Name  string

	// route: Method + Path + Params + ReturnType + Body
	Method     string // "GET", "POST", ... ("" for non-route kinds)
	Path       string
	Params     []Param
	ReturnType TypeExpr
	Body       *BlockStatement

	// state: initial value expression
	Init Expression

	// component: props parameter list + JSX body expression
	Props    []Param
	BodyExpr Expression

	// db: column schema
	Columns []ColumnDef

	// rate_limit: key/value config fields
	Config map[string]Expression
}

func (s *PluginDeclaration) Accept(v Visitor)      { v.VisitPluginDeclaration(s) }
func (s *PluginDeclaration) statementNode()        {}
func (s *PluginDeclaration) GetToken() token.Token { return s.Token }

// ColumnDef is one column in a `db` block's schema declaration.
type ColumnDef struct {
	Name string
	Type TypeExpr
}
