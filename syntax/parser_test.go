package syntax

import (
	"errors"
	"strings"
	"testing"

	"github.com/kr/pretty"

	"pl0dash/report"
)

func parseString(src string, opts ...ParserOption) (*SyntaxTree, error) {
	return NewParser(NewLexer(strings.NewReader(src)), opts...).Parse()
}

// shape renders a node as a compact S-expression: non-terminals as
// `Kind(children...)` and terminals as their source text.
func shape(n *SyntaxNode) string {
	if n.IsTerminal() {
		return n.Token.Value
	}

	parts := make([]string, len(n.Children))
	for i, child := range n.Children {
		parts[i] = shape(child)
	}

	return n.Kind.String() + "(" + strings.Join(parts, " ") + ")"
}

func TestParseShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Empty Program",
			input: ".",
			want:  "Program(Block(Statement()) .)",
		},
		{
			name:  "Nested Function",
			input: "function f() var x; begin x := 1 end; write x.",
			want: "Program(Block(FuncDecl(function f ( ) Block(VarDecl(var x ;) " +
				"Statement(begin Statement(x := Expression(Term(Factor(1)))) end)) ;) " +
				"Statement(write Expression(Term(Factor(x))))) .)",
		},
		{
			name:  "Declarations",
			input: "const a = 1, b = 2; var x, y; writeln.",
			want:  "Program(Block(ConstDecl(const a = 1 , b = 2 ;) VarDecl(var x , y ;) Statement(writeln)) .)",
		},
		{
			name:  "Function Parameters",
			input: "function add(a, b) return a + b; .",
			want: "Program(Block(FuncDecl(function add ( a , b ) " +
				"Block(Statement(return Expression(Term(Factor(a)) + Term(Factor(b))))) ;) Statement()) .)",
		},
		{
			name:  "Bare Reference",
			input: "write foo.",
			want:  "Program(Block(Statement(write Expression(Term(Factor(foo))))) .)",
		},
		{
			name:  "Call Without Arguments",
			input: "write foo().",
			want:  "Program(Block(Statement(write Expression(Term(Factor(foo ( )))))) .)",
		},
		{
			name:  "Call With Arguments",
			input: "write f(1, x * 2).",
			want: "Program(Block(Statement(write Expression(Term(Factor(f ( " +
				"Expression(Term(Factor(1))) , Expression(Term(Factor(x) * Factor(2))) )))))) .)",
		},
		{
			name:  "Unary Sign",
			input: "write -x + 1.",
			want:  "Program(Block(Statement(write Expression(- Term(Factor(x)) + Term(Factor(1))))) .)",
		},
		{
			name:  "Parenthesized",
			input: "write (1 + 2) / 3.",
			want: "Program(Block(Statement(write Expression(Term(Factor(( Expression(Term(Factor(1)) + " +
				"Term(Factor(2))) )) / Factor(3))))) .)",
		},
		{
			name:  "Odd Condition",
			input: "if odd x then writeln.",
			want:  "Program(Block(Statement(if Condition(odd Expression(Term(Factor(x)))) then Statement(writeln))) .)",
		},
		{
			name:  "Relational Condition",
			input: "while x <> 0 do x := x - 1.",
			want: "Program(Block(Statement(while Condition(Expression(Term(Factor(x))) <> Expression(Term(Factor(0)))) " +
				"do Statement(x := Expression(Term(Factor(x)) - Term(Factor(1)))))) .)",
		},
		{
			name:  "Empty Statements In Begin",
			input: "begin ; writeln; end.",
			want:  "Program(Block(Statement(begin Statement() ; Statement(writeln) ; Statement() end)) .)",
		},
		{
			name:  "If With Empty Body",
			input: "if x = 1 then .",
			want:  "Program(Block(Statement(if Condition(Expression(Term(Factor(x))) = Expression(Term(Factor(1)))) then Statement())) .)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := parseString(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}

			if got := shape(tree.Root); got != tt.want {
				t.Errorf("Parse(%q):\n got: %s\nwant: %s", tt.input, got, tt.want)
			}
		})
	}
}

func findFactors(n *SyntaxNode) []*SyntaxNode {
	var factors []*SyntaxNode
	n.walk(func(m *SyntaxNode) {
		if m.Kind == NODE_FACTOR {
			factors = append(factors, m)
		}
	})

	return factors
}

func TestBareReferenceAndCall(t *testing.T) {
	tests := []struct {
		input    string
		isCall   bool
		argCount int
	}{
		{"write foo.", false, 0},
		{"write foo().", true, 0},
		{"write foo(1).", true, 1},
		{"write foo(1, 2, 3).", true, 3},
		{"write 12.", false, 0},
		{"write (foo).", false, 0},
	}

	for _, tt := range tests {
		tree, err := parseString(tt.input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tt.input, err)
		}

		// the outermost factor is always the first found in pre-order
		factor := findFactors(tree.Root)[0]

		if factor.IsCall() != tt.isCall {
			t.Errorf("%q: IsCall() = %v, want %v", tt.input, factor.IsCall(), tt.isCall)
		}

		if n := len(factor.Args()); n != tt.argCount {
			t.Errorf("%q: got %d args, want %d", tt.input, n, tt.argCount)
		}
	}
}

const sampleProgram = `
const max = 100;
var n, sum;

/* sums the odd numbers below max */
function isOdd(x)
begin
	if odd x then return 1;
	return 0
end;

begin
	n := 0;
	sum := 0;
	while n < max do
	begin
		if isOdd(n) = 1 then sum := sum + n;
		n := n + 1
	end;
	write sum;
	writeln
end.
`

func tokenStrings(toks []*Token) []string {
	result := make([]string, len(toks))
	for i, tok := range toks {
		result[i] = KindString(tok.Kind) + ":" + tok.Value
	}

	return result
}

func TestTokenRoundTrip(t *testing.T) {
	inputs := []string{
		".",
		"write foo(1, -2).",
		"function f() var x; begin x := 1 end; write x.",
		sampleProgram,
	}

	for _, input := range inputs {
		toks, err := Tokenize(strings.NewReader(input))
		if err != nil {
			t.Fatalf("Tokenize(%q) failed: %v", input, err)
		}

		tree, err := parseString(input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", input, err)
		}

		want := tokenStrings(toks)
		got := tokenStrings(tree.Terminals())

		if diff := pretty.Diff(want, got); len(diff) > 0 {
			t.Errorf("terminals of %q differ from its tokens:\n%s", input, strings.Join(diff, "\n"))
		}
	}
}

func TestWhitespaceAndCommentInvariance(t *testing.T) {
	compact := "var x;begin x:=x+1;write x end."
	spread := "/* header */\nvar   x ;\n\tbegin\n x /* inline */ :=\n x\n+ 1 ; write x\nend\n.\n/* trailer */"

	a, err := parseString(compact)
	if err != nil {
		t.Fatal(err)
	}

	b, err := parseString(spread)
	if err != nil {
		t.Fatal(err)
	}

	if shape(a.Root) != shape(b.Root) {
		t.Errorf("trees differ:\n%s\n%s", shape(a.Root), shape(b.Root))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		line    int
		col     int
	}{
		{"Missing Period", "write x", ErrReachedEnd, 0, 7},
		{"Empty Input", "", ErrReachedEnd, 0, 0},
		{"Unclosed Begin", "begin x := 1", ErrReachedEnd, 0, 12},
		{"Equals Instead Of Assign", "var x;\nx = 1.", ErrSyntax, 1, 2},
		{"Token After Period", "write x. y", ErrSyntax, 0, 9},
		{"Second Period", "writeln..", ErrSyntax, 0, 8},
		{"Missing Relational Operator", "if x then writeln.", ErrSyntax, 0, 5},
		{"Const Needs Number", "const a = b;.", ErrSyntax, 0, 10},
		{"Var Needs Identifier", "var ;.", ErrSyntax, 0, 4},
		{"Trailing Parameter Comma", "function f(a,) ; .", ErrSyntax, 0, 13},
		{"Unclosed Paren", "write (1.", ErrSyntax, 0, 8},
		{"Missing Operand", "write 1 +.", ErrSyntax, 0, 9},
		{"Double Unary Sign", "write --1.", ErrSyntax, 0, 7},
		{"Function Missing Semicolon", "function f() writeln .", ErrSyntax, 0, 21},
		{"Statement Junk", "begin writeln writeln end.", ErrSyntax, 0, 14},
		{"Semicolon Closes Empty Function", "function f(); var x; begin x := 1 end; write x.", ErrSyntax, 0, 37},
		{"Lexical Error", "write x # 1.", ErrUndefinedToken, 0, 8},
		{"Unterminated Comment", "write x /* .", ErrCommentNotTerminated, 0, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := parseString(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want %v", tt.input, tt.wantErr)
			}

			if tree != nil {
				t.Errorf("Parse(%q) returned a partial tree", tt.input)
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}

			span := report.SpanOf(err)
			if span == nil {
				t.Fatalf("error %v carries no position", err)
			}

			if span.StartLine != tt.line || span.StartCol != tt.col {
				t.Errorf("got error at %d:%d, want %d:%d", span.StartLine, span.StartCol, tt.line, tt.col)
			}
		})
	}
}

func TestSyntaxErrorMessage(t *testing.T) {
	_, err := parseString("var x;\nx = 1.")
	if err == nil {
		t.Fatal("expected an error")
	}

	want := "2:3: expected `:=` but found `=`"
	if err.Error() != want {
		t.Errorf("got message %q, want %q", err.Error(), want)
	}
}

func TestNestingDepth(t *testing.T) {
	nested := func(n int) string {
		return "write " + strings.Repeat("(", n) + "1" + strings.Repeat(")", n) + "."
	}

	// every parenthesis level adds an Expression, a Term, and a Factor
	if _, err := parseString(nested(50)); err != nil {
		t.Errorf("50 levels with the default depth failed: %v", err)
	}

	_, err := parseString(nested(50), WithMaxDepth(64))
	if !errors.Is(err, ErrNestingTooDeep) {
		t.Errorf("got error %v, want %v", err, ErrNestingTooDeep)
	}

	_, err = parseString(nested(1000))
	if !errors.Is(err, ErrNestingTooDeep) {
		t.Errorf("got error %v, want %v", err, ErrNestingTooDeep)
	}

	begins := strings.Repeat("begin ", 300) + strings.Repeat("end ", 300) + "."
	_, err = parseString(begins)
	if !errors.Is(err, ErrNestingTooDeep) {
		t.Errorf("got error %v, want %v", err, ErrNestingTooDeep)
	}

	if _, err := parseString(begins, WithMaxDepth(400)); err != nil {
		t.Errorf("300 nested blocks with depth 400 failed: %v", err)
	}
}

func TestTreeDepth(t *testing.T) {
	tree, err := parseString("write (1).")
	if err != nil {
		t.Fatal(err)
	}

	// Program Block Statement Expression Term Factor Expression Term Factor Terminal
	if d := tree.Root.Depth(); d != 10 {
		t.Errorf("got depth %d, want 10", d)
	}
}

func TestParseOnce(t *testing.T) {
	p := NewParser(NewLexer(strings.NewReader(".")))

	if _, err := p.Parse(); err != nil {
		t.Fatal(err)
	}

	if _, err := p.Parse(); err == nil {
		t.Error("second Parse succeeded")
	}
}

func TestNodeSpan(t *testing.T) {
	tree, err := parseString("var x;\nwrite x + 1.")
	if err != nil {
		t.Fatal(err)
	}

	want := report.TextSpan{StartLine: 0, StartCol: 0, EndLine: 1, EndCol: 12}
	if got := tree.Root.Span(); got == nil || *got != want {
		t.Errorf("got span %+v, want %+v", got, want)
	}

	empty, err := parseString(".")
	if err != nil {
		t.Fatal(err)
	}

	stmt := empty.Root.Children[0].Children[0]
	if stmt.Kind != NODE_STATEMENT || stmt.Span() != nil {
		t.Errorf("empty statement should have no span, got %+v", stmt.Span())
	}
}
