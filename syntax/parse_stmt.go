package syntax

// statement := ident ':=' expression
//            | 'begin' statement {';' statement} 'end'
//            | 'if' condition 'then' statement
//            | 'while' condition 'do' statement
//            | 'return' expression
//            | 'write' expression
//            | 'writeln'
//            | ;
//
// The alternative is chosen by the current token alone.  Any other token
// begins the empty statement, which consumes nothing.
func (p *Parser) parseStatement() *SyntaxNode {
	node := p.enter(NODE_STATEMENT)
	defer p.leave()

	switch p.tok.Kind {
	case TOK_IDENT:
		node.add(p.consume())
		node.add(p.want(TOK_ASSIGN))
		node.add(p.parseExpression())
	case TOK_BEGIN:
		node.add(p.consume())

		for {
			node.add(p.parseStatement())

			if !p.has(TOK_SEMI) {
				break
			}
			node.add(p.consume())
		}

		node.add(p.want(TOK_END))
	case TOK_IF:
		node.add(p.consume())
		node.add(p.parseCondition())
		node.add(p.want(TOK_THEN))
		node.add(p.parseStatement())
	case TOK_WHILE:
		node.add(p.consume())
		node.add(p.parseCondition())
		node.add(p.want(TOK_DO))
		node.add(p.parseStatement())
	case TOK_RETURN, TOK_WRITE:
		node.add(p.consume())
		node.add(p.parseExpression())
	case TOK_WRITELN:
		node.add(p.consume())
	}

	return node
}

// relOps are the relational operators allowed between two expressions in a
// condition.
var relOps = []int{TOK_EQ, TOK_NEQ, TOK_LT, TOK_GT, TOK_LTEQ, TOK_GTEQ}

// condition := 'odd' expression | expression rel_op expression ;
// rel_op := '=' | '<>' | '<' | '>' | '<=' | '>=' ;
func (p *Parser) parseCondition() *SyntaxNode {
	node := p.enter(NODE_CONDITION)
	defer p.leave()

	if p.has(TOK_ODD) {
		node.add(p.consume())
		node.add(p.parseExpression())
		return node
	}

	node.add(p.parseExpression())

	if !p.hasOneOf(relOps...) {
		p.reject("relational operator")
	}
	node.add(p.consume())

	node.add(p.parseExpression())
	return node
}
