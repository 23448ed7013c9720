package syntax

// expression := ['+' | '-'] term {('+' | '-') term} ;
func (p *Parser) parseExpression() *SyntaxNode {
	node := p.enter(NODE_EXPRESSION)
	defer p.leave()

	// unary sign: at most once, before the first term
	if p.hasOneOf(TOK_PLUS, TOK_MINUS) {
		node.add(p.consume())
	}

	node.add(p.parseTerm())

	for p.hasOneOf(TOK_PLUS, TOK_MINUS) {
		node.add(p.consume())
		node.add(p.parseTerm())
	}

	return node
}

// term := factor {('*' | '/') factor} ;
func (p *Parser) parseTerm() *SyntaxNode {
	node := p.enter(NODE_TERM)
	defer p.leave()

	node.add(p.parseFactor())

	for p.hasOneOf(TOK_MULT, TOK_DIV) {
		node.add(p.consume())
		node.add(p.parseFactor())
	}

	return node
}

// factor := ident ['(' [expression {',' expression}] ')']
//         | number
//         | '(' expression ')' ;
//
// An identifier followed by `(` is a call; otherwise it is a bare reference.
func (p *Parser) parseFactor() *SyntaxNode {
	node := p.enter(NODE_FACTOR)
	defer p.leave()

	switch p.tok.Kind {
	case TOK_IDENT:
		node.add(p.consume())

		if p.has(TOK_LPAREN) {
			node.add(p.consume())

			if !p.has(TOK_RPAREN) {
				for {
					node.add(p.parseExpression())

					if !p.has(TOK_COMMA) {
						break
					}
					node.add(p.consume())
				}
			}

			node.add(p.want(TOK_RPAREN))
		}
	case TOK_NUMBER:
		node.add(p.consume())
	case TOK_LPAREN:
		node.add(p.consume())
		node.add(p.parseExpression())
		node.add(p.want(TOK_RPAREN))
	default:
		p.reject("identifier, number, or `(`")
	}

	return node
}
