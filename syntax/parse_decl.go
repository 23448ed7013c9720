package syntax

// program := block '.' ;
func (p *Parser) parseProgram() *SyntaxNode {
	node := p.enter(NODE_PROGRAM)
	defer p.leave()

	node.add(p.parseBlock())
	node.add(p.want(TOK_PERIOD))

	if !p.has(TOK_EOF) {
		p.reject("end of file after `.`")
	}

	return node
}

// block := {const_decl | var_decl | func_decl} statement ;
func (p *Parser) parseBlock() *SyntaxNode {
	node := p.enter(NODE_BLOCK)
	defer p.leave()

	for {
		switch p.tok.Kind {
		case TOK_CONST:
			node.add(p.parseConstDecl())
			continue
		case TOK_VAR:
			node.add(p.parseVarDecl())
			continue
		case TOK_FUNCTION:
			node.add(p.parseFuncDecl())
			continue
		}

		break
	}

	node.add(p.parseStatement())
	return node
}

// const_decl := 'const' ident '=' number {',' ident '=' number} ';' ;
func (p *Parser) parseConstDecl() *SyntaxNode {
	node := p.enter(NODE_CONST_DECL)
	defer p.leave()

	node.add(p.want(TOK_CONST))

	for {
		node.add(p.wantIdent())
		node.add(p.want(TOK_EQ))

		if !p.has(TOK_NUMBER) {
			p.reject("number")
		}
		node.add(p.consume())

		if !p.has(TOK_COMMA) {
			break
		}
		node.add(p.consume())
	}

	node.add(p.want(TOK_SEMI))
	return node
}

// var_decl := 'var' ident {',' ident} ';' ;
func (p *Parser) parseVarDecl() *SyntaxNode {
	node := p.enter(NODE_VAR_DECL)
	defer p.leave()

	node.add(p.want(TOK_VAR))
	p.parseIdentList(node)
	node.add(p.want(TOK_SEMI))

	return node
}

// func_decl := 'function' ident '(' [ident {',' ident}] ')' block ';' ;
func (p *Parser) parseFuncDecl() *SyntaxNode {
	node := p.enter(NODE_FUNC_DECL)
	defer p.leave()

	node.add(p.want(TOK_FUNCTION))
	node.add(p.wantIdent())
	node.add(p.want(TOK_LPAREN))

	if p.has(TOK_IDENT) {
		p.parseIdentList(node)
	}

	node.add(p.want(TOK_RPAREN))
	node.add(p.parseBlock())
	node.add(p.want(TOK_SEMI))

	return node
}

// parseIdentList parses a comma separated list of identifiers, appending every
// token it consumes to node.
func (p *Parser) parseIdentList(node *SyntaxNode) {
	for {
		node.add(p.wantIdent())

		if !p.has(TOK_COMMA) {
			return
		}
		node.add(p.consume())
	}
}
