package lexer

import "github.com/funvibe/dtlc/internal/token"

// TokenizeLine runs the Lexer to exhaustion over one logical line and
// returns its tokens, including the trailing EOF. Lines in this grammar are
// short (a single annotation or definition), so buffering the whole line
// up front is simpler than the whole-file streaming/lookahead buffer a
// bigger grammar would need.
func TokenizeLine(input string, startLine int) []token.Token {
	l := New(input, startLine)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return toks
}
