package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Token is one lexeme tagged with the name of the lexer rule that matched it.
type Token struct {
	Kind  string
	Value string
	Pos   lexer.Position
}

var ruleNames = func() map[lexer.TokenType]string {
	names := make(map[lexer.TokenType]string)
	for name, typ := range LayerLexer.Symbols() {
		names[typ] = name
	}
	return names
}()

// Tokens lexes source and returns every token except whitespace, comments
// included. When lexing fails the tokens before the failure are returned
// along with the error.
func Tokens(filename, source string) ([]Token, error) {
	lex, err := LayerLexer.LexString(filename, source)
	if err != nil {
		return nil, err
	}

	var tokens []Token
	for {
		tok, err := lex.Next()
		if err != nil {
			return tokens, err
		}
		if tok.EOF() {
			return tokens, nil
		}

		kind := ruleNames[tok.Type]
		if kind == "Whitespace" {
			continue
		}
		tokens = append(tokens, Token{Kind: kind, Value: tok.Value, Pos: tok.Pos})
	}
}
