package lsp

import (
	"unicode/utf8"

	"layer/grammar"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

const (
	tokenKeyword = iota
	tokenVariable
	tokenNumber
	tokenString
	tokenOperator
	tokenComment
)

const (
	modDeclaration = 1 << iota
	modReadonly
)

var tokenKinds = map[string]int{
	"Keyword":  tokenKeyword,
	"Ident":    tokenVariable,
	"Number":   tokenNumber,
	"String":   tokenString,
	"Operator": tokenOperator,
	"Comment":  tokenComment,
}

// collectSemanticTokens classifies the lexer stream of text. Tokens up to a
// lexing error are still returned so partially typed documents highlight.
func collectSemanticTokens(filename, text string) []SemanticToken {
	raw, _ := grammar.Tokens(filename, text)

	var (
		tokens []SemanticToken
		prev   string
	)
	for _, tok := range raw {
		kind, ok := tokenKinds[tok.Kind]
		if !ok {
			continue
		}

		mods := 0
		if kind == tokenVariable {
			switch prev {
			case "cvar", "loop":
				mods = modDeclaration
			case "ivar":
				mods = modDeclaration | modReadonly
			}
		}
		if kind != tokenComment {
			prev = tok.Value
		}

		tokens = append(tokens, SemanticToken{
			Line:           uint32(tok.Pos.Line - 1),
			StartChar:      uint32(tok.Pos.Column - 1),
			Length:         uint32(utf8.RuneCountInString(tok.Value)),
			TokenType:      kind,
			TokenModifiers: mods,
		})
	}

	return tokens
}

// encodeSemanticTokens packs tokens into the LSP wire format using
// delta-line and delta-start compression.
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return data
}
