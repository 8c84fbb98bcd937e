package grammar_test

import (
	"layer/grammar"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens(t *testing.T) {
	tokens, err := grammar.Tokens("t.layer", "cvar x = 1.5 # note\nwrite(\"hi\", x)\n")
	require.NoError(t, err)

	kinds := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []string{
		"Keyword", "Ident", "Operator", "Number", "Comment",
		"Keyword", "Punctuation", "String", "Punctuation", "Ident", "Punctuation",
	}, kinds)

	assert.Equal(t, "1.5", tokens[3].Value)
	assert.Equal(t, "# note", tokens[4].Value)
	assert.Equal(t, 2, tokens[7].Pos.Line)
	assert.Equal(t, 7, tokens[7].Pos.Column)
}

func TestTokensKeepsPrefixBeforeError(t *testing.T) {
	tokens, err := grammar.Tokens("t.layer", "cvar x = \"open")
	require.Error(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, "=", tokens[2].Value)
}
