package sqlgen

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// Lexer tokenizes Oracle SQL well enough to find statement boundaries and to
// recognize simple statements. Anything it does not know becomes an Other
// token.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `--[^\r\n]*`},
	{Name: "MultilineComment", Pattern: `/\*[^*]*\*+([^/*][^*]*\*+)*/`},
	{Name: "String", Pattern: `'(''|[^'])*'`},
	{Name: "QuotedIdent", Pattern: `"(""|[^"])*"`},
	{Name: "Number", Pattern: `\d+(\.\d*)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_$#]*`},
	{Name: "Punct", Pattern: `[(),.;]`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Other", Pattern: `\S`},
})

// Split splits sql on semicolons outside of literals, quoted identifiers and
// comments. Segments holding only whitespace or comments are dropped.
func Split(sql string) ([]string, error) {
	lex, err := Lexer.Lex("", strings.NewReader(sql))
	if err != nil {
		return nil, errors.Wrap(err, "failed to tokenize sql")
	}

	symbols := Lexer.Symbols()
	ignored := map[lexer.TokenType]bool{
		symbols["Whitespace"]:       true,
		symbols["Comment"]:          true,
		symbols["MultilineComment"]: true,
	}

	var (
		out        []string
		start      int
		hasContent bool
	)

	flush := func(end int) {
		if hasContent {
			out = append(out, strings.TrimSpace(sql[start:end]))
		}
		hasContent = false
	}

	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, errors.Wrap(err, "failed to tokenize sql")
		}
		if tok.EOF() {
			break
		}

		switch {
		case tok.Type == symbols["Punct"] && tok.Value == ";":
			flush(tok.Pos.Offset)
			start = tok.Pos.Offset + 1
		case !ignored[tok.Type]:
			hasContent = true
		}
	}
	flush(len(sql))

	return out, nil
}

// splitLines splits sql on lines holding nothing but delimiter, as SQL*Plus
// does with "/". Empty statements are dropped.
func splitLines(sql, delimiter string) []string {
	var (
		parts   []string
		current []string
	)

	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}

	for _, line := range strings.Split(sql, "\n") {
		if strings.TrimSpace(line) == delimiter {
			add(strings.Join(current, "\n"))
			current = current[:0]
			continue
		}
		current = append(current, line)
	}
	add(strings.Join(current, "\n"))

	return parts
}
