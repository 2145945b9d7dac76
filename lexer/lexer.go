package lexer

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	mlcompiler "github.com/nihei9/maleeni/compiler"
	mldriver "github.com/nihei9/maleeni/driver"
	mlspec "github.com/nihei9/maleeni/spec"
)

const (
	kindNameReservedWord = "reservedword"
	kindNameIdentifier   = "identifier"
	kindNameNumber       = "number"
	kindNameString       = "string"
	kindNameSymbol       = "symbol"
	kindNameWhiteSpace   = "white_space"
)

// symbolLexemes lists every symbol lexeme, longest first so that compound
// operators win over their single-character prefixes.
var symbolLexemes = []string{
	"<<", ">>", "<=", ">=", "==", "!=", "||",
	"(", ")", "[", "]", ",", ";", "+", "-", "*", "/", "=", "{", "}", "<", ">",
}

func genLexSpec() *mlspec.LexSpec {
	escaped := make([]string, len(symbolLexemes))
	for i, lexeme := range symbolLexemes {
		escaped[i] = mlspec.EscapePattern(lexeme)
	}

	return &mlspec.LexSpec{
		Name: "cppiler",
		Entries: []*mlspec.LexEntry{
			{
				Kind:    mlspec.LexKindName(kindNameReservedWord),
				Pattern: mlspec.LexPattern(`#include|int|float|void|return|if|while|cin|cout|continue|break|using|iostream|namespace|std|main`),
			},
			{
				Kind:    mlspec.LexKindName(kindNameIdentifier),
				Pattern: mlspec.LexPattern(`[a-zA-Z][a-zA-Z0-9]*`),
			},
			{
				Kind:    mlspec.LexKindName(kindNameNumber),
				Pattern: mlspec.LexPattern(`[0-9]+`),
			},
			{
				Kind:    mlspec.LexKindName(kindNameString),
				Pattern: mlspec.LexPattern(`"[^"]*"`),
			},
			{
				Kind:    mlspec.LexKindName(kindNameSymbol),
				Pattern: mlspec.LexPattern(strings.Join(escaped, "|")),
			},
			{
				Kind: mlspec.LexKindName(kindNameWhiteSpace),
				// The pattern syntax has no \t or \n escapes; embed the
				// characters themselves.
				Pattern: mlspec.LexPattern("[ \t\n]+"),
			},
		},
	}
}

var (
	compileOnce sync.Once
	compiled    *mlspec.CompiledLexSpec
	compileErr  error
)

// compiledSpec compiles the lexical specification once per process. The
// compiled spec is immutable, so sharing it across lexers is safe.
func compiledSpec() (*mlspec.CompiledLexSpec, error) {
	compileOnce.Do(func() {
		clspec, err, cErrs := mlcompiler.Compile(genLexSpec(), mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax))
		if err != nil {
			if len(cErrs) > 0 {
				var b strings.Builder
				fmt.Fprintf(&b, "%v", cErrs[0].Cause)
				for _, cErr := range cErrs[1:] {
					fmt.Fprintf(&b, "; %v", cErr.Cause)
				}
				compileErr = fmt.Errorf("invalid lexical specification: %v", b.String())
				return
			}
			compileErr = err
			return
		}
		compiled = clspec
	})
	return compiled, compileErr
}

// LexicalError reports input the tokenizer cannot match against any lexeme
// pattern.
type LexicalError struct {
	Literal string
	Offset  int
	Row     int
	Col     int
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error: invalid token %#v at offset %v", e.Literal, e.Offset)
}

// Lex tokenizes a whole source buffer. Whitespace is dropped, every other
// lexeme becomes a Token carrying its byte offset, and the stream is
// terminated by an end-marker token. Byte offsets are exact because the
// underlying lexer yields every lexeme, whitespace included.
func Lex(src []byte) ([]*Token, error) {
	clspec, err := compiledSpec()
	if err != nil {
		return nil, err
	}
	d, err := mldriver.NewLexer(mldriver.NewLexSpec(clspec), bytes.NewReader(src))
	if err != nil {
		return nil, err
	}

	var toks []*Token
	offset := 0
	for {
		tok, err := d.Next()
		if err != nil {
			return nil, err
		}
		if tok.EOF {
			toks = append(toks, EOFToken(offset))
			return toks, nil
		}
		literal := string(tok.Lexeme)
		if tok.Invalid {
			return nil, &LexicalError{
				Literal: literal,
				Offset:  offset,
				Row:     tok.Row,
				Col:     tok.Col,
			}
		}
		kind := kindOf(clspec.KindNames[tok.KindID])
		if kind != KindInvalid {
			toks = append(toks, &Token{
				Kind:    kind,
				Literal: literal,
				Offset:  offset,
				Row:     tok.Row,
				Col:     tok.Col,
			})
		}
		offset += len(literal)
	}
}

func kindOf(name mlspec.LexKindName) TokenKind {
	switch string(name) {
	case kindNameReservedWord:
		return KindReservedWord
	case kindNameIdentifier:
		return KindIdentifier
	case kindNameNumber:
		return KindNumber
	case kindNameString:
		return KindString
	case kindNameSymbol:
		return KindSymbol
	default:
		// white_space and the nil kind produce no token.
		return KindInvalid
	}
}
