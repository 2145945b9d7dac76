package lexer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
)

// TokenKind is the lexical class of a token. The set is closed; the
// classifier and the parsing engine match it exhaustively.
type TokenKind int

const (
	KindInvalid TokenKind = iota
	KindReservedWord
	KindIdentifier
	KindNumber
	KindString
	KindSymbol
	KindEOF
)

var kindNames = [...]string{
	KindInvalid:      "invalid",
	KindReservedWord: "reservedword",
	KindIdentifier:   "identifier",
	KindNumber:       "number",
	KindString:       "string",
	KindSymbol:       "symbol",
	KindEOF:          "eof",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Token is one lexeme of the source text. Offset is the byte offset of the
// first character; Row and Col are 0-based and carried through from the
// underlying lexer for convenience. The core never mutates tokens.
type Token struct {
	Kind    TokenKind
	Literal string
	Offset  int
	Row     int
	Col     int
}

func (t *Token) String() string {
	return fmt.Sprintf("[%v, %v]", t.Kind, t.Literal)
}

// EOFToken builds the end marker the parsing engine interprets as the
// terminal $.
func EOFToken(offset int) *Token {
	return &Token{
		Kind:    KindEOF,
		Literal: "$",
		Offset:  offset,
	}
}

// TableEntry is one row of the token table: a distinct lexeme together with
// a truncated SHA-256 hash of its literal.
type TableEntry struct {
	Kind    TokenKind
	Literal string
	Hash    string
}

// kindOrder fixes the token table's grouping order.
var kindOrder = map[TokenKind]int{
	KindString:       0,
	KindNumber:       1,
	KindSymbol:       2,
	KindIdentifier:   3,
	KindReservedWord: 4,
}

// TokenTable builds a deduplicated inventory of the given tokens, grouped by
// kind and sorted by literal within each group.
func TokenTable(toks []*Token) []*TableEntry {
	seen := map[TokenKind]map[string]struct{}{}
	var entries []*TableEntry
	for _, tok := range toks {
		if _, ok := kindOrder[tok.Kind]; !ok {
			continue
		}
		if _, ok := seen[tok.Kind][tok.Literal]; ok {
			continue
		}
		if seen[tok.Kind] == nil {
			seen[tok.Kind] = map[string]struct{}{}
		}
		seen[tok.Kind][tok.Literal] = struct{}{}
		entries = append(entries, &TableEntry{
			Kind:    tok.Kind,
			Literal: tok.Literal,
			Hash:    literalHash(tok.Literal),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if kindOrder[entries[i].Kind] != kindOrder[entries[j].Kind] {
			return kindOrder[entries[i].Kind] < kindOrder[entries[j].Kind]
		}
		return entries[i].Literal < entries[j].Literal
	})
	return entries
}

func literalHash(literal string) string {
	sum := sha256.Sum256([]byte(literal))
	return hex.EncodeToString(sum[:])[:8]
}
