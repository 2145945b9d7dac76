package grammar

import "fmt"

// Terminal identifies a terminal symbol of the mini C++ grammar. The grammar
// is fixed, so the whole terminal universe is a closed enumeration rather
// than a symbol table populated at run time.
type Terminal int

const (
	TermNil Terminal = iota
	TermEOF
	TermInclude
	TermUsing
	TermNamespace
	TermStd
	TermInt
	TermFloat
	TermMain
	TermWhile
	TermCin
	TermCout
	TermReturn
	TermZero
	TermLBrace
	TermRBrace
	TermLParen
	TermRParen
	TermSemicolon
	TermComma
	TermAssign
	TermPlus
	TermMinus
	TermStar
	TermEqual
	TermNotEqual
	TermGreaterEqual
	TermLessEqual
	TermShiftRight
	TermShiftLeft
	TermIdentifier
	TermNumber
	TermString

	termCount

	// TermEpsilon labels epsilon leaves in a parse tree. It is not part of
	// the terminal universe and never occupies a parsing-table column.
	TermEpsilon
)

var terminalTexts = [...]string{
	TermNil:          "",
	TermEOF:          "$",
	TermInclude:      "#include",
	TermUsing:        "using",
	TermNamespace:    "namespace",
	TermStd:          "std",
	TermInt:          "int",
	TermFloat:        "float",
	TermMain:         "main",
	TermWhile:        "while",
	TermCin:          "cin",
	TermCout:         "cout",
	TermReturn:       "return",
	TermZero:         "0",
	TermLBrace:       "{",
	TermRBrace:       "}",
	TermLParen:       "(",
	TermRParen:       ")",
	TermSemicolon:    ";",
	TermComma:        ",",
	TermAssign:       "=",
	TermPlus:         "+",
	TermMinus:        "-",
	TermStar:         "*",
	TermEqual:        "==",
	TermNotEqual:     "!=",
	TermGreaterEqual: ">=",
	TermLessEqual:    "<=",
	TermShiftRight:   ">>",
	TermShiftLeft:    "<<",
	TermIdentifier:   "identifier",
	TermNumber:       "number",
	TermString:       "string",
	termCount:        "",
	TermEpsilon:      "epsilon",
}

func (t Terminal) String() string {
	if t < 0 || int(t) >= len(terminalTexts) {
		return fmt.Sprintf("terminal(%d)", int(t))
	}
	return terminalTexts[t]
}

var text2Term = func() map[string]Terminal {
	m := map[string]Terminal{}
	for t := TermEOF; t < termCount; t++ {
		m[terminalTexts[t]] = t
	}
	return m
}()

// TerminalByText resolves a grammar-facing terminal text like "#include" or
// ";". It reports false for texts outside the terminal universe.
func TerminalByText(text string) (Terminal, bool) {
	t, ok := text2Term[text]
	return t, ok
}

// Terminals returns every terminal of the grammar, EOF included, in a fixed
// order.
func Terminals() []Terminal {
	terms := make([]Terminal, 0, int(termCount)-1)
	for t := TermEOF; t < termCount; t++ {
		terms = append(terms, t)
	}
	return terms
}

// NonTerminal identifies a non-terminal symbol of the grammar.
type NonTerminal int

const (
	NtNil NonTerminal = iota
	NtStart
	NtS
	NtN
	NtM
	NtT
	NtV
	NtId
	NtL
	NtZ
	NtOperation
	NtP
	NtO
	NtW
	NtAssign
	NtExpression
	NtK
	NtLoop
	NtInput
	NtF
	NtOutput
	NtH
	NtC

	nonTermCount
)

var nonTerminalTexts = [...]string{
	NtNil:        "",
	NtStart:      "Start",
	NtS:          "S",
	NtN:          "N",
	NtM:          "M",
	NtT:          "T",
	NtV:          "V",
	NtId:         "Id",
	NtL:          "L",
	NtZ:          "Z",
	NtOperation:  "Operation",
	NtP:          "P",
	NtO:          "O",
	NtW:          "W",
	NtAssign:     "Assign",
	NtExpression: "Expression",
	NtK:          "K",
	NtLoop:       "Loop",
	NtInput:      "Input",
	NtF:          "F",
	NtOutput:     "Output",
	NtH:          "H",
	NtC:          "C",
}

func (n NonTerminal) String() string {
	if n < 0 || int(n) >= len(nonTerminalTexts) {
		return fmt.Sprintf("non-terminal(%d)", int(n))
	}
	return nonTerminalTexts[n]
}

// NonTerminals returns every non-terminal in a fixed order, the start symbol
// first.
func NonTerminals() []NonTerminal {
	nts := make([]NonTerminal, 0, int(nonTermCount)-1)
	for n := NtStart; n < nonTermCount; n++ {
		nts = append(nts, n)
	}
	return nts
}

// Symbol is a grammar symbol, terminal or non-terminal, packed into a single
// word. The high bit carries the kind and the low bits carry the enumeration
// number, so symbols are cheap to store, compare, and hash.
type Symbol uint16

const (
	maskKindPart   = uint16(0x8000)
	maskNumberPart = uint16(0x7fff)

	SymbolNil = Symbol(0)
)

var (
	SymbolEOF     = SymbolOfTerminal(TermEOF)
	SymbolEpsilon = SymbolOfTerminal(TermEpsilon)
)

func SymbolOfTerminal(t Terminal) Symbol {
	return Symbol(maskKindPart | uint16(t))
}

func SymbolOfNonTerminal(n NonTerminal) Symbol {
	return Symbol(uint16(n) & maskNumberPart)
}

func (s Symbol) IsNil() bool {
	return s == SymbolNil
}

func (s Symbol) IsTerminal() bool {
	return uint16(s)&maskKindPart > 0
}

func (s Symbol) IsNonTerminal() bool {
	return !s.IsNil() && uint16(s)&maskKindPart == 0
}

// Terminal returns the terminal a symbol stands for, or TermNil when the
// symbol is not a terminal.
func (s Symbol) Terminal() Terminal {
	if !s.IsTerminal() {
		return TermNil
	}
	return Terminal(uint16(s) & maskNumberPart)
}

// NonTerminal returns the non-terminal a symbol stands for, or NtNil when
// the symbol is not a non-terminal.
func (s Symbol) NonTerminal() NonTerminal {
	if !s.IsNonTerminal() {
		return NtNil
	}
	return NonTerminal(uint16(s) & maskNumberPart)
}

func (s Symbol) String() string {
	switch {
	case s.IsNil():
		return "<nil>"
	case s.IsTerminal():
		return s.Terminal().String()
	default:
		return s.NonTerminal().String()
	}
}

func (s Symbol) byte() []byte {
	return []byte{byte(uint16(s) >> 8), byte(uint16(s) & 0x00ff)}
}
