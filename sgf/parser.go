package sgf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sqwxl/seki/board"
	"github.com/sqwxl/seki/move"
)

type parser struct {
	lex *lexer
	tok token
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

// Parse reads one SGF game tree from src and returns the root setup
// properties plus the parsed move tree. Unknown properties are ignored
// (spec §4.5).
func Parse(src []byte) (*GameInfo, *Node, error) {
	p := &parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, nil, err
	}
	if p.tok.kind != tokLParen {
		return nil, nil, &ParseError{Offset: p.tok.offset, Reason: "expected '(' at start of game tree"}
	}

	info := &GameInfo{Cols: 19, Rows: 19, Komi: 0}
	root, err := p.parseTree(info, true)
	if err != nil {
		return nil, nil, err
	}
	return info, root, nil
}

// parseTree parses "(" Sequence { GameTree } ")" — p.tok must be the
// opening '(' on entry.
func (p *parser) parseTree(info *GameInfo, isRoot bool) (*Node, error) {
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}

	var first, prev *Node
	for p.tok.kind == tokSemicolon {
		if err := p.advance(); err != nil { // consume ';'
			return nil, err
		}
		props, err := p.parseProperties()
		if err != nil {
			return nil, err
		}

		var n *Node
		if isRoot && first == nil {
			if err := applyRootProps(info, props); err != nil {
				return nil, err
			}
			n = &Node{}
		} else {
			turn, err := turnFromProps(props)
			if err != nil {
				return nil, err
			}
			n = &Node{Turn: turn}
		}

		if first == nil {
			first = n
		} else {
			prev.Children = append(prev.Children, n)
		}
		prev = n
	}
	if first == nil {
		return nil, &ParseError{Offset: p.tok.offset, Reason: "empty game tree: expected at least one node"}
	}

	for p.tok.kind == tokLParen {
		child, err := p.parseTree(info, false)
		if err != nil {
			return nil, err
		}
		prev.Children = append(prev.Children, child)
	}

	if p.tok.kind != tokRParen {
		return nil, &ParseError{Offset: p.tok.offset, Reason: "expected ')' to close game tree"}
	}
	if err := p.advance(); err != nil { // consume ')'
		return nil, err
	}
	return first, nil
}

func (p *parser) parseProperties() (map[string][]string, error) {
	props := map[string][]string{}
	for p.tok.kind == tokIdent {
		name := p.tok.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		var vals []string
		for p.tok.kind == tokValue {
			vals = append(vals, p.tok.text)
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		if len(vals) == 0 {
			return nil, &ParseError{Offset: p.tok.offset, Reason: fmt.Sprintf("property %s has no value", name)}
		}
		props[name] = append(props[name], vals...)
	}
	return props, nil
}

func applyRootProps(info *GameInfo, props map[string][]string) error {
	if vs, ok := props["SZ"]; ok {
		cols, rows, err := parseSize(vs[0])
		if err != nil {
			return err
		}
		info.Cols, info.Rows = cols, rows
	}
	if vs, ok := props["HA"]; ok {
		n, err := strconv.Atoi(vs[0])
		if err != nil {
			return &ParseError{Reason: "invalid HA value"}
		}
		info.Handicap = n
	}
	if vs, ok := props["KM"]; ok {
		k, err := strconv.ParseFloat(vs[0], 64)
		if err != nil {
			return &ParseError{Reason: "invalid KM value"}
		}
		info.Komi = k
	}
	for _, v := range props["AB"] {
		p, ok := parseCoord(v)
		if !ok {
			return &ParseError{Reason: "invalid AB coordinate " + v}
		}
		info.Black = append(info.Black, p)
	}
	for _, v := range props["AW"] {
		p, ok := parseCoord(v)
		if !ok {
			return &ParseError{Reason: "invalid AW coordinate " + v}
		}
		info.White = append(info.White, p)
	}
	return nil
}

func turnFromProps(props map[string][]string) (*move.Turn, error) {
	_, resigned := props["RS"]
	if vs, ok := props["B"]; ok {
		return turnFor(board.Black, vs[0], resigned)
	}
	if vs, ok := props["W"]; ok {
		return turnFor(board.White, vs[0], resigned)
	}
	return nil, &ParseError{Reason: "move node missing B or W property"}
}

func turnFor(stone board.Stone, value string, resigned bool) (*move.Turn, error) {
	if value == "" || value == "tt" {
		if resigned {
			return &move.Turn{Kind: move.Resign, Stone: stone}, nil
		}
		return &move.Turn{Kind: move.Pass, Stone: stone}, nil
	}
	p, ok := parseCoord(value)
	if !ok {
		return nil, &ParseError{Reason: "invalid move coordinate " + value}
	}
	return &move.Turn{Kind: move.Play, Stone: stone, Point: p}, nil
}

// parseCoord decodes an SGF letter-pair coordinate ("aa".."ss"); row 0
// corresponds to the second coordinate's 'a' (spec §6, "top of board").
func parseCoord(s string) (board.Point, bool) {
	if len(s) != 2 {
		return board.Point{}, false
	}
	col := int(s[0] - 'a')
	row := int(s[1] - 'a')
	if col < 0 || row < 0 {
		return board.Point{}, false
	}
	return board.Point{Col: col, Row: row}, true
}

func parseSize(s string) (cols, rows int, err error) {
	if i := strings.IndexByte(s, ':'); i >= 0 {
		cols, err = strconv.Atoi(s[:i])
		if err != nil {
			return 0, 0, &ParseError{Reason: "invalid SZ value " + s}
		}
		rows, err = strconv.Atoi(s[i+1:])
		if err != nil {
			return 0, 0, &ParseError{Reason: "invalid SZ value " + s}
		}
		return cols, rows, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, 0, &ParseError{Reason: "invalid SZ value " + s}
	}
	return n, n, nil
}
