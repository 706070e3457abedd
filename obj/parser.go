package obj

import (
	"strconv"

	"github.com/phanxgames/lattice"
)

// parser walks a token stream and accumulates vertex and face lists.
// Malformed input degrades to fewer vertices or faces, never to an error.
type parser struct {
	tokens []Token
	pos    int

	vertices []lattice.Vec3
	faces    [][]int
}

func parse(tokens []Token) ([]lattice.Vec3, [][]int) {
	p := &parser{tokens: tokens}
	p.run()
	return p.vertices, p.faces
}

func (p *parser) run() {
	for {
		tok := p.next()
		switch {
		case tok.Kind == EOF:
			return
		case tok.Kind == NEWLINE:
			// Blank line.
		case tok.Kind == KEYWORD && tok.Value == "v":
			p.parseVertex()
		case tok.Kind == KEYWORD && tok.Value == "f":
			p.parseFace()
		default:
			// vt, vn, o, g, s, mtllib, usemtl, stray tokens.
			p.skipLine()
		}
	}
}

// parseVertex consumes up to three NUMBER tokens. Missing components
// default to zero.
func (p *parser) parseVertex() {
	var coords [3]float64
	for i := 0; i < 3; i++ {
		if p.peek().Kind != NUMBER {
			break
		}
		coords[i], _ = strconv.ParseFloat(p.next().Value, 64)
	}
	p.vertices = append(p.vertices, lattice.V3(coords[0], coords[1], coords[2]))
	p.skipLine()
}

// parseFace consumes index groups of the form i[/t[/n]]. Only the leading
// vertex index of each group is kept, converted from 1-based to 0-based.
// Faces that end up with fewer than three indices are dropped.
func (p *parser) parseFace() {
	var face []int
	for p.peek().Kind == NUMBER {
		idx, _ := strconv.Atoi(p.next().Value)
		face = append(face, idx-1)
		// Discard /texture and /normal suffixes.
		for p.peek().Kind == SLASH {
			p.next()
			if p.peek().Kind == NUMBER {
				p.next()
			}
		}
	}
	if len(face) >= 3 {
		p.faces = append(p.faces, face)
	}
	p.skipLine()
}

// skipLine advances past the current statement, consuming its NEWLINE.
// EOF is left in place so run's loop terminates.
func (p *parser) skipLine() {
	for {
		tok := p.peek()
		if tok.Kind == EOF {
			return
		}
		p.next()
		if tok.Kind == NEWLINE {
			return
		}
	}
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Kind != EOF {
		p.pos++
	}
	return tok
}
