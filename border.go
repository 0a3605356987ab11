package pane

// BorderKind selects the box-drawing character set for a border.
type BorderKind int

const (
	BorderSingle BorderKind = iota
	BorderDouble
	BorderRounded
)

type borderRunes struct {
	horizontal  rune
	vertical    rune
	topLeft     rune
	topRight    rune
	bottomLeft  rune
	bottomRight rune
}

const (
	lineH = '─'
	lineV = '│'
)

func (k BorderKind) runes() borderRunes {
	switch k {
	case BorderDouble:
		return borderRunes{'═', '║', '╔', '╗', '╚', '╝'}
	case BorderRounded:
		return borderRunes{lineH, lineV, '╭', '╮', '╰', '╯'}
	default:
		return borderRunes{lineH, lineV, '┌', '┐', '└', '┘'}
	}
}

// Box-drawing runes are described by which of their four edges they
// connect: bit 0 = up, bit 1 = right, bit 2 = down, bit 3 = left.
// Merging two runes is a union of their edge sets.
var boxEdges = map[rune]uint8{
	lineH: 0b1010,
	lineV: 0b0101,
	'┌':   0b0110,
	'┐':   0b1100,
	'└':   0b0011,
	'┘':   0b1001,
	'╭':   0b0110,
	'╮':   0b1100,
	'╰':   0b0011,
	'╯':   0b1001,
	'┬':   0b1110,
	'┴':   0b1011,
	'├':   0b0111,
	'┤':   0b1101,
	'┼':   0b1111,
}

// edgeRunes maps edge sets back to a drawable rune. Built once from
// boxEdges, preferring the square corners over the rounded aliases.
var edgeRunes = func() map[uint8]rune {
	m := make(map[uint8]rune, len(boxEdges))
	for _, r := range []rune{lineH, lineV, '┌', '┐', '└', '┘', '┬', '┴', '├', '┤', '┼'} {
		m[boxEdges[r]] = r
	}
	return m
}()

// mergeBoxRunes unions the edges of two single-line box runes, so a
// grid line crossing a border becomes a tee or cross. Returns false
// when either rune is not a box-drawing rune (or has no union form),
// in which case the new rune simply overwrites.
func mergeBoxRunes(existing, next rune) (rune, bool) {
	a, ok := boxEdges[existing]
	if !ok {
		return next, false
	}
	b, ok := boxEdges[next]
	if !ok {
		return next, false
	}
	if r, ok := edgeRunes[a|b]; ok {
		return r, true
	}
	return next, false
}
