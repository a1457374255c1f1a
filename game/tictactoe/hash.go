package tictactoe

import "gametree/game"

// symmetries maps each cell to its image under the eight rotations and
// reflections of the square.
var symmetries = func() [8][Cells]int {
	var out [8][Cells]int
	for s := 0; s < 8; s++ {
		for cell := 0; cell < Cells; cell++ {
			r, c := cell/Size, cell%Size
			for k := 0; k < s%4; k++ { // rotate clockwise
				r, c = c, Size-1-r
			}
			if s >= 4 { // then mirror
				c = Size - 1 - c
			}
			out[s][cell] = r*Size + c
		}
	}
	return out
}()

// Hash identifies the position up to rotation and reflection, along with
// the side to move.
func (b *Board) Hash() game.StateHash {
	best := ^uint64(0)
	for _, sym := range symmetries {
		var h uint64
		for cell := 0; cell < Cells; cell++ {
			h = h*3 + digit(b.cells[sym[cell]])
		}
		if h < best {
			best = h
		}
	}
	if b.Vantage == O {
		best |= 1 << 63
	}
	return game.StateHash(best)
}

func digit(c byte) uint64 {
	switch c {
	case 'X':
		return 1
	case 'O':
		return 2
	default:
		return 0
	}
}
