package game

import "sync"

// Perspective supplies the frame bookkeeping shared by most boards.
// The default Maximize is plain two-player opposition; games that model
// cooperation or puzzles shadow it.
type Perspective struct {
	Current string
	Vantage string
}

func (p Perspective) CurrentPlayer() string {
	return p.Current
}

func (p Perspective) VantagePoint() string {
	return p.Vantage
}

func (p Perspective) Maximize() bool {
	return p.Vantage == p.Current
}

// Pass returns the perspective after the turn moves to next.
func (p Perspective) Pass(next string) Perspective {
	return Perspective{Current: p.Current, Vantage: next}
}

// Rebase returns the perspective scored from the side to move.
func (p Perspective) Rebase() Perspective {
	return Perspective{Current: p.Vantage, Vantage: p.Vantage}
}

// CachedScore computes a heuristic at most once. It must not be copied after
// first use, so boards holding one are passed by pointer.
type CachedScore struct {
	once  sync.Once
	value float64
}

func (c *CachedScore) Get(compute func() float64) float64 {
	c.once.Do(func() {
		c.value = compute()
	})
	return c.value
}
