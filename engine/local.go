package engine

import (
	"fmt"
	"time"

	"gametree/experiments/metrics"
	"gametree/game"
	"gametree/searcher/agent"
	"gametree/utils"

	"github.com/rs/zerolog/log"
)

type Update struct {
	Move  game.Move
	Board game.Board
	Hash  game.StateHash
}

var _ Engine = (*LocalEngine)(nil)

type LocalEngine struct {
	Name     string
	Board    game.Board
	Players  []string
	Agents   []agent.Agent
	History  []Update
	MaxMoves int
}

// NewLocalEngine pairs each player with the agent at the same index.
func NewLocalEngine(name string, board game.Board, players []string, agents []agent.Agent) *LocalEngine {
	if len(players) != len(agents) {
		panic("number of players does not match number of agents")
	}
	if len(players) < 1 {
		panic("need at least one player")
	}

	return &LocalEngine{
		Name:     name,
		Board:    board,
		Players:  players,
		Agents:   agents,
		MaxMoves: MaxMoves,
	}
}

// Run executes the entire game loop until the game is decided.
func (e *LocalEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		Game:           e.Name,
		StartingPlayer: e.Board.VantagePoint(),
		StartTime:      time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	log.Info().Msgf("%s: player %s is starting", e.Name, gameMetric.StartingPlayer)

	step := 1
	for ; step <= e.MaxMoves && !isOver(e.Board); step++ {
		player := e.Board.VantagePoint()
		index := utils.FindIndex(e.Players, player)
		if index < 0 {
			panic(fmt.Sprintf("no agent plays for %q", player))
		}

		move, score, searchMetric := e.Agents[index].FindMove(e.Board)
		if move == nil {
			log.Warn().Msgf("%s: agent for %s returned no move at step %d", e.Name, player, step)
			break
		}

		e.Board = e.Board.ApplyMove(move)
		e.History = append(e.History, Update{
			Move:  move,
			Board: e.Board,
			Hash:  hash(e.Board),
		})
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Score:        score,
			SearchMetric: searchMetric,
		})

		log.Debug().Msgf("%s: step %d %s played %v (value %v)", e.Name, step, player, move, score)
	}

	if step > e.MaxMoves {
		log.Warn().Msgf("%s: stopped after %d moves", e.Name, e.MaxMoves)
	}

	winner := ""
	if o, ok := e.Board.(game.Outcome); ok {
		winner = o.Winner()
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(e.History)

	if winner != "" {
		log.Info().Msgf("%s: game over after %d moves, winner: %s", e.Name, len(e.History), winner)
	} else {
		log.Info().Msgf("%s: game over after %d moves without a winner", e.Name, len(e.History))
	}

	return winner, gameMetric, moveMetrics
}

func isOver(board game.Board) bool {
	if o, ok := board.(game.Outcome); ok && o.Winner() != "" {
		return true
	}
	return !board.ContinueEvaluatingTree(0) || len(board.Moves()) == 0
}

func hash(board game.Board) game.StateHash {
	if h, ok := board.(game.Hasher); ok {
		return h.Hash()
	}
	return 0
}
