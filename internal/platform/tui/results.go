package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilt2048/internal/registry"
	"github.com/vovakirdan/tilt2048/internal/storage"
)

// recordGameOver stores the final score and, for games that report one, the
// full result. Failures are logged; play continues regardless.
func recordGameOver(store *storage.Store, game registry.Game, score int, player string) {
	if store == nil || score <= 0 {
		return
	}

	if _, err := store.SaveScore(game.ID(), score); err != nil {
		log.Warn("could not save score", "game", game.ID(), "err", err)
	}

	rep, ok := game.(registry.Reporter)
	if !ok {
		return
	}
	res := rep.Result()
	id, err := store.SaveResult(storage.GameResult{
		GameID:    game.ID(),
		Player:    player,
		BoardSize: res.BoardSize,
		Score:     res.Score,
		MaxTile:   res.MaxTile,
		Moves:     res.Moves,
		Level:     res.Level,
		Won:       res.Won,
	})
	if err != nil {
		log.Warn("could not save result", "game", game.ID(), "err", err)
		return
	}
	log.Debug("result saved", "id", id, "game", game.ID(), "score", res.Score, "max_tile", res.MaxTile)
}
