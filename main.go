package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"qirkat/engine"
	"qirkat/game"
	"qirkat/player"
	"qirkat/searcher"
)

type config struct {
	whiteDepth int
	blackDepth int
	games      int
	render     bool
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg := config{
		whiteDepth: searcher.DefaultDepth,
		blackDepth: 1,
		games:      1,
		render:     true,
	}

	fmt.Printf("Running %d game(s): depth %d (white) vs depth %d (black)\n",
		cfg.games, cfg.whiteDepth, cfg.blackDepth)
	for i := 0; i < cfg.games; i++ {
		winner := runGame(cfg)
		if winner == game.Empty {
			fmt.Printf("Game %d over! Drawn.\n", i+1)
			continue
		}
		fmt.Printf("Game %d over! Winner: %s\n", i+1, winner)
	}
}

// runGame plays a single game between the two configured searchers and
// returns the winner.
func runGame(cfg config) game.Piece {
	white := player.NewAI(game.White, searcher.WithDepth(cfg.whiteDepth))
	black := player.NewAI(game.Black, searcher.WithDepth(cfg.blackDepth))

	eng := engine.NewLocal(white, black)
	if cfg.render {
		eng.OnChange(func(v game.View) {
			fmt.Println(v.Render(true))
		})
	}

	winner, err := eng.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
	return winner
}
