package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/Dosada05/golf-matchplay/db"
	"github.com/Dosada05/golf-matchplay/matchups"
	"github.com/Dosada05/golf-matchplay/repositories"
	"github.com/Dosada05/golf-matchplay/services"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cliApp := &cli.App{
		Name:  "matchplayctl",
		Usage: "maintenance tasks for the match-play service",
		Commands: []*cli.Command{
			newMigrateCommand(logger),
			newValidateCommand(),
			newGenerateCommand(),
			newSeedCommand(logger),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

var (
	databaseFlag = &cli.StringFlag{
		Name:    "database-url",
		Usage:   "postgres connection string",
		EnvVars: []string{"DATABASE_URL"},
	}
	tableFlag = &cli.StringFlag{
		Name:    "table",
		Usage:   "path to the matchup table",
		Value:   "config/matchups.yaml",
		EnvVars: []string{"MATCHUP_TABLE_PATH"},
	}
)

func connect(c *cli.Context) (*sql.DB, error) {
	dsn := c.String(databaseFlag.Name)
	if dsn == "" {
		return nil, fmt.Errorf("--%s or DATABASE_URL is required", databaseFlag.Name)
	}
	return db.Connect(dsn, 5*time.Second)
}

func newMigrateCommand(logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "apply pending database migrations",
		Flags: []cli.Flag{databaseFlag},
		Action: func(c *cli.Context) error {
			conn, err := connect(c)
			if err != nil {
				return err
			}
			defer conn.Close()

			applied, err := db.Migrate(c.Context, conn, logger)
			if err != nil {
				return err
			}
			fmt.Printf("applied %d migration(s)\n", applied)
			return nil
		},
	}
}

func newValidateCommand() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "check the matchup table for scheduling errors",
		Flags: []cli.Flag{tableFlag},
		Action: func(c *cli.Context) error {
			table, err := matchups.Load(c.String(tableFlag.Name))
			if err != nil {
				return err
			}
			for _, year := range table.Years() {
				t, _ := table.Year(year)
				fmt.Printf("%d: %d foursome(s), %d matchup(s)\n", year, len(t.Foursomes), len(t.Matchups))
			}
			return nil
		},
	}
}

func newGenerateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "print the matchup table with every generated matchup written out",
		Flags: []cli.Flag{
			tableFlag,
			&cli.IntFlag{Name: "year", Usage: "only this tournament year"},
		},
		Action: func(c *cli.Context) error {
			table, err := matchups.Load(c.String(tableFlag.Name))
			if err != nil {
				return err
			}

			years := table.Years()
			if y := c.Int("year"); y != 0 {
				years = []int{y}
			}

			var tournaments []*matchups.Tournament
			for _, year := range years {
				t, err := table.Year(year)
				if err != nil {
					return err
				}
				tournaments = append(tournaments, t)
			}

			out, err := matchups.Encode(tournaments...)
			if err != nil {
				return err
			}
			_, err = c.App.Writer.Write(out)
			return err
		},
	}
}

func newSeedCommand(logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "create fake players and print a matching matchup table",
		Flags: []cli.Flag{
			databaseFlag,
			&cli.IntFlag{Name: "players", Value: 8, Usage: "number of players, a multiple of 4"},
			&cli.IntFlag{Name: "year", Value: time.Now().Year(), Usage: "tournament year"},
			&cli.Uint64Flag{Name: "seed", Value: 42, Usage: "random seed"},
			&cli.BoolFlag{Name: "dry-run", Usage: "do not touch the database, number players from 1"},
		},
		Action: func(c *cli.Context) error {
			plan, err := buildSeedPlan(c.Uint64("seed"), c.Int("players"), c.Int("year"))
			if err != nil {
				return err
			}

			ids := make([]int, len(plan.Players))
			if c.Bool("dry-run") {
				for i := range ids {
					ids[i] = i + 1
				}
			} else {
				conn, err := connect(c)
				if err != nil {
					return err
				}
				defer conn.Close()

				ids, err = createPlayers(c.Context, services.NewPlayerService(repositories.NewPostgresPlayerRepository(conn), logger), plan.Players)
				if err != nil {
					return err
				}
				logger.Info("players created", "count", len(ids))
			}

			file, err := plan.Table(ids)
			if err != nil {
				return err
			}
			// проверяем, что сгенерированная таблица проходит ту же валидацию, что и при старте сервера
			table, err := matchups.Build(file, matchups.NewRoundRobinGenerator())
			if err != nil {
				return err
			}
			t, err := table.Year(plan.Year)
			if err != nil {
				return err
			}
			out, err := matchups.Encode(t)
			if err != nil {
				return err
			}
			_, err = c.App.Writer.Write(out)
			return err
		},
	}
}

func createPlayers(ctx context.Context, ps services.PlayerService, inputs []services.CreatePlayerInput) ([]int, error) {
	ids := make([]int, 0, len(inputs))
	for _, in := range inputs {
		p, err := ps.Create(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("create player %q: %w", in.Name, err)
		}
		ids = append(ids, p.ID)
	}
	return ids, nil
}
