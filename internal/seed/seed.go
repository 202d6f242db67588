// Package seed loads demo accounts, scores, and active players so a fresh
// server has something to show. Dev-only; enabled via SNAKEARCADE_SEED.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/mcoot/snakearcade-go/internal/factory"
	"github.com/mcoot/snakearcade-go/internal/model"
)

// Apply registers demo users, submits demo scores, and, when the presence
// source is in-process, publishes demo active players. Registering an
// already-seeded email is treated as success so restarts stay idempotent.
func Apply(ctx context.Context, app *factory.App) error {
	type demoScore struct {
		score int
		mode  model.GameMode
	}
	demoUsers := []struct {
		email, username, password string
		scores                    []demoScore
	}{
		{"player1@test.com", "NeonViper", "password123", []demoScore{{1250, model.ModeWalls}}},
		{"player2@test.com", "CyberSnake", "password123", []demoScore{{980, model.ModeWalls}}},
		{"player3@test.com", "RetroGamer", "password123", []demoScore{{1050, model.ModePassThrough}, {920, model.ModePassThrough}}},
	}

	for _, du := range demoUsers {
		user, err := app.IdentityService.Register(ctx, du.email, du.username, du.password)
		if err != nil {
			if errors.Is(err, model.ErrEmailTaken) {
				continue
			}
			return fmt.Errorf("seed user %s: %w", du.email, err)
		}
		for _, ds := range du.scores {
			if _, _, err := app.LeaderboardService.SubmitScore(ctx, user, ds.score, ds.mode); err != nil {
				return fmt.Errorf("seed score for %s: %w", du.email, err)
			}
		}
	}

	if app.MemoryPresence != nil {
		app.MemoryPresence.Publish(&model.ActivePlayer{
			ID:        "active-1",
			Username:  "LivePlayer42",
			Score:     340,
			Mode:      model.ModeWalls,
			Snake:     []model.Position{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}},
			Food:      model.Position{X: 15, Y: 12},
			Direction: model.DirectionRight,
			Status:    model.StatusPlaying,
		})
		app.MemoryPresence.Publish(&model.ActivePlayer{
			ID:        "active-2",
			Username:  "StreamSnake",
			Score:     520,
			Mode:      model.ModePassThrough,
			Snake:     []model.Position{{X: 5, Y: 8}, {X: 5, Y: 9}, {X: 5, Y: 10}},
			Food:      model.Position{X: 12, Y: 5},
			Direction: model.DirectionUp,
			Status:    model.StatusPlaying,
		})
	}

	return nil
}
