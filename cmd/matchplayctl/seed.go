package main

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/Dosada05/golf-matchplay/matchups"
	"github.com/Dosada05/golf-matchplay/models"
	"github.com/Dosada05/golf-matchplay/services"
)

const (
	seedPIN         = "0000"
	seedMaxHandicap = 36
	playersPerGroup = 4
	courseHoles     = 18
)

type seedPlan struct {
	Year    int
	Course  []models.HoleInfo
	Players []services.CreatePlayerInput
}

// buildSeedPlan is deterministic for a given seed.
func buildSeedPlan(seed uint64, count, year int) (*seedPlan, error) {
	if count <= 0 || count%playersPerGroup != 0 {
		return nil, fmt.Errorf("player count must be a positive multiple of %d, got %d", playersPerGroup, count)
	}

	faker := gofakeit.New(seed)
	plan := &seedPlan{Year: year, Course: seedCourse(faker)}

	used := make(map[string]bool, count)
	for len(plan.Players) < count {
		name := faker.Name()
		if used[name] {
			name = fmt.Sprintf("%s %d", name, len(plan.Players)+1)
		}
		used[name] = true
		plan.Players = append(plan.Players, services.CreatePlayerInput{
			Name:     name,
			Handicap: faker.IntRange(0, seedMaxHandicap),
			PIN:      seedPIN,
			Role:     models.RolePlayer,
		})
	}
	return plan, nil
}

func seedCourse(faker *gofakeit.Faker) []models.HoleInfo {
	indexes := make([]int, courseHoles)
	for i := range indexes {
		indexes[i] = i + 1
	}
	faker.ShuffleInts(indexes)

	course := make([]models.HoleInfo, courseHoles)
	for i := range course {
		course[i] = models.HoleInfo{
			Number:      i + 1,
			Par:         faker.IntRange(3, 5),
			StrokeIndex: indexes[i],
		}
	}
	return course
}

// Table groups the created players into foursomes in creation order; matchups are left to the generator.
func (p *seedPlan) Table(playerIDs []int) (matchups.File, error) {
	if len(playerIDs) != len(p.Players) {
		return matchups.File{}, fmt.Errorf("expected %d player ids, got %d", len(p.Players), len(playerIDs))
	}

	tc := matchups.TournamentConfig{Year: p.Year, Course: p.Course}
	for i := 0; i < len(playerIDs); i += playersPerGroup {
		tc.Foursomes = append(tc.Foursomes, matchups.FoursomeConfig{
			ID:      i/playersPerGroup + 1,
			Players: append([]int(nil), playerIDs[i:i+playersPerGroup]...),
		})
	}
	return matchups.File{Tournaments: []matchups.TournamentConfig{tc}}, nil
}
