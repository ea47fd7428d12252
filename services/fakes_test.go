package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Dosada05/golf-matchplay/matchups"
	"github.com/Dosada05/golf-matchplay/models"
	"github.com/Dosada05/golf-matchplay/repositories"
	"github.com/Dosada05/golf-matchplay/storage"
)

const testYear = 2025

func loadTestTable(t *testing.T) *matchups.Table {
	t.Helper()
	table, err := matchups.Load("../matchups/testdata/matchups.yaml")
	require.NoError(t, err)
	return table
}

type fakePlayerRepo struct {
	mu      sync.Mutex
	players map[int]*models.Player
	nextID  int
}

func newFakePlayerRepo(players ...*models.Player) *fakePlayerRepo {
	r := &fakePlayerRepo{players: make(map[int]*models.Player), nextID: 1}
	for _, p := range players {
		r.players[p.ID] = p
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return r
}

// seedPlayers registers players 1..8 of the test table. Player 1 (8) vs player 4 (17)
// is the canonical three-stroke matchup.
func seedPlayers() *fakePlayerRepo {
	handicaps := map[int]int{1: 8, 2: 12, 3: 12, 4: 17, 5: 0, 6: 3, 7: 20, 8: 36}
	names := map[int]string{1: "Alice", 2: "Bob", 3: "Carol", 4: "Dana", 5: "Eve", 6: "Frank", 7: "Grace", 8: "Heidi"}
	players := make([]*models.Player, 0, len(handicaps))
	for id := 1; id <= 8; id++ {
		players = append(players, &models.Player{ID: id, Name: names[id], Handicap: handicaps[id], Role: models.RolePlayer})
	}
	return newFakePlayerRepo(players...)
}

func (r *fakePlayerRepo) Create(_ context.Context, _ repositories.SQLExecutor, p *models.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.players {
		if existing.Name == p.Name {
			return repositories.ErrPlayerNameConflict
		}
	}
	if p.Role == "" {
		p.Role = models.RolePlayer
	}
	p.ID = r.nextID
	r.nextID++
	p.CreatedAt = time.Now()
	cp := *p
	r.players[p.ID] = &cp
	return nil
}

func (r *fakePlayerRepo) GetByID(_ context.Context, id int) (*models.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[id]
	if !ok {
		return nil, repositories.ErrPlayerNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePlayerRepo) List(_ context.Context) ([]*models.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Player, 0, len(r.players))
	for _, p := range r.players {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakePlayerRepo) ListByIDs(_ context.Context, ids []int) ([]*models.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Player, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.players[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePlayerRepo) UpdateHandicap(_ context.Context, id int, handicap int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[id]
	if !ok {
		return repositories.ErrPlayerNotFound
	}
	p.Handicap = handicap
	return nil
}

type resultKey struct {
	year, foursome, p1, p2 int
	segment                models.HoleSegment
}

type fakeResultRepo struct {
	mu      sync.Mutex
	results map[int]*models.MatchResult
	keys    map[resultKey]int
	nextID  int
	listErr error
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{results: make(map[int]*models.MatchResult), keys: make(map[resultKey]int), nextID: 1}
}

func keyOf(r *models.MatchResult) resultKey {
	return resultKey{r.TournamentYear, r.FoursomeGroupID, r.Player1ID, r.Player2ID, r.HoleSegment}
}

func (r *fakeResultRepo) CreateIfAbsent(_ context.Context, _ repositories.SQLExecutor, m *models.MatchResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.keys[keyOf(m)]; exists {
		return repositories.ErrMatchResultConflict
	}
	m.ID = r.nextID
	r.nextID++
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	cp := *m
	r.results[m.ID] = &cp
	r.keys[keyOf(m)] = m.ID
	return nil
}

func (r *fakeResultRepo) GetByID(_ context.Context, _ repositories.SQLExecutor, year, id int, _ bool) (*models.MatchResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.results[id]
	if !ok || m.TournamentYear != year {
		return nil, repositories.ErrMatchResultNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *fakeResultRepo) ListByYear(_ context.Context, year int, foursomeID *int) ([]*models.MatchResult, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.MatchResult, 0)
	for _, m := range r.results {
		if m.TournamentYear != year || (foursomeID != nil && m.FoursomeGroupID != *foursomeID) {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeResultRepo) UpdateOutcome(_ context.Context, _ repositories.SQLExecutor, m *models.MatchResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.results[m.ID]; !ok {
		return repositories.ErrMatchResultNotFound
	}
	m.UpdatedAt = time.Now()
	cp := *m
	r.results[m.ID] = &cp
	return nil
}

func (r *fakeResultRepo) SetScorecardKey(_ context.Context, year, id int, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.results[id]
	if !ok || m.TournamentYear != year {
		return repositories.ErrMatchResultNotFound
	}
	m.ScorecardKey = &key
	return nil
}

func (r *fakeResultRepo) Delete(_ context.Context, year, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.results[id]
	if !ok || m.TournamentYear != year {
		return repositories.ErrMatchResultNotFound
	}
	delete(r.keys, keyOf(m))
	delete(r.results, id)
	return nil
}

type fakeTx struct {
	calls int
}

func (f *fakeTx) WithinTx(_ context.Context, fn func(exec repositories.SQLExecutor) error) error {
	f.calls++
	return fn(nil)
}

type broadcast struct {
	room    string
	message interface{}
}

type fakeBroadcaster struct {
	mu   sync.Mutex
	sent []broadcast
}

func (b *fakeBroadcaster) BroadcastToRoom(roomID string, message interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, broadcast{room: roomID, message: message})
}

func (b *fakeBroadcaster) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.sent)
}

type fakeUploader struct {
	mu      sync.Mutex
	objects map[string][]byte
	deleted []string
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{objects: make(map[string][]byte)}
}

func (u *fakeUploader) Upload(_ context.Context, key string, _ string, reader io.Reader) (*storage.UploadResult, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.objects[key] = buf.Bytes()
	return &storage.UploadResult{Key: key, Location: u.GetPublicURL(key)}, nil
}

func (u *fakeUploader) Delete(_ context.Context, key string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.objects, key)
	u.deleted = append(u.deleted, key)
	return nil
}

func (u *fakeUploader) GetPublicURL(key string) string {
	return fmt.Sprintf("https://cdn.example.test/%s", key)
}

func intPtr(v int) *int { return &v }
