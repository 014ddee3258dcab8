package dao

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err == nil {
		err = pool.Client.Ping()
	}
	if err != nil {
		// No docker available; integration tests skip themselves.
		log.Printf("docker unavailable, skipping dao integration tests: %v", err)
		os.Exit(m.Run())
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=scoreboard_test",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	dsn := fmt.Sprintf(
		"host=localhost port=%s user=test password=test dbname=scoreboard_test sslmode=disable",
		resource.GetPort("5432/tcp"),
	)

	if err = pool.Retry(func() error {
		db, openErr := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if openErr != nil {
			return openErr
		}

		sqlDB, openErr := db.DB()
		if openErr != nil {
			return openErr
		}
		if openErr = sqlDB.Ping(); openErr != nil {
			return openErr
		}

		testDB = db

		return nil
	}); err != nil {
		log.Fatalf("could not connect to postgres container: %v", err)
	}

	if err = InitTables(testDB); err != nil {
		log.Fatalf("could not migrate tables: %v", err)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Printf("could not purge postgres container: %v", err)
	}

	os.Exit(code)
}

func requireDB(t *testing.T) *gorm.DB {
	t.Helper()

	if testDB == nil {
		t.Skip("docker unavailable")
	}

	t.Cleanup(func() {
		testDB.Exec("TRUNCATE scores, players, judges, criteria, settings, rounds, admins, competition_info")
	})

	return testDB
}

func TestScoreDAO_UpsertOverwrites(t *testing.T) {
	db := requireDB(t)
	d := NewScoreDAO(db)
	ctx := context.Background()

	first, err := d.Upsert(ctx, Score{
		PlayerID: "p1", JudgeID: "j1", CriterionID: "c1",
		Round: "qualification", Points: 15, EnteredBy: "admin-1",
	})
	require.NoError(t, err)

	_, err = d.Upsert(ctx, Score{
		PlayerID: "p1", JudgeID: "j1", CriterionID: "c1",
		Round: "qualification", Points: 18, EnteredBy: "admin-2",
	})
	require.NoError(t, err)

	scores, err := d.FindByRound(ctx, "qualification")
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 18, scores[0].Points)
	assert.Equal(t, "admin-2", scores[0].EnteredBy)
	assert.Equal(t, first.ID, scores[0].ID)

	// Same tuple in another round is a separate row.
	_, err = d.Upsert(ctx, Score{
		PlayerID: "p1", JudgeID: "j1", CriterionID: "c1",
		Round: "finals", Points: 9, EnteredBy: "admin-1",
	})
	require.NoError(t, err)

	finals, err := d.FindByRound(ctx, "finals")
	require.NoError(t, err)
	assert.Len(t, finals, 1)
}

func TestPlayerDAO_FindActiveByScore(t *testing.T) {
	db := requireDB(t)
	players := NewPlayerDAO(db)
	scores := NewScoreDAO(db)
	ctx := context.Background()

	for _, p := range []Player{
		{ID: "p1", Username: "steve", IGN: "SteveMC", Status: "active"},
		{ID: "p2", Username: "alex", IGN: "AlexMC", Status: "active"},
		{ID: "p3", Username: "gone", IGN: "GoneMC", Status: "inactive"},
	} {
		_, err := players.Insert(ctx, p)
		require.NoError(t, err)
	}

	for _, s := range []Score{
		{PlayerID: "p2", JudgeID: "j1", CriterionID: "c1", Round: "qualification", Points: 20, EnteredBy: "a"},
		{PlayerID: "p1", JudgeID: "j1", CriterionID: "c1", Round: "qualification", Points: 5, EnteredBy: "a"},
	} {
		_, err := scores.Upsert(ctx, s)
		require.NoError(t, err)
	}

	got, err := players.FindActiveByScore(ctx, "qualification", 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Highest total first; inactive players never appear.
	assert.Equal(t, "p2", got[0].ID)
	assert.Equal(t, "p1", got[1].ID)
}

func TestPlayerDAO_UpsertRoster(t *testing.T) {
	db := requireDB(t)
	d := NewPlayerDAO(db)
	ctx := context.Background()

	_, err := d.Upsert(ctx, Player{ID: "p1", Username: "steve", IGN: "SteveMC", Status: "active"})
	require.NoError(t, err)

	_, err = d.Upsert(ctx, Player{ID: "p1", Username: "steve2", IGN: "SteveMC", Team: "Red", Status: "active"})
	require.NoError(t, err)

	player, err := d.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "steve2", player.Username)
	assert.Equal(t, "Red", player.Team)

	count, err := d.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCompetitionDAO_UpsertSingleton(t *testing.T) {
	db := requireDB(t)
	d := NewCompetitionDAO(db)
	ctx := context.Background()

	_, err := d.Find(ctx)
	require.ErrorIs(t, err, ErrCompetitionInfoNotFound)

	require.NoError(t, d.Upsert(ctx, CompetitionInfo{Name: "Summer Build Battle", Status: "upcoming"}))
	require.NoError(t, d.Upsert(ctx, CompetitionInfo{Name: "Summer Build Battle", Status: "active", PrizePool: "$500"}))

	info, err := d.Find(ctx)
	require.NoError(t, err)
	assert.Equal(t, "active", info.Status)
	assert.Equal(t, "$500", info.PrizePool)

	// Repeated writes keep the single row.
	var count int64
	require.NoError(t, db.Model(&CompetitionInfo{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSettingDAO_UpsertAll(t *testing.T) {
	db := requireDB(t)
	d := NewSettingDAO(db)
	ctx := context.Background()

	require.NoError(t, d.Upsert(ctx, Setting{Key: "resultsPublished", Value: "false"}))
	require.NoError(t, d.UpsertAll(ctx, []Setting{
		{Key: "resultsPublished", Value: "true"},
		{Key: "finalsEnabled", Value: "true"},
		{Key: "qualificationLocked", Value: "true"},
	}))

	settings, err := d.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, settings, 3)

	values := make(map[string]string, len(settings))
	for _, s := range settings {
		values[s.Key] = s.Value
	}
	assert.Equal(t, "true", values["resultsPublished"])
	assert.Equal(t, "true", values["finalsEnabled"])
	assert.Equal(t, "true", values["qualificationLocked"])
}
