package roster

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseCSV(t *testing.T) {
	csv := strings.Join([]string{
		"ID,Username,Minecraft Username,Discord,Team,Status",
		"p1,Steve,SteveMC,steve#0001,Red,active",
		"p2,Alex,,,,",
		",NoID,x,y,z,active",
		"p3,,x,y,z,active",
	}, "\n")

	players, err := ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, players, 2)

	assert.Equal(t, "p1", players[0].ID)
	assert.Equal(t, "Steve", players[0].Username)
	assert.Equal(t, "SteveMC", players[0].IGN)
	assert.Equal(t, "steve#0001", players[0].DiscordUsername)
	assert.Equal(t, "Red", players[0].Team)
	assert.Equal(t, "active", players[0].Status)

	// Blank columns fall back to defaults.
	assert.Equal(t, "Alex", players[1].IGN)
	assert.Equal(t, "Solo", players[1].Team)
	assert.Equal(t, "active", players[1].Status)
}

func TestParseCSVHeaderAliases(t *testing.T) {
	csv := strings.Join([]string{
		"id,username,IGN,discord username,team",
		"p1,Steve,SteveMC,steve#0001,Blue",
	}, "\n")

	players, err := ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "SteveMC", players[0].IGN)
	assert.Equal(t, "steve#0001", players[0].DiscordUsername)
}

func TestParseCSVHeaderOnly(t *testing.T) {
	players, err := ParseCSV(strings.NewReader("ID,Username\n"))
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestParseXLSX(t *testing.T) {
	workbook := excelize.NewFile()
	sheet := workbook.GetSheetName(0)
	rows := [][]any{
		{"ID", "Username", "Minecraft Username", "Discord", "Team", "Status"},
		{"p1", "Steve", "SteveMC", "steve#0001", "Red", "active"},
		{"p2", "Alex", "AlexMC", "", "", ""},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, workbook.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, workbook.Write(&buf))

	players, err := ParseXLSX(&buf)
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "SteveMC", players[0].IGN)
	assert.Equal(t, "Solo", players[1].Team)
}

func TestParseDispatch(t *testing.T) {
	csv := "ID,Username\np1,Steve\n"

	players, err := Parse("roster.CSV", strings.NewReader(csv))
	require.NoError(t, err)
	assert.Len(t, players, 1)

	_, err = Parse("roster.txt", strings.NewReader(csv))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
