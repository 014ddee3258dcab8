// Package roster parses player roster uploads. Admins export rosters from
// spreadsheets with inconsistent headers, so column matching is tolerant:
// "Minecraft Username", "Minecraft" and "IGN" all map to the same field.
package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
)

var ErrUnsupportedFormat = errors.New("unsupported roster format, expected .csv or .xlsx")

// Parse dispatches on the uploaded file name. Rows missing an id or a
// username are dropped rather than failing the whole upload.
func Parse(filename string, r io.Reader) ([]domain.Player, error) {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".csv"):
		return ParseCSV(r)
	case strings.HasSuffix(name, ".xlsx"):
		return ParseXLSX(r)
	default:
		return nil, ErrUnsupportedFormat
	}
}

func ParseCSV(r io.Reader) ([]domain.Player, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reader.ReadAll -> %w", err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	headers := records[0]
	players := make([]domain.Player, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[normalizeKey(header)] = strings.TrimSpace(record[i])
			}
		}

		if player, ok := playerFromRow(row); ok {
			players = append(players, player)
		}
	}

	return players, nil
}

// ParseXLSX reads the first sheet of a workbook.
func ParseXLSX(r io.Reader) ([]domain.Player, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("excelize.OpenReader -> %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("workbook.GetRows -> %w", err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	headers := rows[0]
	players := make([]domain.Player, 0, len(rows)-1)
	for _, record := range rows[1:] {
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[normalizeKey(header)] = strings.TrimSpace(record[i])
			}
		}

		if player, ok := playerFromRow(row); ok {
			players = append(players, player)
		}
	}

	return players, nil
}

func playerFromRow(row map[string]string) (domain.Player, bool) {
	id := field(row, "id")
	username := field(row, "username", "user name")
	if id == "" || username == "" {
		return domain.Player{}, false
	}

	ign := field(row, "minecraft username", "minecraft", "ign")
	if ign == "" {
		ign = username
	}

	team := field(row, "team")
	if team == "" {
		team = "Solo"
	}

	status := field(row, "status")
	if status == "" {
		status = domain.PlayerStatusActive
	}

	return domain.Player{
		ID:              id,
		Username:        username,
		IGN:             ign,
		DiscordUsername: field(row, "discord username", "discord", "discord name"),
		Team:            team,
		Status:          status,
	}, true
}

func field(row map[string]string, candidates ...string) string {
	for _, c := range candidates {
		if v := row[c]; v != "" {
			return v
		}
	}

	return ""
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}
