package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/hellboyz13/mrtfood/store"
)

func (d *DB) CreateStation(ctx context.Context, create *store.Station) (*store.Station, error) {
	fields := []string{"code", "name", "line", "latitude", "longitude"}
	placeholderValues := []any{
		create.Code, create.Name, create.Line, create.Latitude, create.Longitude,
	}

	stmt := `INSERT INTO station (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(placeholderValues)) + `)
		RETURNING id`

	if err := d.db.QueryRowContext(ctx, stmt, placeholderValues...).Scan(&create.ID); err != nil {
		return nil, fmt.Errorf("failed to create station: %w", err)
	}

	return create, nil
}

func (d *DB) ListStations(ctx context.Context, find *store.FindStation) ([]*store.Station, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "station.id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.Code; v != nil {
		where, args = append(where, "station.code = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.Line; v != nil {
		where, args = append(where, "station.line = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `
		SELECT id, code, name, line, latitude, longitude
		FROM station
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY station.code ASC`

	if find.Limit != nil {
		query = fmt.Sprintf("%s LIMIT %d", query, *find.Limit)
		if find.Offset != nil {
			query = fmt.Sprintf("%s OFFSET %d", query, *find.Offset)
		}
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query stations: %w", err)
	}
	defer rows.Close()

	list := make([]*store.Station, 0)
	for rows.Next() {
		var station store.Station
		if err := rows.Scan(
			&station.ID,
			&station.Code,
			&station.Name,
			&station.Line,
			&station.Latitude,
			&station.Longitude,
		); err != nil {
			return nil, fmt.Errorf("failed to scan station: %w", err)
		}
		list = append(list, &station)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stations: %w", err)
	}

	return list, nil
}
