package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hellboyz13/mrtfood/internal/hours"
	"github.com/hellboyz13/mrtfood/store"
)

func (d *DB) CreatePlace(ctx context.Context, create *store.Place) (*store.Place, error) {
	fields := []string{"uid", "name", "address", "station_code", "latitude", "longitude"}
	placeholderValues := []any{
		create.UID, create.Name, create.Address, create.StationCode,
		create.Latitude, create.Longitude,
	}

	if create.RawHours != nil {
		fields = append(fields, "raw_hours")
		placeholderValues = append(placeholderValues, *create.RawHours)
	}
	if create.Hours != nil {
		encoded, err := json.Marshal(create.Hours)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal hours: %w", err)
		}
		fields = append(fields, "hours")
		placeholderValues = append(placeholderValues, string(encoded))
	}

	stmt := `INSERT INTO place (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(placeholderValues)) + `)
		RETURNING id, created_ts, updated_ts, row_status`

	if err := d.db.QueryRowContext(ctx, stmt, placeholderValues...).Scan(
		&create.ID,
		&create.CreatedTs,
		&create.UpdatedTs,
		&create.RowStatus,
	); err != nil {
		return nil, fmt.Errorf("failed to create place: %w", err)
	}

	return create, nil
}

func (d *DB) ListPlaces(ctx context.Context, find *store.FindPlace) ([]*store.Place, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "place.id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UID; v != nil {
		where, args = append(where, "place.uid = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.StationCode; v != nil {
		where, args = append(where, "place.station_code = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.RowStatus; v != nil {
		where, args = append(where, "place.row_status = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.HoursPending; v != nil && *v {
		where = append(where, "place.raw_hours IS NOT NULL AND place.hours IS NULL")
	}

	query := `
		SELECT
			id, uid, created_ts, updated_ts, row_status,
			name, address, station_code, latitude, longitude,
			raw_hours, hours
		FROM place
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY place.id ASC`

	if find.Limit != nil {
		query = fmt.Sprintf("%s LIMIT %d", query, *find.Limit)
		if find.Offset != nil {
			query = fmt.Sprintf("%s OFFSET %d", query, *find.Offset)
		}
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query places: %w", err)
	}
	defer rows.Close()

	list := make([]*store.Place, 0)
	for rows.Next() {
		var place store.Place
		var rawHours, hoursJSON sql.NullString

		if err := rows.Scan(
			&place.ID,
			&place.UID,
			&place.CreatedTs,
			&place.UpdatedTs,
			&place.RowStatus,
			&place.Name,
			&place.Address,
			&place.StationCode,
			&place.Latitude,
			&place.Longitude,
			&rawHours,
			&hoursJSON,
		); err != nil {
			return nil, fmt.Errorf("failed to scan place: %w", err)
		}

		if rawHours.Valid {
			place.RawHours = &rawHours.String
		}
		if hoursJSON.Valid && hoursJSON.String != "" {
			schedule := &hours.Schedule{}
			if err := json.Unmarshal([]byte(hoursJSON.String), schedule); err != nil {
				return nil, fmt.Errorf("failed to unmarshal hours of place %d: %w", place.ID, err)
			}
			place.Hours = schedule
		}

		list = append(list, &place)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate places: %w", err)
	}

	return list, nil
}

func (d *DB) UpdatePlace(ctx context.Context, update *store.UpdatePlace) error {
	set, args := []string{}, []any{}

	if v := update.RowStatus; v != nil {
		set, args = append(set, "row_status = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Name; v != nil {
		set, args = append(set, "name = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Address; v != nil {
		set, args = append(set, "address = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.StationCode; v != nil {
		set, args = append(set, "station_code = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Latitude; v != nil {
		set, args = append(set, "latitude = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Longitude; v != nil {
		set, args = append(set, "longitude = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.RawHours; v != nil {
		set, args = append(set, "raw_hours = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Hours; v != nil {
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal hours: %w", err)
		}
		set, args = append(set, "hours = "+placeholder(len(args)+1)), append(args, string(encoded))
	}

	if len(set) == 0 {
		return nil
	}

	updatedTs := time.Now().Unix()
	if v := update.UpdatedTs; v != nil {
		updatedTs = *v
	}
	set, args = append(set, "updated_ts = "+placeholder(len(args)+1)), append(args, updatedTs)

	args = append(args, update.ID)

	stmt := `UPDATE place SET ` + strings.Join(set, ", ") + ` WHERE id = ` + placeholder(len(args))
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("failed to update place: %w", err)
	}

	return nil
}

func (d *DB) DeletePlace(ctx context.Context, delete *store.DeletePlace) error {
	stmt := `DELETE FROM place WHERE id = ` + placeholder(1)
	result, err := d.db.ExecContext(ctx, stmt, delete.ID)
	if err != nil {
		return fmt.Errorf("failed to delete place: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("place not found")
	}

	return nil
}
