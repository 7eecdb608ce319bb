package sports

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/sportlog/internal/telemetry/tracing"
	"github.com/2beens/sportlog/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const (
	sportColumns  = `s.id::text, s.user_id::text, s.name, s.image, s.created_at`
	recordColumns = `r.id::text, r.sport_id::text, r.user_id::text, r.value, r.unit, r.date, r.timestamp, r.tags, r.images, r.created_at`
)

// AddRecordResult carries the stored record and the sport it was attached to.
// SportCreated is set when ingestion created the sport on the fly.
type AddRecordResult struct {
	Record       Record
	Sport        Sport
	SportCreated bool
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func (r *Repo) GetUser(ctx context.Context, id string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sports.getuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", id))

	user := &User{}
	err = r.db.QueryRow(ctx, `
		SELECT id::text, name, avatar, weekly_message, created_at
		FROM users
		WHERE id = $1::uuid;`,
		id,
	).Scan(&user.ID, &user.Name, &user.Avatar, &user.WeeklyMessage, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *Repo) AddUser(ctx context.Context, newUser NewUser) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sports.adduser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user := &User{}
	err = r.db.QueryRow(ctx, `
		INSERT INTO users (name, avatar, weekly_message)
		VALUES ($1, $2, $3)
		RETURNING id::text, name, avatar, weekly_message, created_at;`,
		newUser.Name, newUser.Avatar, newUser.WeeklyMessage,
	).Scan(&user.ID, &user.Name, &user.Avatar, &user.WeeklyMessage, &user.CreatedAt)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("user.id", user.ID))
	return user, nil
}

func (r *Repo) UpdateWeeklyMessage(ctx context.Context, userID, message string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sports.updateweeklymessage")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	tag, err := r.db.Exec(ctx,
		`UPDATE users SET weekly_message = $1 WHERE id = $2::uuid;`,
		message, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ListSports returns the user's sports, oldest first.
func (r *Repo) ListSports(ctx context.Context, userID string) (_ []Sport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sports.listsports")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT `+sportColumns+`
		FROM sports s
		WHERE s.user_id = $1::uuid
		ORDER BY s.created_at ASC, s.id ASC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sports, err := r.rows2sports(rows)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("sports.count", len(sports)))
	return sports, nil
}

func (r *Repo) AddSport(ctx context.Context, newSport NewSport) (_ *Sport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sports.addsport")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", newSport.UserID))
	span.SetAttributes(attribute.String("sport.name", newSport.Name))

	sport := &Sport{}
	err = r.db.QueryRow(ctx, `
		INSERT INTO sports AS s (user_id, name, image)
		VALUES ($1::uuid, $2, $3)
		RETURNING `+sportColumns+`;`,
		newSport.UserID, newSport.Name, newSport.Image,
	).Scan(&sport.ID, &sport.UserID, &sport.Name, &sport.Image, &sport.CreatedAt)
	switch {
	case pkg.IsUniqueViolationError(err):
		return nil, ErrSportExists
	case pkg.IsForeignKeyViolationError(err):
		return nil, ErrUserNotFound
	case err != nil:
		return nil, err
	}

	return sport, nil
}

// ListRecordsByUser returns all records of the user, newest first.
func (r *Repo) ListRecordsByUser(ctx context.Context, userID string) (_ []Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sports.listrecordsbyuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT `+recordColumns+`
		FROM records r
		WHERE r.user_id = $1::uuid
		ORDER BY r.timestamp DESC, r.created_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.rows2records(rows)
}

// ListRecordsBySport returns all records of the sport, newest first.
func (r *Repo) ListRecordsBySport(ctx context.Context, sportID string) (_ []Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sports.listrecordsbysport")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("sport.id", sportID))

	rows, err := r.db.Query(ctx, `
		SELECT `+recordColumns+`
		FROM records r
		WHERE r.sport_id = $1::uuid
		ORDER BY r.timestamp DESC, r.created_at DESC;`,
		sportID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.rows2records(rows)
}

// AddRecord stores the record in a single transaction. With a sport name, the sport is
// resolved or created by (user, name) in the same transaction, so concurrent ingestions
// of a new name end up with exactly one sport.
func (r *Repo) AddRecord(ctx context.Context, rec NewRecord) (_ *AddRecordResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sports.addrecord")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", rec.UserID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				err = fmt.Errorf("rollback: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	result := &AddRecordResult{}
	if rec.SportID != "" {
		err = tx.QueryRow(ctx, `
			SELECT `+sportColumns+`
			FROM sports s
			WHERE s.id = $1::uuid AND s.user_id = $2::uuid;`,
			rec.SportID, rec.UserID,
		).Scan(&result.Sport.ID, &result.Sport.UserID, &result.Sport.Name, &result.Sport.Image, &result.Sport.CreatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSportNotFound
		}
		if err != nil {
			return nil, err
		}
	} else {
		// the no-op update makes RETURNING yield the existing row on conflict;
		// xmax = 0 only for a freshly inserted row
		err = tx.QueryRow(ctx, `
			INSERT INTO sports AS s (user_id, name, image)
			VALUES ($1::uuid, $2, $3)
			ON CONFLICT (user_id, name) DO UPDATE SET name = EXCLUDED.name
			RETURNING `+sportColumns+`, (s.xmax = 0) AS created;`,
			rec.UserID, rec.SportName, rec.SportImage,
		).Scan(&result.Sport.ID, &result.Sport.UserID, &result.Sport.Name, &result.Sport.Image, &result.Sport.CreatedAt, &result.SportCreated)
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrUserNotFound
		}
		if err != nil {
			return nil, err
		}
	}
	span.SetAttributes(attribute.String("sport.id", result.Sport.ID))
	span.SetAttributes(attribute.Bool("sport.created", result.SportCreated))

	record := &result.Record
	err = tx.QueryRow(ctx, `
		INSERT INTO records AS r (sport_id, user_id, value, unit, date, timestamp, tags, images)
		VALUES ($1::uuid, $2::uuid, $3, $4, $5, $6, $7, $8)
		RETURNING `+recordColumns+`;`,
		result.Sport.ID, rec.UserID, *rec.Value, rec.Unit, rec.Date, rec.Timestamp, nonNil(rec.Tags), nonNil(rec.Images),
	).Scan(
		&record.ID, &record.SportID, &record.UserID, &record.Value, &record.Unit,
		&record.Date, &record.Timestamp, &record.Tags, &record.Images, &record.CreatedAt,
	)
	if pkg.IsForeignKeyViolationError(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("record.id", record.ID))
	return result, nil
}

func (r *Repo) rows2sports(rows pgx.Rows) ([]Sport, error) {
	sports := make([]Sport, 0)
	for rows.Next() {
		var s Sport
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Image, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sports = append(sports, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sports, nil
}

func (r *Repo) rows2records(rows pgx.Rows) ([]Record, error) {
	records := make([]Record, 0)
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID, &rec.SportID, &rec.UserID, &rec.Value, &rec.Unit,
			&rec.Date, &rec.Timestamp, &rec.Tags, &rec.Images, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		rec.Tags = nonNil(rec.Tags)
		rec.Images = nonNil(rec.Images)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
