package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/agroview/backend/internal/domain"
)

const schema = `
	CREATE TABLE IF NOT EXISTS insumos_calculos (
		id                UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		culture           TEXT NOT NULL,
		produto           TEXT NOT NULL DEFAULT '',
		area_ha           DOUBLE PRECISION,
		dose_l_ha         DOUBLE PRECISION,
		ruas              INTEGER,
		comprimento_rua_m DOUBLE PRECISION,
		dose_ml_m         DOUBLE PRECISION,
		litros            DOUBLE PRECISION NOT NULL DEFAULT 0,
		details           TEXT NOT NULL DEFAULT '',
		created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_insumos_calculos_created_at
		ON insumos_calculos (created_at DESC, id DESC);
`

const selectColumns = `
	SELECT id::text, culture, produto, area_ha, dose_l_ha, ruas,
		   comprimento_rua_m, dose_ml_m, litros, details, created_at
	FROM insumos_calculos
`

// PostgresRepository implements domain.RecordRepository
type PostgresRepository struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(pool *pgxpool.Pool, log *zap.Logger) *PostgresRepository {
	return &PostgresRepository{pool: pool, log: log}
}

// EnsureSchema creates the records table and its ordering index
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("postgres: failed to create schema: %w", err)
	}
	return nil
}

// AppendRecord inserts one calculation. The database assigns id and created_at.
func (r *PostgresRepository) AppendRecord(ctx context.Context, rec domain.CalculationRecord) (string, error) {
	query := `
		INSERT INTO insumos_calculos (
			culture, produto, area_ha, dose_l_ha, ruas,
			comprimento_rua_m, dose_ml_m, litros, details
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id::text
	`

	raw := rec.ToRaw()
	var id string
	err := r.pool.QueryRow(ctx, query,
		raw.Culture, raw.Produto, raw.AreaHa, raw.DoseLPerHa, raw.Ruas,
		raw.ComprimentoRuaM, raw.DoseMlPerM, rec.Litros, raw.Details,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("postgres: failed to save calculation: %w", err)
	}

	return id, nil
}

// ListRecords returns one page ordered by created_at descending, using keyset
// pagination on (created_at, id)
func (r *PostgresRepository) ListRecords(ctx context.Context, pageSize int, cursor string) (domain.RawPage, error) {
	if pageSize <= 0 {
		return domain.RawPage{NextCursor: cursor}, nil
	}

	var (
		rows pgx.Rows
		err  error
	)
	if cursor == "" {
		rows, err = r.pool.Query(ctx, selectColumns+`
			ORDER BY created_at DESC, id DESC
			LIMIT $1`, pageSize)
	} else {
		key, decodeErr := decodeCursor(cursor)
		if decodeErr != nil {
			return domain.RawPage{}, decodeErr
		}
		rows, err = r.pool.Query(ctx, selectColumns+`
			WHERE (created_at, id) < ($1, $2::uuid)
			ORDER BY created_at DESC, id DESC
			LIMIT $3`, key.CreatedAt, key.ID, pageSize)
	}
	if err != nil {
		return domain.RawPage{}, fmt.Errorf("postgres: failed to query calculations: %w", err)
	}
	defer rows.Close()

	page := domain.RawPage{NextCursor: cursor}
	var last pageKey
	for rows.Next() {
		var (
			rec       domain.RawRecord
			litros    float64
			createdAt time.Time
		)
		err := rows.Scan(
			&rec.ID, &rec.Culture, &rec.Produto, &rec.AreaHa, &rec.DoseLPerHa, &rec.Ruas,
			&rec.ComprimentoRuaM, &rec.DoseMlPerM, &litros, &rec.Details, &createdAt,
		)
		if err != nil {
			return domain.RawPage{}, fmt.Errorf("postgres: failed to scan calculation row: %w", err)
		}
		rec.Litros = &litros
		rec.CreatedAt = createdAt
		page.Records = append(page.Records, rec)
		last = pageKey{CreatedAt: createdAt, ID: rec.ID}
	}
	if err := rows.Err(); err != nil {
		return domain.RawPage{}, fmt.Errorf("postgres: failed to read calculations: %w", err)
	}

	if len(page.Records) > 0 {
		page.NextCursor = encodeCursor(last)
	}
	return page, nil
}

// ImportRecords bulk-loads records with COPY, keeping their created_at
func (r *PostgresRepository) ImportRecords(ctx context.Context, recs []domain.CalculationRecord) (int64, error) {
	if len(recs) == 0 {
		return 0, nil
	}

	now := time.Now()
	n, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{domain.RecordsCollection},
		[]string{"culture", "produto", "area_ha", "dose_l_ha", "ruas",
			"comprimento_rua_m", "dose_ml_m", "litros", "details", "created_at"},
		pgx.CopyFromSlice(len(recs), func(i int) ([]any, error) {
			raw := recs[i].ToRaw()
			createdAt := recs[i].CreatedAt
			if createdAt.IsZero() {
				createdAt = now
			}
			return []any{
				raw.Culture, raw.Produto, raw.AreaHa, raw.DoseLPerHa, raw.Ruas,
				raw.ComprimentoRuaM, raw.DoseMlPerM, recs[i].Litros, raw.Details, createdAt,
			}, nil
		}),
	)
	if err != nil {
		return n, fmt.Errorf("postgres: failed to import calculations: %w", err)
	}

	r.log.Info("imported calculation records", zap.Int64("count", n))
	return n, nil
}

// Health checks database connectivity
func (r *PostgresRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}

// Open connects to databaseURL and prepares the schema. When databaseURL is
// empty or unreachable it returns an in-memory repository instead. The
// returned close function releases the pool.
func Open(ctx context.Context, databaseURL string, log *zap.Logger) (domain.RecordRepository, func(), error) {
	if databaseURL == "" {
		log.Info("no DATABASE_URL set, using in-memory store")
		return NewMemoryRepository(nil), func() {}, nil
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err == nil {
		err = pool.Ping(ctx)
		if err != nil {
			pool.Close()
		}
	}
	if err != nil {
		log.Warn("could not connect to database, using in-memory store", zap.Error(err))
		return NewMemoryRepository(nil), func() {}, nil
	}

	repo := NewPostgresRepository(pool, log)
	if err := repo.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	log.Info("connected to PostgreSQL")
	return repo, pool.Close, nil
}
