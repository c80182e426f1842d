package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	// postgres driver
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/btc-tracker/internal/entity/price"
	"max.ks1230/btc-tracker/internal/logger"
)

const (
	dsnTemplate  = "user=%s password=%s host=%s dbname=%s sslmode=%s"
	recordsTable = "price_records"
)

const createRecordsTable = `
CREATE TABLE IF NOT EXISTS price_records (
	id         BIGSERIAL PRIMARY KEY,
	time       TEXT        NOT NULL,
	price_usd  NUMERIC     NOT NULL,
	fetched_at TEXT        NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type config interface {
	Host() string
	Username() string
	Password() string
	Database() string
	SSLMode() string
}

// PostgresStorage mirrors every persisted record into the price_records table.
type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(config config) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Database(),
		config.SSLMode()))
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	return &PostgresStorage{db}, nil
}

func (s *PostgresStorage) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, createRecordsTable)
	return errors.Wrap(err, "create price_records")
}

func (s *PostgresStorage) Publish(ctx context.Context, rec price.Record) error {
	_, err := insertRecordQuery(rec, time.Now()).RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "save price record")
}

func insertRecordQuery(rec price.Record, createdAt time.Time) sq.InsertBuilder {
	return psql.Insert(recordsTable).
		Columns("time", "price_usd", "fetched_at", "created_at").
		Values(rec.Time, decimal.NewFromFloat(rec.BitcoinPriceUSD), rec.FetchedAt, createdAt)
}

// LatestRecord returns the most recently mirrored record, or
// price.ErrNoRecord when the table is empty.
func (s *PostgresStorage) LatestRecord(ctx context.Context) (price.Record, error) {
	var res price.Record
	var usd decimal.Decimal
	err := latestRecordQuery().RunWith(s.db).QueryRowContext(ctx).Scan(&res.Time, &usd, &res.FetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return price.Record{}, price.ErrNoRecord
	}
	if err != nil {
		return price.Record{}, errors.Wrap(err, "get latest record")
	}
	res.BitcoinPriceUSD = usd.InexactFloat64()
	return res, nil
}

func latestRecordQuery() sq.SelectBuilder {
	return psql.Select("time", "price_usd", "fetched_at").
		From(recordsTable).
		OrderBy("id DESC").
		Limit(1)
}

func (s *PostgresStorage) Name() string {
	return "postgres"
}

func (s *PostgresStorage) Close() {
	if err := s.db.Close(); err != nil {
		logger.Error("failed to close database", zap.Error(err))
	}
}
