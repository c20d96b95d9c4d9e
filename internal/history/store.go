// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The calseq Authors

package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/obsops/calseq/internal/keywords"
	"github.com/obsops/calseq/internal/logger"
	"github.com/obsops/calseq/internal/sequence"
	"github.com/obsops/calseq/models"
)

// ErrRequestNotFound is returned by Get when no request with the given ID
// has been recorded.
var ErrRequestNotFound = errors.New("request not found in history")

const requestsTable = "requests"

var requestColumns = []string{
	"id",
	"source_file",
	"octagon_source",
	"warm_up",
	"exptime",
	"n_exp",
	"trig_targ",
	"src_shutters",
	"timed_shutters",
	"nd1",
	"nd2",
	"raw_text",
	"created_at",
}

// Record is one archived exposure request as stored in the history database.
// The trigger and shutter flags are stored denormalized, as the comma-joined
// keyword list values the sequencer would write.
type Record struct {
	ID            uuid.UUID
	SourceFile    string
	OctagonSource string
	WarmUp        int
	Exptime       float64
	NExp          int
	TrigTarg      string
	SrcShutters   string
	TimedShutters string
	ND1           string
	ND2           string
	RawText       string
	CreatedAt     time.Time
}

// RequestHistory archives validated exposure requests.
type RequestHistory interface {
	// Save records a validated request. The canonical encoding of the
	// request is stored alongside the derived keyword values.
	Save(ctx context.Context, req models.ExposureRequest) error

	// Get returns the archived record with the given request ID.
	Get(ctx context.Context, id uuid.UUID) (Record, error)

	// ListRecent returns up to limit records, newest first.
	ListRecent(ctx context.Context, limit int) ([]Record, error)
}

type requestHistory struct {
	db     *DB
	logger *logger.Logger
}

func NewRequestHistory(db *DB, logger *logger.Logger) RequestHistory {
	return &requestHistory{
		db:     db,
		logger: logger,
	}
}

func (h *requestHistory) Save(ctx context.Context, req models.ExposureRequest) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert(requestsTable).
		Columns(requestColumns[:len(requestColumns)-1]...).
		Values(
			req.ID.String(),
			req.SourceFile,
			req.OctagonSource.String(),
			req.WarmUp,
			req.Exptime,
			req.NExp,
			keywords.TriggerList(req),
			keywords.SourceShutterList(req),
			keywords.TimedShutterList(req),
			req.ND1.String(),
			req.ND2.String(),
			sequence.Format(req),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert for request history: %w", err)
	}

	if _, err := h.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "requestHistory.Save").
			Str("request_id", req.ID.String()).
			Msg("failed to insert request into history")
		return fmt.Errorf("failed to save request (id=%s): %w", req.ID, err)
	}

	return nil
}

func (h *requestHistory) Get(ctx context.Context, id uuid.UUID) (Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(requestColumns...).
		From(requestsTable).
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return Record{}, fmt.Errorf("failed to build select for request history: %w", err)
	}

	row := h.db.QueryRowContext(ctx, query, args...)
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %s", ErrRequestNotFound, id)
	}
	if err != nil {
		log.Err(err).
			Str("func", "requestHistory.Get").
			Str("request_id", id.String()).
			Msg("failed to read request from history")
		return Record{}, fmt.Errorf("failed to get request (id=%s): %w", id, err)
	}

	return record, nil
}

func (h *requestHistory) ListRecent(ctx context.Context, limit int) ([]Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(requestColumns...).
		From(requestsTable).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select for request history: %w", err)
	}

	rows, err := h.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "requestHistory.ListRecent").
			Msg("failed to list requests from history")
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan request record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate request records: %w", err)
	}

	return records, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (Record, error) {
	var record Record
	var id string

	err := s.Scan(
		&id,
		&record.SourceFile,
		&record.OctagonSource,
		&record.WarmUp,
		&record.Exptime,
		&record.NExp,
		&record.TrigTarg,
		&record.SrcShutters,
		&record.TimedShutters,
		&record.ND1,
		&record.ND2,
		&record.RawText,
		&record.CreatedAt,
	)
	if err != nil {
		return Record{}, err
	}

	record.ID, err = uuid.Parse(id)
	if err != nil {
		return Record{}, fmt.Errorf("corrupt request id in history: %w", err)
	}

	return record, nil
}
