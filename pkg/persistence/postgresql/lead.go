package postgresql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lib/pq"

	"github.com/leadflowhq/leadflow/pkg/models"
)

// LeadRepository handles lead-related database operations.
type LeadRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewLeadRepository creates a new lead repository.
func NewLeadRepository(db *sql.DB, logger *slog.Logger) *LeadRepository {
	return &LeadRepository{db: db, logger: logger}
}

// GetAll returns all leads from the database, newest first.
func (r *LeadRepository) GetAll(ctx context.Context) ([]*models.Lead, error) {
	query := `
		SELECT
			id
		  , source
		  , status
		  , contact
		  , metadata
		  , tags
		  , score
		FROM leads
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}

	defer func() {
		err := rows.Close()
		if err != nil {
			r.logger.ErrorContext(ctx, "failed to close rows", "error", err)
		}
	}()

	leads := make([]*models.Lead, 0)

	for rows.Next() {
		lead, err := r.scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}

		leads = append(leads, lead)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("error iterating leads: %w", err)
	}

	return leads, nil
}

// GetByID returns a lead by its ID, nil when it does not exist.
func (r *LeadRepository) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	query := `
		SELECT
			id
		  , source
		  , status
		  , contact
		  , metadata
		  , tags
		  , score
		FROM leads
		WHERE id = $1
	`

	row := r.db.QueryRowContext(ctx, query, id)

	lead, err := r.scanLead(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to scan lead: %w", err)
	}

	return lead, nil
}

// Save upserts a lead.
func (r *LeadRepository) Save(ctx context.Context, lead *models.Lead) error {
	contactJSON, err := json.Marshal(lead.Contact)
	if err != nil {
		return fmt.Errorf("failed to marshal lead %s contact: %w", lead.ID, err)
	}

	metadataJSON, err := json.Marshal(lead.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal lead %s metadata: %w", lead.ID, err)
	}

	query := `
		INSERT INTO leads (id, source, status, contact, metadata, tags, score)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			source = EXCLUDED.source,
			status = EXCLUDED.status,
			contact = EXCLUDED.contact,
			metadata = EXCLUDED.metadata,
			tags = EXCLUDED.tags,
			score = EXCLUDED.score,
			updated_at = NOW()
	`

	_, err = r.db.ExecContext(ctx, query,
		lead.ID,
		lead.Source,
		lead.Status,
		contactJSON,
		metadataJSON,
		pq.Array(lead.Tags),
		lead.Score,
	)
	if err != nil {
		return fmt.Errorf("failed to save lead %s: %w", lead.ID, err)
	}

	return nil
}

func (r *LeadRepository) scanLead(row rowScanner) (*models.Lead, error) {
	var (
		lead         models.Lead
		contactJSON  []byte
		metadataJSON []byte
		tags         pq.StringArray
		score        sql.NullFloat64
	)

	err := row.Scan(
		&lead.ID,
		&lead.Source,
		&lead.Status,
		&contactJSON,
		&metadataJSON,
		&tags,
		&score,
	)
	if err != nil {
		return nil, err
	}

	if len(contactJSON) > 0 {
		if err := json.Unmarshal(contactJSON, &lead.Contact); err != nil {
			return nil, fmt.Errorf("failed to unmarshal contact: %w", err)
		}
	}

	if len(metadataJSON) > 0 {
		if err := json.Unmarshal(metadataJSON, &lead.Metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
	}

	lead.Tags = tags

	if score.Valid {
		lead.Score = &score.Float64
	}

	return &lead, nil
}
