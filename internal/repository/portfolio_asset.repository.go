package repository

import (
	"database/sql"
	"fmt"
	"time"

	"fintrack/internal/db/models/postgres/public/model"
	"fintrack/internal/db/models/postgres/public/table"
	"fintrack/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type PortfolioAssetRepository interface {
	Add(tx *sql.Tx, pa model.PortfolioAsset) (*model.PortfolioAsset, error)
	List(userID uuid.UUID) ([]domain.PortfolioAsset, error)
	Delete(tx *sql.Tx, userID, assetID uuid.UUID) error
}

type portfolioAssetRepositoryHandler struct {
	Db *sql.DB
}

func NewPortfolioAssetRepository(db *sql.DB) PortfolioAssetRepository {
	return portfolioAssetRepositoryHandler{Db: db}
}

func (h portfolioAssetRepositoryHandler) Add(tx *sql.Tx, pa model.PortfolioAsset) (*model.PortfolioAsset, error) {
	pa.PortfolioAssetID = uuid.New()
	pa.CreatedAt = time.Now().UTC()
	pa.ModifiedAt = time.Now().UTC()

	query := table.PortfolioAsset.
		INSERT(table.PortfolioAsset.AllColumns).
		MODEL(pa).
		RETURNING(table.PortfolioAsset.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}
	out := model.PortfolioAsset{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert portfolio asset: %w", err)
	}

	return &out, nil
}

func (h portfolioAssetRepositoryHandler) List(userID uuid.UUID) ([]domain.PortfolioAsset, error) {
	query := table.PortfolioAsset.
		SELECT(table.PortfolioAsset.AllColumns).
		WHERE(table.PortfolioAsset.UserID.EQ(postgres.UUID(userID))).
		ORDER_BY(table.PortfolioAsset.Symbol.ASC())

	result := []model.PortfolioAsset{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio assets: %w", err)
	}

	out := []domain.PortfolioAsset{}
	for _, row := range result {
		kind, err := domain.NewAssetKind(row.Kind)
		if err != nil {
			return nil, fmt.Errorf("portfolio asset %s: %w", row.PortfolioAssetID, err)
		}
		currency, err := domain.NewCurrency(row.Currency)
		if err != nil {
			return nil, fmt.Errorf("portfolio asset %s: %w", row.PortfolioAssetID, err)
		}
		out = append(out, domain.PortfolioAsset{
			ID:       row.PortfolioAssetID,
			UserID:   row.UserID,
			Kind:     *kind,
			Symbol:   row.Symbol,
			Quantity: row.Quantity,
			Currency: *currency,
		})
	}

	return out, nil
}

func (h portfolioAssetRepositoryHandler) Delete(tx *sql.Tx, userID, assetID uuid.UUID) error {
	query := table.PortfolioAsset.
		DELETE().
		WHERE(postgres.AND(
			table.PortfolioAsset.PortfolioAssetID.EQ(postgres.UUID(assetID)),
			table.PortfolioAsset.UserID.EQ(postgres.UUID(userID)),
		))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}
	result, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to delete portfolio asset: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("portfolio asset %s not found", assetID)
	}

	return nil
}
