package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/vfg2006/affiliate-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/affiliate-manager-api/internal/domain"
)

const (
	advertisersTable = "advertisers adv"
)

type AdvertiserRepository interface {
	GetAdvertiserByID(advertiserID string) (*domain.Advertiser, error)
	GetAdvertiserByExternalID(externalID int) (*domain.Advertiser, error)
	ListAdvertisers(availableStatus []domain.AdvertiserStatus) ([]*domain.Advertiser, error)
	ListExternalIDsMap() (map[int]string, error)
	SaveOrUpdate(advertisers []*domain.Advertiser) error
	UpdateAdvertiser(advertiser *domain.UpdateAdvertiserRequest) error
}

type advertiserRepository struct {
	conn *postgres.Connection
}

func NewAdvertiserRepository(conn *postgres.Connection) AdvertiserRepository {
	return &advertiserRepository{
		conn: conn,
	}
}

func (a *advertiserRepository) GetAdvertiserByExternalID(externalID int) (*domain.Advertiser, error) {
	return a.getAdvertiser(squirrel.Eq{"adv.external_id": externalID})
}

func (a *advertiserRepository) GetAdvertiserByID(advertiserID string) (*domain.Advertiser, error) {
	return a.getAdvertiser(squirrel.Eq{"adv.id": advertiserID})
}

func (a *advertiserRepository) getAdvertiser(whereClause map[string]interface{}) (*domain.Advertiser, error) {
	advertisersSQL, advertisersArgs, err := squirrel.
		Select("adv.id, adv.external_id, adv.name, adv.status, adv.created_at, adv.updated_at").
		From(advertisersTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := a.conn.QueryRow(advertisersSQL, advertisersArgs...)

	adv, err := a.deserializeAdvertiser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return adv, err
}

func (a *advertiserRepository) deserializeAdvertiser(row *sql.Row) (*domain.Advertiser, error) {
	adv := &domain.Advertiser{}

	if err := row.Scan(
		&adv.ID,
		&adv.ExternalID,
		&adv.Name,
		&adv.Status,
		&adv.CreatedAt,
		&adv.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return adv, nil
}

func (a *advertiserRepository) ListAdvertisers(availableStatus []domain.AdvertiserStatus) ([]*domain.Advertiser, error) {
	queryBuilder := squirrel.
		Select("adv.id, adv.external_id, adv.name, adv.status, adv.created_at, adv.updated_at").
		From(advertisersTable).
		OrderBy("adv.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"adv.status": availableStatus})
	}

	advertisersSQL, advertisersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := a.conn.Query(advertisersSQL, advertisersArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	defer rows.Close()

	advertisers := make([]*domain.Advertiser, 0)

	for rows.Next() {
		adv := domain.Advertiser{}
		if err := rows.Scan(
			&adv.ID,
			&adv.ExternalID,
			&adv.Name,
			&adv.Status,
			&adv.CreatedAt,
			&adv.UpdatedAt,
		); err != nil {
			return nil, err
		}

		advertisers = append(advertisers, &adv)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return advertisers, nil
}

// ListExternalIDsMap retorna um mapa de external_id para id interno, usado na
// sincronização para saber quais anunciantes já estão cadastrados.
func (a *advertiserRepository) ListExternalIDsMap() (map[int]string, error) {
	advertisersSQL, advertisersArgs, err := squirrel.
		Select("adv.id, adv.external_id").
		From(advertisersTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := a.conn.Query(advertisersSQL, advertisersArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return make(map[int]string, 0), nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	advertisersMap := make(map[int]string)

	for rows.Next() {
		var id string
		var externalID int
		if err := rows.Scan(&id, &externalID); err != nil {
			return nil, fmt.Errorf("erro ao deserializar o anunciante: %w", err)
		}

		advertisersMap[externalID] = id
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return advertisersMap, nil
}

func (a *advertiserRepository) SaveOrUpdate(advertisers []*domain.Advertiser) error {
	if len(advertisers) == 0 {
		return nil
	}

	// Cria a query de inserção ou atualização
	query := squirrel.StatementBuilder.
		Insert("advertisers").
		Columns("id", "external_id", "name", "status").
		PlaceholderFormat(squirrel.Dollar)

	// Adiciona os valores de cada anunciante ao batch
	for _, advertiser := range advertisers {
		query = query.Values(
			advertiser.ID,
			advertiser.ExternalID,
			advertiser.Name,
			advertiser.Status,
		)
	}

	// Define o comportamento em caso de conflito (atualiza os campos)
	query = query.Suffix(`
			ON CONFLICT (external_id) DO UPDATE SET
				name = COALESCE(advertisers.name, EXCLUDED.name),
				updated_at = NOW()
		`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = a.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (a *advertiserRepository) UpdateAdvertiser(advertiser *domain.UpdateAdvertiserRequest) error {
	if advertiser.ID == "" {
		return errors.New("ID is required")
	}

	queryBuilder := squirrel.
		Update("advertisers").
		Where(squirrel.Eq{"id": advertiser.ID}).
		PlaceholderFormat(squirrel.Dollar)

	// Adiciona os campos que foram fornecidos para atualização
	if advertiser.Name != nil {
		queryBuilder = queryBuilder.Set("name", *advertiser.Name)
	}

	if advertiser.Status != nil {
		queryBuilder = queryBuilder.Set("status", *advertiser.Status)
	}

	queryBuilder = queryBuilder.Set("updated_at", squirrel.Expr("NOW()"))

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := a.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("advertiser not found")
	}

	return nil
}
