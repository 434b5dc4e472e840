package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/affiliate-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/affiliate-manager-api/internal/domain"
)

const (
	transactionReportsTable = "transaction_reports tr"
)

type TransactionReportRepository interface {
	GetByID(id int64) (*domain.TransactionReport, error)
	ListByPeriod(filters *domain.TransactionFilters) ([]*domain.TransactionReport, error)
	ListSyncedDates(startDate, endDate time.Time) ([]time.Time, error)
	SaveOrUpdateBatch(reports []*domain.TransactionReport) (int, error)
	SummarizeByPeriod(filters *domain.TransactionFilters) ([]*domain.CommissionSummaryEntry, error)
}

type transactionReportRepository struct {
	conn *postgres.Connection
}

func NewTransactionReportRepository(conn *postgres.Connection) TransactionReportRepository {
	return &transactionReportRepository{
		conn: conn,
	}
}

func (r *transactionReportRepository) GetByID(id int64) (*domain.TransactionReport, error) {
	query, args, err := squirrel.
		Select(transactionReportColumns()...).
		From(transactionReportsTable).
		Where(squirrel.Eq{"tr.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	report, err := r.scanReportRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear transaction report: %w", err)
	}

	return report, nil
}

func (r *transactionReportRepository) ListByPeriod(filters *domain.TransactionFilters) ([]*domain.TransactionReport, error) {
	builder := squirrel.
		Select(transactionReportColumns()...).
		From(transactionReportsTable).
		OrderBy("tr.transaction_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	builder = applyTransactionFilters(builder, filters)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	reports := make([]*domain.TransactionReport, 0)
	for rows.Next() {
		report, err := r.scanReportRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear transaction reports: %w", err)
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}

// ListSyncedDates retorna as datas distintas dentro do período que já possuem
// transações persistidas, usadas para decidir se o período precisa de sincronização.
func (r *transactionReportRepository) ListSyncedDates(startDate, endDate time.Time) ([]time.Time, error) {
	query, args, err := squirrel.
		Select("DISTINCT tr.transaction_date::date").
		From(transactionReportsTable).
		Where(squirrel.GtOrEq{"tr.transaction_date::date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"tr.transaction_date::date": endDate.Format(time.DateOnly)}).
		OrderBy("tr.transaction_date::date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("erro ao escanear data sincronizada: %w", err)
		}
		dates = append(dates, date)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return dates, nil
}

// SaveOrUpdateBatch insere os relatórios recebidos e atualiza os já existentes
// pelo id da transação na rede. Retorna a quantidade de linhas gravadas.
func (r *transactionReportRepository) SaveOrUpdateBatch(reports []*domain.TransactionReport) (int, error) {
	if len(reports) == 0 {
		return 0, nil
	}

	saved := 0
	for _, report := range reports {
		if err := r.saveOrUpdate(report); err != nil {
			return saved, err
		}
		saved++
	}

	return saved, nil
}

func (r *transactionReportRepository) saveOrUpdate(report *domain.TransactionReport) error {
	query := squirrel.StatementBuilder.
		Insert("transaction_reports").
		Columns(
			"id",
			"advertiser_id",
			"publisher_id",
			"site_name",
			"commission_status",
			"commission_amount",
			"sale_amount",
			"currency",
			"order_ref",
			"click_date",
			"transaction_date",
			"paid_to_publisher",
			"parts_count",
			"commission_group_ids",
		).
		Values(
			report.ID,
			report.AdvertiserID,
			report.PublisherID,
			report.SiteName,
			report.CommissionStatus,
			report.CommissionAmount,
			report.SaleAmount,
			report.Currency,
			report.OrderRef,
			report.ClickDate,
			report.TransactionDate,
			report.PaidToPublisher,
			report.PartsCount,
			pq.Array(report.CommissionGroupIDs),
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				commission_status = EXCLUDED.commission_status,
				commission_amount = EXCLUDED.commission_amount,
				sale_amount = EXCLUDED.sale_amount,
				paid_to_publisher = EXCLUDED.paid_to_publisher,
				parts_count = EXCLUDED.parts_count,
				commission_group_ids = EXCLUDED.commission_group_ids,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *transactionReportRepository) SummarizeByPeriod(filters *domain.TransactionFilters) ([]*domain.CommissionSummaryEntry, error) {
	builder := squirrel.
		Select(
			"tr.commission_status",
			"COUNT(tr.id)",
			"COALESCE(SUM(tr.commission_amount), 0)",
			"COALESCE(SUM(tr.sale_amount), 0)",
		).
		From(transactionReportsTable).
		GroupBy("tr.commission_status").
		OrderBy("tr.commission_status ASC").
		PlaceholderFormat(squirrel.Dollar)

	builder = applyTransactionFilters(builder, filters)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.CommissionSummaryEntry, 0)
	for rows.Next() {
		entry := &domain.CommissionSummaryEntry{}
		err := rows.Scan(
			&entry.CommissionStatus,
			&entry.Transactions,
			&entry.CommissionTotal,
			&entry.SaleTotal,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo de comissões: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func applyTransactionFilters(builder squirrel.SelectBuilder, filters *domain.TransactionFilters) squirrel.SelectBuilder {
	if filters == nil {
		return builder
	}

	if filters.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"tr.transaction_date::date": filters.StartDate.Format(time.DateOnly)})
	}

	if filters.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"tr.transaction_date::date": filters.EndDate.Format(time.DateOnly)})
	}

	if filters.AdvertiserID != nil {
		builder = builder.Where(squirrel.Eq{"tr.advertiser_id": *filters.AdvertiserID})
	}

	if filters.Status != nil {
		builder = builder.Where(squirrel.Eq{"tr.commission_status": *filters.Status})
	}

	return builder
}

func transactionReportColumns() []string {
	return []string{
		"tr.id",
		"tr.advertiser_id",
		"tr.publisher_id",
		"tr.site_name",
		"tr.commission_status",
		"tr.commission_amount",
		"tr.sale_amount",
		"tr.currency",
		"tr.order_ref",
		"tr.click_date",
		"tr.transaction_date",
		"tr.paid_to_publisher",
		"tr.parts_count",
		"tr.commission_group_ids",
		"tr.created_at",
		"tr.updated_at",
	}
}

func (r *transactionReportRepository) scanReportRow(row *sql.Row) (*domain.TransactionReport, error) {
	report := &domain.TransactionReport{}
	var groupIDs pq.StringArray

	err := row.Scan(
		&report.ID,
		&report.AdvertiserID,
		&report.PublisherID,
		&report.SiteName,
		&report.CommissionStatus,
		&report.CommissionAmount,
		&report.SaleAmount,
		&report.Currency,
		&report.OrderRef,
		&report.ClickDate,
		&report.TransactionDate,
		&report.PaidToPublisher,
		&report.PartsCount,
		&groupIDs,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	report.CommissionGroupIDs = groupIDs

	return report, nil
}

func (r *transactionReportRepository) scanReportRows(rows *sql.Rows) (*domain.TransactionReport, error) {
	report := &domain.TransactionReport{}
	var groupIDs pq.StringArray

	err := rows.Scan(
		&report.ID,
		&report.AdvertiserID,
		&report.PublisherID,
		&report.SiteName,
		&report.CommissionStatus,
		&report.CommissionAmount,
		&report.SaleAmount,
		&report.Currency,
		&report.OrderRef,
		&report.ClickDate,
		&report.TransactionDate,
		&report.PaidToPublisher,
		&report.PartsCount,
		&groupIDs,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	report.CommissionGroupIDs = groupIDs

	return report, nil
}
