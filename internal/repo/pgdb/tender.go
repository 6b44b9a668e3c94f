package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"licitaya-api/internal/entity"
	"licitaya-api/internal/repo/repo_errors"
	"licitaya-api/pkg/postgres"

	"github.com/Masterminds/squirrel"
)

const tenderColumns = "id, reference_code, request_name, phase, state, procedure_type, base_total_price, detail_url, total_lotes, created_at"

type TenderRepo struct {
	*postgres.Postgres
}

func NewTenderRepo(pgdb *postgres.Postgres) *TenderRepo {
	return &TenderRepo{pgdb}
}

// tenderFilterConds translates the optional filters into WHERE conditions.
// Absent filters impose no constraint; present ones are conjunctive.
func tenderFilterConds(query *entity.TenderListQuery) []squirrel.Sqlizer {
	conds := make([]squirrel.Sqlizer, 0)

	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		conds = append(conds, squirrel.Or{
			squirrel.ILike{"request_name": pattern},
			squirrel.ILike{"reference_code": pattern},
		})
	}
	if query.Phase != "" {
		conds = append(conds, squirrel.Eq{"phase": query.Phase})
	}
	if query.State != "" {
		conds = append(conds, squirrel.Eq{"state": query.State})
	}
	if query.ProcedureType != "" {
		conds = append(conds, squirrel.Eq{"procedure_type": query.ProcedureType})
	}
	if query.MinPrice != nil {
		conds = append(conds, squirrel.GtOrEq{"base_total_price": *query.MinPrice})
	}
	if query.MaxPrice != nil {
		conds = append(conds, squirrel.LtOrEq{"base_total_price": *query.MaxPrice})
	}

	return conds
}

// GetTenders returns one page of tenders plus the total over the filtered
// set, counted before limit/offset are applied.
func (r *TenderRepo) GetTenders(ctx context.Context, query *entity.TenderListQuery) ([]entity.Tender, int, error) {
	conds := tenderFilterConds(query)

	countBuilder := r.SqlBuilder.
		Select("count(*)").
		From("tender")
	for _, cond := range conds {
		countBuilder = countBuilder.Where(cond)
	}

	countSql, args, _ := countBuilder.ToSql()

	var total int
	if err := r.Database.QueryRowContext(ctx, countSql, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listBuilder := r.SqlBuilder.
		Select(tenderColumns).
		From("tender")
	for _, cond := range conds {
		listBuilder = listBuilder.Where(cond)
	}

	listSql, args, _ := listBuilder.
		OrderBy(query.OrderClause()).
		Offset(uint64(query.Offset())).
		Limit(uint64(query.Limit)).
		ToSql()

	rows, err := r.Database.QueryContext(ctx, listSql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	tenders := make([]entity.Tender, 0)
	for rows.Next() {
		tender, err := scanTender(rows)
		if err != nil {
			return tenders, 0, err
		}
		tenders = append(tenders, *tender)
	}
	if err = rows.Err(); err != nil {
		return tenders, 0, err
	}

	return tenders, total, nil
}

func scanTender(rows *sql.Rows) (*entity.Tender, error) {
	var tender entity.Tender
	var createdAt time.Time
	if err := rows.Scan(&tender.Id, &tender.ReferenceCode, &tender.RequestName, &tender.Phase,
		&tender.State, &tender.ProcedureType, &tender.BaseTotalPrice, &tender.DetailUrl,
		&tender.TotalLotes, &createdAt); err != nil {
		return nil, err
	}
	tender.CreatedAt = createdAt.Format(time.RFC3339)

	return &tender, nil
}

func (r *TenderRepo) GetTenderById(ctx context.Context, id int64) (*entity.TenderDetail, error) {
	getTenderSql, args, _ := r.SqlBuilder.
		Select(tenderColumns).
		From("tender").
		Where("id = ?", id).
		ToSql()

	var detail entity.TenderDetail
	var createdAt time.Time
	row := r.Database.QueryRowContext(ctx, getTenderSql, args...)
	err := row.Scan(&detail.Id, &detail.ReferenceCode, &detail.RequestName, &detail.Phase,
		&detail.State, &detail.ProcedureType, &detail.BaseTotalPrice, &detail.DetailUrl,
		&detail.TotalLotes, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}
	detail.CreatedAt = createdAt.Format(time.RFC3339)

	if detail.Buyer, err = r.getBuyer(ctx, id); err != nil {
		return nil, err
	}
	if detail.Mipymes, err = r.getMipymes(ctx, id); err != nil {
		return nil, err
	}
	if detail.Lotes, err = r.getLotes(ctx, id); err != nil {
		return nil, err
	}

	return &detail, nil
}

func (r *TenderRepo) getBuyer(ctx context.Context, tenderId int64) (*entity.Buyer, error) {
	getBuyerSql, args, _ := r.SqlBuilder.
		Select("id, tender_id, name, profile_url").
		From("buyers").
		Where("tender_id = ?", tenderId).
		ToSql()

	var buyer entity.Buyer
	var profileUrl sql.NullString
	err := r.Database.QueryRowContext(ctx, getBuyerSql, args...).
		Scan(&buyer.Id, &buyer.TenderId, &buyer.Name, &profileUrl)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}
	buyer.ProfileUrl = profileUrl.String

	return &buyer, nil
}

func (r *TenderRepo) getMipymes(ctx context.Context, tenderId int64) (*entity.Mipymes, error) {
	getMipymesSql, args, _ := r.SqlBuilder.
		Select("id, tender_id, dirigido_mipymes, dirigido_mipymes_mujeres").
		From("mipymes").
		Where("tender_id = ?", tenderId).
		ToSql()

	var mipymes entity.Mipymes
	err := r.Database.QueryRowContext(ctx, getMipymesSql, args...).
		Scan(&mipymes.Id, &mipymes.TenderId, &mipymes.DirigidoMipymes, &mipymes.DirigidoMipymesMujeres)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &mipymes, nil
}

func (r *TenderRepo) getLotes(ctx context.Context, tenderId int64) ([]entity.Lote, error) {
	getLotesSql, args, _ := r.SqlBuilder.
		Select("id, tender_id, lote_number, name").
		From("lotes").
		Where("tender_id = ?", tenderId).
		OrderBy("lote_number ASC").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getLotesSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lotes := make([]entity.Lote, 0)
	loteIds := make([]int64, 0)
	for rows.Next() {
		var lote entity.Lote
		if err := rows.Scan(&lote.Id, &lote.TenderId, &lote.LoteNumber, &lote.Name); err != nil {
			return nil, err
		}
		lote.Items = make([]entity.Item, 0)
		lotes = append(lotes, lote)
		loteIds = append(loteIds, lote.Id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(lotes) == 0 {
		return lotes, nil
	}

	items, err := r.getItems(ctx, loteIds)
	if err != nil {
		return nil, err
	}

	itemsByLote := make(map[int64][]entity.Item, len(lotes))
	for _, item := range items {
		itemsByLote[item.LoteId] = append(itemsByLote[item.LoteId], item)
	}
	for i := range lotes {
		if grouped, ok := itemsByLote[lotes[i].Id]; ok {
			lotes[i].Items = grouped
		}
	}

	return lotes, nil
}

func (r *TenderRepo) getItems(ctx context.Context, loteIds []int64) ([]entity.Item, error) {
	getItemsSql, args, _ := r.SqlBuilder.
		Select("id, lote_id, referencia, codigo_unspsc, cuenta_presupuestaria, descripcion, cantidad, unidad, precio_unitario_estimado, precio_total_estimado").
		From("items").
		Where(squirrel.Eq{"lote_id": loteIds}).
		OrderBy("id ASC").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getItemsSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entity.Item, 0)
	for rows.Next() {
		var item entity.Item
		if err := rows.Scan(&item.Id, &item.LoteId, &item.Referencia, &item.CodigoUnspsc,
			&item.CuentaPresupuestaria, &item.Descripcion, &item.Cantidad, &item.Unidad,
			&item.PrecioUnitarioEstimado, &item.PrecioTotalEstimado); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
