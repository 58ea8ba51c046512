package services

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/pontopro/backend/internal/interval"
	"github.com/pontopro/backend/internal/metrics"
	"github.com/pontopro/backend/internal/models"
)

type TimeBankService struct {
	db *sql.DB
}

func NewTimeBankService(db *sql.DB) *TimeBankService {
	return &TimeBankService{db: db}
}

// Fetch reads every time-bank row with the employee name. Query errors and
// empty results both come back as a failed ListResult.
func (s *TimeBankService) Fetch(ctx context.Context) ListResult[models.TimeBankEntry] {
	rows, err := s.db.QueryContext(ctx, `
		SELECT b.id, b.usuario_id, b.empresa_id, b.data, b.horas_trabalhadas, b.horas_esperadas, b.saldo, b.criado_em, u.nome
		FROM banco_horas b
		LEFT JOIN usuarios u ON u.id = b.usuario_id
		ORDER BY b.data DESC, u.nome ASC`)
	if err != nil {
		log.Printf("[TIMEBANK] Query failed: %v", err)
		return listFailed[models.TimeBankEntry](err)
	}
	defer rows.Close()

	var entries []models.TimeBankEntry
	for rows.Next() {
		var e models.TimeBankEntry
		var worked, expected, balance, name sql.NullString
		var createdAt sql.NullTime
		if err := rows.Scan(&e.ID, &e.UsuarioID, &e.EmpresaID, &e.Data, &worked, &expected, &balance, &createdAt, &name); err != nil {
			log.Printf("[TIMEBANK] Scan failed: %v", err)
			return listFailed[models.TimeBankEntry](err)
		}
		e.HorasTrabalhadas = worked.String
		e.HorasEsperadas = expected.String
		e.Saldo = balance.String
		e.UsuarioNome = name.String
		e.CriadoEm = createdAt.Time
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		log.Printf("[TIMEBANK] Row iteration failed: %v", err)
		return listFailed[models.TimeBankEntry](err)
	}

	return listOK(entries)
}

// DemoTimeBankEntries returns the fixed demonstration rows
func DemoTimeBankEntries(now time.Time) []models.TimeBankEntry {
	return []models.TimeBankEntry{
		{ID: "1", UsuarioID: "1", EmpresaID: "1", UsuarioNome: "Marcos André", Data: now, HorasTrabalhadas: "08:45:00", HorasEsperadas: "08:00:00", Saldo: "00:45:00"},
		{ID: "2", UsuarioID: "2", EmpresaID: "1", UsuarioNome: "Julia Silva", Data: now, HorasTrabalhadas: "07:30:00", HorasEsperadas: "08:00:00", Saldo: "-00:30:00"},
	}
}

// ResolveTimeBank picks the rows to display for a fetch outcome and reports
// whether they are demonstration data.
func ResolveTimeBank(result ListResult[models.TimeBankEntry], now time.Time) ([]models.TimeBankEntry, bool) {
	if result.OK {
		return result.Rows, false
	}
	log.Printf("[TIMEBANK] Showing demo data (reason: %s)", result.Reason)
	metrics.IncDemoFallback("time_bank", result.Reason)
	return DemoTimeBankEntries(now), true
}

// TimeBankViews formats every interval column for display
func TimeBankViews(entries []models.TimeBankEntry) []models.TimeBankView {
	views := make([]models.TimeBankView, 0, len(entries))
	for _, e := range entries {
		views = append(views, models.TimeBankView{
			ID:              e.ID,
			UsuarioID:       e.UsuarioID,
			UsuarioNome:     e.UsuarioNome,
			Data:            e.Data.Format("2006-01-02"),
			Trabalhadas:     interval.Format(e.HorasTrabalhadas),
			Esperadas:       interval.Format(e.HorasEsperadas),
			Saldo:           interval.Format(e.Saldo),
			BalancePositive: !interval.IsNegative(e.Saldo),
		})
	}
	return views
}
