package services

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/pontopro/backend/internal/metrics"
	"github.com/pontopro/backend/internal/models"
)

var punchLabels = map[string]string{
	models.PunchIn:         "Entrada",
	models.PunchBreakStart: "Pausa Almoço",
	models.PunchBreakEnd:   "Retorno Almoço",
	models.PunchOut:        "Saída",
}

type TimeRecordService struct {
	db *sql.DB
}

func NewTimeRecordService(db *sql.DB) *TimeRecordService {
	return &TimeRecordService{db: db}
}

// Fetch reads clock records newest first
func (s *TimeRecordService) Fetch(ctx context.Context, limit int) ListResult[models.TimeRecord] {
	query := `
		SELECT p.id, p.usuario_id, p.empresa_id, p.tipo, p.data_hora, p.latitude, p.longitude, p.ip, p.criado_em, u.nome
		FROM pontos p
		LEFT JOIN usuarios u ON u.id = p.usuario_id
		ORDER BY p.data_hora DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("[TIMERECORDS] Query failed: %v", err)
		return listFailed[models.TimeRecord](err)
	}
	defer rows.Close()

	var records []models.TimeRecord
	for rows.Next() {
		var r models.TimeRecord
		var lat, lng sql.NullFloat64
		var ip, name sql.NullString
		var createdAt sql.NullTime
		if err := rows.Scan(&r.ID, &r.UsuarioID, &r.EmpresaID, &r.Tipo, &r.DataHora, &lat, &lng, &ip, &createdAt, &name); err != nil {
			log.Printf("[TIMERECORDS] Scan failed: %v", err)
			return listFailed[models.TimeRecord](err)
		}
		if lat.Valid {
			r.Latitude = &lat.Float64
		}
		if lng.Valid {
			r.Longitude = &lng.Float64
		}
		r.IP = ip.String
		r.UsuarioNome = name.String
		r.CriadoEm = createdAt.Time
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return listFailed[models.TimeRecord](err)
	}

	return listOK(records)
}

// DemoTimeRecords returns the fixed demonstration records
func DemoTimeRecords(now time.Time) []models.TimeRecord {
	return []models.TimeRecord{
		{ID: "1", UsuarioID: "1", EmpresaID: "1", UsuarioNome: "Carlos Eduardo", Tipo: models.PunchIn, DataHora: now, IP: "192.168.0.1"},
		{ID: "2", UsuarioID: "2", EmpresaID: "1", UsuarioNome: "Ana Paula", Tipo: models.PunchBreakStart, DataHora: now, IP: "192.168.0.2"},
		{ID: "3", UsuarioID: "3", EmpresaID: "1", UsuarioNome: "Roberto Dias", Tipo: models.PunchIn, DataHora: now, IP: "189.12.33.1"},
	}
}

// ResolveTimeRecords mirrors ResolveTimeBank for clock records
func ResolveTimeRecords(result ListResult[models.TimeRecord], now time.Time) ([]models.TimeRecord, bool) {
	if result.OK {
		return result.Rows, false
	}
	log.Printf("[TIMERECORDS] Showing demo data (reason: %s)", result.Reason)
	metrics.IncDemoFallback("time_records", result.Reason)
	return DemoTimeRecords(now), true
}

// PunchLabel returns the display label of a punch type, or the raw type
func PunchLabel(tipo string) string {
	if label, ok := punchLabels[tipo]; ok {
		return label
	}
	return tipo
}

// TimeRecordViews renders records with pt-BR date and time in loc
func TimeRecordViews(records []models.TimeRecord, loc *time.Location) []models.TimeRecordView {
	if loc == nil {
		loc = time.UTC
	}
	views := make([]models.TimeRecordView, 0, len(records))
	for _, r := range records {
		at := r.DataHora.In(loc)
		views = append(views, models.TimeRecordView{
			ID:          r.ID,
			UsuarioNome: r.UsuarioNome,
			Tipo:        r.Tipo,
			TipoLabel:   PunchLabel(r.Tipo),
			Data:        at.Format("02/01/2006"),
			Hora:        at.Format("15:04"),
			IP:          r.IP,
			HasLocation: r.Latitude != nil && r.Longitude != nil,
		})
	}
	return views
}
