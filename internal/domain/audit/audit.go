package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Entry struct {
	ID        string          `json:"id"`
	ActorID   string          `json:"actorId"`
	Action    string          `json:"action"`
	Entity    string          `json:"entity"`
	EntityID  string          `json:"entityId"`
	RequestID string          `json:"requestId"`
	IP        string          `json:"ip"`
	Detail    json.RawMessage `json:"detail,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type Service struct {
	DB     *pgxpool.Pool
	Logger *slog.Logger
}

func New(db *pgxpool.Pool, logger *slog.Logger) *Service {
	return &Service{DB: db, Logger: logger}
}

// Record appends a trail entry. Failures are logged and swallowed so an
// audit hiccup never fails the request that triggered it.
func (s *Service) Record(ctx context.Context, actorID, action, entity, entityID, requestID, ip string, detail any) {
	var detailJSON []byte
	if detail != nil {
		payload, err := json.Marshal(detail)
		if err != nil {
			s.Logger.Error("audit detail marshal failed", "action", action, "error", err)
			return
		}
		detailJSON = payload
	}

	_, err := s.DB.Exec(ctx, `
    INSERT INTO audit_logs (actor_id, action, entity, entity_id, request_id, ip, detail)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
  `, actorID, action, entity, entityID, requestID, ip, detailJSON)
	if err != nil {
		s.Logger.Error("audit write failed", "action", action, "entity", entity, "error", err)
	}
}

// Recent is the admin view of the trail, newest first.
func (s *Service) Recent(ctx context.Context, limit, offset int) ([]Entry, int, error) {
	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM audit_logs").Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.DB.Query(ctx, `
    SELECT id, actor_id, action, entity, entity_id, request_id, ip, detail, created_at
    FROM audit_logs
    ORDER BY created_at DESC
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.ActorID, &e.Action, &e.Entity, &e.EntityID, &e.RequestID, &e.IP, &e.Detail, &e.CreatedAt); err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	return entries, total, rows.Err()
}
