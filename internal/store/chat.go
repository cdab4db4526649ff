package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var ErrSessionNotFound = errors.New("chat session not found")

type ChatSession struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ChatMessage struct {
	ID         int64     `json:"id"`
	SessionID  int64     `json:"sessionId"`
	Role       string    `json:"role"`
	Content    string    `json:"content"`
	HasReport  bool      `json:"hasReport"`
	ReportType *string   `json:"reportType,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (s *Store) CreateChatSession(ctx context.Context, userID int64) (*ChatSession, error) {
	var session ChatSession
	err := s.db.QueryRow(ctx, `
		insert into chat_sessions (user_id) values ($1)
		returning id, user_id, created_at, updated_at
	`, userID).Scan(&session.ID, &session.UserID, &session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		return nil, dataSourceError("create chat session", err)
	}
	return &session, nil
}

// ChatSessionForUser loads a session only if it belongs to the given user.
func (s *Store) ChatSessionForUser(ctx context.Context, sessionID, userID int64) (*ChatSession, error) {
	var session ChatSession
	err := s.db.QueryRow(ctx, `
		select id, user_id, created_at, updated_at
		from chat_sessions
		where id = $1 and user_id = $2
	`, sessionID, userID).Scan(&session.ID, &session.UserID, &session.CreatedAt, &session.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, dataSourceError("chat session query", err)
	}
	return &session, nil
}

func (s *Store) AppendChatMessage(ctx context.Context, sessionID int64, role, content string, hasReport bool, reportType *string) (*ChatMessage, error) {
	var (
		msg ChatMessage
		rt  pgtype.Text
	)
	err := s.db.QueryRow(ctx, `
		insert into chat_messages (session_id, role, content, has_report, report_type)
		values ($1, $2, $3, $4, $5)
		returning id, session_id, role, content, has_report, report_type, created_at
	`, sessionID, role, content, hasReport, reportType).Scan(
		&msg.ID, &msg.SessionID, &msg.Role, &msg.Content, &msg.HasReport, &rt, &msg.CreatedAt)
	if err != nil {
		return nil, dataSourceError("append chat message", err)
	}
	if rt.Valid {
		v := rt.String
		msg.ReportType = &v
	}

	if _, err := s.db.Exec(ctx, `update chat_sessions set updated_at = now() where id = $1`, sessionID); err != nil {
		return nil, dataSourceError("touch chat session", err)
	}
	return &msg, nil
}

// ChatMessages returns the session transcript oldest first.
func (s *Store) ChatMessages(ctx context.Context, sessionID int64, limit int) ([]ChatMessage, error) {
	rows, err := s.db.Query(ctx, `
		select id, session_id, role, content, has_report, report_type, created_at
		from chat_messages
		where session_id = $1
		order by id asc
		limit $2
	`, sessionID, limit)
	if err != nil {
		return nil, dataSourceError("chat messages query", err)
	}
	defer rows.Close()

	out := make([]ChatMessage, 0)
	for rows.Next() {
		var (
			msg ChatMessage
			rt  pgtype.Text
		)
		if err := rows.Scan(&msg.ID, &msg.SessionID, &msg.Role, &msg.Content, &msg.HasReport, &rt, &msg.CreatedAt); err != nil {
			return nil, dataSourceError("chat messages scan", err)
		}
		if rt.Valid {
			v := rt.String
			msg.ReportType = &v
		}
		out = append(out, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, dataSourceError("chat messages rows", err)
	}
	return out, nil
}

// ClearChatSession removes the transcript but keeps the session row.
func (s *Store) ClearChatSession(ctx context.Context, sessionID int64) error {
	if _, err := s.db.Exec(ctx, `delete from chat_messages where session_id = $1`, sessionID); err != nil {
		return dataSourceError("clear chat session", err)
	}
	return nil
}
