package handlers

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wisehub-ai/wisehub/ent"
	"github.com/wisehub-ai/wisehub/ent/task"
	"github.com/wisehub-ai/wisehub/ent/user"
	"github.com/wisehub-ai/wisehub/pkg/database"
	"github.com/wisehub-ai/wisehub/pkg/execerr"
	"github.com/wisehub-ai/wisehub/pkg/models"
)

// TaskSearch lists the sender's open tasks grouped by room.
func (s *Set) TaskSearch(ctx context.Context, params map[string]any, env models.Envelope, mem *models.MemoryContext) (*models.HandlerResult, error) {
	rows, err := s.deps.Client.Task.Query().
		Where(
			task.TenantID(env.TenantID),
			task.AssigneeUserID(env.UserID),
			task.StatusEQ(task.StatusOpen),
		).
		Order(ent.Asc(task.FieldDeadline)).
		All(ctx)
	if err != nil {
		return nil, execerr.New(execerr.KindInternal, err)
	}
	if len(rows) == 0 {
		return &models.HandlerResult{
			Success:     true,
			UserMessage: "未完了のタスクはありません。お疲れ様です！",
		}, nil
	}

	byRoom := make(map[string][]string)
	var roomOrder []string
	for _, t := range rows {
		if _, seen := byRoom[t.RoomID]; !seen {
			roomOrder = append(roomOrder, t.RoomID)
		}
		line := "・" + t.Body
		if t.Deadline != nil {
			line += fmt.Sprintf("（期限: %s）", t.Deadline.In(env.Timezone).Format("1/2 15:04"))
		}
		byRoom[t.RoomID] = append(byRoom[t.RoomID], line)
	}
	sort.Strings(roomOrder)

	var sb strings.Builder
	fmt.Fprintf(&sb, "未完了のタスクは%d件です。\n", len(rows))
	for _, roomID := range roomOrder {
		fmt.Fprintf(&sb, "\n[ルーム %s]\n%s", roomID, strings.Join(byRoom[roomID], "\n"))
	}
	return &models.HandlerResult{
		Success:     true,
		UserMessage: sb.String(),
		Data:        map[string]any{"task_count": len(rows)},
		Suggestions: []string{"期限が近いタスクにリマインダーを設定しますか？"},
	}, nil
}

// TaskCreate creates a chat task for the resolved assignee and mirrors it.
func (s *Set) TaskCreate(ctx context.Context, params map[string]any, env models.Envelope, mem *models.MemoryContext) (*models.HandlerResult, error) {
	assigneeName, _ := params["assignee"].(string)
	body, _ := params["body"].(string)
	var deadline *time.Time
	if d, ok := params["deadline"].(time.Time); ok {
		deadline = &d
	}

	accountID, userID, err := s.resolveAssignee(ctx, env.TenantID, assigneeName, mem)
	if err != nil {
		return &models.HandlerResult{
			Success:     false,
			UserMessage: fmt.Sprintf("「%s」さんを特定できませんでした。フルネームで教えてください。", assigneeName),
			ErrorKind:   execerr.KindNotFound,
		}, nil
	}

	cfg, err := s.deps.AdminCfg.Get(ctx, env.TenantID)
	if err != nil {
		return nil, execerr.New(execerr.KindUpstreamUnavailable, err)
	}
	ids, err := s.deps.Chat.CreateTask(ctx, cfg.ChatAPIToken, env.RoomID, body, []string{accountID}, deadline)
	if err != nil {
		return nil, execerr.New(execerr.KindUpstreamUnavailable, err)
	}

	// Mirror locally; the chat service remains the source of truth.
	err = database.TenantTx(ctx, s.deps.Client, env.TenantID, func(tx *ent.Tx) error {
		create := tx.Task.Create().
			SetID(uuid.New().String()).
			SetTenantID(env.TenantID).
			SetRoomID(env.RoomID).
			SetAssigneeUserID(userID).
			SetBody(body)
		if len(ids) > 0 {
			create.SetChatTaskID(ids[0])
		}
		if deadline != nil {
			create.SetDeadline(*deadline)
		}
		_, err := create.Save(ctx)
		return err
	})
	if err != nil {
		return nil, execerr.New(execerr.KindInternal, err)
	}

	msg := fmt.Sprintf("%sさんにタスクを作成しました：%s", assigneeName, body)
	if deadline != nil {
		msg += fmt.Sprintf("（期限: %s）", deadline.In(env.Timezone).Format("1/2 15:04"))
	}
	return &models.HandlerResult{
		Success:     true,
		UserMessage: msg,
		Data:        map[string]any{"chat_task_ids": ids},
		Suggestions: []string{"リマインダーも設定しますか？"},
	}, nil
}

// TaskComplete marks one of the sender's tasks done.
func (s *Set) TaskComplete(ctx context.Context, params map[string]any, env models.Envelope, mem *models.MemoryContext) (*models.HandlerResult, error) {
	ref, _ := params["task_id"].(string)
	row, err := s.findTask(ctx, env, ref)
	if err != nil {
		return &models.HandlerResult{
			Success:     false,
			UserMessage: "該当するタスクが見つかりませんでした。",
			ErrorKind:   execerr.KindNotFound,
		}, nil
	}

	if row.ChatTaskID != "" {
		cfg, err := s.deps.AdminCfg.Get(ctx, env.TenantID)
		if err != nil {
			return nil, execerr.New(execerr.KindUpstreamUnavailable, err)
		}
		if err := s.deps.Chat.CompleteTask(ctx, cfg.ChatAPIToken, row.RoomID, row.ChatTaskID); err != nil {
			return nil, execerr.New(execerr.KindUpstreamUnavailable, err)
		}
	}
	err = database.TenantTx(ctx, s.deps.Client, env.TenantID, func(tx *ent.Tx) error {
		_, err := tx.Task.UpdateOne(row).
			SetStatus(task.StatusDone).
			Save(ctx)
		return err
	})
	if err != nil {
		return nil, execerr.New(execerr.KindInternal, err)
	}

	return &models.HandlerResult{
		Success:     true,
		UserMessage: "タスクを完了にしました：" + row.Body,
	}, nil
}

// resolveAssignee maps a person name to (chat account id, internal user id).
// Known persons from the memory context are checked first, then the user
// table by display name.
func (s *Set) resolveAssignee(ctx context.Context, tenantID, name string, mem *models.MemoryContext) (string, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", fmt.Errorf("assignee name is empty")
	}
	for _, p := range mem.Persons {
		if p.ChatAccountID != "" && nameMatches(p.Name, name) {
			u, err := s.deps.Client.User.Query().
				Where(user.TenantID(tenantID), user.ChatAccountID(p.ChatAccountID)).
				Only(ctx)
			if err == nil {
				return p.ChatAccountID, u.ID, nil
			}
		}
	}
	u, err := s.deps.Client.User.Query().
		Where(
			user.TenantID(tenantID),
			user.DisplayNameContains(name),
			user.IsActive(true),
		).
		All(ctx)
	if err != nil {
		return "", "", err
	}
	if len(u) != 1 {
		return "", "", fmt.Errorf("assignee %q matched %d users", name, len(u))
	}
	return u[0].ChatAccountID, u[0].ID, nil
}

func nameMatches(known, requested string) bool {
	known = strings.TrimSpace(known)
	requested = strings.TrimSpace(requested)
	return known == requested || strings.Contains(known, requested) || strings.Contains(requested, known)
}

// findTask locates a task by id or fuzzy body match among the sender's open
// tasks.
func (s *Set) findTask(ctx context.Context, env models.Envelope, ref string) (*ent.Task, error) {
	ref = strings.TrimSpace(ref)
	rows, err := s.deps.Client.Task.Query().
		Where(
			task.TenantID(env.TenantID),
			task.AssigneeUserID(env.UserID),
			task.StatusEQ(task.StatusOpen),
		).
		All(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.ID == ref || row.ChatTaskID == ref {
			return row, nil
		}
	}
	for _, row := range rows {
		if strings.Contains(row.Body, ref) {
			return row, nil
		}
	}
	return nil, fmt.Errorf("no open task matches %q", ref)
}
