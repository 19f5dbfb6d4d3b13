// Package announce implements the announcement lifecycle: request capture,
// fuzzy room resolution, confirmation dialogue, scheduling, and idempotent
// execution, plus recurrence pattern detection.
package announce

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wisehub-ai/wisehub/ent"
	"github.com/wisehub-ai/wisehub/ent/announcement"
	"github.com/wisehub-ai/wisehub/ent/announcementexecution"
	"github.com/wisehub-ai/wisehub/pkg/adminconfig"
	"github.com/wisehub-ai/wisehub/pkg/chatwork"
	"github.com/wisehub-ai/wisehub/pkg/database"
	"github.com/wisehub-ai/wisehub/pkg/llm"
	"github.com/wisehub-ai/wisehub/pkg/models"
	"github.com/wisehub-ai/wisehub/pkg/opsalert"
	"github.com/wisehub-ai/wisehub/pkg/state"
)

// JobStore is the scheduling contract the announcement flow consumes.
type JobStore interface {
	EnqueueOnce(ctx context.Context, tenantID, kind string, payload map[string]any, runAt time.Time) (string, error)
	EnqueueRecurring(ctx context.Context, tenantID, kind string, payload map[string]any, cronExpr string, firstRun time.Time) (string, error)
	Cancel(ctx context.Context, tenantID, jobID string) error
}

// JobKindExecute is the scheduled-job kind for announcement executions.
const JobKindExecute = "announcement_execute"

// Service drives the announcement state machine.
type Service struct {
	client   *ent.Client
	chat     chatwork.API
	llm      llm.Client
	jobs     JobStore
	adminCfg *adminconfig.Service
	alerts   *opsalert.Service
	logger   *slog.Logger
}

// NewService creates an announcement service.
func NewService(client *ent.Client, chat chatwork.API, llmClient llm.Client, jobs JobStore, adminCfg *adminconfig.Service, alerts *opsalert.Service) *Service {
	if client == nil || chat == nil || jobs == nil || adminCfg == nil {
		panic("announce.NewService: client, chat, jobs and adminCfg must not be nil")
	}
	return &Service{
		client:   client,
		chat:     chat,
		llm:      llmClient,
		jobs:     jobs,
		adminCfg: adminCfg,
		alerts:   alerts,
		logger:   slog.Default().With("component", "announce"),
	}
}

// Request carries the parsed announcement fields from the handler.
type Request struct {
	Message     string
	RoomName    string
	CreateTasks bool
	Deadline    *time.Time
	ScheduleAt  *time.Time
	CronExpr    string
}

// Start captures a new announcement request. It auto-cancels any still
// pending request from the same user, resolves the room, records the
// recurrence pattern, and returns the handler result with the state delta the
// Brain applies.
func (s *Service) Start(ctx context.Context, env models.Envelope, req Request) (*models.HandlerResult, error) {
	cfg, err := s.adminCfg.Get(ctx, env.TenantID)
	if err != nil {
		return nil, err
	}

	if err := s.cancelStalePending(ctx, env.TenantID, env.AccountID); err != nil {
		s.logger.Warn("Failed to auto-cancel stale announcement", "error", err)
	}
	if err := s.recordPattern(ctx, env.TenantID, env.AccountID, req.Message); err != nil {
		s.logger.Warn("Pattern bookkeeping failed", "error", err)
	}

	rooms, err := s.chat.Rooms(ctx, cfg.ChatAPIToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	matches := MatchRooms(req.RoomName, rooms)

	message := s.rewriteMessage(ctx, req.Message)

	scheduleType := announcement.ScheduleTypeImmediate
	switch {
	case req.CronExpr != "":
		if err := ValidateCron(req.CronExpr); err != nil {
			return nil, err
		}
		scheduleType = announcement.ScheduleTypeRecurring
	case req.ScheduleAt != nil:
		scheduleType = announcement.ScheduleTypeOneTime
	}

	var step, question string
	var ann *ent.Announcement
	err = database.TenantTx(ctx, s.client, env.TenantID, func(tx *ent.Tx) error {
		create := tx.Announcement.Create().
			SetID(uuid.New().String()).
			SetTenantID(env.TenantID).
			SetMessageBody(message).
			SetCreateTasks(req.CreateTasks).
			SetScheduleType(scheduleType).
			SetTimezone(cfg.Timezone).
			SetRequesterAccountID(env.AccountID).
			SetSourceRoomID(env.RoomID)
		if req.Deadline != nil {
			create.SetTaskDeadline(*req.Deadline)
		}
		if req.ScheduleAt != nil {
			create.SetScheduledAt(*req.ScheduleAt)
		}
		if req.CronExpr != "" {
			create.SetCronExpression(req.CronExpr)
		}

		if len(matches) > 0 && matches[0].Similarity >= cfg.RoomMatchThreshold {
			create.SetTargetRoomID(matches[0].RoomID).SetStatus(announcement.StatusPending)
			step = stepConfirm
			question = s.confirmationText(matches[0].Name, message, req)
		} else {
			create.SetStatus(announcement.StatusPendingRoom)
			step = stepPendingRoom
			question = roomChoiceText(req.RoomName, matches)
		}

		var err error
		ann, err = create.Save(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}
	s.logger.Info("Announcement captured",
		"tenant_id", env.TenantID, "announcement_id", ann.ID,
		"status", ann.Status, "schedule_type", scheduleType)

	data := map[string]any{"announcement_id": ann.ID}
	if step == stepPendingRoom {
		// The choices the user will answer by number; the follow-up message
		// indexes these, never a re-ranked match list.
		data["room_candidates"] = candidateRoomIDs(matches)
	}
	return &models.HandlerResult{
		Success:     true,
		UserMessage: question,
		StateDelta: &models.StateDelta{
			StateType:     state.TypeAnnouncement,
			Step:          step,
			Data:          data,
			ReferenceType: "announcement",
			ReferenceID:   ann.ID,
		},
	}, nil
}

// Flow steps within the announcement conversation state.
const (
	stepPendingRoom = "pending_room"
	stepConfirm     = "confirm"
)

// affirmations accepted as a confirmation "yes".
var affirmations = []string{"はい", "ok", "yes", "お願い", "実行", "確定", "それで", "良い", "いいよ", "承認"}

// negations that veto an affirmation anywhere in the reply.
var negations = []string{"いいえ", "いらない", "不要", "しない", "やめ", "だめ", "違う", "ちがう", "じゃない", "ではない", "no", "not", "don't"}

// isAffirmative reports whether the reply as a whole approves the pending
// confirmation. An affirmation must anchor the reply and no negation may
// appear anywhere, so a refusal that merely contains 「はい」 (as in
// 「タスクはいらないです」) never schedules an announcement.
func isAffirmative(text string) bool {
	folded := strings.ToLower(strings.TrimSpace(text))
	for _, n := range negations {
		if strings.Contains(folded, n) {
			return false
		}
	}
	for _, a := range affirmations {
		if folded == a || strings.HasPrefix(folded, a) {
			return true
		}
	}
	return false
}

// candidateRoomIDs returns the room ids in presentation order, capped at the
// three that roomChoiceText shows.
func candidateRoomIDs(matches []RoomMatch) []string {
	ids := make([]string, 0, 3)
	for i, m := range matches {
		if i >= 3 {
			break
		}
		ids = append(ids, m.RoomID)
	}
	return ids
}

// pickPresented resolves a numeric reply against the candidates that were
// actually shown to the user.
func pickPresented(reply string, presented []string, rooms []chatwork.Room) (RoomMatch, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(reply))
	if err != nil || n < 1 || n > len(presented) {
		return RoomMatch{}, false
	}
	id := presented[n-1]
	for _, r := range rooms {
		if r.RoomID == id {
			return RoomMatch{RoomID: r.RoomID, Name: r.Name, Similarity: 1}, true
		}
	}
	return RoomMatch{}, false
}

// stateStrings recovers a string slice from state data, which round-trips
// through JSON as []any.
func stateStrings(v any) []string {
	switch vv := v.(type) {
	case []string:
		return vv
	case []any:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Continue consumes the next user message while the announcement state is
// active. Cancel keywords are handled by the State layer before this runs.
func (s *Service) Continue(ctx context.Context, env models.Envelope, snap *state.Snapshot, text string) (*models.HandlerResult, error) {
	annID, _ := snap.Data["announcement_id"].(string)
	if annID == "" {
		return nil, fmt.Errorf("announcement state has no announcement_id")
	}
	ann, err := s.client.Announcement.Query().
		Where(announcement.TenantID(env.TenantID), announcement.ID(annID)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load announcement %s: %w", annID, err)
	}

	switch snap.Step {
	case stepPendingRoom:
		return s.continueRoomChoice(ctx, env, ann, snap, text)
	case stepConfirm:
		return s.continueConfirmation(ctx, env, ann, text)
	default:
		return nil, fmt.Errorf("unknown announcement step %q", snap.Step)
	}
}

func (s *Service) continueRoomChoice(ctx context.Context, env models.Envelope, ann *ent.Announcement, snap *state.Snapshot, text string) (*models.HandlerResult, error) {
	cfg, err := s.adminCfg.Get(ctx, env.TenantID)
	if err != nil {
		return nil, err
	}
	rooms, err := s.chat.Rooms(ctx, cfg.ChatAPIToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	// A bare number answers the previously presented choices; any other text
	// is matched as a room name.
	picked, ok := pickPresented(text, stateStrings(snap.Data["room_candidates"]), rooms)
	if !ok {
		matches := MatchRooms(text, rooms)
		if len(matches) == 0 || matches[0].Similarity < cfg.RoomMatchThreshold {
			return &models.HandlerResult{
				Success:     true,
				UserMessage: roomChoiceText(text, matches),
				StateDelta: &models.StateDelta{
					StateType: state.TypeAnnouncement,
					Step:      stepPendingRoom,
					Data: map[string]any{
						"announcement_id": ann.ID,
						"room_candidates": candidateRoomIDs(matches),
					},
					ReferenceType: "announcement",
					ReferenceID:   ann.ID,
				},
			}, nil
		}
		picked = matches[0]
	}

	var updated *ent.Announcement
	err = database.TenantTx(ctx, s.client, env.TenantID, func(tx *ent.Tx) error {
		var err error
		updated, err = tx.Announcement.UpdateOne(ann).
			SetTargetRoomID(picked.RoomID).
			SetStatus(announcement.StatusPending).
			Save(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set announcement room: %w", err)
	}
	return &models.HandlerResult{
		Success:     true,
		UserMessage: s.confirmationText(picked.Name, updated.MessageBody, Request{CreateTasks: updated.CreateTasks}),
		StateDelta: &models.StateDelta{
			StateType:     state.TypeAnnouncement,
			Step:          stepConfirm,
			Data:          map[string]any{"announcement_id": ann.ID},
			ReferenceType: "announcement",
			ReferenceID:   ann.ID,
		},
	}, nil
}

func (s *Service) continueConfirmation(ctx context.Context, env models.Envelope, ann *ent.Announcement, text string) (*models.HandlerResult, error) {
	if isAffirmative(text) {
		return s.confirm(ctx, env, ann)
	}

	// Anything else is treated as a modification request: rewrite the
	// message body with the instruction and re-present.
	rewritten := s.rewriteWithInstruction(ctx, ann.MessageBody, text)
	var updated *ent.Announcement
	err := database.TenantTx(ctx, s.client, env.TenantID, func(tx *ent.Tx) error {
		var err error
		updated, err = tx.Announcement.UpdateOne(ann).
			SetMessageBody(rewritten).
			Save(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update announcement body: %w", err)
	}
	return &models.HandlerResult{
		Success:     true,
		UserMessage: "内容を修正しました。\n---\n" + updated.MessageBody + "\n---\nこの内容で配信してよろしいですか？",
		StateDelta: &models.StateDelta{
			StateType:     state.TypeAnnouncement,
			Step:          stepConfirm,
			Data:          map[string]any{"announcement_id": ann.ID},
			ReferenceType: "announcement",
			ReferenceID:   ann.ID,
		},
	}, nil
}

// confirm moves the announcement through confirmed into scheduled and clears
// the conversation state.
func (s *Service) confirm(ctx context.Context, env models.Envelope, ann *ent.Announcement) (*models.HandlerResult, error) {
	loc, err := time.LoadLocation(ann.Timezone)
	if err != nil {
		loc = time.UTC
	}

	err = database.TenantTx(ctx, s.client, env.TenantID, func(tx *ent.Tx) error {
		_, err := tx.Announcement.UpdateOne(ann).
			SetStatus(announcement.StatusConfirmed).
			Save(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to mark announcement confirmed: %w", err)
	}

	nextRun, err := firstRun(ann, time.Now(), loc)
	if err != nil {
		return nil, err
	}
	payload := map[string]any{"announcement_id": ann.ID}
	if ann.ScheduleType == announcement.ScheduleTypeRecurring {
		if _, err := s.jobs.EnqueueRecurring(ctx, env.TenantID, JobKindExecute, payload, *ann.CronExpression, nextRun); err != nil {
			return nil, fmt.Errorf("failed to enqueue recurring announcement: %w", err)
		}
	} else {
		if _, err := s.jobs.EnqueueOnce(ctx, env.TenantID, JobKindExecute, payload, nextRun); err != nil {
			return nil, fmt.Errorf("failed to enqueue announcement: %w", err)
		}
	}

	err = database.TenantTx(ctx, s.client, env.TenantID, func(tx *ent.Tx) error {
		_, err := tx.Announcement.UpdateOne(ann).
			SetStatus(announcement.StatusScheduled).
			SetNextExecutionAt(nextRun).
			Save(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to mark announcement scheduled: %w", err)
	}
	s.logger.Info("Announcement scheduled",
		"tenant_id", env.TenantID, "announcement_id", ann.ID,
		"next_execution_at", nextRun)

	msg := "アナウンスを予約しました。"
	if ann.ScheduleType == announcement.ScheduleTypeImmediate {
		msg = "アナウンスを配信します。"
	}
	return &models.HandlerResult{
		Success:     true,
		UserMessage: msg,
		StateDelta:  &models.StateDelta{Clear: true},
		Suggestions: []string{"定期配信にしますか？"},
	}, nil
}

// immediateDelay pushes an immediate announcement slightly into the future so
// a scheduled row never reads as overdue the moment it is written.
const immediateDelay = 5 * time.Second

// firstRun computes the first execution time for a confirmed announcement.
func firstRun(ann *ent.Announcement, now time.Time, loc *time.Location) (time.Time, error) {
	switch ann.ScheduleType {
	case announcement.ScheduleTypeImmediate:
		return now.Add(immediateDelay), nil
	case announcement.ScheduleTypeOneTime:
		if ann.ScheduledAt == nil || !ann.ScheduledAt.After(now) {
			return time.Time{}, fmt.Errorf("one_time announcement %s has no future scheduled_at", ann.ID)
		}
		return *ann.ScheduledAt, nil
	case announcement.ScheduleTypeRecurring:
		if ann.CronExpression == nil {
			return time.Time{}, fmt.Errorf("recurring announcement %s has no cron expression", ann.ID)
		}
		return nextCronRun(*ann.CronExpression, now, loc)
	}
	return time.Time{}, fmt.Errorf("unknown schedule type %q", ann.ScheduleType)
}

// cancelStalePending cancels older still-pending announcements from the same
// requester; a new request supersedes them.
func (s *Service) cancelStalePending(ctx context.Context, tenantID, requesterAccountID string) error {
	n, err := s.client.Announcement.Update().
		Where(
			announcement.TenantID(tenantID),
			announcement.RequesterAccountID(requesterAccountID),
			announcement.StatusIn(announcement.StatusPending, announcement.StatusPendingRoom),
		).
		SetStatus(announcement.StatusCancelled).
		Save(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		s.logger.Info("Superseded stale pending announcements",
			"tenant_id", tenantID, "requester", requesterAccountID, "count", n)
	}
	return nil
}

// Cancel cancels an announcement from any non-terminal status.
func (s *Service) Cancel(ctx context.Context, tenantID, announcementID string) error {
	n, err := s.client.Announcement.Update().
		Where(
			announcement.TenantID(tenantID),
			announcement.ID(announcementID),
			announcement.StatusNotIn(
				announcement.StatusCompleted,
				announcement.StatusFailed,
				announcement.StatusCancelled,
			),
		).
		SetStatus(announcement.StatusCancelled).
		ClearNextExecutionAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel announcement: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("announcement %s is not cancellable", announcementID)
	}
	return nil
}

// Execute runs one announcement delivery. Idempotent per execution number:
// the unique (announcement_id, execution_number) row is claimed first, so a
// redelivered job becomes a no-op.
func (s *Service) Execute(ctx context.Context, tenantID, announcementID string) error {
	ann, err := s.client.Announcement.Query().
		Where(announcement.TenantID(tenantID), announcement.ID(announcementID)).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to load announcement %s: %w", announcementID, err)
	}
	switch ann.Status {
	case announcement.StatusCancelled, announcement.StatusPaused,
		announcement.StatusCompleted, announcement.StatusFailed:
		s.logger.Info("Skipping execution of inactive announcement",
			"announcement_id", ann.ID, "status", ann.Status)
		return nil
	}

	executionNumber := ann.ExecutionCount + 1
	exec, err := s.client.AnnouncementExecution.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetAnnouncementID(ann.ID).
		SetExecutionNumber(executionNumber).
		SetStatus(announcementexecution.StatusInProgress).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			s.logger.Info("Execution already performed, skipping",
				"announcement_id", ann.ID, "execution_number", executionNumber)
			return nil
		}
		return fmt.Errorf("failed to claim execution: %w", err)
	}

	loc, lerr := time.LoadLocation(ann.Timezone)
	if lerr != nil {
		loc = time.UTC
	}
	now := time.Now().In(loc)

	if reason := skipReason(now, ann.SkipWeekend, ann.SkipHoliday); reason != "" {
		if _, err := s.client.AnnouncementExecution.UpdateOne(exec).
			SetStatus(announcementexecution.StatusSkipped).
			SetSkipReason(reason).
			SetFinishedAt(time.Now()).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to record skipped execution: %w", err)
		}
		return s.advanceSchedule(ctx, ann, executionNumber, loc)
	}

	cfg, err := s.adminCfg.Get(ctx, tenantID)
	if err != nil {
		return s.failExecution(ctx, ann, exec, err)
	}
	if ann.TargetRoomID == nil {
		return s.failExecution(ctx, ann, exec, fmt.Errorf("announcement has no target room"))
	}
	roomID := *ann.TargetRoomID

	messageID, err := s.chat.SendMessage(ctx, cfg.ChatAPIToken, roomID, ann.MessageBody)
	if err != nil {
		return s.failExecution(ctx, ann, exec, fmt.Errorf("failed to send announcement: %w", err))
	}

	tasksCreated, tasksFailed := 0, 0
	var membersSnapshot []string
	if ann.CreateTasks {
		members, merr := s.chat.RoomMembers(ctx, cfg.ChatAPIToken, roomID)
		if merr != nil {
			tasksFailed++
			s.logger.Error("Failed to list room members for tasks",
				"announcement_id", ann.ID, "error", merr)
		} else {
			assignees := make([]string, 0, len(members))
			for _, m := range members {
				if contains(ann.TaskExcludeIds, m.AccountID) {
					continue
				}
				assignees = append(assignees, m.AccountID)
				membersSnapshot = append(membersSnapshot, m.AccountID)
			}
			if len(assignees) > 0 {
				ids, terr := s.chat.CreateTask(ctx, cfg.ChatAPIToken, roomID, ann.MessageBody, assignees, ann.TaskDeadline)
				if terr != nil {
					tasksFailed = len(assignees)
					s.logger.Error("Failed to create announcement tasks",
						"announcement_id", ann.ID, "error", terr)
				} else {
					tasksCreated = len(ids)
				}
			}
		}
	}

	status := announcementexecution.StatusCompleted
	if tasksFailed > 0 {
		status = announcementexecution.StatusPartialFailure
	}
	update := s.client.AnnouncementExecution.UpdateOne(exec).
		SetMessageSent(true).
		SetSentMessageID(messageID).
		SetTasksCreated(tasksCreated).
		SetTasksFailed(tasksFailed).
		SetStatus(status).
		SetFinishedAt(time.Now())
	if len(membersSnapshot) > 0 {
		update.SetMembersSnapshot(membersSnapshot)
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("failed to finish execution record: %w", err)
	}

	s.logger.Info("Announcement executed",
		"announcement_id", ann.ID,
		"execution_number", executionNumber,
		"tasks_created", tasksCreated,
		"tasks_failed", tasksFailed)
	return s.advanceSchedule(ctx, ann, executionNumber, loc)
}

// advanceSchedule updates counters and computes the next run for recurring
// announcements; one-shot announcements complete.
func (s *Service) advanceSchedule(ctx context.Context, ann *ent.Announcement, executionNumber int, loc *time.Location) error {
	update := s.client.Announcement.UpdateOne(ann).
		SetExecutionCount(executionNumber).
		SetLastExecutionAt(time.Now())

	if ann.ScheduleType == announcement.ScheduleTypeRecurring {
		if ann.MaxExecutions != nil && executionNumber >= *ann.MaxExecutions {
			update.SetStatus(announcement.StatusCompleted).ClearNextExecutionAt()
		} else {
			next, err := nextCronRun(*ann.CronExpression, time.Now(), loc)
			if err != nil {
				return err
			}
			update.SetStatus(announcement.StatusScheduled).SetNextExecutionAt(next)
		}
	} else {
		update.SetStatus(announcement.StatusCompleted).ClearNextExecutionAt()
	}

	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("failed to advance announcement schedule: %w", err)
	}
	return nil
}

func (s *Service) failExecution(ctx context.Context, ann *ent.Announcement, exec *ent.AnnouncementExecution, cause error) error {
	if _, err := s.client.AnnouncementExecution.UpdateOne(exec).
		SetStatus(announcementexecution.StatusFailed).
		SetErrorMessage(cause.Error()).
		SetFinishedAt(time.Now()).
		Save(ctx); err != nil {
		s.logger.Error("Failed to record failed execution", "error", err)
	}
	if _, err := s.client.Announcement.UpdateOne(ann).
		SetStatus(announcement.StatusFailed).
		ClearNextExecutionAt().
		Save(ctx); err != nil {
		s.logger.Error("Failed to mark announcement failed", "error", err)
	}
	s.alerts.AnnouncementFailed(ctx, ann.TenantID, ann.ID, exec.ExecutionNumber, cause.Error())
	return cause
}

// rewriteMessage runs the brand-voice rewrite on the fast model. Best-effort:
// the original text is kept when the LLM is unavailable.
func (s *Service) rewriteMessage(ctx context.Context, message string) string {
	return s.rewriteWithInstruction(ctx, message,
		"社内アナウンスとして、丁寧で簡潔な文面に整えてください。意味は変えないでください。")
}

func (s *Service) rewriteWithInstruction(ctx context.Context, message, instruction string) string {
	if s.llm == nil {
		return message
	}
	resp, err := s.llm.Complete(ctx, &llm.Request{
		System:   "You rewrite corporate chat announcements. Return only the rewritten text.",
		Messages: []llm.Message{{Role: "user", Content: instruction + "\n---\n" + message}},
		Class:    llm.ModelFast,
	})
	if err != nil || strings.TrimSpace(resp.Text) == "" {
		s.logger.Warn("Announcement rewrite unavailable, keeping original", "error", err)
		return message
	}
	return strings.TrimSpace(resp.Text)
}

func (s *Service) confirmationText(roomName, message string, req Request) string {
	var sb strings.Builder
	sb.WriteString("以下の内容でアナウンスします。\n")
	fmt.Fprintf(&sb, "配信先: %s\n", roomName)
	fmt.Fprintf(&sb, "---\n%s\n---\n", message)
	if req.CreateTasks {
		sb.WriteString("メンバー全員にタスクを作成します。\n")
		if req.Deadline != nil {
			fmt.Fprintf(&sb, "期限: %s\n", req.Deadline.Format("2006-01-02 15:04"))
		}
	}
	sb.WriteString("よろしいですか？（修正があればそのまま教えてください）")
	return sb.String()
}

func roomChoiceText(requested string, matches []RoomMatch) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "「%s」に一致するチャットを特定できませんでした。どちらに配信しますか？\n", requested)
	for i, m := range matches {
		if i >= 3 {
			break
		}
		fmt.Fprintf(&sb, "%d. %s\n", i+1, m.Name)
	}
	sb.WriteString("番号かチャット名で教えてください。")
	return sb.String()
}
