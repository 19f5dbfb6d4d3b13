package handlers

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/wisehub-ai/wisehub/ent"
	"github.com/wisehub-ai/wisehub/pkg/database"
	"github.com/wisehub-ai/wisehub/pkg/execerr"
	"github.com/wisehub-ai/wisehub/pkg/models"
	"github.com/wisehub-ai/wisehub/pkg/state"
)

// Goal-setting flow steps. The flow walks title → why → first_step, storing
// answers in the state scratch data, and persists the goal at the end.
const (
	goalStepTitle     = "title"
	goalStepWhy       = "why"
	goalStepFirstStep = "first_step"
)

// GoalSet starts the guided goal-setting flow. When the title came with the
// request, the flow skips straight to the "why" question.
func (s *Set) GoalSet(ctx context.Context, params map[string]any, env models.Envelope, mem *models.MemoryContext) (*models.HandlerResult, error) {
	title, _ := params["title"].(string)
	title = strings.TrimSpace(title)

	if title == "" {
		return &models.HandlerResult{
			Success:     true,
			UserMessage: "いいですね！どんな目標を立てますか？",
			StateDelta: &models.StateDelta{
				StateType: state.TypeGoalSetting,
				Step:      goalStepTitle,
				Data:      map[string]any{},
			},
		}, nil
	}
	return &models.HandlerResult{
		Success:     true,
		UserMessage: "「" + title + "」ですね。その目標を達成したい理由は何ですか？",
		StateDelta: &models.StateDelta{
			StateType: state.TypeGoalSetting,
			Step:      goalStepWhy,
			Data:      map[string]any{"title": title},
		},
	}, nil
}

// ContinueGoalSetting consumes the next message of an active goal-setting
// flow. Called from the Brain's state continuation dispatch.
func (s *Set) ContinueGoalSetting(ctx context.Context, env models.Envelope, snap *state.Snapshot, text string) (*models.HandlerResult, error) {
	text = strings.TrimSpace(text)
	data := snap.Data
	if data == nil {
		data = map[string]any{}
	}

	switch snap.Step {
	case goalStepTitle:
		data["title"] = text
		return &models.HandlerResult{
			Success:     true,
			UserMessage: "「" + text + "」ですね。その目標を達成したい理由は何ですか？",
			StateDelta: &models.StateDelta{
				StateType: state.TypeGoalSetting,
				Step:      goalStepWhy,
				Data:      data,
			},
		}, nil

	case goalStepWhy:
		data["why"] = text
		return &models.HandlerResult{
			Success:     true,
			UserMessage: "素晴らしい理由ですね。最初の一歩として何をしますか？",
			StateDelta: &models.StateDelta{
				StateType: state.TypeGoalSetting,
				Step:      goalStepFirstStep,
				Data:      data,
			},
		}, nil

	case goalStepFirstStep:
		title, _ := data["title"].(string)
		why, _ := data["why"].(string)
		err := database.TenantTx(ctx, s.deps.Client, env.TenantID, func(tx *ent.Tx) error {
			_, err := tx.Goal.Create().
				SetID(uuid.New().String()).
				SetTenantID(env.TenantID).
				SetUserID(env.UserID).
				SetTitle(title).
				SetWhy(why).
				SetFirstStep(text).
				Save(ctx)
			return err
		})
		if err != nil {
			return nil, execerr.New(execerr.KindInternal, err)
		}
		return &models.HandlerResult{
			Success:     true,
			UserMessage: "目標を登録しました！\n目標: " + title + "\n最初の一歩: " + text + "\n応援しています。進捗があれば教えてくださいね。",
			StateDelta:  &models.StateDelta{Clear: true},
		}, nil
	}

	return nil, execerr.Newf(execerr.KindInternal, "unknown goal-setting step %q", snap.Step)
}
