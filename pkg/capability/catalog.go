package capability

// Builtin returns the static capability catalog. Keyword sets cover both
// Japanese and English phrasings used in the chat workspace.
func Builtin() []*Descriptor {
	return []*Descriptor{
		{
			Key:               "task_search",
			DisplayName:       "タスク確認",
			Description:       "List the sender's open tasks across rooms",
			Category:          "task",
			Enabled:           true,
			Priority:          5,
			RequiredRoleLevel: 1,
			RiskLevel:         RiskLow,
			IntentKeywords: Keywords{
				Primary:   []string{"タスク", "task", "やること", "todo", "残って"},
				Secondary: []string{"一覧", "確認", "教えて", "list", "show", "my"},
				Negative:  []string{"作成", "追加", "create", "お願い"},
			},
			DecisionKeywords: Keywords{
				Primary:   []string{"タスク", "task"},
				Secondary: []string{"確認", "一覧", "list"},
			},
			Parameters: []Param{
				{Name: "status", Type: ParamString, Required: false},
				{Name: "room_id", Type: ParamString, Required: false},
			},
			HandlerKey: "task_search",
			ChainHints: []string{"期限が近いタスクにリマインダーを設定しますか？"},
		},
		{
			Key:               "task_create",
			DisplayName:       "タスク作成",
			Description:       "Create a chat task for a person with an optional deadline",
			Category:          "task",
			Enabled:           true,
			Priority:          6,
			RequiredRoleLevel: 1,
			RiskLevel:         RiskMedium,
			IntentKeywords: Keywords{
				Primary:   []string{"タスク作成", "タスクを作", "task for", "お願いして", "依頼"},
				Secondary: []string{"タスク", "期限", "deadline", "までに", "create"},
				Negative:  []string{"一覧", "確認", "list", "search"},
			},
			DecisionKeywords: Keywords{
				Primary:   []string{"作成", "依頼", "create"},
				Secondary: []string{"タスク", "task", "期限"},
			},
			Parameters: []Param{
				{Name: "assignee", Type: ParamAccount, Required: true, Prompt: "誰に割り当てますか？"},
				{Name: "body", Type: ParamString, Required: true, Prompt: "タスクの内容を教えてください。"},
				{Name: "deadline", Type: ParamDate, Required: false},
			},
			HandlerKey: "task_create",
			ChainHints: []string{"リマインダーも設定しますか？"},
		},
		{
			Key:               "task_complete",
			DisplayName:       "タスク完了",
			Description:       "Mark one of the sender's tasks as done",
			Category:          "task",
			Enabled:           true,
			Priority:          5,
			RequiredRoleLevel: 1,
			RiskLevel:         RiskLow,
			IntentKeywords: Keywords{
				Primary:   []string{"完了", "終わった", "done", "mark done", "済み"},
				Secondary: []string{"タスク", "task", "チェック"},
				Negative:  []string{"作成", "create"},
			},
			DecisionKeywords: Keywords{
				Primary:   []string{"完了", "done"},
				Secondary: []string{"タスク", "task"},
			},
			Parameters: []Param{
				{Name: "task_id", Type: ParamString, Required: true, Prompt: "どのタスクを完了にしますか？"},
			},
			HandlerKey: "task_complete",
		},
		{
			Key:                  "announcement_create",
			DisplayName:          "アナウンス配信",
			Description:          "Announce a message to a room, optionally creating tasks for members",
			Category:             "announcement",
			Enabled:              true,
			Priority:             7,
			RequiredRoleLevel:    3,
			RiskLevel:            RiskHigh,
			RequiresConfirmation: true,
			IntentKeywords: Keywords{
				Primary:   []string{"アナウンス", "周知", "お知らせ", "announce", "全員に"},
				Secondary: []string{"配信", "連絡", "broadcast", "みんな", "チャットに"},
				Negative:  []string{"タスクだけ", "just a task"},
			},
			DecisionKeywords: Keywords{
				Primary:   []string{"アナウンス", "周知", "announce"},
				Secondary: []string{"配信", "お知らせ"},
			},
			Parameters: []Param{
				{Name: "message", Type: ParamString, Required: true, Prompt: "アナウンスする内容を教えてください。"},
				{Name: "room", Type: ParamString, Required: true, Prompt: "どのチャットに配信しますか？"},
				{Name: "create_tasks", Type: ParamBool, Required: false},
				{Name: "deadline", Type: ParamDate, Required: false},
				{Name: "schedule_at", Type: ParamDate, Required: false},
			},
			HandlerKey: "announcement_create",
			ModelID:    "fast",
			ChainHints: []string{"定期配信にしますか？"},
		},
		{
			Key:               "knowledge_query",
			DisplayName:       "ナレッジ検索",
			Description:       "Answer a question from the ingested knowledge base",
			Category:          "knowledge",
			Enabled:           true,
			Priority:          4,
			RequiredRoleLevel: 1,
			RiskLevel:         RiskLow,
			IntentKeywords: Keywords{
				Primary:   []string{"教えて", "what is", "どうやって", "マニュアル", "規定", "ルール"},
				Secondary: []string{"知りたい", "方法", "how", "where", "なぜ"},
				Negative:  []string{"タスク", "アナウンス"},
			},
			DecisionKeywords: Keywords{
				Primary:   []string{"教えて", "規定", "マニュアル"},
				Secondary: []string{"方法", "how"},
			},
			Parameters: []Param{
				{Name: "query", Type: ParamString, Required: true, Prompt: "何について知りたいですか？"},
			},
			HandlerKey: "knowledge_query",
			ChainHints: []string{"関連ドキュメントも検索しますか？"},
		},
		{
			Key:               "goal_set",
			DisplayName:       "目標設定",
			Description:       "Start the guided goal-setting flow",
			Category:          "goal",
			Enabled:           true,
			Priority:          4,
			RequiredRoleLevel: 1,
			RiskLevel:         RiskLow,
			IntentKeywords: Keywords{
				Primary:   []string{"目標", "goal", "達成したい", "目指"},
				Secondary: []string{"設定", "立てたい", "set"},
				Negative:  []string{"一覧", "確認"},
			},
			DecisionKeywords: Keywords{
				Primary:   []string{"目標", "goal"},
				Secondary: []string{"設定"},
			},
			Parameters: []Param{
				{Name: "title", Type: ParamString, Required: false},
			},
			HandlerKey: "goal_set",
		},
		{
			Key:               "teaching_record",
			DisplayName:       "価値観の記録",
			Description:       "Record a principal's value statement as a teaching",
			Category:          "teaching",
			Enabled:           true,
			Priority:          3,
			RequiredRoleLevel: 5,
			RiskLevel:         RiskMedium,
			IntentKeywords: Keywords{
				Primary:   []string{"覚えておいて", "大事にして", "方針として", "remember this", "our policy"},
				Secondary: []string{"価値観", "理念", "values"},
				Negative:  []string{},
			},
			DecisionKeywords: Keywords{
				Primary:   []string{"覚えて", "方針"},
				Secondary: []string{"価値観", "理念"},
			},
			Parameters: []Param{
				{Name: "statement", Type: ParamString, Required: true, Prompt: "記録する内容を教えてください。"},
				{Name: "category", Type: ParamString, Required: false},
			},
			HandlerKey: "teaching_record",
		},
		{
			Key:               "smalltalk",
			DisplayName:       "会話",
			Description:       "General conversation when no operational capability applies",
			Category:          "chat",
			Enabled:           true,
			Priority:          1,
			RequiredRoleLevel: 1,
			RiskLevel:         RiskLow,
			IntentKeywords: Keywords{
				Primary:   []string{"こんにちは", "ありがとう", "hello", "thanks", "おはよう"},
				Secondary: []string{"元気", "調子"},
				Negative:  []string{},
			},
			DecisionKeywords: Keywords{
				Primary:   []string{"こんにちは", "hello"},
				Secondary: []string{},
			},
			HandlerKey: "smalltalk",
			ModelID:    "fast",
		},
	}
}
