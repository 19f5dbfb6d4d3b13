// Package memory assembles the request-scoped memory context: recent turns,
// rolling summary, preferences, teachings, persons, tasks, goals and
// insights, fetched concurrently with per-fetch deadlines so one slow table
// never stalls the whole request.
package memory

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wisehub-ai/wisehub/ent"
	"github.com/wisehub-ai/wisehub/ent/ceoteaching"
	"github.com/wisehub-ai/wisehub/ent/conversationsummary"
	"github.com/wisehub-ai/wisehub/ent/conversationturn"
	"github.com/wisehub-ai/wisehub/ent/goal"
	"github.com/wisehub-ai/wisehub/ent/insight"
	"github.com/wisehub-ai/wisehub/ent/knowledgechunk"
	"github.com/wisehub-ai/wisehub/ent/person"
	"github.com/wisehub-ai/wisehub/ent/predicate"
	"github.com/wisehub-ai/wisehub/ent/task"
	"github.com/wisehub-ai/wisehub/ent/userpreference"
	"github.com/wisehub-ai/wisehub/pkg/embed"
	"github.com/wisehub-ai/wisehub/pkg/models"
	"github.com/wisehub-ai/wisehub/pkg/vector"
)

// Fetch limits. Memory is a snapshot, not an archive.
const (
	turnLimit          = 10
	teachingLimit      = 5
	teachingFetchLimit = 20
	personLimit        = 5
	taskLimit          = 20
	goalLimit          = 10
	insightLimit       = 5
)

// Loader builds memory contexts.
type Loader struct {
	client       *ent.Client
	embedder     embed.Client
	vectors      vector.Store
	fetchTimeout time.Duration
	totalTimeout time.Duration
	logger       *slog.Logger
}

// NewLoader creates a memory loader. embedder and vectors may be nil when
// knowledge search is disabled; the fetcher then returns no snippets.
func NewLoader(client *ent.Client, embedder embed.Client, vectors vector.Store, fetchTimeout, totalTimeout time.Duration) *Loader {
	if client == nil {
		panic("memory.NewLoader: client must not be nil")
	}
	return &Loader{
		client:       client,
		embedder:     embedder,
		vectors:      vectors,
		fetchTimeout: fetchTimeout,
		totalTimeout: totalTimeout,
		logger:       slog.Default().With("component", "memory"),
	}
}

// Load assembles the memory context for one inbound message. Sub-fetches run
// concurrently; a fetch that errors or times out leaves its section empty and
// appends a warning instead of failing the request.
func (l *Loader) Load(ctx context.Context, in *models.BrainInput) *models.MemoryContext {
	mem := &models.MemoryContext{
		TenantID:   in.TenantID,
		UserID:     in.UserID,
		RoomID:     in.RoomID,
		SenderName: in.SenderName,
		RoleLevel:  in.RoleLevel,
		Locale:     "ja",
	}

	ctx, cancel := context.WithTimeout(ctx, l.totalTimeout)
	defer cancel()

	var mu sync.Mutex
	warn := func(section string) {
		mu.Lock()
		mem.Warnings = append(mem.Warnings, "partial_memory:"+section)
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)
	fetch := func(section string, fn func(ctx context.Context) error) {
		g.Go(func() error {
			fctx, fcancel := context.WithTimeout(gctx, l.fetchTimeout)
			defer fcancel()
			if err := fn(fctx); err != nil {
				l.logger.Warn("Memory fetch failed",
					"section", section, "tenant_id", in.TenantID, "error", err)
				warn(section)
			}
			// Partial memory is not a request failure.
			return nil
		})
	}

	fetch("turns", func(ctx context.Context) error {
		rows, err := l.client.ConversationTurn.Query().
			Where(
				conversationturn.TenantID(in.TenantID),
				conversationturn.RoomID(in.RoomID),
				conversationturn.UserID(in.UserID),
			).
			Order(ent.Desc(conversationturn.FieldCreatedAt)).
			Limit(turnLimit).
			All(ctx)
		if err != nil {
			return err
		}
		turns := make([]models.Turn, len(rows))
		for i, row := range rows {
			// Reverse into chronological order.
			turns[len(rows)-1-i] = models.Turn{
				Role:    string(row.Role),
				Content: row.Content,
				At:      row.CreatedAt,
			}
		}
		mem.RecentTurns = turns
		return nil
	})

	fetch("summary", func(ctx context.Context) error {
		row, err := l.client.ConversationSummary.Query().
			Where(
				conversationsummary.TenantID(in.TenantID),
				conversationsummary.RoomID(in.RoomID),
				conversationsummary.UserID(in.UserID),
			).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil
			}
			return err
		}
		mem.Summary = row.Summary
		return nil
	})

	fetch("preferences", func(ctx context.Context) error {
		row, err := l.client.UserPreference.Query().
			Where(
				userpreference.TenantID(in.TenantID),
				userpreference.UserID(in.UserID),
			).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil
			}
			return err
		}
		mem.Preferences = row.Settings
		if row.Locale != "" {
			mem.Locale = row.Locale
		}
		return nil
	})

	fetch("teachings", func(ctx context.Context) error {
		rows, err := l.client.CeoTeaching.Query().
			Where(
				ceoteaching.TenantID(in.TenantID),
				ceoteaching.IsActive(true),
				ceoteaching.ValidationStatusEQ(ceoteaching.ValidationStatusVerified),
			).
			Order(ent.Desc(ceoteaching.FieldPriority), ent.Desc(ceoteaching.FieldUsageCount)).
			Limit(teachingFetchLimit).
			All(ctx)
		if err != nil {
			return err
		}
		for _, row := range relevantTeachings(rows, in.Text, teachingLimit) {
			mem.Teachings = append(mem.Teachings, models.TeachingExcerpt{
				ID:        row.ID,
				Statement: row.Statement,
				Category:  string(row.Category),
				Priority:  row.Priority,
			})
		}
		return nil
	})

	fetch("persons", func(ctx context.Context) error {
		rows, err := l.matchPersons(ctx, in.TenantID, in.Text)
		if err != nil {
			return err
		}
		for _, row := range rows {
			ref := models.PersonRef{ID: row.ID, Name: row.Name, Relation: row.Relation}
			if row.ChatAccountID != nil {
				ref.ChatAccountID = *row.ChatAccountID
			}
			mem.Persons = append(mem.Persons, ref)
		}
		return nil
	})

	fetch("tasks", func(ctx context.Context) error {
		rows, err := l.client.Task.Query().
			Where(
				task.TenantID(in.TenantID),
				task.AssigneeUserID(in.UserID),
				task.StatusEQ(task.StatusOpen),
			).
			Order(ent.Asc(task.FieldDeadline)).
			Limit(taskLimit).
			All(ctx)
		if err != nil {
			return err
		}
		for _, row := range rows {
			mem.Tasks = append(mem.Tasks, models.TaskRef{
				ID:       row.ID,
				RoomID:   row.RoomID,
				Body:     row.Body,
				Deadline: row.Deadline,
			})
		}
		return nil
	})

	fetch("goals", func(ctx context.Context) error {
		rows, err := l.client.Goal.Query().
			Where(
				goal.TenantID(in.TenantID),
				goal.UserID(in.UserID),
				goal.StatusEQ(goal.StatusActive),
			).
			Order(ent.Desc(goal.FieldUpdatedAt)).
			Limit(goalLimit).
			All(ctx)
		if err != nil {
			return err
		}
		for _, row := range rows {
			mem.Goals = append(mem.Goals, models.GoalRef{ID: row.ID, Title: row.Title})
		}
		return nil
	})

	fetch("insights", func(ctx context.Context) error {
		rows, err := l.client.Insight.Query().
			Where(
				insight.TenantID(in.TenantID),
				insight.Resolved(false),
				insight.PriorityIn(insight.PriorityHigh, insight.PriorityCritical),
			).
			Order(ent.Desc(insight.FieldCreatedAt)).
			Limit(insightLimit).
			All(ctx)
		if err != nil {
			return err
		}
		for _, row := range rows {
			mem.Insights = append(mem.Insights, models.InsightRef{
				ID:      row.ID,
				Kind:    row.Kind,
				Summary: row.Summary,
			})
		}
		return nil
	})

	_ = g.Wait()

	mem.Knowledge = l.knowledgeFetcher(in.TenantID)
	return mem
}

// relevantTeachings orders teachings by message relevance: statements sharing
// a token with the message come first, then the remaining rows in their
// priority order, capped at limit. Rows arrive already priority-sorted.
func relevantTeachings(rows []*ent.CeoTeaching, text string, limit int) []*ent.CeoTeaching {
	if len(rows) <= limit {
		limit = len(rows)
	}
	tokens := nameTokens(text)
	matches := func(statement string) bool {
		for _, tok := range tokens {
			if strings.Contains(statement, tok) {
				return true
			}
		}
		return false
	}

	out := make([]*ent.CeoTeaching, 0, limit)
	taken := make(map[string]struct{}, limit)
	for _, row := range rows {
		if len(out) == limit {
			return out
		}
		if matches(row.Statement) {
			out = append(out, row)
			taken[row.ID] = struct{}{}
		}
	}
	for _, row := range rows {
		if len(out) == limit {
			break
		}
		if _, ok := taken[row.ID]; !ok {
			out = append(out, row)
		}
	}
	return out
}

// matchPersons finds persons whose name appears in the message, or whose name
// contains a token of the message. LIKE metacharacters in user text are
// escaped so "100%" never becomes a wildcard.
func (l *Loader) matchPersons(ctx context.Context, tenantID, text string) ([]*ent.Person, error) {
	tokens := nameTokens(text)
	if len(tokens) == 0 {
		return nil, nil
	}
	preds := make([]predicate.Person, 0, len(tokens))
	for _, tok := range tokens {
		preds = append(preds, person.NameContains(escapeLike(tok)))
	}
	return l.client.Person.Query().
		Where(
			person.TenantID(tenantID),
			person.Or(preds...),
		).
		Limit(personLimit).
		All(ctx)
}

// nameTokens extracts candidate name tokens from the message: runs of kanji
// or katakana of length 2+, plus whitespace-delimited latin words of 2+.
func nameTokens(text string) []string {
	seen := make(map[string]struct{})
	var tokens []string
	add := func(tok string) {
		if len([]rune(tok)) < 2 {
			return
		}
		if _, ok := seen[tok]; ok {
			return
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
	}

	var run []rune
	var runKind int // 0 none, 1 kanji, 2 katakana
	flush := func() {
		if runKind != 0 {
			add(string(run))
		}
		run = run[:0]
		runKind = 0
	}
	for _, r := range text {
		kind := 0
		switch {
		case r >= 0x4E00 && r <= 0x9FFF:
			kind = 1
		case r >= 0x30A0 && r <= 0x30FF:
			kind = 2
		}
		if kind == 0 || kind != runKind {
			flush()
		}
		if kind != 0 {
			run = append(run, r)
			runKind = kind
		}
	}
	flush()

	for _, word := range strings.Fields(text) {
		word = strings.Trim(word, ".,!?()[]{}\"'")
		if isLatinWord(word) {
			add(word)
		}
	}
	// Cap tokens so a long message does not build a giant OR.
	if len(tokens) > 8 {
		tokens = tokens[:8]
	}
	return tokens
}

func isLatinWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}

// escapeLike escapes SQL LIKE metacharacters in a user-supplied token.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// knowledgeFetcher returns a lazy closure over the embedding client and
// vector store. Nothing is embedded until the fetcher is called.
func (l *Loader) knowledgeFetcher(tenantID string) models.KnowledgeFetcher {
	return func(ctx context.Context, query string, topK int) ([]models.KnowledgeSnippet, error) {
		if l.embedder == nil || l.vectors == nil {
			return nil, nil
		}
		vec, err := l.embedder.Embed(ctx, query)
		if err != nil {
			return nil, err
		}
		hits, err := l.vectors.Query(ctx, vec, topK, vector.Filter{TenantID: tenantID})
		if err != nil {
			return nil, err
		}
		if len(hits) == 0 {
			return nil, nil
		}
		ids := make([]string, len(hits))
		scores := make(map[string]float64, len(hits))
		for i, h := range hits {
			ids[i] = h.DocID
			scores[h.DocID] = h.Score
		}
		rows, err := l.client.KnowledgeChunk.Query().
			Where(
				knowledgechunk.TenantID(tenantID),
				knowledgechunk.IDIn(ids...),
			).
			All(ctx)
		if err != nil {
			return nil, err
		}
		byID := make(map[string]*ent.KnowledgeChunk, len(rows))
		for _, row := range rows {
			byID[row.ID] = row
		}
		snippets := make([]models.KnowledgeSnippet, 0, len(hits))
		for _, h := range hits {
			row, ok := byID[h.DocID]
			if !ok {
				continue
			}
			snippets = append(snippets, models.KnowledgeSnippet{
				ChunkID: row.ID,
				Title:   row.Title,
				Content: row.Content,
				Score:   scores[row.ID],
			})
		}
		return snippets, nil
	}
}
