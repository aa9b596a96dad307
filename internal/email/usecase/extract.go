package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"email-task-assistant/internal/model"
	"email-task-assistant/internal/task"
	"email-task-assistant/pkg/datemath"
	"email-task-assistant/pkg/llmprovider"
)

type extraction struct {
	Tasks          []extractedTask `json:"tasks"`
	SuggestedReply *string         `json:"suggested_reply"`
}

type extractedTask struct {
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	DueDate          *string `json:"due_date"`
	Priority         string  `json:"priority"`
	Preparation      string  `json:"preparation"`
	FinancialAspects string  `json:"financial_aspects"`
}

// extract asks the model for tasks. Any failure yields an empty extraction.
func (uc *implUseCase) extract(ctx context.Context, content string) extraction {
	if uc.llm == nil {
		return extraction{}
	}

	req := llmprovider.UserText(extractSystemPrompt, fmt.Sprintf(extractUserPrompt, content))
	req.Temperature = extractTemperature
	req.JSON = true

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "uc.extract GenerateContent: %v", err)
		return extraction{}
	}

	var out extraction
	if err := json.Unmarshal([]byte(sanitizeJSON(resp.Text())), &out); err != nil {
		uc.l.Errorf(ctx, "uc.extract: model returned invalid JSON: %v", err)
		return extraction{}
	}
	return out
}

// sanitizeJSON strips markdown fences and any prose around the outermost object.
func sanitizeJSON(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")

	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end < start {
		return strings.TrimSpace(s)
	}
	return s[start : end+1]
}

// toCreateInputs resolves due dates against now and normalizes priorities.
// Entries without a title are dropped.
func toCreateInputs(items []extractedTask, now time.Time) []task.CreateInput {
	inputs := make([]task.CreateInput, 0, len(items))
	for _, it := range items {
		title := strings.TrimSpace(it.Title)
		if title == "" {
			continue
		}
		inputs = append(inputs, task.CreateInput{
			Title:       title,
			Description: describe(it),
			Priority:    normalizePriority(it.Priority),
			DueDate:     resolveDue(it.DueDate, now),
		})
	}
	return inputs
}

func normalizePriority(p string) model.TaskPriority {
	v := model.TaskPriority(strings.ToLower(strings.TrimSpace(p)))
	if !v.IsValid() {
		return model.TaskPriorityMedium
	}
	return v
}

func resolveDue(text *string, now time.Time) *time.Time {
	if text == nil {
		return nil
	}
	v, ok := datemath.Resolve(*text, now)
	if !ok {
		return nil
	}
	return &v
}

func describe(it extractedTask) string {
	lines := []string{strings.TrimSpace(it.Description)}
	if v := meaningful(it.Preparation); v != "" {
		lines = append(lines, "Preparation: "+v)
	}
	if v := meaningful(it.FinancialAspects); v != "" {
		lines = append(lines, "Financial: "+v)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// meaningful filters out the placeholders models write for empty fields.
func meaningful(s string) string {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "null", "none", "n/a", "-":
		return ""
	}
	return s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	v := strings.TrimSpace(*s)
	if strings.EqualFold(v, "null") {
		return ""
	}
	return v
}
