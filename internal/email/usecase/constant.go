package usecase

const (
	// maxContentLength is measured in characters and leaves room for the prompt.
	maxContentLength = 24000
	truncatedMarker  = "\n[Email truncated due to length...]"

	extractTemperature = 0.2
	replyTemperature   = 0.7
	defaultTone        = "professional"
)

const extractSystemPrompt = `You are an AI assistant that extracts actionable tasks from emails, specializing in educational and professional development contexts.
Focus on identifying:
1. Application deadlines and important dates
2. Required documentation or materials to prepare
3. Information session or meeting attendance requirements
4. Registration or submission deadlines
5. Follow-up actions needed
6. Scholarship or financial aid deadlines
7. Academic requirements or prerequisites

For each task:
- Be specific about deadlines using YYYY-MM-DD format (e.g., 2024-12-29)
- For relative dates, use: "today", "tomorrow", "asap", "next <weekday>" or "in N days"
- For tasks without a specific deadline, use null
- Include any preparation requirements
- Note if there are financial implications
- Highlight priority based on deadlines`

const extractUserPrompt = `Please analyze this email and extract:
1. All actionable tasks and deadlines
2. A suggested reply (if appropriate)

Email content:
%s

Return your analysis in this exact JSON format:
{
    "tasks": [
        {
            "title": "Clear, actionable task description",
            "description": "Optional details",
            "due_date": "YYYY-MM-DD or null if no specific date",
            "priority": "high/medium/low",
            "preparation": "What needs to be prepared",
            "financial_aspects": "Any financial implications"
        }
    ],
    "suggested_reply": "A polite and professional reply if needed, or null"
}`

const summarySystemPrompt = "You are a helpful assistant that summarizes emails concisely."

const summaryUserPrompt = "Summarize this email in 2-3 sentences:\n\n%s"

const replySystemPrompt = "You are a professional email assistant."

const replyUserPrompt = `Generate a professional email reply.

Original Email:
%s

Additional Context (if any):
%s

The reply must be professional and courteous, address the key points of the original email, and stay clear and concise.

Return JSON in this exact format:
{
    "reply": "The reply text",
    "tone": "One or two words describing the tone of the reply",
    "key_points": ["Key point addressed", "..."]
}`
