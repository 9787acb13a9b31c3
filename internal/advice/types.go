package advice

// Wire types for the Gemini generateContent endpoint. Only the fields the
// client actually reads or writes are modeled.

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"`
	ResponseSchema   *schema `json:"responseSchema,omitempty"`
	Temperature      float64 `json:"temperature"`
}

// schema is the OpenAPI-style response schema the service constrains its
// output to, so the reply parses as an AnalysisResult without cleanup.
type schema struct {
	Type        string             `json:"type"`
	Properties  map[string]*schema `json:"properties,omitempty"`
	Items       *schema            `json:"items,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Description string             `json:"description,omitempty"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
	Error      *apiError   `json:"error,omitempty"`
}

type candidate struct {
	Content      content `json:"content"`
	FinishReason string  `json:"finishReason"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// analysisSchema mirrors model.AnalysisResult: an overview string plus an
// ordered array of {field, status, title, content, actionItem}.
func analysisSchema() *schema {
	return &schema{
		Type:     "OBJECT",
		Required: []string{"overview", "suggestions"},
		Properties: map[string]*schema{
			"overview": {
				Type:        "STRING",
				Description: "Two to three sentence summary of the user's financial health.",
			},
			"suggestions": {
				Type: "ARRAY",
				Items: &schema{
					Type:     "OBJECT",
					Required: []string{"field", "status", "title", "content", "actionItem"},
					Properties: map[string]*schema{
						"field":      {Type: "STRING"},
						"status":     {Type: "STRING", Enum: []string{"Good", "Warning", "Alert"}},
						"title":      {Type: "STRING"},
						"content":    {Type: "STRING"},
						"actionItem": {Type: "STRING"},
					},
				},
			},
		},
	}
}
