package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Brayern/bibo-health-hub/config"
	"github.com/Brayern/bibo-health-hub/models"

	"gorm.io/datatypes"
)

// Terminal outcomes of one gateway call. No retry is attempted at any of
// them; each is surfaced immediately to the caller.
var (
	ErrRateLimited     = errors.New("rate limits exceeded")
	ErrPaymentRequired = errors.New("payment required")
	ErrParseFailure    = errors.New("failed to parse assessment")
)

// AssessmentInput is the submitted health snapshot. Field names follow the
// client wire format.
type AssessmentInput struct {
	Age                int     `json:"age"`
	BMI                float64 `json:"bmi"`
	SystolicBp         int     `json:"systolicBp"`
	DiastolicBp        int     `json:"diastolicBp"`
	GlucoseLevel       float64 `json:"glucoseLevel"`
	Smoking            bool    `json:"smoking"`
	AlcoholConsumption string  `json:"alcoholConsumption"`
	PhysicalActivity   string  `json:"physicalActivity"`
	FamilyHistory      bool    `json:"familyHistory"`
}

var (
	alcoholLevels  = map[string]bool{"none": true, "moderate": true, "heavy": true}
	activityLevels = map[string]bool{"sedentary": true, "light": true, "moderate": true, "active": true}
)

// Validate re-checks the documented ranges server-side before any external
// call is attempted.
func (in *AssessmentInput) Validate() error {
	switch {
	case in.Age < 1 || in.Age > 120:
		return fmt.Errorf("age must be between 1 and 120")
	case in.BMI < 10 || in.BMI > 60:
		return fmt.Errorf("bmi must be between 10 and 60")
	case in.SystolicBp < 70 || in.SystolicBp > 250:
		return fmt.Errorf("systolicBp must be between 70 and 250")
	case in.DiastolicBp < 40 || in.DiastolicBp > 150:
		return fmt.Errorf("diastolicBp must be between 40 and 150")
	case in.GlucoseLevel < 50 || in.GlucoseLevel > 400:
		return fmt.Errorf("glucoseLevel must be between 50 and 400")
	case !alcoholLevels[in.AlcoholConsumption]:
		return fmt.Errorf("alcoholConsumption must be one of none, moderate, heavy")
	case !activityLevels[in.PhysicalActivity]:
		return fmt.Errorf("physicalActivity must be one of sedentary, light, moderate, active")
	}
	return nil
}

// AssessmentResult is the shape the model is instructed to return.
type AssessmentResult struct {
	RiskScore  int      `json:"riskScore"`
	RiskLevel  string   `json:"riskLevel"`
	HealthTips []string `json:"healthTips"`
}

const systemInstruction = "You are a medical AI assistant specializing in health risk assessment. Always respond with valid JSON only."

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// FormatPrompt renders the snapshot into the model prompt. Deterministic,
// fixed field order.
func FormatPrompt(in AssessmentInput) string {
	var sb bytes.Buffer
	sb.WriteString("You are a medical health risk assessment AI. Analyze the following health data and provide a comprehensive risk assessment.\n\n")
	sb.WriteString("Health Data:\n")
	sb.WriteString(fmt.Sprintf("- Age: %d years\n", in.Age))
	sb.WriteString(fmt.Sprintf("- BMI: %v\n", in.BMI))
	sb.WriteString(fmt.Sprintf("- Blood Pressure: %d/%d mmHg\n", in.SystolicBp, in.DiastolicBp))
	sb.WriteString(fmt.Sprintf("- Glucose Level: %v mg/dL\n", in.GlucoseLevel))
	sb.WriteString(fmt.Sprintf("- Smoking: %s\n", yesNo(in.Smoking)))
	sb.WriteString(fmt.Sprintf("- Alcohol Consumption: %s\n", in.AlcoholConsumption))
	sb.WriteString(fmt.Sprintf("- Physical Activity: %s\n", in.PhysicalActivity))
	sb.WriteString(fmt.Sprintf("- Family History of chronic diseases: %s\n", yesNo(in.FamilyHistory)))
	sb.WriteString("\nBased on this data, provide:\n")
	sb.WriteString("1. A risk score from 0-100\n")
	sb.WriteString("2. A risk level (low, medium, or high)\n")
	sb.WriteString("3. 3-5 personalized health tips\n\n")
	sb.WriteString("Format your response as JSON with this exact structure:\n")
	sb.WriteString("{\n")
	sb.WriteString("  \"riskScore\": <number between 0-100>,\n")
	sb.WriteString("  \"riskLevel\": \"<low|medium|high>\",\n")
	sb.WriteString("  \"healthTips\": [\"tip1\", \"tip2\", \"tip3\"]\n")
	sb.WriteString("}")
	return sb.String()
}

// ExtractAssessment locates a JSON object in the model's free-text reply:
// strict parse first, then a fenced code block, then the first
// brace-delimited substring. Required keys must be present after parsing or
// the whole reply is rejected; never guess partial fields.
func ExtractAssessment(content string) (*AssessmentResult, error) {
	candidates := []string{strings.TrimSpace(content)}

	if start := strings.Index(content, "```"); start >= 0 {
		inner := content[start+3:]
		inner = strings.TrimPrefix(inner, "json")
		if end := strings.Index(inner, "```"); end >= 0 {
			candidates = append(candidates, strings.TrimSpace(inner[:end]))
		}
	}
	if start := strings.Index(content, "{"); start >= 0 {
		if end := strings.LastIndex(content, "}"); end > start {
			candidates = append(candidates, content[start:end+1])
		}
	}

	for _, cand := range candidates {
		var raw struct {
			RiskScore  *float64  `json:"riskScore"`
			RiskLevel  *string   `json:"riskLevel"`
			HealthTips *[]string `json:"healthTips"`
		}
		if err := json.Unmarshal([]byte(cand), &raw); err != nil {
			continue
		}
		if raw.RiskScore == nil || raw.RiskLevel == nil || raw.HealthTips == nil {
			continue
		}
		return &AssessmentResult{
			RiskScore:  int(*raw.RiskScore),
			RiskLevel:  *raw.RiskLevel,
			HealthTips: *raw.HealthTips,
		}, nil
	}
	return nil, ErrParseFailure
}

// AssessmentService calls the chat-completion gateway that performs the
// actual risk-scoring inference.
type AssessmentService struct {
	client  *http.Client
	baseURL string
	token   string
	model   string
}

func NewAssessmentService() *AssessmentService {
	model := os.Getenv("AI_MODEL")
	if model == "" {
		model = "google/gemini-2.5-flash"
	}
	return &AssessmentService{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: strings.TrimRight(os.Getenv("AI_GATEWAY_URL"), "/"),
		token:   os.Getenv("AI_GATEWAY_KEY"),
		model:   model,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// callGateway sends the prompt and returns the raw completion text.
func (s *AssessmentService) callGateway(prompt string) (string, error) {
	if s.baseURL == "" {
		return "", fmt.Errorf("AI_GATEWAY_URL is not configured")
	}
	if s.token == "" {
		return "", fmt.Errorf("AI_GATEWAY_KEY is not configured")
	}

	body := map[string]any{
		"model": s.model,
		"messages": []chatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: prompt},
		},
	}
	b, _ := json.Marshal(body)

	req, err := http.NewRequest(http.MethodPost, s.baseURL+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("gateway request error: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gateway request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read gateway response error: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return "", ErrRateLimited
	case http.StatusPaymentRequired:
		return "", ErrPaymentRequired
	default:
		bodyPreview := string(respBytes)
		if len(bodyPreview) > 200 {
			bodyPreview = bodyPreview[:200] + "..."
		}
		return "", fmt.Errorf("ai gateway error (%d): %s", resp.StatusCode, bodyPreview)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return "", fmt.Errorf("decode gateway response error: %w", err)
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("empty completion from gateway")
	}
	return out.Choices[0].Message.Content, nil
}

// Assess runs the full flow for one authenticated user: prompt → gateway →
// extraction → one inserted row. No partial record is stored on any failure.
func (s *AssessmentService) Assess(userID uint, in AssessmentInput) (*models.HealthRiskAssessment, error) {
	content, err := s.callGateway(FormatPrompt(in))
	if err != nil {
		return nil, err
	}

	result, err := ExtractAssessment(content)
	if err != nil {
		return nil, err
	}

	tips, err := json.Marshal(result.HealthTips)
	if err != nil {
		return nil, fmt.Errorf("encode health tips: %w", err)
	}

	record := models.HealthRiskAssessment{
		UserID:             userID,
		Age:                in.Age,
		BMI:                in.BMI,
		SystolicBp:         in.SystolicBp,
		DiastolicBp:        in.DiastolicBp,
		GlucoseLevel:       in.GlucoseLevel,
		Smoking:            in.Smoking,
		AlcoholConsumption: in.AlcoholConsumption,
		PhysicalActivity:   in.PhysicalActivity,
		FamilyHistory:      in.FamilyHistory,
		RiskScore:          result.RiskScore,
		RiskLevel:          result.RiskLevel,
		HealthTips:         datatypes.JSON(tips),
	}
	if err := config.DB.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to save assessment: %w", err)
	}
	return &record, nil
}

// RiskTrend returns the caller's assessments oldest-first for the trend
// chart, bounded to the most recent entries.
func RiskTrend(userID uint, limit int) ([]models.HealthRiskAssessment, error) {
	var records []models.HealthRiskAssessment
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at asc").
		Limit(limit).
		Find(&records).Error
	return records, err
}
