package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"sofdesk/internal/carbon"
	"sofdesk/internal/checklist"
	"sofdesk/internal/domain"
	"sofdesk/internal/navigation"
	"sofdesk/internal/port"
	"sofdesk/internal/ports"
	"sofdesk/internal/weather"
)

// Agent names recorded against assistant messages, so the history shows
// which specialist answered.
const (
	AgentWeather    = "weather"
	AgentPorts      = "ports"
	AgentNavigation = "navigation"
	AgentCarbon     = "carbon"
	AgentChecklist  = "checklist"
	AgentAssistant  = "assistant"
)

// ChatService defines the conversational assistant contract. Questions
// the specialist agents can answer are handled locally; everything else
// falls through to the language model.
type ChatService interface {
	Ask(ctx context.Context, sessionID, message string) (*domain.ChatMessage, error)
	History(ctx context.Context, sessionID string, offset, limit int) ([]domain.ChatMessage, int, error)
}

type chatService struct {
	chatRepo  port.ChatRepository
	weather   *weather.Client
	primary   port.LLMClient
	secondary port.LLMClient
}

// NewChatService creates a new ChatService implementation. secondary
// may be nil when no fallback provider is configured.
func NewChatService(
	chatRepo port.ChatRepository,
	weatherClient *weather.Client,
	primary port.LLMClient,
	secondary port.LLMClient,
) ChatService {
	return &chatService{
		chatRepo:  chatRepo,
		weather:   weatherClient,
		primary:   primary,
		secondary: secondary,
	}
}

const systemPrompt = `You are a maritime chartering assistant for a laytime desk.
Answer questions about laytime, demurrage, despatch, NOR, and Statement of Facts
processing concisely and factually. If a question needs data you do not have,
say so instead of guessing.`

func (s *chatService) Ask(ctx context.Context, sessionID, message string) (*domain.ChatMessage, error) {
	if strings.TrimSpace(message) == "" {
		return nil, domain.ErrInvalidInput
	}
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	userMsg := &domain.ChatMessage{
		ID:        uuid.New(),
		SessionID: sessionID,
		Role:      domain.ChatRoleUser,
		Content:   message,
	}
	if err := s.chatRepo.Create(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("storing user message: %w", err)
	}

	agent, reply, err := s.route(ctx, message)
	if err != nil {
		return nil, err
	}

	assistantMsg := &domain.ChatMessage{
		ID:        uuid.New(),
		SessionID: sessionID,
		Role:      domain.ChatRoleAssistant,
		Agent:     agent,
		Content:   reply,
	}
	if err := s.chatRepo.Create(ctx, assistantMsg); err != nil {
		return nil, fmt.Errorf("storing assistant message: %w", err)
	}
	log.Printf("chatService.Ask: session %s answered by %s agent", sessionID, agent)
	return assistantMsg, nil
}

func (s *chatService) History(ctx context.Context, sessionID string, offset, limit int) ([]domain.ChatMessage, int, error) {
	if sessionID == "" {
		return s.chatRepo.ListRecent(ctx, offset, limit)
	}
	return s.chatRepo.ListBySession(ctx, sessionID, offset, limit)
}

func containsAny(s string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// route dispatches a question to the first specialist whose keywords
// match, falling back to the language model.
func (s *chatService) route(ctx context.Context, message string) (string, string, error) {
	lower := strings.ToLower(message)
	mentioned := ports.FindAllInText(message)

	switch {
	case containsAny(lower, "weather", "forecast", "wind", "rain", "storm"):
		return s.answerWeather(ctx, mentioned)
	case containsAny(lower, "distance", "how far", "eta", "route", "voyage time", "transit"):
		return s.answerNavigation(lower, mentioned)
	case containsAny(lower, "co2", "carbon", "emission", "fuel consumption"):
		return s.answerCarbon(lower)
	case containsAny(lower, "checklist", "pre fixture", "pre-fixture", "post voyage", "post-voyage"):
		return s.answerChecklist(lower)
	case containsAny(lower, "port") && len(mentioned) > 0:
		return AgentPorts, describePort(mentioned[0]), nil
	}
	return s.answerLLM(ctx, message)
}

func (s *chatService) answerWeather(ctx context.Context, mentioned []ports.Port) (string, string, error) {
	if len(mentioned) == 0 {
		return AgentWeather, "Which port would you like the weather for? I cover the major ports in the directory.", nil
	}
	report, err := s.weather.ForPort(ctx, mentioned[0].Name)
	if err != nil {
		return "", "", fmt.Errorf("weather lookup: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Weather at %s: %s, %.1f°C, wind %.1f km/h, humidity %.0f%%.\n",
		report.Port, report.Current.Description, report.Current.TemperatureC,
		report.Current.WindSpeedKmh, report.Current.HumidityPercent)
	if len(report.Forecast) > 0 {
		b.WriteString("Outlook:")
		for _, day := range report.Forecast {
			fmt.Fprintf(&b, " %s %.0f/%.0f°C;", day.Weekday, day.TempMaxC, day.TempMinC)
		}
		b.WriteString("\n")
	}
	for _, insight := range report.Insights {
		fmt.Fprintf(&b, "- %s\n", insight)
	}
	return AgentWeather, strings.TrimRight(b.String(), "\n"), nil
}

var vesselTypeRe = regexp.MustCompile(`(?i)\b(container|bulk|tanker|lng|lpg|general)\b`)

func (s *chatService) answerNavigation(lower string, mentioned []ports.Port) (string, string, error) {
	if len(mentioned) < 2 {
		return AgentNavigation, "Please name two ports, e.g. \"distance from Singapore to Rotterdam\".", nil
	}
	vesselType := "general"
	if m := vesselTypeRe.FindString(lower); m != "" {
		vesselType = strings.ToLower(m)
	}

	est, err := navigation.EstimateRoute(mentioned[0].Name, mentioned[1].Name, vesselType)
	if err != nil {
		return "", "", fmt.Errorf("route estimate: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s to %s: %.1f nm (%.1f km), %s route.\n",
		est.From, est.To, est.Distance.NauticalMiles, est.Distance.Kilometers, est.Classification)
	fmt.Fprintf(&b, "At %.0f knots (%s): %.1f hours (%.2f days).\n",
		est.BasePassage.SpeedKnots, est.VesselType, est.BasePassage.Hours, est.BasePassage.Days)
	for _, c := range est.Considerations {
		fmt.Fprintf(&b, "- %s\n", c)
	}
	return AgentNavigation, strings.TrimRight(b.String(), "\n"), nil
}

var daysRe = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)\s*days?`)

func (s *chatService) answerCarbon(lower string) (string, string, error) {
	days := 10.0
	if m := daysRe.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			days = v
		}
	}
	vesselType := "general"
	if m := vesselTypeRe.FindString(lower); m != "" {
		vesselType = strings.ToLower(m)
	}
	fuel := "vlsfo"
	for _, f := range []string{"hfo", "mgo", "lng"} {
		if strings.Contains(lower, f) {
			fuel = f
			break
		}
	}

	est, err := carbon.EstimateVoyage(vesselType, fuel, days)
	if err != nil {
		return "", "", fmt.Errorf("carbon estimate: %w", err)
	}
	reply := fmt.Sprintf(
		"A %s vessel burning %s for %.1f days consumes about %.1f tons of fuel, emitting %.1f tons of CO2 (%.1f t/day consumption).",
		est.VesselType, strings.ToUpper(est.FuelType), est.VoyageDays,
		est.FuelTons, est.CO2Tons, est.FuelConsumptionTPD)
	return AgentCarbon, reply, nil
}

func (s *chatService) answerChecklist(lower string) (string, string, error) {
	stage := "on_voyage"
	switch {
	case containsAny(lower, "pre fixture", "pre-fixture", "pre_fixture"):
		stage = "pre_fixture"
	case containsAny(lower, "post voyage", "post-voyage", "post_voyage"):
		stage = "post_voyage"
	}

	items, err := checklist.ForStage(stage)
	if err != nil {
		return "", "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s checklist:\n", strings.ReplaceAll(stage, "_", " "))
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}
	return AgentChecklist, strings.TrimRight(b.String(), "\n"), nil
}

func describePort(p ports.Port) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s), %s. Max draft %.1f m, tidal range %.1f m.\n",
		p.Name, p.UNLocode, p.Country, p.MaxDraftM, p.TidalRangeM)
	fmt.Fprintf(&b, "Facilities: %s.\n", strings.Join(p.Facilities, ", "))
	fmt.Fprintf(&b, "Restrictions: %s.\n", strings.Join(p.Restrictions, ", "))
	fmt.Fprintf(&b, "Contact: %s / %s", p.Contact.Phone, p.Contact.Email)
	return b.String()
}

// answerLLM asks the primary provider and fails over to the secondary.
func (s *chatService) answerLLM(ctx context.Context, message string) (string, string, error) {
	if s.primary == nil {
		return "", "", domain.ErrLLMUnavailable
	}
	input := port.CompletionInput{System: systemPrompt, Prompt: message}

	reply, err := s.primary.Complete(ctx, input)
	if err == nil {
		return AgentAssistant, reply, nil
	}
	log.Printf("chatService.answerLLM: %s provider failed: %v", s.primary.Name(), err)

	if s.secondary != nil {
		reply, err2 := s.secondary.Complete(ctx, input)
		if err2 == nil {
			return AgentAssistant, reply, nil
		}
		log.Printf("chatService.answerLLM: %s fallback failed: %v", s.secondary.Name(), err2)
		err = errors.Join(err, err2)
	}
	return "", "", fmt.Errorf("%w: %v", domain.ErrLLMUnavailable, err)
}
