package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/talentflow/interview-assist/internal/ai"
	"github.com/talentflow/interview-assist/internal/ai/gemini"
	"github.com/talentflow/interview-assist/internal/backend"
	"github.com/talentflow/interview-assist/internal/evaluation"
	"github.com/talentflow/interview-assist/internal/interview"
	"github.com/talentflow/interview-assist/internal/logger"
	"github.com/talentflow/interview-assist/internal/pool"
	"github.com/talentflow/interview-assist/internal/secrets"
	"github.com/talentflow/interview-assist/internal/simulate"
	"github.com/talentflow/interview-assist/internal/suggestion"
)

const (
	PromptAsk           = "Ask a question"
	PromptAskFromPool   = "Ask from the question pool"
	PromptSubmitAnswer  = "Submit candidate answer"
	PromptSuggestions   = "Show suggestions"
	PromptUseSuggestion = "Use a suggestion"
	PromptDismiss       = "Dismiss suggestions"
	PromptPause         = "Pause the interview"
	PromptResume        = "Resume the interview"
	PromptStats         = "Session stats"
	PromptReport        = "Generate report"
	PromptExport        = "Export session to file"
	PromptEnd           = "End the interview"
	PromptBack          = "back"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "Next action?",
	Items: []string{
		PromptAsk, PromptAskFromPool, PromptSubmitAnswer,
		PromptSuggestions, PromptUseSuggestion, PromptDismiss,
		PromptPause, PromptResume, PromptStats,
		PromptReport, PromptExport, PromptEnd,
	},
	Size: 12,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an interactive interview session",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("mode", "m", "", "interview mode: ai-simulation or live-interview")
	runCmd.Flags().StringP("archetype", "a", string(simulate.Ideal), "simulated candidate archetype: ideal, junior, nervous or overconfident")
	runCmd.Flags().StringP("resume", "r", "", "resume reference for a remote live session")

	viper.BindPFlag("mode", runCmd.Flags().Lookup("mode"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the interview-assist", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	cfg := sessionConfig(config)

	client := newBackendClient(ctx, config, logger)

	var recorder evaluation.Recorder
	var remote interview.Backend
	if client != nil {
		recorder = client
		remote = client
	}

	assistant, err := newAssistant(ctx, config.AI, logger)
	if err != nil {
		logger.Warn("skipping ai evaluation", zap.Error(err))
	}

	engine := evaluation.NewEngine(recorder, assistant, evaluation.NewHeuristic(nil), logger)

	ctrl := interview.NewController(cfg, interview.Deps{
		Backend:     remote,
		Engine:      engine,
		Suggestions: suggestion.NewGenerator(nil),
		Logger:      logger,
		Reveal:      printMessage,
	})

	resumeRef := cmd.Flag("resume").Value.String()
	if cfg.Mode == interview.ModeLive && resumeRef != "" {
		if err := ctrl.StartLiveWithResume(ctx, resumeRef); err != nil {
			logger.Fatal("starting remote live session", zap.Error(err))
		}
	} else {
		archetype := simulate.Archetype(cmd.Flag("archetype").Value.String())
		ctrl.Start(ctx, cfg.Mode, archetype)
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(ctx, action, ctrl, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(ctx context.Context, action string, ctrl *interview.Controller, logger *zap.Logger) error {
	switch action {
	case PromptAsk:
		text, err := askText("Question")
		if err != nil {
			return err
		}
		ctrl.AskQuestion(ctx, text)
		return nil
	case PromptAskFromPool:
		return askFromPool(ctx, ctrl, logger)
	case PromptSubmitAnswer:
		answer, err := askText("Candidate answer")
		if err != nil {
			return err
		}
		ctrl.SubmitAnswer(ctx, answer)
		printLastEvaluation(ctrl)
		return nil
	case PromptSuggestions:
		printSuggestions(ctrl)
		return nil
	case PromptUseSuggestion:
		return useSuggestion(ctx, ctrl)
	case PromptDismiss:
		ctrl.DismissSuggestions()
		return nil
	case PromptPause:
		ctrl.Pause()
		return nil
	case PromptResume:
		ctrl.Resume()
		return nil
	case PromptStats:
		pretty, _ := json.MarshalIndent(ctrl.Stats(), "", "  ")
		fmt.Println(string(pretty))
		return nil
	case PromptReport:
		return report(ctx, ctrl, logger)
	case PromptExport:
		filename, err := ctrl.Export().DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump session to file: %w", err)
		}
		logger.Info("dumping session to file", zap.String("filename", filename))
		return nil
	case PromptEnd:
		ctrl.End(ctx)
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func askFromPool(ctx context.Context, ctrl *interview.Controller, logger *zap.Logger) error {
	asked := make([]string, 0)
	for _, msg := range ctrl.Messages() {
		if msg.Role == interview.RoleInterviewer {
			asked = append(asked, msg.Content)
		}
	}

	questions := pool.Run(logger, []pool.Filter{pool.ExcludeAsked(asked)}, ctrl.Pool())
	if len(questions) == 0 {
		fmt.Println("question pool is empty")
		return nil
	}

	items := make([]string, 0, len(questions))
	for _, q := range questions {
		items = append(items, fmt.Sprintf("[%s / 难度 %d] %s", q.Category, q.Difficulty, q.Content))
	}

	poolPrompt := promptui.Select{
		Label: "Choose a question and press ENTER",
		Items: append(items, PromptBack),
		Size:  len(items) + 1,
	}

	idx, selected, err := poolPrompt.Run()
	if err != nil {
		return err
	}

	if selected == PromptBack {
		return nil
	}

	ctrl.AskFromPool(ctx, questions[idx])
	return nil
}

func useSuggestion(ctx context.Context, ctrl *interview.Controller) error {
	suggestions, visible := ctrl.Suggestions()
	if !visible || len(suggestions) == 0 {
		fmt.Println("no suggestions available yet")
		return nil
	}

	items := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		label := fmt.Sprintf("[%s] %s", s.Type, s.Text)
		if s.Angle != "" {
			label = fmt.Sprintf("[%s / %s] %s", s.Type, s.Angle, s.Text)
		}
		items = append(items, label)
	}

	suggestionPrompt := promptui.Select{
		Label: "Choose a suggestion and press ENTER",
		Items: append(items, PromptBack),
		Size:  len(items) + 1,
	}

	idx, selected, err := suggestionPrompt.Run()
	if err != nil {
		return err
	}

	if selected == PromptBack {
		return nil
	}

	ctrl.UseSuggestion(ctx, suggestions[idx])
	return nil
}

func report(ctx context.Context, ctrl *interview.Controller, logger *zap.Logger) error {
	notes, err := askText("HR notes (optional)")
	if err != nil {
		notes = ""
	}

	result := ctrl.GenerateReport(ctx, notes)
	if !result.Success {
		logger.Warn("report is unavailable", zap.String("hint", "reports require a remote live session"))
		return nil
	}

	fmt.Println(result.Summary)
	if result.ReportURL != "" {
		logger.Info("report is ready", zap.String("url", result.ReportURL))
	}
	return nil
}

func askText(label string) (string, error) {
	textPrompt := promptui.Prompt{Label: label}
	text, err := textPrompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func printMessage(msg *interview.Message) {
	fmt.Printf("%s> %s\n", msg.Role, msg.Content)
}

func printLastEvaluation(ctrl *interview.Controller) {
	messages := ctrl.Messages()
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Evaluation == nil {
			continue
		}
		eval := messages[i].Evaluation
		fmt.Printf("score: %s / confidence: %s\n%s\n", strconv.FormatFloat(eval.Score, 'f', -1, 64), eval.Confidence, eval.Feedback)
		return
	}
}

func printSuggestions(ctrl *interview.Controller) {
	suggestions, visible := ctrl.Suggestions()
	if !visible || len(suggestions) == 0 {
		fmt.Println("no suggestions available yet")
		return
	}

	for _, s := range suggestions {
		fmt.Printf("%d. [%s] %s\n", s.Priority, s.Type, s.Text)
	}

	for _, hint := range ctrl.Hints() {
		fmt.Printf("hint: %s\n", hint)
	}
}

func sessionConfig(config *Config) interview.Config {
	cfg := interview.DefaultConfig()

	if mode := strings.TrimSpace(viper.GetString("mode")); mode != "" {
		cfg.Mode = interview.Mode(mode)
	} else if config.Mode != "" {
		cfg.Mode = interview.Mode(config.Mode)
	}

	if config.Domain != "" {
		cfg.Domain = config.Domain
	}
	if config.FollowupCount > 0 {
		cfg.FollowupCount = config.FollowupCount
	}
	if config.AlternativeCount > 0 {
		cfg.AlternativeCount = config.AlternativeCount
	}
	if config.SuggestionDelaySeconds > 0 {
		cfg.SuggestionDelay = time.Duration(config.SuggestionDelaySeconds) * time.Second
	}

	return cfg
}

// newBackendClient returns nil when no token is configured; the session then
// runs purely local.
func newBackendClient(ctx context.Context, config *Config, logger *zap.Logger) *backend.Client {
	tokenFile := ""
	if config.Backend != nil {
		tokenFile = strings.TrimSpace(config.Backend.TokenFile)
	}
	if tokenFile == "" {
		tokenFile = strings.TrimSpace(viper.GetString("backend.token-file"))
	}

	if tokenFile == "" {
		logger.Info("remote backend is not configured",
			zap.String("hint", "set INTERVIEW_TOKEN_FILE or the 'backend.token-file' key to enable remote sessions"),
		)
		return nil
	}

	token, err := secrets.Load(secrets.Source{
		Name: "interview service token",
		File: tokenFile,
	})
	if err != nil {
		logger.Warn("loading interview service token", zap.Error(err))
		return nil
	}

	return backend.New(ctx, logger, token)
}

func newAssistant(ctx context.Context, cfg *AIConfig, log *zap.Logger) (ai.Evaluator, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	if cfg.Gemini == nil {
		cfg.Gemini = &GeminiConfig{}
	}

	apiKeyFile := strings.TrimSpace(cfg.Gemini.APIKeyFile)
	if apiKeyFile == "" {
		apiKeyFile = strings.TrimSpace(viper.GetString("ai.gemini.api-key-file"))
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: apiKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model)
	if err != nil {
		return nil, err
	}

	evalLogger := log.With(
		zap.String(logger.FieldProvider, "gemini"),
		zap.String(logger.FieldModel, generator.Model()),
	)

	return gemini.NewEvaluator(generator, evalLogger, cfg.Gemini.MaxLogLength), nil
}
