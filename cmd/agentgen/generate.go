package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/agentgenesis/api/internal/agentgen"
	"github.com/agentgenesis/api/internal/config"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	generateCopy    bool
	generateRaw     bool
	generateTimeout time.Duration
	generateVerbose bool
)

// codeGenerator is the part of agentgen.Generator the command uses
type codeGenerator interface {
	GenerateAgentCode(ctx context.Context, taskDescription string) (string, error)
}

// Swapped in tests.
var (
	newGenerator      = newGeminiGenerator
	clipboardWriteAll = clipboard.WriteAll
	stdoutIsTerminal  = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
)

var generateCmd = &cobra.Command{
	Use:   "generate <task description...>",
	Short: "Generate agent code for a task description",
	Long: `Send a task description to the model and print the generated JavaScript.

Examples:
  agentgen generate "An agent that translates English text to French"
  agentgen generate --copy summarize a web page in three bullet points
  agentgen generate --raw "A weather reporting agent" > agent.js`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&generateCopy, "copy", false, "Copy the generated code to the clipboard")
	generateCmd.Flags().BoolVar(&generateRaw, "raw", false, "Print plain code even on a terminal")
	generateCmd.Flags().DurationVar(&generateTimeout, "timeout", 0, "Generation timeout (default GENERATION_TIMEOUT)")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Log backend activity to stderr")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := zap.NewNop()
	if generateVerbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer logger.Sync()
	}

	timeout := cfg.GenerationTimeout
	if generateTimeout > 0 {
		timeout = generateTimeout
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	generator, err := newGenerator(ctx, cfg, logger)
	if err != nil {
		return err
	}

	code, err := generator.GenerateAgentCode(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !generateRaw && stdoutIsTerminal() {
		fmt.Fprint(out, render(code))
	} else {
		fmt.Fprintln(out, code)
	}

	if generateCopy {
		if err := clipboardWriteAll(code); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard.")
	}
	return nil
}

func newGeminiGenerator(ctx context.Context, cfg *config.Config, logger *zap.Logger) (codeGenerator, error) {
	backend, err := agentgen.NewGeminiBackend(ctx, agentgen.GeminiConfig{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		BaseURL: cfg.GeminiBaseURL,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}
	return agentgen.NewGenerator(backend, logger), nil
}

// render highlights code for the terminal, falling back to plain text.
func render(code string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		return code + "\n"
	}
	out, err := r.Render("```javascript\n" + code + "\n```\n")
	if err != nil {
		return code + "\n"
	}
	return out
}
