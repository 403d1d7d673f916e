// Command askonce sends one prompt to the Anthropic Messages API and prints
// the first text segment of the reply to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"askonce/pkg/anthropic"
	"askonce/pkg/runner"
)

const (
	defaultModel     = "claude-haiku-4-5-20251001"
	defaultMaxTokens = 8000
	defaultPrompt    = "What should I search for to find the latest developments in C++?"

	apiKeyEnv  = "ANTHROPIC_API_KEY"
	baseURLEnv = "ANTHROPIC_BASE_URL"
)

type options struct {
	model     string
	maxTokens int
	system    string
	verbose   bool
	prompt    string
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: askonce [flags] [prompt...]\n\nSends one prompt to the Anthropic Messages API and prints the reply.\nThe API key is read from %s.\n\nFlags:\n", apiKeyEnv)
		flag.PrintDefaults()
	}

	model := flag.String("model", defaultModel, "model identifier")
	maxTokens := flag.Int("max-tokens", defaultMaxTokens, "maximum output tokens")
	system := flag.String("system", "", "optional system prompt")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	verbose := flag.Bool("verbose", false, "report stop reason and token usage on stderr")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	opts := options{
		model:     *model,
		maxTokens: *maxTokens,
		system:    *system,
		verbose:   *verbose,
		prompt:    promptFromArgs(flag.Args()),
	}

	if err := run(opts, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, out, log io.Writer) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	baseURL := os.Getenv(baseURLEnv)
	if baseURL == "" {
		baseURL = anthropic.DefaultBaseURL
	}

	client, err := anthropic.New(baseURL, os.Getenv(apiKeyEnv), opts.model)
	if err != nil {
		return fmt.Errorf("%w (set %s)", err, apiKeyEnv)
	}

	client.MaxTokens = opts.maxTokens
	client.System = opts.system

	r := runner.New(client, out, log)
	r.Verbose = opts.verbose

	if err := r.Run(ctx, opts.prompt); err != nil {
		return err
	}

	if opts.verbose {
		total := client.Usage.Total()
		fmt.Fprintf(log, "total tokens used: %d\n", total.Total())
	}

	return nil
}
