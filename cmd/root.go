package cmd

import (
	"fmt"
	"os"

	"github.com/CJHwong/git-msg/internal/config"
	"github.com/CJHwong/git-msg/internal/generator"
	"github.com/CJHwong/git-msg/internal/git"
	"github.com/CJHwong/git-msg/internal/provider"
	"github.com/CJHwong/git-msg/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const EnvAPIKey = "GIT_MSG_API_KEY"

var (
	numMessages  int
	instructions string
	verbose      bool
	providerName string
	modelName    string
	apiKey       string
	apiURL       string
	doCommit     bool
)

var rootCmd = &cobra.Command{
	Use:   "git-msg",
	Short: "Generate commit messages for staged changes using an AI provider",
	Long: `git-msg reads your staged diff and asks an AI provider (Ollama, OpenAI
or Gemini) for one or more conventional commit message candidates.`,
	Run: run,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var setProviderCmd = &cobra.Command{
	Use:   "set-provider [name]",
	Short: "Set the default AI provider (ollama, openai, gemini)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		variant, err := provider.ParseVariant(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := config.SetProvider(string(variant)); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Provider set to: %s\n", variant)
	},
}

var setModelCmd = &cobra.Command{
	Use:   "set-model [model-name]",
	Short: "Set the default model",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := config.SetModel(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Model set to: %s\n", args[0])
	},
}

var setURLCmd = &cobra.Command{
	Use:   "set-url [base-url]",
	Short: "Set the default API base URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := config.SetEndpoint(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("API base URL set to: %s\n", args[0])
	},
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		variant, err := provider.ParseVariant(cfg.Provider)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Provider: %s\n", variant)
		fmt.Printf("Model:    %s\n", resolve(cfg.Model, variant.DefaultModel()))
		fmt.Printf("Endpoint: %s\n", resolve(cfg.Endpoint, variant.DefaultBaseURL()))
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().IntVarP(&numMessages, "number", "n", 1, "Number of commit messages to generate (1-5)")
	rootCmd.Flags().StringVarP(&instructions, "instructions", "i", "", "Additional context or instructions for the AI")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.Flags().StringVarP(&providerName, "provider", "p", "", "AI provider to use (ollama, openai, gemini)")
	rootCmd.Flags().StringVarP(&modelName, "model", "m", "", "Model name to use")
	rootCmd.Flags().StringVarP(&apiKey, "api-key", "k", "", "API key for the provider (not needed for ollama)")
	rootCmd.Flags().StringVarP(&apiURL, "api-url", "u", "", "API base URL (defaults to the provider's standard URL)")
	rootCmd.Flags().BoolVar(&doCommit, "commit", false, "Pick one of the generated messages and commit with it")

	configCmd.AddCommand(setProviderCmd)
	configCmd.AddCommand(setModelCmd)
	configCmd.AddCommand(setURLCmd)
	configCmd.AddCommand(showConfigCmd)
	rootCmd.AddCommand(configCmd)
}

func resolve(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func run(cmd *cobra.Command, args []string) {
	if numMessages < 1 || numMessages > 5 {
		fmt.Fprintln(os.Stderr, "Error: number of messages must be between 1 and 5")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	variant, err := provider.ParseVariant(resolve(providerName, cfg.Provider))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	key := resolve(apiKey, os.Getenv(EnvAPIKey))

	if verbose {
		fmt.Println("Opening git repository...")
	}

	branch, err := git.CurrentBranch()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if verbose {
		fmt.Printf("Current branch: %s\n", branch)
		fmt.Println("Reading staged changes...")
	}

	diff, err := git.StagedDiff()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if diff == "" {
		fmt.Println("No staged changes found. Stage some changes first with 'git add'")
		os.Exit(1)
	}

	aiProvider, err := provider.New(provider.Options{
		Variant: variant,
		Model:   resolve(modelName, cfg.Model),
		APIKey:  key,
		BaseURL: resolve(apiURL, cfg.Endpoint),
		Verbose: verbose,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Recent titles are style grounding only; failure just means none.
	recentTitles, _ := git.RecentCommitTitles(3)

	req := generator.Request{
		Diff:          diff,
		BranchName:    branch,
		Count:         numMessages,
		RecentCommits: recentTitles,
	}
	if cmd.Flags().Changed("instructions") {
		req.Instructions = &instructions
	}

	if verbose {
		fmt.Printf("Using provider: %s with model: %s\n", variant, resolve(modelName, resolve(cfg.Model, variant.DefaultModel())))
	}

	gen := generator.New(aiProvider)

	// The spinner would garble the verbose request/response dump.
	var spinner *ui.Spinner
	if !verbose {
		spinner = ui.NewSpinner("Generating commit message(s)...")
	}
	messages, err := gen.Generate(req)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating commit message: %v\n", err)
		os.Exit(1)
	}

	if len(messages) == 0 {
		fmt.Fprintln(os.Stderr, "No commit messages could be parsed from the response")
		os.Exit(1)
	}

	if !doCommit {
		for _, message := range messages {
			fmt.Println(message)
		}
		return
	}

	chosen, err := ui.SelectMessage(messages)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	edited, err := ui.EditMessage(chosen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := git.Commit(edited); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s %s\n", color.GreenString("Committed:"), edited)
}
