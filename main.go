package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"promptlab/ai"
	"promptlab/config"
	"promptlab/flow"
	"promptlab/prompt"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		s          settings
		similarity bool
		check      bool
	)

	rootCmd := &cobra.Command{
		Use:           "promptlab",
		Short:         "Prompt engineering demos against a hosted chat-completion API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&s.configPath, "config", "", "Config file path (YAML)")
	rootCmd.PersistentFlags().StringVar(&s.provider, "provider", "", "LLM provider: openai or anthropic")
	rootCmd.PersistentFlags().StringVar(&s.model, "model", "", "Model identifier")

	personasCmd := &cobra.Command{
		Use:   "personas",
		Short: "Compare two system prompts (personas) on the same question",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), s, func(provider ai.AiServiceProvider, model string, reporter flow.Reporter, tracker flow.Tracker) flow.Demo {
				return flow.NewPersonaDemo(provider, model, reporter, tracker, flow.PersonaOptions{
					Persona1:   prompt.Pirate,
					Persona2:   prompt.Teacher,
					Similarity: similarity,
				})
			})
		},
	}
	personasCmd.Flags().BoolVar(&similarity, "similarity", false, "Print the lexical similarity of both answers")

	ticketCmd := &cobra.Command{
		Use:   "ticket",
		Short: "Classify a support ticket with a structured prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), s, func(provider ai.AiServiceProvider, model string, reporter flow.Reporter, tracker flow.Tracker) flow.Demo {
				return flow.NewTicketDemo(provider, model, reporter, tracker, flow.TicketOptions{
					Template: prompt.TicketClassifier,
					Check:    check,
				})
			})
		},
	}
	ticketCmd.Flags().BoolVar(&check, "check", false, "Warn when the answer is not the expected JSON object")

	providersCmd := &cobra.Command{
		Use:   "providers",
		Short: "List available LLM providers",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Available LLM providers:")
			fmt.Fprintln(out)
			for _, t := range ai.ServiceTypes {
				fmt.Fprintf(out, "  %-10s key: %-18s default model: %s\n", t, ai.KeyVariable(t), ai.DefaultModel(t))
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Configure in a YAML file (--config) or via environment:")
			fmt.Fprintln(out, "  PROMPTLAB_PROVIDER=anthropic")
			fmt.Fprintln(out, "  PROMPTLAB_MODEL=gpt-4o-mini")
			fmt.Fprintln(out, "  PROMPTLAB_BASE_URL=http://localhost:11434/v1")
			fmt.Fprintf(out, "  Keys are also read from %v\n", config.DefaultEnvFiles)
		},
	}

	rootCmd.AddCommand(personasCmd, ticketCmd, providersCmd)
	return rootCmd
}
