package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/uxlab/internal/chat"
)

var chatCmd = &cobra.Command{
	Use:   "chat <question...>",
	Short: "Ask the AI tutor a single question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		provider, llmCfg, err := buildProvider(cmd, e)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		cfg := chat.DefaultConfig()
		cfg.Logger = e.logger
		a := chat.New(provider, cfg)

		if topicID, _ := cmd.Flags().GetString("topic"); topicID != "" {
			law, err := e.catalog.Get(topicID)
			if err != nil {
				return err
			}
			a.Open(law.Name)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), llmCfg.Timeout)
		defer cancel()

		reply, err := a.Send(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), reply)
		return nil
	},
}

func init() {
	chatCmd.Flags().StringP("topic", "t", "", "Law ID to focus the conversation on (e.g. fitts)")
}
