package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/limbo/tabebui/internal/service"
	"github.com/limbo/tabebui/pkg/entity"
	"github.com/spf13/cobra"
)

func newChatCmd(opts *rootOptions) *cobra.Command {
	var historyPath string
	cmd := &cobra.Command{
		Use:   "chat <message...>",
		Short: "Ask the meat concierge for advice",
		Long:  "chat sends a message to the concierge. With --history the conversation is read from and written back to a JSON file.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := readHistory(historyPath)
			if err != nil {
				return err
			}
			a, userID, err := opts.resolve()
			if err != nil {
				return err
			}
			reply, err := a.serv.Chat(cmd.Context(), userID, &service.ChatRequest{
				Message: strings.Join(args, " "),
				History: history,
			})
			if err != nil {
				return err
			}
			if historyPath != "" {
				if err := writeHistory(historyPath, reply.History); err != nil {
					return err
				}
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), reply)
			}
			fmt.Fprintln(cmd.OutOrStdout(), reply.Reply)
			return nil
		},
	}
	cmd.Flags().StringVar(&historyPath, "history", "", "JSON file holding the conversation so far")
	return cmd
}

func readHistory(path string) ([]entity.ChatMessage, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read chat history: %w", err)
	}
	var history []entity.ChatMessage
	if err := sonic.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("decode chat history: %w", err)
	}
	return history, nil
}

func writeHistory(path string, history []entity.ChatMessage) error {
	data, err := sonic.ConfigStd.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("encode chat history: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write chat history: %w", err)
	}
	return nil
}
