package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/theapemachine/diagen/pkg/a2a"
	"github.com/theapemachine/diagen/pkg/client"
)

var (
	agentURLFlag string
	sessionFlag  string

	clientCmd = &cobra.Command{
		Use:   "client [prompt]",
		Short: "Send a prompt to a running agent and poll until it finishes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn := client.New(agentURLFlag)

			card, err := conn.AgentCard()
			if err != nil {
				return err
			}

			log.Info("connected", "agent", card.Name, "version", card.Version)

			task, err := conn.SendTask(a2a.TaskSendParams{
				SessionID: sessionFlag,
				Message:   a2a.NewTextMessage(a2a.RoleUser, strings.Join(args, " ")),
			})
			if err != nil {
				return err
			}

			log.Info("task submitted", "task", task.ID, "state", task.Status.State)

			for !task.Status.State.Terminal() {
				time.Sleep(time.Second)

				if task, err = conn.GetTask(task.ID); err != nil {
					return err
				}
			}

			fmt.Println(task.String())

			if last := task.LastMessage(); last != nil && last.Role == a2a.RoleAgent {
				log.Info("agent responded", "chars", len(last.FirstText()))
			}

			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(clientCmd)

	clientCmd.Flags().StringVarP(&agentURLFlag, "url", "u", "http://localhost:3210", "Base URL of the agent")
	clientCmd.Flags().StringVarP(&sessionFlag, "session", "s", "", "Session id to group related tasks")
}
