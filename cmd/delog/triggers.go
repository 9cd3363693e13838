package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/delog-tool/delog/pkg/trigger"
	"github.com/delog-tool/delog/pkg/types"
)

var (
	triggersPath   string
	triggersFormat string
)

var triggersCmd = &cobra.Command{
	Use:   "triggers",
	Short: "Manage removal triggers",
	Long:  "Commands for listing and inspecting removal triggers",
}

var triggersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available triggers",
	Long:  "Display all available removal triggers with their IDs and call names",
	RunE:  runTriggersList,
}

func init() {
	triggersCmd.AddCommand(triggersListCmd)
	triggersListCmd.Flags().StringVar(&triggersPath, "triggers", "", "Path to custom triggers file")
	triggersListCmd.Flags().StringVar(&triggersFormat, "format", "table", "Output format: table, json")
}

func runTriggersList(cmd *cobra.Command, args []string) error {
	loader := trigger.NewLoader()

	var triggers []*types.Trigger
	var err error

	// Load triggers (builtin or custom)
	if triggersPath != "" {
		triggers, err = loader.LoadTriggerFile(triggersPath)
		if err != nil {
			return fmt.Errorf("loading triggers from %s: %w", triggersPath, err)
		}
	} else {
		triggers, err = loader.LoadBuiltinTriggers()
		if err != nil {
			return fmt.Errorf("loading builtin triggers: %w", err)
		}
	}

	switch triggersFormat {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(triggers)
	case "table":
		return outputTriggersTable(cmd, triggers)
	default:
		return fmt.Errorf("unknown output format: %s", triggersFormat)
	}
}

func outputTriggersTable(cmd *cobra.Command, triggers []*types.Trigger) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "ID\tCall\tDescription\n")
	fmt.Fprintf(w, "--\t----\t-----------\n")

	for _, t := range triggers {
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID, t.Call, t.Description)
	}

	return nil
}
