package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bethropolis/spacer/internal/spacing"
)

var rulesFormat string

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the effective spacing rules",
	Long:  "Display the spacing rules after defaults, config file, environment and flags are merged",
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

func init() {
	rulesCmd.Flags().StringVar(&rulesFormat, "format", "table", "Output format: table, json, yaml")
}

// ruleView is the printable form of a spacing.RuleSet.
type ruleView struct {
	AggressiveSpacing bool   `json:"aggressive_spacing" yaml:"aggressive_spacing"`
	PreserveTabs      bool   `json:"preserve_tabs" yaml:"preserve_tabs"`
	PreserveIndent    bool   `json:"preserve_indent" yaml:"preserve_indent"`
	MaxOperationSize  int    `json:"max_operation_size" yaml:"max_operation_size"`
	TimeoutMS         int64  `json:"timeout_ms" yaml:"timeout_ms"`
	NoSpaceAfter      string `json:"no_space_after" yaml:"no_space_after"`
	NoSpaceBefore     string `json:"no_space_before" yaml:"no_space_before"`
	AlwaysSpaceAfter  string `json:"always_space_after" yaml:"always_space_after"`
	AlwaysSpaceBefore string `json:"always_space_before" yaml:"always_space_before"`
}

func newRuleView(rs spacing.RuleSet) ruleView {
	return ruleView{
		AggressiveSpacing: rs.AggressiveSpacing,
		PreserveTabs:      rs.PreserveTabs,
		PreserveIndent:    rs.PreserveIndent,
		MaxOperationSize:  rs.MaxOperationSize,
		TimeoutMS:         int64(rs.Timeout / time.Millisecond),
		NoSpaceAfter:      rs.NoSpaceAfter.String(),
		NoSpaceBefore:     rs.NoSpaceBefore.String(),
		AlwaysSpaceAfter:  rs.AlwaysSpaceAfter.String(),
		AlwaysSpaceBefore: rs.AlwaysSpaceBefore.String(),
	}
}

func runRules(cmd *cobra.Command, args []string) error {
	view := newRuleView(currentConfig().RuleSet())

	switch rulesFormat {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(view)
	case "yaml":
		encoder := yaml.NewEncoder(cmd.OutOrStdout())
		defer encoder.Close()
		return encoder.Encode(view)
	case "table":
		return outputRulesTable(cmd, view)
	default:
		return fmt.Errorf("unknown output format: %s", rulesFormat)
	}
}

func outputRulesTable(cmd *cobra.Command, v ruleView) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Rule\tValue\n")
	fmt.Fprintf(w, "----\t-----\n")
	fmt.Fprintf(w, "aggressive_spacing\t%t\n", v.AggressiveSpacing)
	fmt.Fprintf(w, "preserve_tabs\t%t\n", v.PreserveTabs)
	fmt.Fprintf(w, "preserve_indent\t%t\n", v.PreserveIndent)
	fmt.Fprintf(w, "max_operation_size\t%d\n", v.MaxOperationSize)
	fmt.Fprintf(w, "timeout_ms\t%d\n", v.TimeoutMS)
	fmt.Fprintf(w, "no_space_after\t%q\n", v.NoSpaceAfter)
	fmt.Fprintf(w, "no_space_before\t%q\n", v.NoSpaceBefore)
	fmt.Fprintf(w, "always_space_after\t%q\n", v.AlwaysSpaceAfter)
	fmt.Fprintf(w, "always_space_before\t%q\n", v.AlwaysSpaceBefore)
	return nil
}
