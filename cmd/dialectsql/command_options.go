package main

import (
	"os"

	"github.com/shibukawa/dialectsql/mysqldialect"
)

// OptionsCmd represents the options command
type OptionsCmd struct {
	Output string `short:"o" default:"yaml" enum:"yaml,json" help:"Output format: yaml or json"`
}

type optionEntry struct {
	Keyword string   `yaml:"keyword" json:"keyword"`
	Values  []string `yaml:"values" json:"values"`
}

// Run executes the options command
func (cmd *OptionsCmd) Run(ctx *Context) error {
	var entries []optionEntry
	for _, option := range mysqldialect.DescribeOptions() {
		entries = append(entries, optionEntry{Keyword: option.Keyword, Values: option.Values})
	}

	return writeReport(os.Stdout, cmd.Output, entries)
}
