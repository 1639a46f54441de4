package main

import (
	"os"

	"github.com/shibukawa/dialectsql"
)

// CapabilitiesCmd represents the capabilities command
type CapabilitiesCmd struct {
	Output string `short:"o" default:"yaml" enum:"yaml,json" help:"Output format: yaml or json"`
}

type capabilityReport struct {
	Dialect      string                     `yaml:"dialect" json:"dialect"`
	Identifiers  dialectsql.IdentifierRules `yaml:"identifiers" json:"identifiers"`
	Capabilities []dialectsql.Capability    `yaml:"capabilities" json:"capabilities"`
}

// Run executes the capabilities command
func (cmd *CapabilitiesCmd) Run(ctx *Context) error {
	config, err := ctx.LoadConfig()
	if err != nil {
		return err
	}

	dialect, err := ctx.ParserDialect(config)
	if err != nil {
		return err
	}

	return writeReport(os.Stdout, cmd.Output, capabilityReport{
		Dialect:      config.Dialect,
		Identifiers:  dialectsql.DescribeIdentifiers(dialect),
		Capabilities: dialectsql.Capabilities(dialect),
	})
}
