// Package main generates the JSON schema for the mdclean configuration file.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/macropower/mdclean/pkg/config"
	"github.com/macropower/mdclean/pkg/yaml"
)

var cli struct {
	Out string `default:"config.v1beta1.json" help:"Output file for the generated schema." short:"o" type:"path"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("schemagen"),
		kong.Description("Generate the JSON schema for the mdclean configuration."),
	)

	gen := yaml.NewSchemaGenerator(config.NewConfig(), "github.com/macropower/mdclean/pkg/config")

	jsData, err := gen.Generate()
	ctx.FatalIfErrorf(err, "generate JSON schema")

	err = os.WriteFile(cli.Out, jsData, 0o600)
	if err != nil {
		ctx.FatalIfErrorf(fmt.Errorf("write schema file: %w", err))
	}
}
