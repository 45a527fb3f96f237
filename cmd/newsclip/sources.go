package main

import (
	"fmt"

	"github.com/crhub/newsclip/goquery"
)

// Run executes the sources command.
func (c *SourcesCmd) Run(deps *Dependencies) error {
	for _, s := range goquery.DefaultSources().Sources() {
		fmt.Fprintf(deps.Stdout, "%-16s %s\n", s.Domain, s.Extractor.Name())
	}
	return nil
}
