// Dumps several values as one multi-document stream separated by "---".
package main

import (
	"bytes"
	"fmt"
	"log"

	"github.com/yaml/pyyaml"
)

type release struct {
	Version string `yaml:"version"`
	Channel string `yaml:"channel"`
}

func main() {
	var buf bytes.Buffer
	dumper, err := yaml.NewDumper(&buf)
	if err != nil {
		log.Fatal(err)
	}

	releases := []release{
		{Version: "1.4.2", Channel: "stable"},
		{Version: "1.5.0-rc1", Channel: "beta"},
		{Version: "1.6.0-dev", Channel: "nightly"},
	}

	for i := range releases {
		if err := dumper.Dump(&releases[i]); err != nil {
			log.Fatal(err)
		}
	}
	if err := dumper.Close(); err != nil {
		log.Fatal(err)
	}

	fmt.Print(buf.String())
}
