package parse

import (
	"github.com/yehezkiel0/staycation-seedfix/pkg/config"
	"gopkg.in/yaml.v2"
	"io"
	"os"
)

func ParseConfiguration(path string) *config.Configuration {
	c := new(config.Configuration)

	if path == "" {
		return c
	}

	f, err := os.Open(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)

	if err := decoder.Decode(c); err != nil && err != io.EOF {
		panic(err)
	}

	return c
}
