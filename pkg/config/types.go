package config

type Configuration struct {
	File       string        `yaml:"file"`
	Unit       string        `yaml:"unit"`
	Properties []interface{} `yaml:"properties"`
}

type SlugEntry struct {
	Title string `yaml:"title"`
	Slug  string `yaml:"slug"`
}
