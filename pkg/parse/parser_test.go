package parse

import (
	"testing"
)

func TestParseConfiguration(t *testing.T) {
	c := ParseConfiguration("testdata/example.seedfix.yaml")

	if c.GetFile() != "db/seedDatabase.js" {
		t.Fatal("unexpected file:", c.File)
	}

	if c.GetUnit() != "sqm" {
		t.Fatal("unexpected unit:", c.Unit)
	}

	if len(c.Properties) != 2 {
		t.Fatal("unexpected number of properties:", len(c.Properties))
	}
}

func TestParseConfigurationWithoutPath(t *testing.T) {
	c := ParseConfiguration("")

	if c.GetFile() != "seedDatabase.js" {
		t.Fatal("unexpected default file:", c.GetFile())
	}

	if c.GetUnit() != "sqm" {
		t.Fatal("unexpected default unit:", c.GetUnit())
	}

	if len(c.Properties) != 0 {
		t.Fatal("unexpected properties:", c.Properties)
	}
}
