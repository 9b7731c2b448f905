package convert

import (
	"fmt"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/yehezkiel0/staycation-seedfix/pkg/config"
)

func ToSlugEntries(v []interface{}) []config.SlugEntry {
	var entries []config.SlugEntry

	for _, item := range v {
		if item == nil {
			continue
		} else if str, ok := item.(string); ok {
			entries = append(entries, config.SlugEntry{Title: str})
		} else if _, ok := item.(map[interface{}]interface{}); ok {
			entries = append(entries, decodeEntry(item))
		} else if _, ok := item.(map[string]interface{}); ok {
			entries = append(entries, decodeEntry(item))
		} else {
			panic(errors.New(fmt.Sprintf("unexpected type for slug entry: %T", item)))
		}
	}

	return entries
}

func decodeEntry(item interface{}) config.SlugEntry {
	var entry config.SlugEntry

	if err := mapstructure.Decode(item, &entry); err != nil {
		panic(err)
	}

	return entry
}
