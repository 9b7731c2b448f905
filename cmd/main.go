package main

import (
	"fmt"
	"github.com/yehezkiel0/staycation-seedfix/pkg/config"
	"github.com/yehezkiel0/staycation-seedfix/pkg/convert"
	"github.com/yehezkiel0/staycation-seedfix/pkg/debug"
	"github.com/yehezkiel0/staycation-seedfix/pkg/files"
	"github.com/yehezkiel0/staycation-seedfix/pkg/parse"
	"github.com/yehezkiel0/staycation-seedfix/pkg/seed"
	flag "github.com/spf13/pflag"
	"os"
)

var (
	targetFile   = flag.StringP("file", "f", "", "Path of the seed file to rewrite")
	configFile   = flag.StringP("config", "c", "", "Optional yaml configuration file")
	dryRun       = flag.BoolP("dry-run", "n", false, "Print the result instead of writing the file")
	withBackup   = flag.Bool("backup", false, "Copy the seed file aside before overwriting it")
	skipExisting = flag.Bool("skip-existing", false, "Do not insert slug lines for titles that already have one")
	debugMode    = flag.Bool("debug", false, "Run in debug mode")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Need one non-flag argument with the command to run: slugs, area or all")
		flag.Usage()
		os.Exit(1)
	}

	debug.SetEnabled(*debugMode)

	os.Exit(runMain())
}

func runMain() int {
	conf := parse.ParseConfiguration(*configFile)

	path := conf.GetFile()
	if *targetFile != "" {
		path = *targetFile
	}

	if debug.IsEnabled() {
		fmt.Println("Rewriting", path, "...")
	}

	switch command := flag.Arg(0); command {
	case "slugs":
		rewrite(path, slugTransform(conf))
		fmt.Println("Added slugs to all properties!")
	case "area":
		rewrite(path, areaTransform(conf))
		fmt.Println("Fixed all area fields!")
	case "all":
		slugs, area := slugTransform(conf), areaTransform(conf)
		rewrite(path, func(content string) string {
			return area(slugs(content))
		})
		fmt.Println("Added slugs to all properties!")
		fmt.Println("Fixed all area fields!")
	default:
		fmt.Println("Unknown command:", command)
		flag.Usage()
		return 1
	}

	return 0
}

func slugTransform(conf *config.Configuration) func(string) string {
	entries := convert.ToSlugEntries(conf.Properties)
	if len(entries) == 0 {
		entries = seed.DefaultProperties
	}

	if *skipExisting {
		return func(content string) string {
			return seed.InjectSlugsIfAbsent(content, entries)
		}
	}

	return func(content string) string {
		return seed.InjectSlugs(content, entries)
	}
}

func areaTransform(conf *config.Configuration) func(string) string {
	unit := conf.GetUnit()

	return func(content string) string {
		return seed.NormalizeAreas(content, unit)
	}
}

func rewrite(path string, transform func(string) string) {
	if *dryRun {
		fmt.Print(transform(files.Read(path)))
		return
	}

	if *withBackup {
		backup := files.Backup(path)

		if debug.IsEnabled() {
			fmt.Println("Saved a backup copy to", backup)
		}
	}

	files.Rewrite(path, transform)
}
