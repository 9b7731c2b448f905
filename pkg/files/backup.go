package files

import (
	"io"
	"os"
)

func Backup(src string) string {
	target, err := os.CreateTemp("", "seedfix.*.bak")
	if err != nil {
		panic(err)
	}
	defer target.Close()

	source, err := os.Open(src)
	if err != nil {
		panic(err)
	}
	defer source.Close()

	if _, err := io.Copy(target, source); err != nil {
		panic(err)
	}

	return target.Name()
}
