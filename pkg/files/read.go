package files

import "os"

func Read(path string) string {
	contents, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	return string(contents)
}
