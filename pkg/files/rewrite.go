package files

// Rewrite reads the whole file, transforms it in one pass and writes it back.
func Rewrite(path string, transform func(string) string) {
	Write(path, transform(Read(path)))
}
