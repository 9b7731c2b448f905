package config

func (c *Configuration) GetFile() string {
	if c.File != "" {
		return c.File
	}

	return "seedDatabase.js"
}

func (c *Configuration) GetUnit() string {
	if c.Unit != "" {
		return c.Unit
	}

	return "sqm"
}
