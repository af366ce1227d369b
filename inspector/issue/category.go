package issue

import (
	"fmt"
	"strings"
)

// Category groups issues by the producer that found them
type Category int

const (
	Assets Category = iota
	Shaders
	ShaderVariants
	Code
	ProjectSettings
)

var categoryNames = []string{"Assets", "Shaders", "ShaderVariants", "Code", "ProjectSettings"}

// Categories returns all categories
func Categories() []Category {
	return []Category{Assets, Shaders, ShaderVariants, Code, ProjectSettings}
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Unknown"
	}
	return categoryNames[c]
}

// MarshalText encodes category name
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes category name, case-insensitive
func (c *Category) UnmarshalText(text []byte) error {
	category, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = category
	return nil
}

// ParseCategory parses category name
func ParseCategory(name string) (Category, error) {
	for i, candidate := range categoryNames {
		if strings.EqualFold(candidate, name) {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown category: %s", name)
}
