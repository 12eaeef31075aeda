package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load resolves the corpus for the given name, or reads one from filePath
// when set. File corpora use the same JSON shape as the built-ins.
func Load(name, filePath string) (*Corpus, error) {
	if filePath != "" {
		return LoadFile(filePath)
	}

	switch name {
	case "", "markdown", "portfolio-markdown":
		return MarkdownCorpus(), nil
	case "tagged", "portfolio-tagged":
		return TaggedCorpus(), nil
	default:
		return nil, fmt.Errorf("unknown corpus %q", name)
	}
}

// LoadFile reads a corpus definition from a JSON file.
func LoadFile(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file: %w", err)
	}

	var c Corpus
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse corpus file: %w", err)
	}

	if len(c.Entries) == 0 {
		return nil, fmt.Errorf("corpus file %s contains no entries", path)
	}
	if c.Format == "" {
		c.Format = FormatPlainText
	}
	if c.Separator == "" {
		c.Separator = " "
	}

	return &c, nil
}
