package content

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

type FAQItem struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type Client struct {
	Platform string `yaml:"platform"`
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
}

type Tools struct {
	DNSLeakSites []string `yaml:"dns_leak_sites"`
	IPSites      []string `yaml:"ip_sites"`
}

// Content holds the static texts shown in the user menus
type Content struct {
	FAQ     []FAQItem `yaml:"faq"`
	Clients []Client  `yaml:"clients"`
	Tools   Tools     `yaml:"tools"`
}

// Load parses the embedded content and, when overridePath is set, lays the
// file at that path over it. Sections missing from the override keep their
// embedded values.
func Load(overridePath string) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(defaultContent, &c); err != nil {
		return nil, fmt.Errorf("parse embedded content: %w", err)
	}

	if overridePath == "" {
		return &c, nil
	}

	data, err := os.ReadFile(overridePath)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", overridePath, err)
	}

	var override Content
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parse content %s: %w", overridePath, err)
	}

	if len(override.FAQ) > 0 {
		c.FAQ = override.FAQ
	}
	if len(override.Clients) > 0 {
		c.Clients = override.Clients
	}
	if len(override.Tools.DNSLeakSites) > 0 {
		c.Tools.DNSLeakSites = override.Tools.DNSLeakSites
	}
	if len(override.Tools.IPSites) > 0 {
		c.Tools.IPSites = override.Tools.IPSites
	}

	return &c, nil
}

// FAQAt returns the FAQ entry at index i.
func (c *Content) FAQAt(i int) (FAQItem, bool) {
	if i < 0 || i >= len(c.FAQ) {
		return FAQItem{}, false
	}
	return c.FAQ[i], true
}
