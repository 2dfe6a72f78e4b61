package source

import (
	"net/url"
	"strings"

	"github.com/veridex/veridex/internal/model"
)

// Tier classifies how authoritative a source domain is. It annotates URL
// verdicts for context and never feeds into the classification itself.
type Tier string

const (
	TierPrimary   Tier = "primary"   // wire agencies, official bodies, .gov/.edu
	TierSecondary Tier = "secondary" // established news outlets
	TierTertiary  Tier = "tertiary"  // everything else
)

// Classifier classifies source URLs into authority tiers
type Classifier struct {
	config       *model.AuthorityConfig
	primaryMap   map[string]bool
	secondaryMap map[string]bool
}

// NewClassifier creates a new authority classifier
func NewClassifier(config *model.AuthorityConfig) *Classifier {
	if config == nil {
		config = &model.DefaultConfig().Authority
	}

	c := &Classifier{
		config:       config,
		primaryMap:   make(map[string]bool),
		secondaryMap: make(map[string]bool),
	}

	for _, domain := range config.PrimaryDomains {
		c.primaryMap[domain] = true
	}
	for _, domain := range config.SecondaryDomains {
		c.secondaryMap[domain] = true
	}

	return c
}

// Classify classifies a URL into an authority tier
func (c *Classifier) Classify(rawURL string) Tier {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return TierTertiary
	}

	host := parsed.Host
	if idx := strings.Index(host, ":"); idx > 0 {
		host = host[:idx]
	}
	host = strings.TrimPrefix(host, "www.")

	// Explicit overrides from config win
	if c.config.DomainMap != nil {
		if tierStr, ok := c.config.DomainMap[host]; ok {
			return parseTierString(tierStr)
		}
	}

	if matchesDomain(c.primaryMap, host) {
		return TierPrimary
	}
	if matchesDomain(c.secondaryMap, host) {
		return TierSecondary
	}

	// Government and academic TLDs are authoritative by convention
	if strings.HasSuffix(host, ".gov") || strings.HasSuffix(host, ".edu") || strings.HasSuffix(host, ".ac.uk") {
		return TierPrimary
	}

	return TierTertiary
}

// matchesDomain reports whether host equals or is a subdomain of any
// domain in the map (foo.reuters.com matches reuters.com)
func matchesDomain(domains map[string]bool, host string) bool {
	if domains[host] {
		return true
	}
	for domain := range domains {
		if strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

func parseTierString(tier string) Tier {
	switch strings.ToLower(tier) {
	case "primary", "1":
		return TierPrimary
	case "secondary", "2":
		return TierSecondary
	default:
		return TierTertiary
	}
}
