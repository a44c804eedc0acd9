package matcher

import (
	"github.com/adstack/blockboard-recon/internal/infrastructure/config"
)

// Profiles maps each client to the set of acquisition mediums that qualify
// an order for matching. Immutable after construction; built once from
// config and injected so tests can swap it.
type Profiles struct {
	allowed map[string]map[string]bool
	names   []string
}

// NewProfiles builds the profile table from client configuration.
func NewProfiles(clients []config.ClientConfig) *Profiles {
	p := &Profiles{
		allowed: make(map[string]map[string]bool, len(clients)),
		names:   make([]string, 0, len(clients)),
	}
	for _, c := range clients {
		mediums := make(map[string]bool, len(c.Mediums))
		for _, m := range c.Mediums {
			mediums[m] = true
		}
		p.allowed[c.Name] = mediums
		p.names = append(p.names, c.Name)
	}
	return p
}

// AllowedMediums returns the qualifying medium set for a client. An
// unknown client gets an empty set: the selection surface only offers
// known names, so an unrecognized one yields zero matches rather than an
// error.
func (p *Profiles) AllowedMediums(client string) map[string]bool {
	return p.allowed[client]
}

// Known reports whether the client name is configured.
func (p *Profiles) Known(client string) bool {
	_, ok := p.allowed[client]
	return ok
}

// Names returns the configured client names in declaration order.
func (p *Profiles) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}
