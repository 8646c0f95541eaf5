package lyrics

import (
	"fmt"

	"github.com/Conceptual-Machines/lounge-api/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// Picks per lyric sheet
const (
	versePicks  = 2
	chorusPicks = 2
	bridgePicks = 1
)

// Pools are the fixed line pools lyrics are drawn from
type Pools struct {
	TitleLeadIns []string `yaml:"title_lead_ins"`
	Verses       []string `yaml:"verses"`
	Choruses     []string `yaml:"choruses"`
	Bridges      []string `yaml:"bridges"`
}

// LoadPools parses a pool file and checks each pool can cover its picks
func LoadPools(data []byte) (*Pools, error) {
	var pools Pools
	if err := yaml.Unmarshal(data, &pools); err != nil {
		return nil, fmt.Errorf("failed to parse lyric pools: %w", err)
	}
	if err := pools.Validate(); err != nil {
		return nil, err
	}
	return &pools, nil
}

// DefaultPools loads the embedded lounge pools
func DefaultPools() (*Pools, error) {
	return LoadPools(embedded.LyricPoolsYAML)
}

// Validate reports a pool too small for the number of lines drawn from it
func (p *Pools) Validate() error {
	checks := []struct {
		name string
		pool []string
		need int
	}{
		{"title_lead_ins", p.TitleLeadIns, 1},
		{"verses", p.Verses, versePicks},
		{"choruses", p.Choruses, chorusPicks},
		{"bridges", p.Bridges, bridgePicks},
	}
	for _, c := range checks {
		if len(c.pool) < c.need {
			return fmt.Errorf("%w: %s has %d lines, need %d", ErrPoolExhausted, c.name, len(c.pool), c.need)
		}
	}
	return nil
}
