package embedded

import (
	_ "embed"
)

// LyricPoolsYAML holds the title, verse, chorus and bridge line pools
//
//go:embed data/lyric_pools.yaml
var LyricPoolsYAML []byte
