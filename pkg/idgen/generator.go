// Package idgen issues request ids.
package idgen

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

type Generator interface {
	NewID() string
}

// SnowflakeGenerator hands out time-ordered 64-bit ids rendered in base 36.
type SnowflakeGenerator struct {
	node *snowflake.Node
}

// NewSnowflakeGenerator builds a generator for one server instance. nodeID
// must be unique per instance (0-1023).
func NewSnowflakeGenerator(nodeID int64) (*SnowflakeGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node: %w", err)
	}
	return &SnowflakeGenerator{node: node}, nil
}

func (g *SnowflakeGenerator) NewID() string {
	return g.node.Generate().Base36()
}
