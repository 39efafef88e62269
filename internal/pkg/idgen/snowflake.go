package idgen

import (
	"github.com/bwmarrin/snowflake"
)

// OrderRefGenerator issues time-ordered, node-unique references for payment orders
type OrderRefGenerator interface {
	Next() string
}

type SnowflakeGenerator struct {
	node *snowflake.Node
}

func NewSnowflakeGenerator(nodeID int64) (*SnowflakeGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}
	return &SnowflakeGenerator{node: node}, nil
}

func (g *SnowflakeGenerator) Next() string {
	return g.node.Generate().String()
}
