package idutil

import (
	"github.com/bwmarrin/snowflake"
)

// Generator hands out time-ordered int64 ids for ledger rows. Ordering by id
// matches ordering by creation time, which the transaction history relies on.
type Generator struct {
	node *snowflake.Node
}

func NewGenerator(nodeID int64) (*Generator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}

	return &Generator{node: node}, nil
}

func (g *Generator) Generate() int64 {
	return g.node.Generate().Int64()
}
