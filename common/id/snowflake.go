package id

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init initializes the Snowflake node with the given node ID.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New generates a new globally unique int64 ID using the Snowflake algorithm.
// IDs are time-ordered and unique across distributed instances.
func New() int64 {
	return node.Generate().Int64()
}

// System returns an id for a system-generated message record.
func System() string {
	return fmt.Sprintf("sys-%d", New())
}

// Inbound returns an id for a message record received from the channel.
// Outbound records don't need one: they carry the channel-assigned SID.
func Inbound() string {
	return fmt.Sprintf("in-%d", New())
}
