package registry

import "github.com/0xPolygon/swaplayer/messages"

// Config holds the custodian roles set when the registry is initialized. They are only used the
// first time the node runs, later changes go through the custodian operations.
type Config struct {
	Owner          messages.UniversalAddress `mapstructure:"Owner"`
	OwnerAssistant messages.UniversalAddress `mapstructure:"OwnerAssistant"`
	FeeUpdater     messages.UniversalAddress `mapstructure:"FeeUpdater"`
	FeeRecipient   messages.UniversalAddress `mapstructure:"FeeRecipient"`
}
