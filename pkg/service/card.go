package service

import (
	"github.com/spf13/viper"
	"github.com/theapemachine/diagen/pkg/a2a"
)

/*
NewAgentCard builds the capability discovery document from configuration.
Streaming and push notifications are deliberately off: the protocol here is
poll-based, while state transition history is always kept.
*/
func NewAgentCard(url string) a2a.AgentCard {
	name := viper.GetString("agent.name")
	if name == "" {
		name = "Diagen"
	}

	description := viper.GetString("agent.description")
	if description == "" {
		description = "Generates draw.io diagrams from natural-language prompts"
	}

	version := viper.GetString("agent.version")
	if version == "" {
		version = "0.1.0"
	}

	skillDescription := "Turn a natural-language description into a draw.io diagram"

	return a2a.AgentCard{
		Name:        name,
		Description: &description,
		URL:         url,
		Version:     version,
		Capabilities: a2a.AgentCapabilities{
			Streaming:              false,
			PushNotifications:      false,
			StateTransitionHistory: true,
		},
		DefaultInputModes:  []string{"text/plain"},
		DefaultOutputModes: []string{"text/plain", "application/xml"},
		Skills: []a2a.AgentSkill{{
			ID:          "generate-diagram",
			Name:        "Generate Diagram",
			Description: &skillDescription,
			Tags:        []string{"diagram", "drawio", "xml"},
			Examples:    []string{"draw a login flow", "sketch a three-tier web architecture"},
			InputModes:  []string{"text/plain"},
			OutputModes: []string{"application/xml"},
		}},
	}
}
