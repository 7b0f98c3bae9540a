package tools

import (
	"context"
	"strings"

	"github.com/josephjohncox/dotvault/internal/toolrun"
)

// Network lists the configured network services via networksetup.
type Network struct {
	Runner toolrun.Runner
}

func NewNetwork(r toolrun.Runner) *Network {
	return &Network{Runner: r}
}

func (n *Network) ListServices(ctx context.Context) ([]string, error) {
	out, err := toolrun.Output(ctx, n.Runner, "networksetup", "-listallnetworkservices")
	if err != nil {
		return nil, err
	}

	var services []string
	for i, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		// First line is the "An asterisk (*) denotes..." legend.
		if i == 0 || line == "" {
			continue
		}
		services = append(services, line)
	}
	return services, nil
}
