package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFirewallFlags() {
	fwEnable = false
	fwDisable = false
	fwStatus = false
}

func TestFirewallCommand_RequiresExactlyOneOperation(t *testing.T) {
	t.Cleanup(resetFirewallFlags)

	_, err := executeCommand(rootCmd, "firewall")
	assert.ErrorContains(t, err, "exactly one")

	resetFirewallFlags()
	_, err = executeCommand(rootCmd, "firewall", "--enable", "--disable")
	assert.ErrorContains(t, err, "exactly one")
}

func TestFirewallCommand_Status(t *testing.T) {
	t.Cleanup(resetFirewallFlags)

	r := &fakeRunner{outputs: map[string]string{
		"/usr/libexec/ApplicationFirewall/socketfilterfw --getglobalstate": "Firewall is enabled. (State = 1)\n",
	}}
	swapRunner(t, r)

	out, err := executeCommand(rootCmd, "firewall", "--status")
	require.NoError(t, err)
	assert.Contains(t, out, "Firewall is enabled")
}

func TestNetworkCommand_PrintsServices(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"networksetup -listallnetworkservices": "An asterisk (*) denotes that a network service is disabled.\nWi-Fi\n",
	}}
	swapRunner(t, r)

	out, err := executeCommand(rootCmd, "network")
	require.NoError(t, err)
	assert.Contains(t, out, "Wi-Fi")
	assert.NotContains(t, out, "asterisk")
}
