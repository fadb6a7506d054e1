package process

import "testing"

// Real termination is covered by the browser integration tests; a unit test
// cannot kill a live process group safely.

func TestKillTree_IgnoresNonPositivePID(t *testing.T) {
	t.Parallel()

	KillTree(0)
	KillTree(-1)
}

func TestKillTree_UnknownPID(t *testing.T) {
	t.Parallel()

	KillTree(999999999)
}
