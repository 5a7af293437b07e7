package pairing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeviceGateCheck(t *testing.T) {
	gate := DeviceGate{ExpectedDigest: DigestOf("MAC_BOOK_PRO_SECURE_ID_9928374")}

	t.Run("authorized key", func(t *testing.T) {
		assert.Equal(t, GateAuthorized, gate.Check("MAC_BOOK_PRO_SECURE_ID_9928374"))
	})

	t.Run("wrong key", func(t *testing.T) {
		assert.Equal(t, GateDenied, gate.Check("SOME_OTHER_MACHINE"))
	})

	t.Run("empty marker", func(t *testing.T) {
		assert.Equal(t, GateDenied, gate.Check(""))
	})

	t.Run("deterministic across evaluations", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			assert.Equal(t, GateAuthorized, gate.Check("MAC_BOOK_PRO_SECURE_ID_9928374"))
			assert.Equal(t, GateDenied, gate.Check("mac_book_pro_secure_id_9928374"))
		}
	})
}

func TestDigestOf(t *testing.T) {
	// Digest pinned so a config change to the expected value is caught.
	assert.Equal(t,
		"44230255bc9ed1c098bb4c8de653fc8d598e550151f2ba8d61dec6e1f672c6b2",
		DigestOf("MAC_BOOK_PRO_SECURE_ID_9928374"))
}
