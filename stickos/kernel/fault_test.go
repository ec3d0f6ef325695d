package kernel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureFaultFromError(t *testing.T) {
	info := CaptureFault(errors.New("division by zero"))

	assert.Equal(t, "*errors.errorString", info.Kind)
	assert.Equal(t, "division by zero", info.Message)
	assert.Equal(t, "*errors.errorString: division by zero", info.String())
}

func TestCaptureFaultFromRecoveredPanic(t *testing.T) {
	var info FaultInfo
	func() {
		defer func() {
			info = CaptureFault(recover())
		}()
		var m map[string]int
		m["boom"] = 1
	}()

	assert.Contains(t, info.Message, "nil map")
	assert.NotEmpty(t, info.Kind)
	require.NotEmpty(t, info.Stack)
	assert.Contains(t, string(info.Stack), "TestCaptureFaultFromRecoveredPanic")
}

func TestCaptureFaultFromString(t *testing.T) {
	info := CaptureFault("bad state")
	assert.Equal(t, "string", info.Kind)
	assert.Equal(t, "bad state", info.Message)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "pressed", Pressed.String())
	assert.Equal(t, "released", Released.String())
	assert.Equal(t, "reboot", BackReboot.String())
	assert.Equal(t, "handled", BackHandled.String())
	assert.Equal(t, "unhandled", BackUnhandled.String())
}
