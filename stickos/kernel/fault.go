package kernel

import "fmt"

// FaultInfo describes a failure that escaped the event loop.
type FaultInfo struct {
	Kind    string
	Message string
	// Stack is nil where the runtime cannot capture it.
	Stack []byte
}

// CaptureFault describes v, a returned error or a recovered panic value, along with the current stack.
//
// Call it from the deferred function that recovered, so the stack still shows the panic site.
func CaptureFault(v any) FaultInfo {
	info := FaultInfo{Kind: fmt.Sprintf("%T", v), Stack: captureStack()}
	switch x := v.(type) {
	case error:
		info.Message = x.Error()
	case string:
		info.Message = x
	default:
		info.Message = fmt.Sprint(v)
	}
	return info
}

func (f FaultInfo) String() string {
	return f.Kind + ": " + f.Message
}
