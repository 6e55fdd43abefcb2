//go:build !windows

package splash

type nativeWindow struct{}

// Only the canvas background fades outside Windows.
func (splash *Window) applyNativeOpacity(uint8) {}
