//go:build windows

package splash

import (
	"fyne.io/fyne/v2/driver"
	"golang.org/x/sys/windows"
)

const (
	gwlExStyle  = -20
	wsExLayered = 0x00080000
	lwaAlpha    = 0x2
)

var (
	user32                         = windows.NewLazySystemDLL("user32.dll")
	procGetWindowLongPtrW          = user32.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW          = user32.NewProc("SetWindowLongPtrW")
	procSetLayeredWindowAttributes = user32.NewProc("SetLayeredWindowAttributes")
)

// nativeWindow caches the splash HWND so every fade step is a single user32 call.
type nativeWindow struct {
	hwnd    uintptr
	layered bool
}

// applyNativeOpacity sets the alpha of the whole splash window, logo and text included.
func (splash *Window) applyNativeOpacity(alpha uint8) {
	hwnd := splash.nativeHandle()
	if hwnd == 0 {
		return
	}
	if !splash.native.layered {
		style, _, _ := procGetWindowLongPtrW.Call(hwnd, exStyleIndex())
		if style&wsExLayered == 0 {
			procSetWindowLongPtrW.Call(hwnd, exStyleIndex(), style|wsExLayered)
		}
		splash.native.layered = true
	}
	procSetLayeredWindowAttributes.Call(hwnd, 0, uintptr(alpha), lwaAlpha)
}

func (splash *Window) nativeHandle() uintptr {
	if splash.native.hwnd != 0 {
		return splash.native.hwnd
	}
	window, ok := splash.window.(driver.NativeWindow)
	if !ok {
		return 0
	}
	window.RunNative(func(context any) {
		switch value := context.(type) {
		case driver.WindowsWindowContext:
			splash.native.hwnd = value.HWND
		case *driver.WindowsWindowContext:
			splash.native.hwnd = value.HWND
		}
	})
	return splash.native.hwnd
}

func exStyleIndex() uintptr {
	index := int32(gwlExStyle)
	return uintptr(uint32(index))
}
