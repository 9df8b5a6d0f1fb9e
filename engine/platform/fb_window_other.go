//go:build !linux

package platform

import (
	"errors"

	"github.com/hubastard/pointpixel/engine/core"
	"github.com/hubastard/pointpixel/engine/gfx/soft"
)

var errNoFramebuffer = errors.New("framebuffer backend requires linux")

// FBWindow is only available on linux.
type FBWindow struct{ core.Window }

func NewFBWindow(core.WindowConfig, string) (*FBWindow, error) { return nil, errNoFramebuffer }

func (f *FBWindow) attach(*soft.Canvas) {}
