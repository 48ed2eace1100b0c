package oledgfx

import (
	"github.com/flavioheleno/oledgfx/oled"
)

// Bind attaches handle to dev as an operation set of type typ.
//
// TypeOLED requires a non-nil oled.Operations. On an unknown type or a
// mismatched handle dev is left unchanged, a warning is logged and Bind
// reports false. The immediate flag is never touched.
func Bind(dev *Device, typ DeviceType, handle any) bool {
	switch typ {
	case TypeOLED:
		ops, ok := handle.(oled.Operations)
		if !ok || ops == nil {
			oled.Logger().Warn("oledgfx: bind rejected handle", "type", typ.String())
			return false
		}
		dev.ops = ops
		dev.typ = typ
		return true
	}
	oled.Logger().Warn("oledgfx: bind with unknown device type", "type", typ.String())
	return false
}
