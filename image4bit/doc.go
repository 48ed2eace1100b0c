// Package image4bit provides the 4-bit greyscale image that backs the packed
// OLED encoder (SSD1327, SSD1322).
//
// Those controllers store 16 grey levels, two pixels per byte:
//
//	Pixels: 0  1  2  3
//	Values: 5  10 3  12
//	Bytes:  0x5A     0x3C
//
// HorizontalNibble keeps exactly that layout, so a row of the image is a row
// of panel RAM and can be written to the controller unchanged. It implements
// draw.Image, which lets the standard image/draw and golang.org/x/image/font
// packages render straight into the framebuffer:
//
//	img := image4bit.NewHorizontalNibble(image.Rect(0, 0, 128, 96))
//	img.SetGray4(10, 20, image4bit.Gray4{Y: 8})
//	draw.Draw(img, image.Rect(0, 0, 8, 8), image.NewUniform(image4bit.Gray4{Y: 15}), image.Point{}, draw.Src)
package image4bit
