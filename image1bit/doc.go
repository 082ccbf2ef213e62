// Package image1bit provides a 1-bit image format for the TM1640 LED controller.
//
// The TM1640 drives up to 16 grid columns of 8 segments each. Its display
// RAM holds one byte per column and auto-increments from address 0, so a full
// frame is simply the 16 column bytes in order.
//
// Memory layout example for a 3-column image:
//
//	         col 0  col 1  col 2
//	row 0      #      .      #
//	row 1      #      .      .
//	row 2      .      #      .
//	Bytes:   0x03   0x04   0x01
//	         (bit i of each byte = row i)
//
// This package provides:
//
// - Bit: A color type representing a lit or dark LED
// - BitModel: A color model for converting standard Go colors to Bit
// - VerticalLSB: An image.Image implementation matching the TM1640 RAM layout
//
// Example usage:
//
//	// Create a 16x8 image
//	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 16, 8))
//
//	// Light the pixel at column 3, row 2
//	img.SetBit(3, 2, image1bit.On)
//
//	// Read it back
//	println(img.BitAt(3, 2)) // Output: true
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(image1bit.On), image.Point{}, draw.Src)
package image1bit
