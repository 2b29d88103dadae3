package msdfgen

// Bitmap is the generator's output collaborator, per spec.md §6: a
// two-dimensional array of N channels with known width and height. The
// generator only ever calls operations of this interface, so any storage
// strategy — owned, a non-owning reference into a larger image, or a
// strided section with a negative row stride for a Y-flipped view — can
// implement it.
type Bitmap interface {
	Width() int
	Height() int
	ChannelCount() int
	// Data returns the contiguous row-major pixel buffer: channel values
	// for (0,0), then (1,0), and so on.
	Data() []float64
	SetPixel(x, y int, values []float64)
	GetPixel(x, y int) []float64
}

// FloatBitmap is the concrete Bitmap implementation generalizing the
// teacher's byte-per-channel MSDF texture to N float64 channels, per
// spec.md §4/§6. It owns its storage and lays pixels out row-major with a
// configurable row stride, so a negative stride plus an offset into a
// larger buffer can represent a Y-flipped view without copying.
type FloatBitmap struct {
	data     []float64
	width    int
	height   int
	channels int
	// stride is the number of float64 elements between the start of one
	// row and the start of the next. It defaults to width*channels, but
	// may be negative to iterate rows in reverse (Y-flip) or larger than
	// width*channels to describe a sub-rectangle of a bigger buffer.
	stride int
	// base is the element offset of pixel (0, 0) within data, used
	// together with a negative stride.
	base int
}

// NewFloatBitmap allocates a new, zero-filled bitmap of width x height
// pixels with channels channels per pixel (N ∈ {1, 3, 4} per spec.md §6).
func NewFloatBitmap(width, height, channels int) *FloatBitmap {
	return &FloatBitmap{
		data:     make([]float64, width*height*channels),
		width:    width,
		height:   height,
		channels: channels,
		stride:   width * channels,
		base:     0,
	}
}

// NewFloatBitmapView wraps an existing buffer as a bitmap without
// copying, allowing a negative stride and a nonzero base offset to
// describe a Y-flipped or otherwise strided section, per spec.md §6.
func NewFloatBitmapView(data []float64, width, height, channels, stride, base int) *FloatBitmap {
	return &FloatBitmap{data: data, width: width, height: height, channels: channels, stride: stride, base: base}
}

func (b *FloatBitmap) Width() int        { return b.width }
func (b *FloatBitmap) Height() int       { return b.height }
func (b *FloatBitmap) ChannelCount() int { return b.channels }
func (b *FloatBitmap) Data() []float64   { return b.data }

func (b *FloatBitmap) offset(x, y int) int {
	return b.base + y*b.stride + x*b.channels
}

// SetPixel writes values (one per channel) to pixel (x, y).
func (b *FloatBitmap) SetPixel(x, y int, values []float64) {
	off := b.offset(x, y)
	copy(b.data[off:off+b.channels], values)
}

// GetPixel returns a copy of the channel values at pixel (x, y).
func (b *FloatBitmap) GetPixel(x, y int) []float64 {
	off := b.offset(x, y)
	out := make([]float64, b.channels)
	copy(out, b.data[off:off+b.channels])
	return out
}
