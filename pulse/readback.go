//go:build !js

package pulse

import (
	"image"

	"github.com/cockroachdb/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// rows of a texture copy must start at multiples of this many bytes
const copyBytesPerRowAlignment = 256

// ReadPixels copies the texture into a mapped buffer and waits for the
// queue to finish all submitted work, including the copy. Only 4 byte per
// pixel rgba and bgra formats are supported.
func (t *Texture) ReadPixels(ctx *Context) (*image.RGBA, error) {
	bgra, err := isBGRA(t.format)
	if err != nil {
		return nil, err
	}

	bytesPerRow := alignTo(t.width*4, copyBytesPerRowAlignment)
	size := uint64(bytesPerRow) * uint64(t.height)

	buffer, err := ctx.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "ReadPixels",
		Usage: wgpu.BufferUsageCopyDst | wgpu.BufferUsageMapRead,
		Size:  size,
	})
	if err != nil {
		return nil, wrapf(ErrSubmissionFailed, err, "create read back buffer")
	}

	defer buffer.Release()

	enc, err := ctx.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "ReadPixels"})
	if err != nil {
		return nil, wrapf(ErrSubmissionFailed, err, "create command encoder")
	}

	defer enc.Release()

	enc.CopyTextureToBuffer(
		&wgpu.ImageCopyTexture{
			Texture: t.texture,
			Aspect:  wgpu.TextureAspectAll,
		},
		&wgpu.ImageCopyBuffer{
			Buffer: buffer,
			Layout: wgpu.TextureDataLayout{
				BytesPerRow:  bytesPerRow,
				RowsPerImage: t.height,
			},
		},
		&wgpu.Extent3D{
			Width:              t.width,
			Height:             t.height,
			DepthOrArrayLayers: 1,
		},
	)

	buf, err := enc.Finish(&wgpu.CommandBufferDescriptor{Label: "ReadPixels"})
	if err != nil {
		return nil, wrapf(ErrSubmissionFailed, err, "finish read back")
	}

	defer buf.Release()

	ctx.Submit(buf)

	var mapped bool
	var status wgpu.BufferMapAsyncStatus

	err = buffer.MapAsync(wgpu.MapModeRead, 0, size, func(s wgpu.BufferMapAsyncStatus) {
		mapped = true
		status = s
	})
	if err != nil {
		return nil, wrapf(ErrSubmissionFailed, err, "map read back buffer")
	}

	// blocks until the queue is empty, the map callback fires during the poll
	ctx.Device.Poll(true, nil)

	if !mapped || status != wgpu.BufferMapAsyncStatusSuccess {
		return nil, newf(ErrSubmissionFailed, "map read back buffer: status %v", status)
	}

	defer buffer.Unmap()

	data := buffer.GetMappedRange(0, uint(size))

	return unpadPixels(data, t.width, t.height, bytesPerRow, bgra), nil
}

func isBGRA(format wgpu.TextureFormat) (bool, error) {
	switch format {
	case wgpu.TextureFormatRGBA8Unorm, wgpu.TextureFormatRGBA8UnormSrgb:
		return false, nil
	case wgpu.TextureFormatBGRA8Unorm, wgpu.TextureFormatBGRA8UnormSrgb:
		return true, nil
	default:
		return false, errors.Newf("read pixels: unsupported format %v", format)
	}
}

func alignTo(value, alignment uint32) uint32 {
	return (value + alignment - 1) / alignment * alignment
}

// unpadPixels copies rows of bytesPerRow bytes into a tightly packed
// image, swapping red and blue if the source is bgra.
func unpadPixels(data []byte, width, height, bytesPerRow uint32, bgra bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))

	for y := range int(height) {
		src := data[y*int(bytesPerRow):][:width*4]
		dst := img.Pix[y*img.Stride:][:width*4]
		copy(dst, src)

		if bgra {
			for x := 0; x < len(dst); x += 4 {
				dst[x], dst[x+2] = dst[x+2], dst[x]
			}
		}
	}

	return img
}
