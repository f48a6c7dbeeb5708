// Package shader carries the WGSL rendition of the field ground compositor
// together with the buffer packing and bind group layout a GPU host needs to
// drive it.
//
// The CPU kernel in package fieldground is the reference; the shader mirrors
// it pixel for pixel within float32 precision. Unlike the CPU kernel the GPU
// buffers have fixed capacity: MaxConnections and MaxPreviews.
package shader

import (
	_ "embed"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"

	"github.com/gogpu/fieldground"
)

//go:embed shaders/field_ground.wgsl
var fieldGroundShaderSource string

// Buffer capacities compiled into the shader.
const (
	MaxConnections = 64
	MaxPreviews    = 128
)

// Byte sizes of the uniform blocks.
const (
	ParamsSize      = 128
	connectionSize  = 32
	previewSize     = 16
	ConnectionsSize = MaxConnections * connectionSize
	PreviewsSize    = MaxPreviews * previewSize
)

// Bind group 0 slots.
const (
	BindingParams = iota
	BindingConnections
	BindingPreviews
	BindingAtlasTexture
	BindingAtlasSampler
	BindingTileIndexTexture
	BindingTileIndexSampler
)

// Entry points.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// TextureFormat is the format of the atlas, the tile index map and the
// render target.
const TextureFormat = gputypes.TextureFormatRGBA8Unorm

// ErrBufferCapacity is returned when a frame holds more entries than the
// shader buffers can carry.
var ErrBufferCapacity = errors.New("shader: buffer capacity exceeded")

// Source returns the WGSL source.
func Source() string {
	return fieldGroundShaderSource
}

// Compile translates the WGSL source to SPIR-V words.
func Compile() ([]uint32, error) {
	spirv, err := naga.Compile(fieldGroundShaderSource)
	if err != nil {
		return nil, fmt.Errorf("compile field ground shader: %w", err)
	}
	if len(spirv)%4 != 0 {
		return nil, fmt.Errorf("compile field ground shader: SPIR-V length %d is not word aligned", len(spirv))
	}
	words := make([]uint32, len(spirv)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirv[i*4:])
	}
	return words, nil
}

// BindGroupLayout returns the layout entries of bind group 0.
func BindGroupLayout() []gputypes.BindGroupLayoutEntry {
	uniform := func(binding uint32) gputypes.BindGroupLayoutEntry {
		return gputypes.BindGroupLayoutEntry{
			Binding:    binding,
			Visibility: gputypes.ShaderStageFragment,
			Buffer: &gputypes.BufferBindingLayout{
				Type: gputypes.BufferBindingTypeUniform,
			},
		}
	}
	texture := func(binding uint32) gputypes.BindGroupLayoutEntry {
		return gputypes.BindGroupLayoutEntry{
			Binding:    binding,
			Visibility: gputypes.ShaderStageFragment,
			Texture: &gputypes.TextureBindingLayout{
				SampleType:    gputypes.TextureSampleTypeFloat,
				ViewDimension: gputypes.TextureViewDimension2D,
			},
		}
	}
	sampler := func(binding uint32) gputypes.BindGroupLayoutEntry {
		return gputypes.BindGroupLayoutEntry{
			Binding:    binding,
			Visibility: gputypes.ShaderStageFragment,
			Sampler: &gputypes.SamplerBindingLayout{
				Type: gputypes.SamplerBindingTypeFiltering,
			},
		}
	}
	return []gputypes.BindGroupLayoutEntry{
		uniform(BindingParams),
		uniform(BindingConnections),
		uniform(BindingPreviews),
		texture(BindingAtlasTexture),
		sampler(BindingAtlasSampler),
		texture(BindingTileIndexTexture),
		sampler(BindingTileIndexSampler),
	}
}

// FilterMode maps a texture filter to the sampler filter mode. The tile
// index sampler must always be nearest.
func FilterMode(f fieldground.Filter) gputypes.FilterMode {
	if f == fieldground.FilterLinear {
		return gputypes.FilterModeLinear
	}
	return gputypes.FilterModeNearest
}

// Buffers holds the packed uniform data of one frame.
type Buffers struct {
	Params      []byte
	Connections []byte
	Previews    []byte
}

// Pack encodes the active part of f into uniform buffers. The frame must
// validate, and its active buffers must fit the shader capacities.
func Pack(f *fieldground.Frame) (Buffers, error) {
	if err := f.Validate(); err != nil {
		return Buffers{}, err
	}
	conns := f.ActiveConnections()
	previews := f.ActivePreviews()
	if len(conns) > MaxConnections {
		return Buffers{}, fmt.Errorf("%w: %d connections, max %d", ErrBufferCapacity, len(conns), MaxConnections)
	}
	if len(previews) > MaxPreviews {
		return Buffers{}, fmt.Errorf("%w: %d previews, max %d", ErrBufferCapacity, len(previews), MaxPreviews)
	}
	return Buffers{
		Params:      PackParams(&f.Params, len(conns), len(previews)),
		Connections: PackConnections(conns),
		Previews:    PackPreviews(previews),
	}, nil
}

// PackParams encodes the frame parameters with the given active counts.
//
// Layout (std140-compatible):
//
//	0   time, pulse_speed, glow_intensity, line_width  f32 x4
//	16  grid_size                                      vec2<f32>
//	24  connection_count, preview_count                u32 x2
//	32  color_low, color_high                          vec4<f32> x2
//	64  candidate, connected, dangling, existing       vec4<f32> x4
func PackParams(p *fieldground.FieldParameters, connections, previews int) []byte {
	buf := make([]byte, ParamsSize)
	putF32(buf[0:], p.Time)
	putF32(buf[4:], p.PulseSpeed)
	putF32(buf[8:], p.GlowIntensity)
	putF32(buf[12:], p.LineWidth)
	putF32(buf[16:], p.GridColumns)
	putF32(buf[20:], p.GridRows)
	binary.LittleEndian.PutUint32(buf[24:28], uint32(connections))
	binary.LittleEndian.PutUint32(buf[28:32], uint32(previews))
	putColor(buf[32:], p.ColorLow)
	putColor(buf[48:], p.ColorHigh)
	putColor(buf[64:], p.Palette.Candidate)
	putColor(buf[80:], p.Palette.Connected)
	putColor(buf[96:], p.Palette.Dangling)
	putColor(buf[112:], p.Palette.ExistingTarget)
	return buf
}

// PackConnections encodes up to MaxConnections entries into a full-size
// buffer. Unused slots are zero, which the shader treats as invalid.
func PackConnections(conns []fieldground.Connection) []byte {
	buf := make([]byte, ConnectionsSize)
	for i, c := range conns[:min(len(conns), MaxConnections)] {
		off := buf[i*connectionSize:]
		putF32(off[0:], c.Start.X)
		putF32(off[4:], c.Start.Y)
		putF32(off[8:], c.End.X)
		putF32(off[12:], c.End.Y)
		putF32(off[16:], c.Strength)
		putF32(off[20:], c.Distance)
	}
	return buf
}

// PackPreviews encodes up to MaxPreviews entries into a full-size buffer.
// The kind is written as its enum value; out-of-range kinds become 0.
func PackPreviews(previews []fieldground.PreviewHighlight) []byte {
	buf := make([]byte, PreviewsSize)
	for i, p := range previews[:min(len(previews), MaxPreviews)] {
		off := buf[i*previewSize:]
		putF32(off[0:], p.Position.X)
		putF32(off[4:], p.Position.Y)
		var kind uint32
		if p.Kind >= fieldground.HighlightCandidate && p.Kind <= fieldground.HighlightExistingTarget {
			kind = uint32(p.Kind)
		}
		binary.LittleEndian.PutUint32(off[8:12], kind)
	}
	return buf
}

func putF32(b []byte, v float64) {
	binary.LittleEndian.PutUint32(b[0:4], math.Float32bits(float32(v)))
}

func putColor(b []byte, c fieldground.RGBA) {
	putF32(b[0:], c.R)
	putF32(b[4:], c.G)
	putF32(b[8:], c.B)
	putF32(b[12:], c.A)
}
