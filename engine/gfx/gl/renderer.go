package glbackend

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/rs/zerolog"

	"github.com/hubastard/playground/engine/assets"
	"github.com/hubastard/playground/engine/core"
	"github.com/hubastard/playground/engine/geom"
	"github.com/hubastard/playground/engine/scene"
)

var ErrForeignTexture = errors.New("glbackend: texture not created by this renderer")

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	DrawCalls    int
	LiveTextures int
}

// Texture is a GL texture name with its size.
type Texture struct {
	id            uint32
	width, height int
}

func (t *Texture) Size() (int, int) { return t.width, t.height }

// QuadRenderer draws one textured quad per call with a single shared program.
type QuadRenderer struct {
	log     zerolog.Logger
	program uint32
	vao     uint32
	vbo     uint32 // per-call vertex positions
	tbo     uint32 // static texture coordinates
	camera  *scene.Camera

	uModelView   int32
	uPerspective int32
	uAlpha       int32
	uTex         int32

	stats Statistics
}

func NewQuadRenderer(win core.Window, _ core.Config, log zerolog.Logger) (*QuadRenderer, error) {
	r := &QuadRenderer{log: log}
	w, h := win.Size()
	r.camera = scene.NewCamera(float32(w), float32(h))
	if err := r.Init(); err != nil {
		r.Shutdown()
		return nil, err
	}
	return r, nil
}

func (r *QuadRenderer) Init() error {
	vertSrc, err := assets.LoadShader("quad.vert")
	if err != nil {
		return err
	}
	fragSrc, err := assets.LoadShader("quad.frag")
	if err != nil {
		return err
	}
	r.program, err = makeProgram(vertSrc, fragSrc)
	if err != nil {
		return err
	}
	gl.UseProgram(r.program)
	r.uModelView = gl.GetUniformLocation(r.program, gl.Str("modelView\x00"))
	r.uPerspective = gl.GetUniformLocation(r.program, gl.Str("perspective\x00"))
	r.uAlpha = gl.GetUniformLocation(r.program, gl.Str("alpha\x00"))
	r.uTex = gl.GetUniformLocation(r.program, gl.Str("tex\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	// layout(location = 0) in vec3 vertex;
	var verts [18]float32
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(&verts[0]), gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 0, 0)

	// layout(location = 1) in vec2 textureCoord;
	tex := scene.QuadTexCoords
	gl.GenBuffers(1, &r.tbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.tbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(tex)*4, gl.Ptr(&tex[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 0, 0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	gl.Disable(gl.DEPTH_TEST)

	proj := r.camera.Projection()
	gl.UniformMatrix4fv(r.uPerspective, 1, false, &proj[0])
	gl.Uniform1i(r.uTex, 0)

	r.log.Info().Str("gl", gl.GoStr(gl.GetString(gl.VERSION))).Msg("quad renderer ready")
	return nil
}

func (r *QuadRenderer) Shutdown() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.tbo != 0 {
		gl.DeleteBuffers(1, &r.tbo)
		r.tbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
	if r.stats.LiveTextures != 0 {
		r.log.Warn().Int("textures", r.stats.LiveTextures).Msg("textures still alive at shutdown")
	}
}

func (r *QuadRenderer) Resize(w, h int, ratio float32) {
	gl.Viewport(0, 0, int32(float32(w)*ratio), int32(float32(h)*ratio))
	r.camera.SetViewport(float32(w), float32(h))
	proj := r.camera.Projection()
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uPerspective, 1, false, &proj[0])
}

// Clear starts a frame: it resets the per-frame draw count.
func (r *QuadRenderer) Clear(rf, gf, bf, af float32) {
	r.stats.DrawCalls = 0
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Stats returns the current frame statistics snapshot.
func (r *QuadRenderer) Stats() Statistics { return r.stats }

func (r *QuadRenderer) RenderQuad(tex core.Texture, b geom.Bounds, opts ...core.QuadOption) {
	t, ok := tex.(*Texture)
	if !ok || t == nil {
		r.log.Error().Err(ErrForeignTexture).Msg("render quad")
		return
	}
	o := core.ResolveQuadOptions(opts...)
	modelView := scene.ModelView(b, o)
	verts := scene.QuadCoords(b.Width, b.Height)

	gl.UseProgram(r.program)
	gl.Uniform1f(r.uAlpha, o.Alpha)
	gl.UniformMatrix4fv(r.uModelView, 1, false, &modelView[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.id)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(&verts[0]))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)/3))
	gl.BindVertexArray(0)

	r.stats.DrawCalls++
}

// CreateFlatTexture makes a 1x1 texture of a single colour.
func (r *QuadRenderer) CreateFlatTexture(c color.NRGBA) (core.Texture, error) {
	pix := []byte{c.R, c.G, c.B, c.A}
	return r.upload(1, 1, pix, gl.LINEAR)
}

// InitializeTexture uploads img with nearest filtering.
func (r *QuadRenderer) InitializeTexture(img image.Image) (core.Texture, error) {
	w, h, pix := assets.Pixels(img)
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("initialize texture: empty image %dx%d", w, h)
	}
	return r.upload(w, h, pix, gl.NEAREST)
}

func (r *QuadRenderer) upload(w, h int, pix []byte, filter int32) (*Texture, error) {
	var id uint32
	gl.GenTextures(1, &id)
	if id == 0 {
		return nil, fmt.Errorf("create texture %dx%d: no texture name", w, h)
	}
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteTextures(1, &id)
		return nil, fmt.Errorf("create texture %dx%d: gl error 0x%x", w, h, code)
	}
	r.stats.LiveTextures++
	return &Texture{id: id, width: w, height: h}, nil
}

func (r *QuadRenderer) DeleteTexture(tex core.Texture) {
	t, ok := tex.(*Texture)
	if !ok || t == nil || t.id == 0 {
		return
	}
	gl.DeleteTextures(1, &t.id)
	t.id = 0
	r.stats.LiveTextures--
}

// --- Shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen)+1)
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", strings.TrimRight(log, "\x00"))
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen)+1)
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}
