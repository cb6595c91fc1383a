package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"github.com/ChadNetwig/OpenGL-3DScene/core"
	"github.com/ChadNetwig/OpenGL-3DScene/math"
	"github.com/ChadNetwig/OpenGL-3DScene/scene"
)

// LightCount is the number of point light slots in the scene shader.
const LightCount = 2

// GPUMesh holds the OpenGL buffer objects for an uploaded mesh.
type GPUMesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
}

// FrameContext carries everything the shaders need for one frame: the
// camera matrices and position plus the light sources. Draw calls take it
// as an argument so no per-frame state lives on the renderer itself.
type FrameContext struct {
	View       math.Mat4
	Projection math.Mat4
	CameraPos  math.Vec3
	Lights     [LightCount]scene.Light
}

// Renderer is the OpenGL rendering backend. It owns two shader programs:
// the textured Phong scene program and a flat-color lamp program for the
// light markers.
type Renderer struct {
	program uint32

	// Vertex transform uniforms
	mvpLoc   int32
	modelLoc int32

	// Lighting uniforms, one slot per point light
	lightPosLoc   [LightCount]int32
	lightColorLoc [LightCount]int32

	// Camera uniform (for specular)
	cameraPosLoc int32

	// Material uniforms
	matDiffuseLoc   int32
	matSpecularLoc  int32
	matShininessLoc int32
	diffuseTexLoc   int32
	hasTextureLoc   int32

	// Lamp program (unlit flat color)
	lampProg     uint32
	lampMVPLoc   int32
	lampColorLoc int32

	// Render state
	wireframe bool
	viewportW int32
	viewportH int32

	gpuMeshes map[*scene.Mesh]*GPUMesh
}

// ── Shaders ───────────────────────────────────────────────────────────────────

// vertex shader: MVP transform plus world-space position and normal for the
// fragment lighting.
const vertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec2 inUV;

uniform mat4 mvp;
uniform mat4 model;

out vec3 fragPos;
out vec3 fragNormal;
out vec2 fragUV;

void main() {
    gl_Position = mvp * vec4(inPosition, 1.0);
    fragPos = vec3(model * vec4(inPosition, 1.0));
    fragNormal = mat3(transpose(inverse(model))) * inNormal;
    fragUV = inUV;
}
` + "\x00"

// fragment shader: two-source Phong against the bound diffuse texture.
const fragSrc = `
#version 410 core
in vec3 fragPos;
in vec3 fragNormal;
in vec2 fragUV;

uniform vec3 lightPos[2];
uniform vec3 lightColor[2];
uniform vec3 cameraPos;

uniform vec4 matDiffuse;
uniform float matSpecular;
uniform float matShininess;
uniform sampler2D diffuseTex;
uniform bool hasTexture;

out vec4 outColor;

const float ambientStrength = 0.1;

void main() {
    vec4 base = matDiffuse;
    if (hasTexture) {
        base *= texture(diffuseTex, fragUV);
    }

    vec3 norm = normalize(fragNormal);
    vec3 viewDir = normalize(cameraPos - fragPos);

    vec3 lighting = vec3(0.0);
    for (int i = 0; i < 2; i++) {
        vec3 ambient = ambientStrength * lightColor[i];

        vec3 lightDir = normalize(lightPos[i] - fragPos);
        float diff = max(dot(norm, lightDir), 0.0);
        vec3 diffuse = diff * lightColor[i];

        vec3 reflectDir = reflect(-lightDir, norm);
        float spec = pow(max(dot(viewDir, reflectDir), 0.0), matShininess);
        vec3 specular = matSpecular * spec * lightColor[i];

        lighting += ambient + diffuse + specular;
    }

    outColor = vec4(lighting * base.rgb, base.a);
}
` + "\x00"

// lamp shader pair: position-only transform, solid light color.
const lampVertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
uniform mat4 mvp;
void main() {
    gl_Position = mvp * vec4(inPosition, 1.0);
}
` + "\x00"

const lampFragSrc = `
#version 410 core
uniform vec4 lampColor;
out vec4 outColor;
void main() {
    outColor = lampColor;
}
` + "\x00"

// ── NewRenderer ───────────────────────────────────────────────────────────────

// NewRenderer initialises OpenGL.
// Must be called after the GLFW window context is made current.
func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Printf("OpenGL version: %s\n", version)

	prog, err := newProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("scene shader compile: %w", err)
	}

	lampProg, err := newProgram(lampVertSrc, lampFragSrc)
	if err != nil {
		return nil, fmt.Errorf("lamp shader compile: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	r := &Renderer{
		program:  prog,
		lampProg: lampProg,

		mvpLoc:   gl.GetUniformLocation(prog, gl.Str("mvp\x00")),
		modelLoc: gl.GetUniformLocation(prog, gl.Str("model\x00")),

		cameraPosLoc: gl.GetUniformLocation(prog, gl.Str("cameraPos\x00")),

		matDiffuseLoc:   gl.GetUniformLocation(prog, gl.Str("matDiffuse\x00")),
		matSpecularLoc:  gl.GetUniformLocation(prog, gl.Str("matSpecular\x00")),
		matShininessLoc: gl.GetUniformLocation(prog, gl.Str("matShininess\x00")),
		diffuseTexLoc:   gl.GetUniformLocation(prog, gl.Str("diffuseTex\x00")),
		hasTextureLoc:   gl.GetUniformLocation(prog, gl.Str("hasTexture\x00")),

		lampMVPLoc:   gl.GetUniformLocation(lampProg, gl.Str("mvp\x00")),
		lampColorLoc: gl.GetUniformLocation(lampProg, gl.Str("lampColor\x00")),

		gpuMeshes: make(map[*scene.Mesh]*GPUMesh),
	}

	for i := 0; i < LightCount; i++ {
		r.lightPosLoc[i] = gl.GetUniformLocation(prog,
			gl.Str(fmt.Sprintf("lightPos[%d]\x00", i)))
		r.lightColorLoc[i] = gl.GetUniformLocation(prog,
			gl.Str(fmt.Sprintf("lightColor[%d]\x00", i)))
	}

	// diffuse sampler stays on unit 0
	gl.UseProgram(prog)
	gl.Uniform1i(r.diffuseTexLoc, 0)

	return r, nil
}

// ── Viewport ──────────────────────────────────────────────────────────────────

// SetViewport resizes the OpenGL viewport.
func (r *Renderer) SetViewport(width, height int) {
	r.viewportW = int32(width)
	r.viewportH = int32(height)
	gl.Viewport(0, 0, int32(width), int32(height))
}

// SetWireframe toggles line rasterization for every draw.
func (r *Renderer) SetWireframe(enabled bool) {
	r.wireframe = enabled
	if enabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// IsWireframe returns whether wireframe mode is active.
func (r *Renderer) IsWireframe() bool {
	return r.wireframe
}

// ── Frame ─────────────────────────────────────────────────────────────────────

// BeginFrame clears the targets and uploads the per-frame uniforms from the
// frame context.
func (r *Renderer) BeginFrame(sky core.Color, frame *FrameContext) {
	gl.ClearColor(sky.R, sky.G, sky.B, sky.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)
	gl.Uniform3f(r.cameraPosLoc, frame.CameraPos.X, frame.CameraPos.Y, frame.CameraPos.Z)
	for i := 0; i < LightCount; i++ {
		light := frame.Lights[i]
		c := light.ScaledColor()
		gl.Uniform3f(r.lightPosLoc[i], light.Position.X, light.Position.Y, light.Position.Z)
		gl.Uniform3f(r.lightColorLoc[i], c.R, c.G, c.B)
	}
}

// ── DrawMesh ──────────────────────────────────────────────────────────────────

// DrawMesh draws a mesh under the frame's camera with its own transform.
// Material properties are read from mesh.Material; an unlit material routes
// to the lamp program.
func (r *Renderer) DrawMesh(mesh *scene.Mesh, frame *FrameContext) {
	gpu := r.ensureUploaded(mesh)
	if gpu == nil {
		return
	}

	mat := mesh.Material
	if mat == nil {
		mat = scene.DefaultMaterial()
	}

	model := mesh.Transform.GetMatrix()
	mvp := frame.Projection.Mul(frame.View).Mul(model)

	if mat.Unlit {
		gl.UseProgram(r.lampProg)
		gl.UniformMatrix4fv(r.lampMVPLoc, 1, false, (*float32)(unsafe.Pointer(&mvp[0][0])))
		gl.Uniform4f(r.lampColorLoc, mat.Diffuse.R, mat.Diffuse.G, mat.Diffuse.B, mat.Diffuse.A)
	} else {
		gl.UseProgram(r.program)
		gl.UniformMatrix4fv(r.mvpLoc, 1, false, (*float32)(unsafe.Pointer(&mvp[0][0])))
		gl.UniformMatrix4fv(r.modelLoc, 1, false, (*float32)(unsafe.Pointer(&model[0][0])))
		gl.Uniform4f(r.matDiffuseLoc, mat.Diffuse.R, mat.Diffuse.G, mat.Diffuse.B, mat.Diffuse.A)
		gl.Uniform1f(r.matSpecularLoc, mat.SpecularIntensity)
		gl.Uniform1f(r.matShininessLoc, mat.Shininess)

		if mat.Texture != nil && mat.Texture.GLID != 0 {
			gl.ActiveTexture(gl.TEXTURE0)
			gl.BindTexture(gl.TEXTURE_2D, mat.Texture.GLID)
			gl.Uniform1i(r.hasTextureLoc, 1)
		} else {
			gl.Uniform1i(r.hasTextureLoc, 0)
		}
	}

	gl.BindVertexArray(gpu.VAO)
	gl.DrawElements(gl.TRIANGLES, gpu.IndexCount, gl.UNSIGNED_SHORT, nil)
	gl.BindVertexArray(0)
}

// ── Mesh upload ───────────────────────────────────────────────────────────────

func (r *Renderer) ensureUploaded(mesh *scene.Mesh) *GPUMesh {
	if gpu, ok := r.gpuMeshes[mesh]; ok {
		return gpu
	}
	if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return nil
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))

	gpu := &GPUMesh{
		IndexCount: int32(len(mesh.Indices)),
	}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(mesh.Vertices)*int(stride),
		gl.Ptr(mesh.Vertices),
		gl.STATIC_DRAW)

	var v core.Vertex
	posOff := int(unsafe.Offsetof(v.Position))
	normOff := int(unsafe.Offsetof(v.Normal))
	uvOff := int(unsafe.Offsetof(v.UV))

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(posOff))

	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(normOff))

	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(uvOff))

	gl.GenBuffers(1, &gpu.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
		len(mesh.Indices)*2,
		gl.Ptr(mesh.Indices),
		gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	r.gpuMeshes[mesh] = gpu
	mesh.GPUData = gpu
	return gpu
}

// ReleaseMesh frees the GPU buffers of a single mesh.
func (r *Renderer) ReleaseMesh(mesh *scene.Mesh) {
	if gpu, ok := r.gpuMeshes[mesh]; ok {
		gl.DeleteVertexArrays(1, &gpu.VAO)
		gl.DeleteBuffers(1, &gpu.VBO)
		gl.DeleteBuffers(1, &gpu.EBO)
		delete(r.gpuMeshes, mesh)
		mesh.GPUData = nil
	}
}

// Destroy releases all GPU resources.
func (r *Renderer) Destroy() {
	for mesh := range r.gpuMeshes {
		r.ReleaseMesh(mesh)
	}
	gl.DeleteProgram(r.lampProg)
	gl.DeleteProgram(r.program)
}

// ── Shader helpers ────────────────────────────────────────────────────────────

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %v", log)
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}
